package itemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a language tutor creating practice exercises for adult learners.

Rules:
- Generate exactly the requested number of items for the given topic, CEFR level, exercise type, and difficulty.
- Every item needs a clear, self-contained prompt, the expected answer, and a short explanation of why the answer is correct.
- Target the vocabulary and grammar of the stated CEFR level. Do not drift above it.
- For multiple_choice items, provide exactly 4 options where exactly one is correct. Distractors should reflect common learner mistakes, not random words.
- For fill_blank items, the prompt must contain exactly one blank written as ___ and the answer must be a short phrase of at most 3 words.
- For translation items, list accepted answer variants when more than one natural translation exists.
- For conjugation items, name the person, number, and tense being asked for in the prompt.
- For sentence_structure items, ask the learner to order or correct a sentence and give the corrected sentence as the answer.
- Do not repeat any question from the "avoid" list.`

// difficultyGuidance gives the model per-tier instructions.
var difficultyGuidance = map[Difficulty]string{
	DifficultyEasy:   "Use high-frequency vocabulary and short sentences. One concept per item.",
	DifficultyMedium: "Combine two related concepts per item. Moderate sentence length.",
	DifficultyHard:   "Use less common vocabulary, longer sentences, and edge cases of the topic's rules.",
}

// buildUserMessage constructs the user message for one tier of a request.
func buildUserMessage(req Request, tier Difficulty, count int, avoid []string, maxAvoid int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic.Name)
	if req.Topic.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.Topic.Description)
	}
	fmt.Fprintf(&b, "CEFR level: %s\n", req.Level)
	fmt.Fprintf(&b, "Exercise type: %s\n", req.ExerciseType)
	fmt.Fprintf(&b, "Difficulty: %s\n", tier)
	fmt.Fprintf(&b, "Guidance: %s\n", difficultyGuidance[tier])
	fmt.Fprintf(&b, "Number of items: %d\n", count)

	b.WriteString("\nAvoid repeating these questions:\n")
	b.WriteString(formatAvoid(avoid, maxAvoid))

	return b.String()
}
