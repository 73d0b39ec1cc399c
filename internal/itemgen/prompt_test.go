package itemgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	req := Request{
		Topic:        Topic{ID: "present-tense", Name: "Present Tense", Description: "Regular verbs in present tense"},
		Level:        LevelA2,
		ExerciseType: TypeFillBlank,
	}

	msg := buildUserMessage(req, DifficultyMedium, 7, []string{"Old question one"}, 10)

	for _, want := range []string{
		"Topic: Present Tense",
		"Description: Regular verbs in present tense",
		"CEFR level: A2",
		"Exercise type: fill_blank",
		"Difficulty: medium",
		"Number of items: 7",
		"1. Old question one",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	if !strings.Contains(msg, difficultyGuidance[DifficultyMedium]) {
		t.Error("message missing the per-tier guidance")
	}
}

func TestBuildUserMessage_NoDescription(t *testing.T) {
	req := Request{
		Topic:        Topic{ID: "numbers", Name: "Numbers"},
		Level:        LevelA1,
		ExerciseType: TypeMultipleChoice,
	}

	msg := buildUserMessage(req, DifficultyEasy, 3, nil, 10)
	if strings.Contains(msg, "Description:") {
		t.Error("empty description should be omitted")
	}
	if !strings.Contains(msg, "None") {
		t.Error("empty avoid list should render as None")
	}
}

func TestSystemPrompt_StatesValidatorRules(t *testing.T) {
	// The provider-side rules must match what the validators enforce
	// afterwards, otherwise most items get discarded.
	for _, want := range []string{"exactly one blank", "___", "at most 3 words", "exactly 4 options"} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing rule %q", want)
		}
	}
}
