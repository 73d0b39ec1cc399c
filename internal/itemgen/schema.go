package itemgen

import "github.com/verbly-app/verbly/internal/llm"

// ItemsSchema defines the JSON schema for item generation responses.
// The provider response is validated against it before decoding, so a
// malformed response fails closed instead of being partially read.
var ItemsSchema = &llm.Schema{
	Name:        "exercise-items",
	Description: "A batch of language practice items with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":        "array",
				"description": "The generated practice items",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner. For fill_blank, contains exactly one ___ marker.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The expected answer. For multiple_choice: the text of the correct option.",
						},
						"answers": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Alternative accepted answers, e.g. translation variants. Empty when only one answer applies.",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple_choice. Empty for other types.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, in one or two sentences.",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "The difficulty tier this item was generated for",
						},
					},
					"required":             []any{"prompt", "answer", "answers", "options", "explanation", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
