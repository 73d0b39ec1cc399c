package itemgen

import (
	"strings"
	"testing"
)

func validMCItem() Item {
	return Item{
		Prompt:      "Which article goes with 'Haus'?",
		Answer:      "das",
		Options:     []string{"der", "die", "das", "den"},
		Explanation: "Haus is a neuter noun, so it takes das.",
		Difficulty:  DifficultyEasy,
	}
}

func validFillBlankItem() Item {
	return Item{
		Prompt:      "Ich ___ jeden Tag Kaffee.",
		Answer:      "trinke",
		Explanation: "First person singular present of trinken.",
		Difficulty:  DifficultyEasy,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		mutate func(*Item)
		etype  ExerciseType
		wantOK bool
	}{
		{"valid multiple choice", func(i *Item) {}, TypeMultipleChoice, true},
		{"empty prompt", func(i *Item) { i.Prompt = "  " }, TypeMultipleChoice, false},
		{"empty explanation", func(i *Item) { i.Explanation = "" }, TypeMultipleChoice, false},
		{"no answer at all", func(i *Item) { i.Answer = ""; i.Answers = nil }, TypeMultipleChoice, false},
		{"bad difficulty", func(i *Item) { i.Difficulty = "extreme" }, TypeMultipleChoice, false},
		{"three options", func(i *Item) { i.Options = i.Options[:3] }, TypeMultipleChoice, false},
		{"five options", func(i *Item) { i.Options = append(i.Options, "dem") }, TypeMultipleChoice, false},
		{"answer not among options", func(i *Item) { i.Answer = "ein" }, TypeMultipleChoice, false},
		{"translation with answer list only", func(i *Item) {
			i.Answer = ""
			i.Answers = []string{"the house", "a house"}
			i.Options = nil
		}, TypeTranslation, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validMCItem()
			tt.mutate(&item)
			verr := v.Validate(&item, tt.etype)
			if tt.wantOK && verr != nil {
				t.Errorf("expected pass, got %v", verr)
			}
			if !tt.wantOK && verr == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

func TestFillBlankValidator(t *testing.T) {
	v := &FillBlankValidator{}

	tests := []struct {
		name   string
		prompt string
		answer string
		wantOK bool
	}{
		{"one blank", "Ich ___ Kaffee.", "trinke", true},
		{"no blank", "Ich trinke Kaffee.", "trinke", false},
		{"two blanks", "Ich ___ gern ___.", "trinke", false},
		{"three word answer", "Er sagt, ___.", "dass er kommt", true},
		{"four word answer", "Er sagt, ___.", "dass er morgen kommt", false},
		{"answer from list", "Wir ___ nach Hause.", "", true}, // Answers filled below
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{
				Prompt:      tt.prompt,
				Answer:      tt.answer,
				Explanation: "because",
				Difficulty:  DifficultyMedium,
			}
			if tt.answer == "" {
				item.Answers = []string{"gehen"}
			}
			verr := v.Validate(&item, TypeFillBlank)
			if tt.wantOK && verr != nil {
				t.Errorf("expected pass, got %v", verr)
			}
			if !tt.wantOK && verr == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

func TestFillBlankValidator_IgnoresOtherTypes(t *testing.T) {
	v := &FillBlankValidator{}
	item := validMCItem() // No blank marker at all.
	if verr := v.Validate(&item, TypeMultipleChoice); verr != nil {
		t.Errorf("fill-blank rules must not apply to other types: %v", verr)
	}
}

func TestValidateItem_ChainOrder(t *testing.T) {
	item := validFillBlankItem()
	ok, verr := ValidateItem(&item, TypeFillBlank)
	if !ok {
		t.Fatalf("valid item rejected: %v", verr)
	}

	item.Prompt = "no blank here"
	ok, verr = ValidateItem(&item, TypeFillBlank)
	if ok {
		t.Fatal("expected rejection")
	}
	if verr.Validator != "fill-blank" {
		t.Errorf("expected fill-blank validator to flag it, got %q", verr.Validator)
	}
	if !strings.Contains(verr.Error(), "fill-blank") {
		t.Errorf("error should name the validator: %v", verr)
	}
}

func TestDefaultValidators_Chain(t *testing.T) {
	vs := DefaultValidators()
	if len(vs) != 2 {
		t.Fatalf("expected 2 validators, got %d", len(vs))
	}
	names := []string{"structural", "fill-blank"}
	for i, v := range vs {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}
