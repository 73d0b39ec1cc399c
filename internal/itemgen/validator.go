package itemgen

import (
	"fmt"
	"strings"
)

// Validator checks a generated item for structural validity.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "fill-blank".
	Name() string

	// Validate checks the item and returns nil if it passes.
	// Returns a ValidationError if the item fails the check.
	Validate(item *Item, exerciseType ExerciseType) *ValidationError
}

// ValidationError describes why an item failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks the universal rules every item must satisfy:
// non-empty prompt, a type-consistent non-empty expected answer, and a
// non-empty explanation.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(item *Item, exerciseType ExerciseType) *ValidationError {
	if strings.TrimSpace(item.Prompt) == "" {
		return &ValidationError{Validator: v.Name(), Message: "prompt is empty"}
	}
	if strings.TrimSpace(item.Explanation) == "" {
		return &ValidationError{Validator: v.Name(), Message: "explanation is empty"}
	}

	hasScalar := strings.TrimSpace(item.Answer) != ""
	hasList := false
	for _, a := range item.Answers {
		if strings.TrimSpace(a) != "" {
			hasList = true
			break
		}
	}
	if !hasScalar && !hasList {
		return &ValidationError{Validator: v.Name(), Message: "expected answer is empty"}
	}

	if !ValidDifficulty(item.Difficulty) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown difficulty %q", item.Difficulty),
		}
	}

	if exerciseType == TypeMultipleChoice {
		if len(item.Options) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("multiple_choice needs exactly 4 options, got %d", len(item.Options)),
			}
		}
		if !hasScalar {
			return &ValidationError{Validator: v.Name(), Message: "multiple_choice needs a scalar answer"}
		}
		found := false
		for _, opt := range item.Options {
			if opt == item.Answer {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{Validator: v.Name(), Message: "answer is not among the options"}
		}
	}

	return nil
}

// FillBlankValidator enforces the fill-in-the-blank invariant: exactly one
// blank marker in the prompt and an answer of at most 3 words. Anything
// else breaks downstream answer checking, so the item is rejected outright.
type FillBlankValidator struct{}

func (v *FillBlankValidator) Name() string { return "fill-blank" }

func (v *FillBlankValidator) Validate(item *Item, exerciseType ExerciseType) *ValidationError {
	if exerciseType != TypeFillBlank {
		return nil
	}

	if n := strings.Count(item.Prompt, BlankMarker); n != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("prompt must contain exactly one %q marker, found %d", BlankMarker, n),
		}
	}

	answer := item.Answer
	if answer == "" && len(item.Answers) > 0 {
		answer = item.Answers[0]
	}
	if len(strings.Fields(answer)) > 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "blank answer must be a short phrase of at most 3 words",
		}
	}

	return nil
}

// DefaultValidators returns the standard validator chain.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&FillBlankValidator{},
	}
}

// ValidateItem runs the standard chain against one item. It never fails
// with an error: invalid items return false together with the reason.
func ValidateItem(item *Item, exerciseType ExerciseType) (bool, *ValidationError) {
	for _, v := range DefaultValidators() {
		if verr := v.Validate(item, exerciseType); verr != nil {
			return false, verr
		}
	}
	return true, nil
}
