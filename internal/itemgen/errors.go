package itemgen

import (
	"fmt"
	"time"
)

// ErrGenerationThrottled indicates a generation for the same
// (topic, exercise type) pair completed within the rate window.
type ErrGenerationThrottled struct {
	Topic        string
	ExerciseType ExerciseType
	RetryAfter   time.Duration
}

func (e *ErrGenerationThrottled) Error() string {
	return fmt.Sprintf("generation for %s/%s throttled, retry in %s",
		e.Topic, e.ExerciseType, e.RetryAfter.Round(time.Second))
}

// ErrInsufficientItems indicates the distributor was asked for more
// deliverables than there are items; empty deliverables are never emitted.
type ErrInsufficientItems struct {
	Have int
	Want int
}

func (e *ErrInsufficientItems) Error() string {
	return fmt.Sprintf("cannot build %d deliverables from %d items", e.Want, e.Have)
}

// ErrInvalidRequest indicates a generation request failed pre-condition
// checks before any remote call was attempted.
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid generation request: %s", e.Reason)
}
