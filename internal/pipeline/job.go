package pipeline

import (
	"github.com/google/uuid"

	"github.com/verbly-app/verbly/internal/itemgen"
)

// JobStatus is a job's position in its lifecycle. Terminal states are
// StatusCompleted and StatusError.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusGenerating JobStatus = "generating"
	StatusCompleted  JobStatus = "completed"
	StatusError      JobStatus = "error"
)

// Job is one unit of pipeline work: a single (topic, exercise type) pair.
type Job struct {
	ID             string
	Topic          itemgen.Topic
	Level          itemgen.Level
	ExerciseType   itemgen.ExerciseType
	RequestedCount int
	GeneratedCount int
	Status         JobStatus
	ErrMessage     string

	// Tiers is the per-difficulty breakdown filled in after generation.
	Tiers []itemgen.TierResult
}

// TypeWeights maps each exercise type to its percentage share of a
// topic's total item count. Values should sum to 100.
type TypeWeights map[itemgen.ExerciseType]int

// DefaultTypeWeights is the standard mix across exercise types.
func DefaultTypeWeights() TypeWeights {
	return TypeWeights{
		itemgen.TypeMultipleChoice:    35,
		itemgen.TypeFillBlank:         30,
		itemgen.TypeTranslation:       20,
		itemgen.TypeConjugation:       10,
		itemgen.TypeSentenceStructure: 5,
	}
}

// buildJobs enumerates one job per (topic, weighted type) pair. Requested
// counts are ceil(total * weight / 100); zero-count jobs are never
// enqueued. Types iterate in canonical order so job order is stable.
func buildJobs(topics []itemgen.Topic, level itemgen.Level, itemsPerTopic int, weights TypeWeights) []*Job {
	var jobs []*Job
	for _, topic := range topics {
		for _, et := range itemgen.ExerciseTypes {
			weight, ok := weights[et]
			if !ok {
				continue
			}
			count := itemgen.ShareCount(itemsPerTopic, weight)
			if count <= 0 {
				continue
			}
			jobs = append(jobs, &Job{
				ID:             uuid.NewString(),
				Topic:          topic,
				Level:          level,
				ExerciseType:   et,
				RequestedCount: count,
				Status:         StatusPending,
			})
		}
	}
	return jobs
}
