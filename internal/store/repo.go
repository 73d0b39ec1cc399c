package store

import (
	"context"
	"encoding/json"
	"time"
)

// PerformanceData is one completed exercise attempt as read from the
// performance datastore. Written by the exercise player, read-only here.
type PerformanceData struct {
	LearnerID        string
	Topic            string
	ExerciseType     string
	Difficulty       string
	Score            float64
	QuestionsTotal   int
	QuestionsCorrect int
	CompletedAt      time.Time
}

// PerformanceRepo provides read access to performance records.
type PerformanceRepo interface {
	// RecentByLearner returns up to limit of the learner's most recent
	// completed records, newest first.
	RecentByLearner(ctx context.Context, learnerID string, limit int) ([]PerformanceData, error)
}

// DeliverableData is a packaged exercise ready for persistence.
type DeliverableData struct {
	ID            string
	Topic         string
	ExerciseType  string
	Level         string
	Difficulty    string
	ItemCount     int
	Items         json.RawMessage
	QuestionTexts []string
}

// DeliverableRepo provides access to persisted deliverables.
type DeliverableRepo interface {
	// Insert persists a new deliverable.
	Insert(ctx context.Context, data DeliverableData) error

	// PriorQuestionTexts returns every question text previously persisted
	// for the (topic, exercise type) pair, oldest first.
	PriorQuestionTexts(ctx context.Context, topic, exerciseType string) ([]string, error)

	// LatestCreatedAt returns the creation time of the most recent
	// deliverable for the pair, or the zero time if none exist.
	LatestCreatedAt(ctx context.Context, topic, exerciseType string) (time.Time, error)

	// Purge deletes deliverables for the topic, or all deliverables when
	// topic is empty. Returns the number of rows removed.
	Purge(ctx context.Context, topic string) (int, error)
}

// LevelProgressData is the aggregate per-learner snapshot used as the
// analyzer's degraded fallback when no individual records exist.
type LevelProgressData struct {
	LearnerID          string
	Level              string
	AverageScore       float64
	ExercisesCompleted int
	TopicScores        map[string]float64
	UpdatedAt          time.Time
}

// SnapshotRepo provides access to level-progress snapshots.
type SnapshotRepo interface {
	// Latest returns the learner's snapshot, or nil if none exists.
	Latest(ctx context.Context, learnerID string) (*LevelProgressData, error)
}

// GenerationEventData captures a single AI provider call.
type GenerationEventData struct {
	Provider     string
	Model        string
	Purpose      string
	Topic        string
	ExerciseType string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// GenerationEventRecord is a stored generation event as read back for
// inspection.
type GenerationEventRecord struct {
	ID        int
	Timestamp time.Time
	GenerationEventData
}

// GenerationUsage aggregates provider calls by purpose.
type GenerationUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to generation events.
type EventRepo interface {
	// AppendGeneration records an AI provider call event.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// RecentGenerations returns up to limit events, newest first.
	RecentGenerations(ctx context.Context, limit int) ([]GenerationEventRecord, error)

	// UsageByPurpose aggregates token usage and latency per purpose.
	UsageByPurpose(ctx context.Context) ([]GenerationUsage, error)
}
