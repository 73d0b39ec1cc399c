// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/verbly-app/verbly/ent/deliverable"
	"github.com/verbly-app/verbly/ent/generationevent"
	"github.com/verbly-app/verbly/ent/levelprogress"
	"github.com/verbly-app/verbly/ent/performancerecord"
	"github.com/verbly-app/verbly/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deliverableFields := schema.Deliverable{}.Fields()
	_ = deliverableFields
	// deliverableDescTopic is the schema descriptor for topic field.
	deliverableDescTopic := deliverableFields[1].Descriptor()
	// deliverable.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	deliverable.TopicValidator = deliverableDescTopic.Validators[0].(func(string) error)
	// deliverableDescExerciseType is the schema descriptor for exercise_type field.
	deliverableDescExerciseType := deliverableFields[2].Descriptor()
	// deliverable.ExerciseTypeValidator is a validator for the "exercise_type" field. It is called by the builders before save.
	deliverable.ExerciseTypeValidator = deliverableDescExerciseType.Validators[0].(func(string) error)
	// deliverableDescLevel is the schema descriptor for level field.
	deliverableDescLevel := deliverableFields[3].Descriptor()
	// deliverable.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	deliverable.LevelValidator = deliverableDescLevel.Validators[0].(func(string) error)
	// deliverableDescDifficulty is the schema descriptor for difficulty field.
	deliverableDescDifficulty := deliverableFields[4].Descriptor()
	// deliverable.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	deliverable.DifficultyValidator = deliverableDescDifficulty.Validators[0].(func(string) error)
	// deliverableDescItemCount is the schema descriptor for item_count field.
	deliverableDescItemCount := deliverableFields[5].Descriptor()
	// deliverable.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	deliverable.ItemCountValidator = deliverableDescItemCount.Validators[0].(func(int) error)
	// deliverableDescCreatedAt is the schema descriptor for created_at field.
	deliverableDescCreatedAt := deliverableFields[8].Descriptor()
	// deliverable.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliverable.DefaultCreatedAt = deliverableDescCreatedAt.Default.(func() time.Time)
	// deliverableDescID is the schema descriptor for id field.
	deliverableDescID := deliverableFields[0].Descriptor()
	// deliverable.IDValidator is a validator for the "id" field. It is called by the builders before save.
	deliverable.IDValidator = deliverableDescID.Validators[0].(func(string) error)
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescProvider is the schema descriptor for provider field.
	generationeventDescProvider := generationeventFields[0].Descriptor()
	// generationevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	generationevent.ProviderValidator = generationeventDescProvider.Validators[0].(func(string) error)
	// generationeventDescModel is the schema descriptor for model field.
	generationeventDescModel := generationeventFields[1].Descriptor()
	// generationevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	generationevent.ModelValidator = generationeventDescModel.Validators[0].(func(string) error)
	// generationeventDescPurpose is the schema descriptor for purpose field.
	generationeventDescPurpose := generationeventFields[2].Descriptor()
	// generationevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	generationevent.PurposeValidator = generationeventDescPurpose.Validators[0].(func(string) error)
	// generationeventDescInputTokens is the schema descriptor for input_tokens field.
	generationeventDescInputTokens := generationeventFields[5].Descriptor()
	// generationevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	generationevent.DefaultInputTokens = generationeventDescInputTokens.Default.(int)
	// generationeventDescOutputTokens is the schema descriptor for output_tokens field.
	generationeventDescOutputTokens := generationeventFields[6].Descriptor()
	// generationevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	generationevent.DefaultOutputTokens = generationeventDescOutputTokens.Default.(int)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[7].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventFields[10].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	levelprogressFields := schema.LevelProgress{}.Fields()
	_ = levelprogressFields
	// levelprogressDescLearnerID is the schema descriptor for learner_id field.
	levelprogressDescLearnerID := levelprogressFields[0].Descriptor()
	// levelprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	levelprogress.LearnerIDValidator = levelprogressDescLearnerID.Validators[0].(func(string) error)
	// levelprogressDescLevel is the schema descriptor for level field.
	levelprogressDescLevel := levelprogressFields[1].Descriptor()
	// levelprogress.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	levelprogress.LevelValidator = levelprogressDescLevel.Validators[0].(func(string) error)
	// levelprogressDescAverageScore is the schema descriptor for average_score field.
	levelprogressDescAverageScore := levelprogressFields[2].Descriptor()
	// levelprogress.DefaultAverageScore holds the default value on creation for the average_score field.
	levelprogress.DefaultAverageScore = levelprogressDescAverageScore.Default.(float64)
	// levelprogress.AverageScoreValidator is a validator for the "average_score" field. It is called by the builders before save.
	levelprogress.AverageScoreValidator = levelprogressDescAverageScore.Validators[0].(func(float64) error)
	// levelprogressDescExercisesCompleted is the schema descriptor for exercises_completed field.
	levelprogressDescExercisesCompleted := levelprogressFields[3].Descriptor()
	// levelprogress.DefaultExercisesCompleted holds the default value on creation for the exercises_completed field.
	levelprogress.DefaultExercisesCompleted = levelprogressDescExercisesCompleted.Default.(int)
	// levelprogressDescUpdatedAt is the schema descriptor for updated_at field.
	levelprogressDescUpdatedAt := levelprogressFields[5].Descriptor()
	// levelprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	levelprogress.DefaultUpdatedAt = levelprogressDescUpdatedAt.Default.(func() time.Time)
	// levelprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	levelprogress.UpdateDefaultUpdatedAt = levelprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	performancerecordFields := schema.PerformanceRecord{}.Fields()
	_ = performancerecordFields
	// performancerecordDescLearnerID is the schema descriptor for learner_id field.
	performancerecordDescLearnerID := performancerecordFields[0].Descriptor()
	// performancerecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	performancerecord.LearnerIDValidator = performancerecordDescLearnerID.Validators[0].(func(string) error)
	// performancerecordDescTopic is the schema descriptor for topic field.
	performancerecordDescTopic := performancerecordFields[1].Descriptor()
	// performancerecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	performancerecord.TopicValidator = performancerecordDescTopic.Validators[0].(func(string) error)
	// performancerecordDescExerciseType is the schema descriptor for exercise_type field.
	performancerecordDescExerciseType := performancerecordFields[2].Descriptor()
	// performancerecord.ExerciseTypeValidator is a validator for the "exercise_type" field. It is called by the builders before save.
	performancerecord.ExerciseTypeValidator = performancerecordDescExerciseType.Validators[0].(func(string) error)
	// performancerecordDescDifficulty is the schema descriptor for difficulty field.
	performancerecordDescDifficulty := performancerecordFields[3].Descriptor()
	// performancerecord.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	performancerecord.DifficultyValidator = performancerecordDescDifficulty.Validators[0].(func(string) error)
	// performancerecordDescScore is the schema descriptor for score field.
	performancerecordDescScore := performancerecordFields[4].Descriptor()
	// performancerecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	performancerecord.ScoreValidator = performancerecordDescScore.Validators[0].(func(float64) error)
	// performancerecordDescQuestionsTotal is the schema descriptor for questions_total field.
	performancerecordDescQuestionsTotal := performancerecordFields[5].Descriptor()
	// performancerecord.QuestionsTotalValidator is a validator for the "questions_total" field. It is called by the builders before save.
	performancerecord.QuestionsTotalValidator = performancerecordDescQuestionsTotal.Validators[0].(func(int) error)
	// performancerecordDescQuestionsCorrect is the schema descriptor for questions_correct field.
	performancerecordDescQuestionsCorrect := performancerecordFields[6].Descriptor()
	// performancerecord.QuestionsCorrectValidator is a validator for the "questions_correct" field. It is called by the builders before save.
	performancerecord.QuestionsCorrectValidator = performancerecordDescQuestionsCorrect.Validators[0].(func(int) error)
	// performancerecordDescCompletedAt is the schema descriptor for completed_at field.
	performancerecordDescCompletedAt := performancerecordFields[7].Descriptor()
	// performancerecord.DefaultCompletedAt holds the default value on creation for the completed_at field.
	performancerecord.DefaultCompletedAt = performancerecordDescCompletedAt.Default.(func() time.Time)
}
