// Code generated by ent, DO NOT EDIT.

package levelprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verbly-app/verbly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldLearnerID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldLevel, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldAverageScore, v))
}

// ExercisesCompleted applies equality check predicate on the "exercises_completed" field. It's identical to ExercisesCompletedEQ.
func ExercisesCompleted(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldExercisesCompleted, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldContainsFold(FieldLevel, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldAverageScore, v))
}

// ExercisesCompletedEQ applies the EQ predicate on the "exercises_completed" field.
func ExercisesCompletedEQ(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedNEQ applies the NEQ predicate on the "exercises_completed" field.
func ExercisesCompletedNEQ(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedIn applies the In predicate on the "exercises_completed" field.
func ExercisesCompletedIn(vs ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedNotIn applies the NotIn predicate on the "exercises_completed" field.
func ExercisesCompletedNotIn(vs ...int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedGT applies the GT predicate on the "exercises_completed" field.
func ExercisesCompletedGT(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldExercisesCompleted, v))
}

// ExercisesCompletedGTE applies the GTE predicate on the "exercises_completed" field.
func ExercisesCompletedGTE(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldExercisesCompleted, v))
}

// ExercisesCompletedLT applies the LT predicate on the "exercises_completed" field.
func ExercisesCompletedLT(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldExercisesCompleted, v))
}

// ExercisesCompletedLTE applies the LTE predicate on the "exercises_completed" field.
func ExercisesCompletedLTE(v int) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldExercisesCompleted, v))
}

// TopicScoresIsNil applies the IsNil predicate on the "topic_scores" field.
func TopicScoresIsNil() predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIsNull(FieldTopicScores))
}

// TopicScoresNotNil applies the NotNil predicate on the "topic_scores" field.
func TopicScoresNotNil() predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotNull(FieldTopicScores))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LevelProgress {
	return predicate.LevelProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LevelProgress) predicate.LevelProgress {
	return predicate.LevelProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LevelProgress) predicate.LevelProgress {
	return predicate.LevelProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LevelProgress) predicate.LevelProgress {
	return predicate.LevelProgress(sql.NotPredicates(p))
}
