// Code generated by ent, DO NOT EDIT.

package deliverable

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verbly-app/verbly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContainsFold(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldTopic, v))
}

// ExerciseType applies equality check predicate on the "exercise_type" field. It's identical to ExerciseTypeEQ.
func ExerciseType(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldExerciseType, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldLevel, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldDifficulty, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldItemCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContainsFold(FieldTopic, v))
}

// ExerciseTypeEQ applies the EQ predicate on the "exercise_type" field.
func ExerciseTypeEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldExerciseType, v))
}

// ExerciseTypeNEQ applies the NEQ predicate on the "exercise_type" field.
func ExerciseTypeNEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldExerciseType, v))
}

// ExerciseTypeIn applies the In predicate on the "exercise_type" field.
func ExerciseTypeIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldExerciseType, vs...))
}

// ExerciseTypeNotIn applies the NotIn predicate on the "exercise_type" field.
func ExerciseTypeNotIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldExerciseType, vs...))
}

// ExerciseTypeGT applies the GT predicate on the "exercise_type" field.
func ExerciseTypeGT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldExerciseType, v))
}

// ExerciseTypeGTE applies the GTE predicate on the "exercise_type" field.
func ExerciseTypeGTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldExerciseType, v))
}

// ExerciseTypeLT applies the LT predicate on the "exercise_type" field.
func ExerciseTypeLT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldExerciseType, v))
}

// ExerciseTypeLTE applies the LTE predicate on the "exercise_type" field.
func ExerciseTypeLTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldExerciseType, v))
}

// ExerciseTypeContains applies the Contains predicate on the "exercise_type" field.
func ExerciseTypeContains(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContains(FieldExerciseType, v))
}

// ExerciseTypeHasPrefix applies the HasPrefix predicate on the "exercise_type" field.
func ExerciseTypeHasPrefix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasPrefix(FieldExerciseType, v))
}

// ExerciseTypeHasSuffix applies the HasSuffix predicate on the "exercise_type" field.
func ExerciseTypeHasSuffix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasSuffix(FieldExerciseType, v))
}

// ExerciseTypeEqualFold applies the EqualFold predicate on the "exercise_type" field.
func ExerciseTypeEqualFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEqualFold(FieldExerciseType, v))
}

// ExerciseTypeContainsFold applies the ContainsFold predicate on the "exercise_type" field.
func ExerciseTypeContainsFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContainsFold(FieldExerciseType, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContainsFold(FieldLevel, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldContainsFold(FieldDifficulty, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldItemCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Deliverable {
	return predicate.Deliverable(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deliverable) predicate.Deliverable {
	return predicate.Deliverable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deliverable) predicate.Deliverable {
	return predicate.Deliverable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deliverable) predicate.Deliverable {
	return predicate.Deliverable(sql.NotPredicates(p))
}
