// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verbly-app/verbly/ent/deliverable"
	"github.com/verbly-app/verbly/ent/generationevent"
	"github.com/verbly-app/verbly/ent/levelprogress"
	"github.com/verbly-app/verbly/ent/performancerecord"
	"github.com/verbly-app/verbly/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeliverable       = "Deliverable"
	TypeGenerationEvent   = "GenerationEvent"
	TypeLevelProgress     = "LevelProgress"
	TypePerformanceRecord = "PerformanceRecord"
)

// DeliverableMutation represents an operation that mutates the Deliverable nodes in the graph.
type DeliverableMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	topic                *string
	exercise_type        *string
	level                *string
	difficulty           *string
	item_count           *int
	additem_count        *int
	items                *json.RawMessage
	appenditems          json.RawMessage
	question_texts       *[]string
	appendquestion_texts []string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Deliverable, error)
	predicates           []predicate.Deliverable
}

var _ ent.Mutation = (*DeliverableMutation)(nil)

// deliverableOption allows management of the mutation configuration using functional options.
type deliverableOption func(*DeliverableMutation)

// newDeliverableMutation creates new mutation for the Deliverable entity.
func newDeliverableMutation(c config, op Op, opts ...deliverableOption) *DeliverableMutation {
	m := &DeliverableMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliverable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliverableID sets the ID field of the mutation.
func withDeliverableID(id string) deliverableOption {
	return func(m *DeliverableMutation) {
		var (
			err   error
			once  sync.Once
			value *Deliverable
		)
		m.oldValue = func(ctx context.Context) (*Deliverable, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deliverable.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliverable sets the old Deliverable of the mutation.
func withDeliverable(node *Deliverable) deliverableOption {
	return func(m *DeliverableMutation) {
		m.oldValue = func(context.Context) (*Deliverable, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliverableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliverableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deliverable entities.
func (m *DeliverableMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliverableMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliverableMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deliverable.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *DeliverableMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *DeliverableMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *DeliverableMutation) ResetTopic() {
	m.topic = nil
}

// SetExerciseType sets the "exercise_type" field.
func (m *DeliverableMutation) SetExerciseType(s string) {
	m.exercise_type = &s
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *DeliverableMutation) ExerciseType() (r string, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldExerciseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *DeliverableMutation) ResetExerciseType() {
	m.exercise_type = nil
}

// SetLevel sets the "level" field.
func (m *DeliverableMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *DeliverableMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *DeliverableMutation) ResetLevel() {
	m.level = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *DeliverableMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *DeliverableMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *DeliverableMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetItemCount sets the "item_count" field.
func (m *DeliverableMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *DeliverableMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *DeliverableMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *DeliverableMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *DeliverableMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetItems sets the "items" field.
func (m *DeliverableMutation) SetItems(jm json.RawMessage) {
	m.items = &jm
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *DeliverableMutation) Items() (r json.RawMessage, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldItems(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds jm to the "items" field.
func (m *DeliverableMutation) AppendItems(jm json.RawMessage) {
	m.appenditems = append(m.appenditems, jm...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *DeliverableMutation) AppendedItems() (json.RawMessage, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *DeliverableMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetQuestionTexts sets the "question_texts" field.
func (m *DeliverableMutation) SetQuestionTexts(s []string) {
	m.question_texts = &s
	m.appendquestion_texts = nil
}

// QuestionTexts returns the value of the "question_texts" field in the mutation.
func (m *DeliverableMutation) QuestionTexts() (r []string, exists bool) {
	v := m.question_texts
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionTexts returns the old "question_texts" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldQuestionTexts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionTexts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionTexts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionTexts: %w", err)
	}
	return oldValue.QuestionTexts, nil
}

// AppendQuestionTexts adds s to the "question_texts" field.
func (m *DeliverableMutation) AppendQuestionTexts(s []string) {
	m.appendquestion_texts = append(m.appendquestion_texts, s...)
}

// AppendedQuestionTexts returns the list of values that were appended to the "question_texts" field in this mutation.
func (m *DeliverableMutation) AppendedQuestionTexts() ([]string, bool) {
	if len(m.appendquestion_texts) == 0 {
		return nil, false
	}
	return m.appendquestion_texts, true
}

// ResetQuestionTexts resets all changes to the "question_texts" field.
func (m *DeliverableMutation) ResetQuestionTexts() {
	m.question_texts = nil
	m.appendquestion_texts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeliverableMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeliverableMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deliverable entity.
// If the Deliverable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliverableMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeliverableMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DeliverableMutation builder.
func (m *DeliverableMutation) Where(ps ...predicate.Deliverable) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliverableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliverableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deliverable, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliverableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliverableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deliverable).
func (m *DeliverableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliverableMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.topic != nil {
		fields = append(fields, deliverable.FieldTopic)
	}
	if m.exercise_type != nil {
		fields = append(fields, deliverable.FieldExerciseType)
	}
	if m.level != nil {
		fields = append(fields, deliverable.FieldLevel)
	}
	if m.difficulty != nil {
		fields = append(fields, deliverable.FieldDifficulty)
	}
	if m.item_count != nil {
		fields = append(fields, deliverable.FieldItemCount)
	}
	if m.items != nil {
		fields = append(fields, deliverable.FieldItems)
	}
	if m.question_texts != nil {
		fields = append(fields, deliverable.FieldQuestionTexts)
	}
	if m.created_at != nil {
		fields = append(fields, deliverable.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliverableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliverable.FieldTopic:
		return m.Topic()
	case deliverable.FieldExerciseType:
		return m.ExerciseType()
	case deliverable.FieldLevel:
		return m.Level()
	case deliverable.FieldDifficulty:
		return m.Difficulty()
	case deliverable.FieldItemCount:
		return m.ItemCount()
	case deliverable.FieldItems:
		return m.Items()
	case deliverable.FieldQuestionTexts:
		return m.QuestionTexts()
	case deliverable.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliverableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliverable.FieldTopic:
		return m.OldTopic(ctx)
	case deliverable.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case deliverable.FieldLevel:
		return m.OldLevel(ctx)
	case deliverable.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case deliverable.FieldItemCount:
		return m.OldItemCount(ctx)
	case deliverable.FieldItems:
		return m.OldItems(ctx)
	case deliverable.FieldQuestionTexts:
		return m.OldQuestionTexts(ctx)
	case deliverable.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deliverable field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliverableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliverable.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case deliverable.FieldExerciseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case deliverable.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case deliverable.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case deliverable.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case deliverable.FieldItems:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case deliverable.FieldQuestionTexts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionTexts(v)
		return nil
	case deliverable.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deliverable field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliverableMutation) AddedFields() []string {
	var fields []string
	if m.additem_count != nil {
		fields = append(fields, deliverable.FieldItemCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliverableMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deliverable.FieldItemCount:
		return m.AddedItemCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliverableMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deliverable.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	}
	return fmt.Errorf("unknown Deliverable numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliverableMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliverableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliverableMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Deliverable nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliverableMutation) ResetField(name string) error {
	switch name {
	case deliverable.FieldTopic:
		m.ResetTopic()
		return nil
	case deliverable.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case deliverable.FieldLevel:
		m.ResetLevel()
		return nil
	case deliverable.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case deliverable.FieldItemCount:
		m.ResetItemCount()
		return nil
	case deliverable.FieldItems:
		m.ResetItems()
		return nil
	case deliverable.FieldQuestionTexts:
		m.ResetQuestionTexts()
		return nil
	case deliverable.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Deliverable field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliverableMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliverableMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliverableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliverableMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliverableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliverableMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliverableMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Deliverable unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliverableMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Deliverable edge %s", name)
}

// GenerationEventMutation represents an operation that mutates the GenerationEvent nodes in the graph.
type GenerationEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	topic            *string
	exercise_type    *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GenerationEvent, error)
	predicates       []predicate.GenerationEvent
}

var _ ent.Mutation = (*GenerationEventMutation)(nil)

// generationeventOption allows management of the mutation configuration using functional options.
type generationeventOption func(*GenerationEventMutation)

// newGenerationEventMutation creates new mutation for the GenerationEvent entity.
func newGenerationEventMutation(c config, op Op, opts ...generationeventOption) *GenerationEventMutation {
	m := &GenerationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationEventID sets the ID field of the mutation.
func withGenerationEventID(id int) generationeventOption {
	return func(m *GenerationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationEvent
		)
		m.oldValue = func(ctx context.Context) (*GenerationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationEvent sets the old GenerationEvent of the mutation.
func withGenerationEvent(node *GenerationEvent) generationeventOption {
	return func(m *GenerationEventMutation) {
		m.oldValue = func(context.Context) (*GenerationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *GenerationEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *GenerationEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *GenerationEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *GenerationEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GenerationEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *GenerationEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *GenerationEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *GenerationEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *GenerationEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetTopic sets the "topic" field.
func (m *GenerationEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *GenerationEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *GenerationEventMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[generationevent.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *GenerationEventMutation) TopicCleared() bool {
	_, ok := m.clearedFields[generationevent.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *GenerationEventMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, generationevent.FieldTopic)
}

// SetExerciseType sets the "exercise_type" field.
func (m *GenerationEventMutation) SetExerciseType(s string) {
	m.exercise_type = &s
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *GenerationEventMutation) ExerciseType() (r string, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldExerciseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ClearExerciseType clears the value of the "exercise_type" field.
func (m *GenerationEventMutation) ClearExerciseType() {
	m.exercise_type = nil
	m.clearedFields[generationevent.FieldExerciseType] = struct{}{}
}

// ExerciseTypeCleared returns if the "exercise_type" field was cleared in this mutation.
func (m *GenerationEventMutation) ExerciseTypeCleared() bool {
	_, ok := m.clearedFields[generationevent.FieldExerciseType]
	return ok
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *GenerationEventMutation) ResetExerciseType() {
	m.exercise_type = nil
	delete(m.clearedFields, generationevent.FieldExerciseType)
}

// SetInputTokens sets the "input_tokens" field.
func (m *GenerationEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *GenerationEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *GenerationEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *GenerationEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *GenerationEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *GenerationEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *GenerationEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *GenerationEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *GenerationEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *GenerationEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *GenerationEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *GenerationEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *GenerationEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *GenerationEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *GenerationEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *GenerationEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *GenerationEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *GenerationEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GenerationEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[generationevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GenerationEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[generationevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, generationevent.FieldErrorMessage)
}

// SetTimestamp sets the "timestamp" field.
func (m *GenerationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GenerationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GenerationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the GenerationEventMutation builder.
func (m *GenerationEventMutation) Where(ps ...predicate.GenerationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationEvent).
func (m *GenerationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.provider != nil {
		fields = append(fields, generationevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, generationevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, generationevent.FieldPurpose)
	}
	if m.topic != nil {
		fields = append(fields, generationevent.FieldTopic)
	}
	if m.exercise_type != nil {
		fields = append(fields, generationevent.FieldExerciseType)
	}
	if m.input_tokens != nil {
		fields = append(fields, generationevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, generationevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, generationevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, generationevent.FieldErrorMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, generationevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldProvider:
		return m.Provider()
	case generationevent.FieldModel:
		return m.Model()
	case generationevent.FieldPurpose:
		return m.Purpose()
	case generationevent.FieldTopic:
		return m.Topic()
	case generationevent.FieldExerciseType:
		return m.ExerciseType()
	case generationevent.FieldInputTokens:
		return m.InputTokens()
	case generationevent.FieldOutputTokens:
		return m.OutputTokens()
	case generationevent.FieldLatencyMs:
		return m.LatencyMs()
	case generationevent.FieldSuccess:
		return m.Success()
	case generationevent.FieldErrorMessage:
		return m.ErrorMessage()
	case generationevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationevent.FieldProvider:
		return m.OldProvider(ctx)
	case generationevent.FieldModel:
		return m.OldModel(ctx)
	case generationevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case generationevent.FieldTopic:
		return m.OldTopic(ctx)
	case generationevent.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case generationevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case generationevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case generationevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case generationevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case generationevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case generationevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case generationevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case generationevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case generationevent.FieldExerciseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case generationevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case generationevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case generationevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case generationevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, generationevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, generationevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldInputTokens:
		return m.AddedInputTokens()
	case generationevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case generationevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case generationevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationevent.FieldTopic) {
		fields = append(fields, generationevent.FieldTopic)
	}
	if m.FieldCleared(generationevent.FieldExerciseType) {
		fields = append(fields, generationevent.FieldExerciseType)
	}
	if m.FieldCleared(generationevent.FieldErrorMessage) {
		fields = append(fields, generationevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationEventMutation) ClearField(name string) error {
	switch name {
	case generationevent.FieldTopic:
		m.ClearTopic()
		return nil
	case generationevent.FieldExerciseType:
		m.ClearExerciseType()
		return nil
	case generationevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationEventMutation) ResetField(name string) error {
	switch name {
	case generationevent.FieldProvider:
		m.ResetProvider()
		return nil
	case generationevent.FieldModel:
		m.ResetModel()
		return nil
	case generationevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case generationevent.FieldTopic:
		m.ResetTopic()
		return nil
	case generationevent.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case generationevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case generationevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case generationevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case generationevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case generationevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent edge %s", name)
}

// LevelProgressMutation represents an operation that mutates the LevelProgress nodes in the graph.
type LevelProgressMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	learner_id             *string
	level                  *string
	average_score          *float64
	addaverage_score       *float64
	exercises_completed    *int
	addexercises_completed *int
	topic_scores           *map[string]float64
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*LevelProgress, error)
	predicates             []predicate.LevelProgress
}

var _ ent.Mutation = (*LevelProgressMutation)(nil)

// levelprogressOption allows management of the mutation configuration using functional options.
type levelprogressOption func(*LevelProgressMutation)

// newLevelProgressMutation creates new mutation for the LevelProgress entity.
func newLevelProgressMutation(c config, op Op, opts ...levelprogressOption) *LevelProgressMutation {
	m := &LevelProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeLevelProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLevelProgressID sets the ID field of the mutation.
func withLevelProgressID(id int) levelprogressOption {
	return func(m *LevelProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *LevelProgress
		)
		m.oldValue = func(ctx context.Context) (*LevelProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LevelProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLevelProgress sets the old LevelProgress of the mutation.
func withLevelProgress(node *LevelProgress) levelprogressOption {
	return func(m *LevelProgressMutation) {
		m.oldValue = func(context.Context) (*LevelProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LevelProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LevelProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LevelProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LevelProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LevelProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LevelProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LevelProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LevelProgress entity.
// If the LevelProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LevelProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LevelProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLevel sets the "level" field.
func (m *LevelProgressMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *LevelProgressMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the LevelProgress entity.
// If the LevelProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LevelProgressMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *LevelProgressMutation) ResetLevel() {
	m.level = nil
}

// SetAverageScore sets the "average_score" field.
func (m *LevelProgressMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *LevelProgressMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the LevelProgress entity.
// If the LevelProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LevelProgressMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *LevelProgressMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *LevelProgressMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *LevelProgressMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (m *LevelProgressMutation) SetExercisesCompleted(i int) {
	m.exercises_completed = &i
	m.addexercises_completed = nil
}

// ExercisesCompleted returns the value of the "exercises_completed" field in the mutation.
func (m *LevelProgressMutation) ExercisesCompleted() (r int, exists bool) {
	v := m.exercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldExercisesCompleted returns the old "exercises_completed" field's value of the LevelProgress entity.
// If the LevelProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LevelProgressMutation) OldExercisesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercisesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercisesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercisesCompleted: %w", err)
	}
	return oldValue.ExercisesCompleted, nil
}

// AddExercisesCompleted adds i to the "exercises_completed" field.
func (m *LevelProgressMutation) AddExercisesCompleted(i int) {
	if m.addexercises_completed != nil {
		*m.addexercises_completed += i
	} else {
		m.addexercises_completed = &i
	}
}

// AddedExercisesCompleted returns the value that was added to the "exercises_completed" field in this mutation.
func (m *LevelProgressMutation) AddedExercisesCompleted() (r int, exists bool) {
	v := m.addexercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetExercisesCompleted resets all changes to the "exercises_completed" field.
func (m *LevelProgressMutation) ResetExercisesCompleted() {
	m.exercises_completed = nil
	m.addexercises_completed = nil
}

// SetTopicScores sets the "topic_scores" field.
func (m *LevelProgressMutation) SetTopicScores(value map[string]float64) {
	m.topic_scores = &value
}

// TopicScores returns the value of the "topic_scores" field in the mutation.
func (m *LevelProgressMutation) TopicScores() (r map[string]float64, exists bool) {
	v := m.topic_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicScores returns the old "topic_scores" field's value of the LevelProgress entity.
// If the LevelProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LevelProgressMutation) OldTopicScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicScores: %w", err)
	}
	return oldValue.TopicScores, nil
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (m *LevelProgressMutation) ClearTopicScores() {
	m.topic_scores = nil
	m.clearedFields[levelprogress.FieldTopicScores] = struct{}{}
}

// TopicScoresCleared returns if the "topic_scores" field was cleared in this mutation.
func (m *LevelProgressMutation) TopicScoresCleared() bool {
	_, ok := m.clearedFields[levelprogress.FieldTopicScores]
	return ok
}

// ResetTopicScores resets all changes to the "topic_scores" field.
func (m *LevelProgressMutation) ResetTopicScores() {
	m.topic_scores = nil
	delete(m.clearedFields, levelprogress.FieldTopicScores)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LevelProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LevelProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LevelProgress entity.
// If the LevelProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LevelProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LevelProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LevelProgressMutation builder.
func (m *LevelProgressMutation) Where(ps ...predicate.LevelProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LevelProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LevelProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LevelProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LevelProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LevelProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LevelProgress).
func (m *LevelProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LevelProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.learner_id != nil {
		fields = append(fields, levelprogress.FieldLearnerID)
	}
	if m.level != nil {
		fields = append(fields, levelprogress.FieldLevel)
	}
	if m.average_score != nil {
		fields = append(fields, levelprogress.FieldAverageScore)
	}
	if m.exercises_completed != nil {
		fields = append(fields, levelprogress.FieldExercisesCompleted)
	}
	if m.topic_scores != nil {
		fields = append(fields, levelprogress.FieldTopicScores)
	}
	if m.updated_at != nil {
		fields = append(fields, levelprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LevelProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case levelprogress.FieldLearnerID:
		return m.LearnerID()
	case levelprogress.FieldLevel:
		return m.Level()
	case levelprogress.FieldAverageScore:
		return m.AverageScore()
	case levelprogress.FieldExercisesCompleted:
		return m.ExercisesCompleted()
	case levelprogress.FieldTopicScores:
		return m.TopicScores()
	case levelprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LevelProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case levelprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case levelprogress.FieldLevel:
		return m.OldLevel(ctx)
	case levelprogress.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case levelprogress.FieldExercisesCompleted:
		return m.OldExercisesCompleted(ctx)
	case levelprogress.FieldTopicScores:
		return m.OldTopicScores(ctx)
	case levelprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LevelProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LevelProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case levelprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case levelprogress.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case levelprogress.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case levelprogress.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercisesCompleted(v)
		return nil
	case levelprogress.FieldTopicScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicScores(v)
		return nil
	case levelprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LevelProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LevelProgressMutation) AddedFields() []string {
	var fields []string
	if m.addaverage_score != nil {
		fields = append(fields, levelprogress.FieldAverageScore)
	}
	if m.addexercises_completed != nil {
		fields = append(fields, levelprogress.FieldExercisesCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LevelProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case levelprogress.FieldAverageScore:
		return m.AddedAverageScore()
	case levelprogress.FieldExercisesCompleted:
		return m.AddedExercisesCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LevelProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case levelprogress.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	case levelprogress.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExercisesCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown LevelProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LevelProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(levelprogress.FieldTopicScores) {
		fields = append(fields, levelprogress.FieldTopicScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LevelProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LevelProgressMutation) ClearField(name string) error {
	switch name {
	case levelprogress.FieldTopicScores:
		m.ClearTopicScores()
		return nil
	}
	return fmt.Errorf("unknown LevelProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LevelProgressMutation) ResetField(name string) error {
	switch name {
	case levelprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case levelprogress.FieldLevel:
		m.ResetLevel()
		return nil
	case levelprogress.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case levelprogress.FieldExercisesCompleted:
		m.ResetExercisesCompleted()
		return nil
	case levelprogress.FieldTopicScores:
		m.ResetTopicScores()
		return nil
	case levelprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LevelProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LevelProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LevelProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LevelProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LevelProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LevelProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LevelProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LevelProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LevelProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LevelProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LevelProgress edge %s", name)
}

// PerformanceRecordMutation represents an operation that mutates the PerformanceRecord nodes in the graph.
type PerformanceRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	learner_id           *string
	topic                *string
	exercise_type        *string
	difficulty           *string
	score                *float64
	addscore             *float64
	questions_total      *int
	addquestions_total   *int
	questions_correct    *int
	addquestions_correct *int
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PerformanceRecord, error)
	predicates           []predicate.PerformanceRecord
}

var _ ent.Mutation = (*PerformanceRecordMutation)(nil)

// performancerecordOption allows management of the mutation configuration using functional options.
type performancerecordOption func(*PerformanceRecordMutation)

// newPerformanceRecordMutation creates new mutation for the PerformanceRecord entity.
func newPerformanceRecordMutation(c config, op Op, opts ...performancerecordOption) *PerformanceRecordMutation {
	m := &PerformanceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceRecordID sets the ID field of the mutation.
func withPerformanceRecordID(id int) performancerecordOption {
	return func(m *PerformanceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceRecord
		)
		m.oldValue = func(ctx context.Context) (*PerformanceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceRecord sets the old PerformanceRecord of the mutation.
func withPerformanceRecord(node *PerformanceRecord) performancerecordOption {
	return func(m *PerformanceRecordMutation) {
		m.oldValue = func(context.Context) (*PerformanceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *PerformanceRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *PerformanceRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *PerformanceRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetTopic sets the "topic" field.
func (m *PerformanceRecordMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PerformanceRecordMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PerformanceRecordMutation) ResetTopic() {
	m.topic = nil
}

// SetExerciseType sets the "exercise_type" field.
func (m *PerformanceRecordMutation) SetExerciseType(s string) {
	m.exercise_type = &s
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *PerformanceRecordMutation) ExerciseType() (r string, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldExerciseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *PerformanceRecordMutation) ResetExerciseType() {
	m.exercise_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *PerformanceRecordMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *PerformanceRecordMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *PerformanceRecordMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetScore sets the "score" field.
func (m *PerformanceRecordMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PerformanceRecordMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *PerformanceRecordMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PerformanceRecordMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PerformanceRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetQuestionsTotal sets the "questions_total" field.
func (m *PerformanceRecordMutation) SetQuestionsTotal(i int) {
	m.questions_total = &i
	m.addquestions_total = nil
}

// QuestionsTotal returns the value of the "questions_total" field in the mutation.
func (m *PerformanceRecordMutation) QuestionsTotal() (r int, exists bool) {
	v := m.questions_total
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsTotal returns the old "questions_total" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldQuestionsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsTotal: %w", err)
	}
	return oldValue.QuestionsTotal, nil
}

// AddQuestionsTotal adds i to the "questions_total" field.
func (m *PerformanceRecordMutation) AddQuestionsTotal(i int) {
	if m.addquestions_total != nil {
		*m.addquestions_total += i
	} else {
		m.addquestions_total = &i
	}
}

// AddedQuestionsTotal returns the value that was added to the "questions_total" field in this mutation.
func (m *PerformanceRecordMutation) AddedQuestionsTotal() (r int, exists bool) {
	v := m.addquestions_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsTotal resets all changes to the "questions_total" field.
func (m *PerformanceRecordMutation) ResetQuestionsTotal() {
	m.questions_total = nil
	m.addquestions_total = nil
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (m *PerformanceRecordMutation) SetQuestionsCorrect(i int) {
	m.questions_correct = &i
	m.addquestions_correct = nil
}

// QuestionsCorrect returns the value of the "questions_correct" field in the mutation.
func (m *PerformanceRecordMutation) QuestionsCorrect() (r int, exists bool) {
	v := m.questions_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsCorrect returns the old "questions_correct" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldQuestionsCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsCorrect: %w", err)
	}
	return oldValue.QuestionsCorrect, nil
}

// AddQuestionsCorrect adds i to the "questions_correct" field.
func (m *PerformanceRecordMutation) AddQuestionsCorrect(i int) {
	if m.addquestions_correct != nil {
		*m.addquestions_correct += i
	} else {
		m.addquestions_correct = &i
	}
}

// AddedQuestionsCorrect returns the value that was added to the "questions_correct" field in this mutation.
func (m *PerformanceRecordMutation) AddedQuestionsCorrect() (r int, exists bool) {
	v := m.addquestions_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsCorrect resets all changes to the "questions_correct" field.
func (m *PerformanceRecordMutation) ResetQuestionsCorrect() {
	m.questions_correct = nil
	m.addquestions_correct = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PerformanceRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PerformanceRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PerformanceRecord entity.
// If the PerformanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRecordMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PerformanceRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the PerformanceRecordMutation builder.
func (m *PerformanceRecordMutation) Where(ps ...predicate.PerformanceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceRecord).
func (m *PerformanceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, performancerecord.FieldLearnerID)
	}
	if m.topic != nil {
		fields = append(fields, performancerecord.FieldTopic)
	}
	if m.exercise_type != nil {
		fields = append(fields, performancerecord.FieldExerciseType)
	}
	if m.difficulty != nil {
		fields = append(fields, performancerecord.FieldDifficulty)
	}
	if m.score != nil {
		fields = append(fields, performancerecord.FieldScore)
	}
	if m.questions_total != nil {
		fields = append(fields, performancerecord.FieldQuestionsTotal)
	}
	if m.questions_correct != nil {
		fields = append(fields, performancerecord.FieldQuestionsCorrect)
	}
	if m.completed_at != nil {
		fields = append(fields, performancerecord.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancerecord.FieldLearnerID:
		return m.LearnerID()
	case performancerecord.FieldTopic:
		return m.Topic()
	case performancerecord.FieldExerciseType:
		return m.ExerciseType()
	case performancerecord.FieldDifficulty:
		return m.Difficulty()
	case performancerecord.FieldScore:
		return m.Score()
	case performancerecord.FieldQuestionsTotal:
		return m.QuestionsTotal()
	case performancerecord.FieldQuestionsCorrect:
		return m.QuestionsCorrect()
	case performancerecord.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancerecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case performancerecord.FieldTopic:
		return m.OldTopic(ctx)
	case performancerecord.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case performancerecord.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case performancerecord.FieldScore:
		return m.OldScore(ctx)
	case performancerecord.FieldQuestionsTotal:
		return m.OldQuestionsTotal(ctx)
	case performancerecord.FieldQuestionsCorrect:
		return m.OldQuestionsCorrect(ctx)
	case performancerecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancerecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case performancerecord.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case performancerecord.FieldExerciseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case performancerecord.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case performancerecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case performancerecord.FieldQuestionsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsTotal(v)
		return nil
	case performancerecord.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsCorrect(v)
		return nil
	case performancerecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, performancerecord.FieldScore)
	}
	if m.addquestions_total != nil {
		fields = append(fields, performancerecord.FieldQuestionsTotal)
	}
	if m.addquestions_correct != nil {
		fields = append(fields, performancerecord.FieldQuestionsCorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancerecord.FieldScore:
		return m.AddedScore()
	case performancerecord.FieldQuestionsTotal:
		return m.AddedQuestionsTotal()
	case performancerecord.FieldQuestionsCorrect:
		return m.AddedQuestionsCorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancerecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case performancerecord.FieldQuestionsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsTotal(v)
		return nil
	case performancerecord.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PerformanceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceRecordMutation) ResetField(name string) error {
	switch name {
	case performancerecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case performancerecord.FieldTopic:
		m.ResetTopic()
		return nil
	case performancerecord.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case performancerecord.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case performancerecord.FieldScore:
		m.ResetScore()
		return nil
	case performancerecord.FieldQuestionsTotal:
		m.ResetQuestionsTotal()
		return nil
	case performancerecord.FieldQuestionsCorrect:
		m.ResetQuestionsCorrect()
		return nil
	case performancerecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PerformanceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceRecord edge %s", name)
}
