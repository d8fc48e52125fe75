// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rushil/prepd/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MasteryRecordCreate) SetUserID(v string) *MasteryRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MasteryRecordCreate) SetSubject(v string) *MasteryRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *MasteryRecordCreate) SetChapter(v string) *MasteryRecordCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *MasteryRecordCreate) SetTopic(v string) *MasteryRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v int) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLevel(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *MasteryRecordCreate) SetAccuracy(v float64) *MasteryRecordCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableAccuracy(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_c *MasteryRecordCreate) SetQuestionsAttempted(v int) *MasteryRecordCreate {
	_c.mutation.SetQuestionsAttempted(v)
	return _c
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableQuestionsAttempted(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetQuestionsAttempted(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *MasteryRecordCreate) SetLastPracticed(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastPracticed(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// SetStuckDays sets the "stuck_days" field.
func (_c *MasteryRecordCreate) SetStuckDays(v int) *MasteryRecordCreate {
	_c.mutation.SetStuckDays(v)
	return _c
}

// SetNillableStuckDays sets the "stuck_days" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableStuckDays(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetStuckDays(*v)
	}
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *MasteryRecordCreate) SetLastReviewed(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastReviewed(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *MasteryRecordCreate) SetReviewCount(v int) *MasteryRecordCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableReviewCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *MasteryRecordCreate) SetVersion(v int64) *MasteryRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableVersion(v *int64) *MasteryRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := masteryrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := masteryrecord.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.QuestionsAttempted(); !ok {
		v := masteryrecord.DefaultQuestionsAttempted
		_c.mutation.SetQuestionsAttempted(v)
	}
	if _, ok := _c.mutation.StuckDays(); !ok {
		v := masteryrecord.DefaultStuckDays
		_c.mutation.SetStuckDays(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := masteryrecord.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := masteryrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "MasteryRecord.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := masteryrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required field "MasteryRecord.chapter"`)}
	}
	if v, ok := _c.mutation.Chapter(); ok {
		if err := masteryrecord.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.chapter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "MasteryRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := masteryrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "MasteryRecord.accuracy"`)}
	}
	if _, ok := _c.mutation.QuestionsAttempted(); !ok {
		return &ValidationError{Name: "questions_attempted", err: errors.New(`ent: missing required field "MasteryRecord.questions_attempted"`)}
	}
	if v, ok := _c.mutation.QuestionsAttempted(); ok {
		if err := masteryrecord.QuestionsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "questions_attempted", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.questions_attempted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StuckDays(); !ok {
		return &ValidationError{Name: "stuck_days", err: errors.New(`ent: missing required field "MasteryRecord.stuck_days"`)}
	}
	if v, ok := _c.mutation.StuckDays(); ok {
		if err := masteryrecord.StuckDaysValidator(v); err != nil {
			return &ValidationError{Name: "stuck_days", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.stuck_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "MasteryRecord.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := masteryrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "MasteryRecord.version"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(masteryrecord.FieldChapter, field.TypeString, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(masteryrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(masteryrecord.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.QuestionsAttempted(); ok {
		_spec.SetField(masteryrecord.FieldQuestionsAttempted, field.TypeInt, value)
		_node.QuestionsAttempted = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = &value
	}
	if value, ok := _c.mutation.StuckDays(); ok {
		_spec.SetField(masteryrecord.FieldStuckDays, field.TypeInt, value)
		_node.StuckDays = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(masteryrecord.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(masteryrecord.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
