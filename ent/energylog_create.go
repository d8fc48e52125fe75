// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rushil/prepd/ent/energylog"
)

// EnergyLogCreate is the builder for creating a EnergyLog entity.
type EnergyLogCreate struct {
	config
	mutation *EnergyLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *EnergyLogCreate) SetUserID(v string) *EnergyLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *EnergyLogCreate) SetDate(v time.Time) *EnergyLogCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStudyHours sets the "study_hours" field.
func (_c *EnergyLogCreate) SetStudyHours(v float64) *EnergyLogCreate {
	_c.mutation.SetStudyHours(v)
	return _c
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_c *EnergyLogCreate) SetQuestionsAttempted(v int) *EnergyLogCreate {
	_c.mutation.SetQuestionsAttempted(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *EnergyLogCreate) SetAccuracy(v float64) *EnergyLogCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetLateNightStudy sets the "late_night_study" field.
func (_c *EnergyLogCreate) SetLateNightStudy(v bool) *EnergyLogCreate {
	_c.mutation.SetLateNightStudy(v)
	return _c
}

// SetNillableLateNightStudy sets the "late_night_study" field if the given value is not nil.
func (_c *EnergyLogCreate) SetNillableLateNightStudy(v *bool) *EnergyLogCreate {
	if v != nil {
		_c.SetLateNightStudy(*v)
	}
	return _c
}

// Mutation returns the EnergyLogMutation object of the builder.
func (_c *EnergyLogCreate) Mutation() *EnergyLogMutation {
	return _c.mutation
}

// Save creates the EnergyLog in the database.
func (_c *EnergyLogCreate) Save(ctx context.Context) (*EnergyLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnergyLogCreate) SaveX(ctx context.Context) *EnergyLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnergyLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnergyLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnergyLogCreate) defaults() {
	if _, ok := _c.mutation.LateNightStudy(); !ok {
		v := energylog.DefaultLateNightStudy
		_c.mutation.SetLateNightStudy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnergyLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EnergyLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := energylog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "EnergyLog.date"`)}
	}
	if _, ok := _c.mutation.StudyHours(); !ok {
		return &ValidationError{Name: "study_hours", err: errors.New(`ent: missing required field "EnergyLog.study_hours"`)}
	}
	if v, ok := _c.mutation.StudyHours(); ok {
		if err := energylog.StudyHoursValidator(v); err != nil {
			return &ValidationError{Name: "study_hours", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.study_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAttempted(); !ok {
		return &ValidationError{Name: "questions_attempted", err: errors.New(`ent: missing required field "EnergyLog.questions_attempted"`)}
	}
	if v, ok := _c.mutation.QuestionsAttempted(); ok {
		if err := energylog.QuestionsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "questions_attempted", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.questions_attempted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "EnergyLog.accuracy"`)}
	}
	if v, ok := _c.mutation.Accuracy(); ok {
		if err := energylog.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.accuracy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LateNightStudy(); !ok {
		return &ValidationError{Name: "late_night_study", err: errors.New(`ent: missing required field "EnergyLog.late_night_study"`)}
	}
	return nil
}

func (_c *EnergyLogCreate) sqlSave(ctx context.Context) (*EnergyLog, error) {
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

func (_c *EnergyLogCreate) createSpec() (*EnergyLog, *sqlgraph.CreateSpec) {
	var (
		_node = &EnergyLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(energylog.Table, sqlgraph.NewFieldSpec(energylog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(energylog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(energylog.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StudyHours(); ok {
		_spec.SetField(energylog.FieldStudyHours, field.TypeFloat64, value)
		_node.StudyHours = value
	}
	if value, ok := _c.mutation.QuestionsAttempted(); ok {
		_spec.SetField(energylog.FieldQuestionsAttempted, field.TypeInt, value)
		_node.QuestionsAttempted = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(energylog.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.LateNightStudy(); ok {
		_spec.SetField(energylog.FieldLateNightStudy, field.TypeBool, value)
		_node.LateNightStudy = value
	}
	return _node, _spec
}

// EnergyLogCreateBulk is the builder for creating many EnergyLog entities in bulk.
type EnergyLogCreateBulk struct {
	config
	err      error
	builders []*EnergyLogCreate
}

// Save creates the EnergyLog entities in the database.
func (_c *EnergyLogCreateBulk) Save(ctx context.Context) ([]*EnergyLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnergyLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnergyLogMutation)
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
func (_c *EnergyLogCreateBulk) SaveX(ctx context.Context) []*EnergyLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnergyLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnergyLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
