// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rushil/prepd/ent/energylog"
	"github.com/rushil/prepd/ent/predicate"
)

// EnergyLogUpdate is the builder for updating EnergyLog entities.
type EnergyLogUpdate struct {
	config
	hooks    []Hook
	mutation *EnergyLogMutation
}

// Where appends a list predicates to the EnergyLogUpdate builder.
func (_u *EnergyLogUpdate) Where(ps ...predicate.EnergyLog) *EnergyLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EnergyLogUpdate) SetUserID(v string) *EnergyLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EnergyLogUpdate) SetNillableUserID(v *string) *EnergyLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *EnergyLogUpdate) SetDate(v time.Time) *EnergyLogUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *EnergyLogUpdate) SetNillableDate(v *time.Time) *EnergyLogUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStudyHours sets the "study_hours" field.
func (_u *EnergyLogUpdate) SetStudyHours(v float64) *EnergyLogUpdate {
	_u.mutation.ResetStudyHours()
	_u.mutation.SetStudyHours(v)
	return _u
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_u *EnergyLogUpdate) SetNillableStudyHours(v *float64) *EnergyLogUpdate {
	if v != nil {
		_u.SetStudyHours(*v)
	}
	return _u
}

// AddStudyHours adds value to the "study_hours" field.
func (_u *EnergyLogUpdate) AddStudyHours(v float64) *EnergyLogUpdate {
	_u.mutation.AddStudyHours(v)
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *EnergyLogUpdate) SetQuestionsAttempted(v int) *EnergyLogUpdate {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *EnergyLogUpdate) SetNillableQuestionsAttempted(v *int) *EnergyLogUpdate {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *EnergyLogUpdate) AddQuestionsAttempted(v int) *EnergyLogUpdate {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *EnergyLogUpdate) SetAccuracy(v float64) *EnergyLogUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *EnergyLogUpdate) SetNillableAccuracy(v *float64) *EnergyLogUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *EnergyLogUpdate) AddAccuracy(v float64) *EnergyLogUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetLateNightStudy sets the "late_night_study" field.
func (_u *EnergyLogUpdate) SetLateNightStudy(v bool) *EnergyLogUpdate {
	_u.mutation.SetLateNightStudy(v)
	return _u
}

// SetNillableLateNightStudy sets the "late_night_study" field if the given value is not nil.
func (_u *EnergyLogUpdate) SetNillableLateNightStudy(v *bool) *EnergyLogUpdate {
	if v != nil {
		_u.SetLateNightStudy(*v)
	}
	return _u
}

// Mutation returns the EnergyLogMutation object of the builder.
func (_u *EnergyLogUpdate) Mutation() *EnergyLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnergyLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnergyLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnergyLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnergyLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnergyLogUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := energylog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudyHours(); ok {
		if err := energylog.StudyHoursValidator(v); err != nil {
			return &ValidationError{Name: "study_hours", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.study_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsAttempted(); ok {
		if err := energylog.QuestionsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "questions_attempted", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.questions_attempted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accuracy(); ok {
		if err := energylog.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.accuracy": %w`, err)}
		}
	}
	return nil
}

func (_u *EnergyLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(energylog.Table, energylog.Columns, sqlgraph.NewFieldSpec(energylog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(energylog.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(energylog.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StudyHours(); ok {
		_spec.SetField(energylog.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyHours(); ok {
		_spec.AddField(energylog.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(energylog.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(energylog.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(energylog.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(energylog.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LateNightStudy(); ok {
		_spec.SetField(energylog.FieldLateNightStudy, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{energylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnergyLogUpdateOne is the builder for updating a single EnergyLog entity.
type EnergyLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnergyLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *EnergyLogUpdateOne) SetUserID(v string) *EnergyLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EnergyLogUpdateOne) SetNillableUserID(v *string) *EnergyLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *EnergyLogUpdateOne) SetDate(v time.Time) *EnergyLogUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *EnergyLogUpdateOne) SetNillableDate(v *time.Time) *EnergyLogUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStudyHours sets the "study_hours" field.
func (_u *EnergyLogUpdateOne) SetStudyHours(v float64) *EnergyLogUpdateOne {
	_u.mutation.ResetStudyHours()
	_u.mutation.SetStudyHours(v)
	return _u
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_u *EnergyLogUpdateOne) SetNillableStudyHours(v *float64) *EnergyLogUpdateOne {
	if v != nil {
		_u.SetStudyHours(*v)
	}
	return _u
}

// AddStudyHours adds value to the "study_hours" field.
func (_u *EnergyLogUpdateOne) AddStudyHours(v float64) *EnergyLogUpdateOne {
	_u.mutation.AddStudyHours(v)
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *EnergyLogUpdateOne) SetQuestionsAttempted(v int) *EnergyLogUpdateOne {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *EnergyLogUpdateOne) SetNillableQuestionsAttempted(v *int) *EnergyLogUpdateOne {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *EnergyLogUpdateOne) AddQuestionsAttempted(v int) *EnergyLogUpdateOne {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *EnergyLogUpdateOne) SetAccuracy(v float64) *EnergyLogUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *EnergyLogUpdateOne) SetNillableAccuracy(v *float64) *EnergyLogUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *EnergyLogUpdateOne) AddAccuracy(v float64) *EnergyLogUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetLateNightStudy sets the "late_night_study" field.
func (_u *EnergyLogUpdateOne) SetLateNightStudy(v bool) *EnergyLogUpdateOne {
	_u.mutation.SetLateNightStudy(v)
	return _u
}

// SetNillableLateNightStudy sets the "late_night_study" field if the given value is not nil.
func (_u *EnergyLogUpdateOne) SetNillableLateNightStudy(v *bool) *EnergyLogUpdateOne {
	if v != nil {
		_u.SetLateNightStudy(*v)
	}
	return _u
}

// Mutation returns the EnergyLogMutation object of the builder.
func (_u *EnergyLogUpdateOne) Mutation() *EnergyLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnergyLogUpdate builder.
func (_u *EnergyLogUpdateOne) Where(ps ...predicate.EnergyLog) *EnergyLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnergyLogUpdateOne) Select(field string, fields ...string) *EnergyLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnergyLog entity.
func (_u *EnergyLogUpdateOne) Save(ctx context.Context) (*EnergyLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnergyLogUpdateOne) SaveX(ctx context.Context) *EnergyLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnergyLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnergyLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnergyLogUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := energylog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudyHours(); ok {
		if err := energylog.StudyHoursValidator(v); err != nil {
			return &ValidationError{Name: "study_hours", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.study_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsAttempted(); ok {
		if err := energylog.QuestionsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "questions_attempted", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.questions_attempted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accuracy(); ok {
		if err := energylog.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`ent: validator failed for field "EnergyLog.accuracy": %w`, err)}
		}
	}
	return nil
}

func (_u *EnergyLogUpdateOne) sqlSave(ctx context.Context) (_node *EnergyLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(energylog.Table, energylog.Columns, sqlgraph.NewFieldSpec(energylog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnergyLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, energylog.FieldID)
		for _, f := range fields {
			if !energylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != energylog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(energylog.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(energylog.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StudyHours(); ok {
		_spec.SetField(energylog.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyHours(); ok {
		_spec.AddField(energylog.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(energylog.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(energylog.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(energylog.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(energylog.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LateNightStudy(); ok {
		_spec.SetField(energylog.FieldLateNightStudy, field.TypeBool, value)
	}
	_node = &EnergyLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{energylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
