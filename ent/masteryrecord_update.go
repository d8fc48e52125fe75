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
	"github.com/rushil/prepd/ent/masteryrecord"
	"github.com/rushil/prepd/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MasteryRecordUpdate) SetUserID(v string) *MasteryRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableUserID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryRecordUpdate) SetSubject(v string) *MasteryRecordUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSubject(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *MasteryRecordUpdate) SetChapter(v string) *MasteryRecordUpdate {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableChapter(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryRecordUpdate) SetTopic(v string) *MasteryRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableTopic(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v int) *MasteryRecordUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MasteryRecordUpdate) AddLevel(v int) *MasteryRecordUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MasteryRecordUpdate) SetAccuracy(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableAccuracy(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MasteryRecordUpdate) AddAccuracy(v float64) *MasteryRecordUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *MasteryRecordUpdate) SetQuestionsAttempted(v int) *MasteryRecordUpdate {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableQuestionsAttempted(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *MasteryRecordUpdate) AddQuestionsAttempted(v int) *MasteryRecordUpdate {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *MasteryRecordUpdate) SetLastPracticed(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticed(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *MasteryRecordUpdate) ClearLastPracticed() *MasteryRecordUpdate {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetStuckDays sets the "stuck_days" field.
func (_u *MasteryRecordUpdate) SetStuckDays(v int) *MasteryRecordUpdate {
	_u.mutation.ResetStuckDays()
	_u.mutation.SetStuckDays(v)
	return _u
}

// SetNillableStuckDays sets the "stuck_days" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStuckDays(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStuckDays(*v)
	}
	return _u
}

// AddStuckDays adds value to the "stuck_days" field.
func (_u *MasteryRecordUpdate) AddStuckDays(v int) *MasteryRecordUpdate {
	_u.mutation.AddStuckDays(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *MasteryRecordUpdate) SetLastReviewed(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastReviewed(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *MasteryRecordUpdate) ClearLastReviewed() *MasteryRecordUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *MasteryRecordUpdate) SetReviewCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableReviewCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *MasteryRecordUpdate) AddReviewCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdate) SetVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableVersion(v *int64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdate) AddVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := masteryrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chapter(); ok {
		if err := masteryrecord.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.chapter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := masteryrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsAttempted(); ok {
		if err := masteryrecord.QuestionsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "questions_attempted", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.questions_attempted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StuckDays(); ok {
		if err := masteryrecord.StuckDaysValidator(v); err != nil {
			return &ValidationError{Name: "stuck_days", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.stuck_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := masteryrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_count": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(masteryrecord.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masteryrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(masteryrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(masteryrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(masteryrecord.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(masteryrecord.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.StuckDays(); ok {
		_spec.SetField(masteryrecord.FieldStuckDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStuckDays(); ok {
		_spec.AddField(masteryrecord.FieldStuckDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(masteryrecord.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(masteryrecord.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *MasteryRecordUpdateOne) SetUserID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableUserID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryRecordUpdateOne) SetSubject(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSubject(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *MasteryRecordUpdateOne) SetChapter(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableChapter(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryRecordUpdateOne) SetTopic(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableTopic(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MasteryRecordUpdateOne) AddLevel(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MasteryRecordUpdateOne) SetAccuracy(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableAccuracy(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MasteryRecordUpdateOne) AddAccuracy(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *MasteryRecordUpdateOne) SetQuestionsAttempted(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableQuestionsAttempted(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *MasteryRecordUpdateOne) AddQuestionsAttempted(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticed(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticed(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *MasteryRecordUpdateOne) ClearLastPracticed() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetStuckDays sets the "stuck_days" field.
func (_u *MasteryRecordUpdateOne) SetStuckDays(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetStuckDays()
	_u.mutation.SetStuckDays(v)
	return _u
}

// SetNillableStuckDays sets the "stuck_days" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStuckDays(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStuckDays(*v)
	}
	return _u
}

// AddStuckDays adds value to the "stuck_days" field.
func (_u *MasteryRecordUpdateOne) AddStuckDays(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddStuckDays(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *MasteryRecordUpdateOne) SetLastReviewed(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastReviewed(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *MasteryRecordUpdateOne) ClearLastReviewed() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *MasteryRecordUpdateOne) SetReviewCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableReviewCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *MasteryRecordUpdateOne) AddReviewCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdateOne) SetVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableVersion(v *int64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdateOne) AddVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := masteryrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chapter(); ok {
		if err := masteryrecord.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.chapter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := masteryrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsAttempted(); ok {
		if err := masteryrecord.QuestionsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "questions_attempted", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.questions_attempted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StuckDays(); ok {
		if err := masteryrecord.StuckDaysValidator(v); err != nil {
			return &ValidationError{Name: "stuck_days", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.stuck_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := masteryrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_count": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(masteryrecord.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masteryrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(masteryrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(masteryrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(masteryrecord.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(masteryrecord.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.StuckDays(); ok {
		_spec.SetField(masteryrecord.FieldStuckDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStuckDays(); ok {
		_spec.AddField(masteryrecord.FieldStuckDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(masteryrecord.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(masteryrecord.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
