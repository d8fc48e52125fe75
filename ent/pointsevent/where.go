// Code generated by ent, DO NOT EDIT.

package pointsevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rushil/prepd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldUserID, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldPoints, v))
}

// StreakLength applies equality check predicate on the "streak_length" field. It's identical to StreakLengthEQ.
func StreakLength(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldStreakLength, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContainsFold(FieldUserID, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldPoints, v))
}

// StreakLengthEQ applies the EQ predicate on the "streak_length" field.
func StreakLengthEQ(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldStreakLength, v))
}

// StreakLengthNEQ applies the NEQ predicate on the "streak_length" field.
func StreakLengthNEQ(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldStreakLength, v))
}

// StreakLengthIn applies the In predicate on the "streak_length" field.
func StreakLengthIn(vs ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldStreakLength, vs...))
}

// StreakLengthNotIn applies the NotIn predicate on the "streak_length" field.
func StreakLengthNotIn(vs ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldStreakLength, vs...))
}

// StreakLengthGT applies the GT predicate on the "streak_length" field.
func StreakLengthGT(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldStreakLength, v))
}

// StreakLengthGTE applies the GTE predicate on the "streak_length" field.
func StreakLengthGTE(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldStreakLength, v))
}

// StreakLengthLT applies the LT predicate on the "streak_length" field.
func StreakLengthLT(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldStreakLength, v))
}

// StreakLengthLTE applies the LTE predicate on the "streak_length" field.
func StreakLengthLTE(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldStreakLength, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PointsEvent) predicate.PointsEvent {
	return predicate.PointsEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PointsEvent) predicate.PointsEvent {
	return predicate.PointsEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PointsEvent) predicate.PointsEvent {
	return predicate.PointsEvent(sql.NotPredicates(p))
}
