// Code generated by ent, DO NOT EDIT.

package energylog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rushil/prepd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldDate, v))
}

// StudyHours applies equality check predicate on the "study_hours" field. It's identical to StudyHoursEQ.
func StudyHours(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldStudyHours, v))
}

// QuestionsAttempted applies equality check predicate on the "questions_attempted" field. It's identical to QuestionsAttemptedEQ.
func QuestionsAttempted(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldQuestionsAttempted, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldAccuracy, v))
}

// LateNightStudy applies equality check predicate on the "late_night_study" field. It's identical to LateNightStudyEQ.
func LateNightStudy(v bool) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldLateNightStudy, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldContainsFold(FieldUserID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLTE(FieldDate, v))
}

// StudyHoursEQ applies the EQ predicate on the "study_hours" field.
func StudyHoursEQ(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldStudyHours, v))
}

// StudyHoursNEQ applies the NEQ predicate on the "study_hours" field.
func StudyHoursNEQ(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldStudyHours, v))
}

// StudyHoursIn applies the In predicate on the "study_hours" field.
func StudyHoursIn(vs ...float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldIn(FieldStudyHours, vs...))
}

// StudyHoursNotIn applies the NotIn predicate on the "study_hours" field.
func StudyHoursNotIn(vs ...float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNotIn(FieldStudyHours, vs...))
}

// StudyHoursGT applies the GT predicate on the "study_hours" field.
func StudyHoursGT(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGT(FieldStudyHours, v))
}

// StudyHoursGTE applies the GTE predicate on the "study_hours" field.
func StudyHoursGTE(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGTE(FieldStudyHours, v))
}

// StudyHoursLT applies the LT predicate on the "study_hours" field.
func StudyHoursLT(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLT(FieldStudyHours, v))
}

// StudyHoursLTE applies the LTE predicate on the "study_hours" field.
func StudyHoursLTE(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLTE(FieldStudyHours, v))
}

// QuestionsAttemptedEQ applies the EQ predicate on the "questions_attempted" field.
func QuestionsAttemptedEQ(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldQuestionsAttempted, v))
}

// QuestionsAttemptedNEQ applies the NEQ predicate on the "questions_attempted" field.
func QuestionsAttemptedNEQ(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldQuestionsAttempted, v))
}

// QuestionsAttemptedIn applies the In predicate on the "questions_attempted" field.
func QuestionsAttemptedIn(vs ...int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldIn(FieldQuestionsAttempted, vs...))
}

// QuestionsAttemptedNotIn applies the NotIn predicate on the "questions_attempted" field.
func QuestionsAttemptedNotIn(vs ...int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNotIn(FieldQuestionsAttempted, vs...))
}

// QuestionsAttemptedGT applies the GT predicate on the "questions_attempted" field.
func QuestionsAttemptedGT(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGT(FieldQuestionsAttempted, v))
}

// QuestionsAttemptedGTE applies the GTE predicate on the "questions_attempted" field.
func QuestionsAttemptedGTE(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGTE(FieldQuestionsAttempted, v))
}

// QuestionsAttemptedLT applies the LT predicate on the "questions_attempted" field.
func QuestionsAttemptedLT(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLT(FieldQuestionsAttempted, v))
}

// QuestionsAttemptedLTE applies the LTE predicate on the "questions_attempted" field.
func QuestionsAttemptedLTE(v int) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLTE(FieldQuestionsAttempted, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldLTE(FieldAccuracy, v))
}

// LateNightStudyEQ applies the EQ predicate on the "late_night_study" field.
func LateNightStudyEQ(v bool) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldEQ(FieldLateNightStudy, v))
}

// LateNightStudyNEQ applies the NEQ predicate on the "late_night_study" field.
func LateNightStudyNEQ(v bool) predicate.EnergyLog {
	return predicate.EnergyLog(sql.FieldNEQ(FieldLateNightStudy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnergyLog) predicate.EnergyLog {
	return predicate.EnergyLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnergyLog) predicate.EnergyLog {
	return predicate.EnergyLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnergyLog) predicate.EnergyLog {
	return predicate.EnergyLog(sql.NotPredicates(p))
}
