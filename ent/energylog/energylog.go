// Code generated by ent, DO NOT EDIT.

package energylog

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the energylog type in the database.
	Label = "energy_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldStudyHours holds the string denoting the study_hours field in the database.
	FieldStudyHours = "study_hours"
	// FieldQuestionsAttempted holds the string denoting the questions_attempted field in the database.
	FieldQuestionsAttempted = "questions_attempted"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldLateNightStudy holds the string denoting the late_night_study field in the database.
	FieldLateNightStudy = "late_night_study"
	// Table holds the table name of the energylog in the database.
	Table = "energy_logs"
)

// Columns holds all SQL columns for energylog fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDate,
	FieldStudyHours,
	FieldQuestionsAttempted,
	FieldAccuracy,
	FieldLateNightStudy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// StudyHoursValidator is a validator for the "study_hours" field. It is called by the builders before save.
	StudyHoursValidator func(float64) error
	// QuestionsAttemptedValidator is a validator for the "questions_attempted" field. It is called by the builders before save.
	QuestionsAttemptedValidator func(int) error
	// AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	AccuracyValidator func(float64) error
	// DefaultLateNightStudy holds the default value on creation for the "late_night_study" field.
	DefaultLateNightStudy bool
)

// OrderOption defines the ordering options for the EnergyLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByStudyHours orders the results by the study_hours field.
func ByStudyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyHours, opts...).ToFunc()
}

// ByQuestionsAttempted orders the results by the questions_attempted field.
func ByQuestionsAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAttempted, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByLateNightStudy orders the results by the late_night_study field.
func ByLateNightStudy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLateNightStudy, opts...).ToFunc()
}
