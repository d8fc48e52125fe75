// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rushil/prepd/ent/energylog"
)

// EnergyLog is the model entity for the EnergyLog schema.
type EnergyLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Day bucket, truncated to UTC midnight
	Date time.Time `json:"date,omitempty"`
	// StudyHours holds the value of the "study_hours" field.
	StudyHours float64 `json:"study_hours,omitempty"`
	// QuestionsAttempted holds the value of the "questions_attempted" field.
	QuestionsAttempted int `json:"questions_attempted,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// LateNightStudy holds the value of the "late_night_study" field.
	LateNightStudy bool `json:"late_night_study,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnergyLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case energylog.FieldLateNightStudy:
			values[i] = new(sql.NullBool)
		case energylog.FieldStudyHours, energylog.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case energylog.FieldID, energylog.FieldQuestionsAttempted:
			values[i] = new(sql.NullInt64)
		case energylog.FieldUserID:
			values[i] = new(sql.NullString)
		case energylog.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnergyLog fields.
func (_m *EnergyLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case energylog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case energylog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case energylog.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case energylog.FieldStudyHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field study_hours", values[i])
			} else if value.Valid {
				_m.StudyHours = value.Float64
			}
		case energylog.FieldQuestionsAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_attempted", values[i])
			} else if value.Valid {
				_m.QuestionsAttempted = int(value.Int64)
			}
		case energylog.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case energylog.FieldLateNightStudy:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field late_night_study", values[i])
			} else if value.Valid {
				_m.LateNightStudy = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnergyLog.
// This includes values selected through modifiers, order, etc.
func (_m *EnergyLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EnergyLog.
// Note that you need to call EnergyLog.Unwrap() before calling this method if this EnergyLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnergyLog) Update() *EnergyLogUpdateOne {
	return NewEnergyLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnergyLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnergyLog) Unwrap() *EnergyLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnergyLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnergyLog) String() string {
	var builder strings.Builder
	builder.WriteString("EnergyLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("study_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyHours))
	builder.WriteString(", ")
	builder.WriteString("questions_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAttempted))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("late_night_study=")
	builder.WriteString(fmt.Sprintf("%v", _m.LateNightStudy))
	builder.WriteByte(')')
	return builder.String()
}

// EnergyLogs is a parsable slice of EnergyLog.
type EnergyLogs []*EnergyLog
