package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EnergyLog is one user's study summary for one day. Append-only;
// the burnout detector reads these in rolling 7-day windows.
type EnergyLog struct {
	ent.Schema
}

func (EnergyLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.Time("date").
			Comment("Day bucket, truncated to UTC midnight"),
		field.Float("study_hours").Min(0),
		field.Int("questions_attempted").NonNegative(),
		field.Float("accuracy").
			Range(0, 100),
		field.Bool("late_night_study").Default(false),
	}
}

func (EnergyLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date").Unique(),
	}
}
