package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a level transition for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("chapter").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("from_level").Range(1, 4),
		field.Int("to_level").Range(1, 4),
		field.String("trigger").NotEmpty(),
		field.Float("accuracy").
			Comment("Accuracy at the old level when the transition fired"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject", "chapter", "topic"),
	}
}
