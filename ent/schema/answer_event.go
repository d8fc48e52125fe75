package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question for audit and analytics.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("chapter").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Bool("correct"),
		field.Int("level").
			Range(1, 4).
			Comment("Mastery level the answer was recorded at"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject", "chapter", "topic"),
	}
}
