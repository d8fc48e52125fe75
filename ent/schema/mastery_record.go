package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the canonical per-(user, subject, chapter, topic)
// mastery state. Created on the first answered question and mutated
// exactly once per answer; never deleted.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("chapter").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("level").
			Range(1, 4).
			Default(1),
		field.Float("accuracy").
			Default(0).
			Comment("Running percentage [0,100] at the current level"),
		field.Int("questions_attempted").
			NonNegative().
			Default(0).
			Comment("Attempts since the last level change"),
		field.Time("last_practiced").Optional().Nillable(),
		field.Int("stuck_days").
			NonNegative().
			Default(0),
		field.Time("last_reviewed").Optional().Nillable(),
		field.Int("review_count").
			NonNegative().
			Default(0),
		field.Int64("version").
			Default(0).
			Comment("Optimistic concurrency token, bumped on every save"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject", "chapter", "topic").Unique(),
		index.Fields("user_id"),
	}
}
