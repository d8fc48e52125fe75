package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointsEvent records a points award (per-answer points and streak
// milestone bonuses).
type PointsEvent struct {
	ent.Schema
}

func (PointsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.Int("points").Positive(),
		field.Int("streak_length").NonNegative(),
		field.String("reason").NotEmpty(),
	}
}

func (PointsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
