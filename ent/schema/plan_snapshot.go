package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanSnapshot stores a generated weekly study plan. Plans are replaced
// wholesale on regeneration, never patched in place, so the row is an
// opaque JSON blob plus ordering metadata.
type PlanSnapshot struct {
	ent.Schema
}

func (PlanSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("plan_id").
			Unique().
			Comment("UUID assigned at generation time"),
		field.Time("generated_at"),
		field.JSON("data", map[string]any{}),
	}
}

func (PlanSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "generated_at"),
	}
}
