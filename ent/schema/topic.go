package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is one syllabus entry (subject > chapter > topic), imported
// from the exam syllabus spreadsheet.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").NotEmpty(),
		field.String("chapter").NotEmpty(),
		field.String("name").NotEmpty(),
		field.Int("weightage").
			NonNegative().
			Default(1).
			Comment("Relative exam weight used as a planning tiebreaker"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject", "chapter", "name").Unique(),
	}
}
