package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Department is a hospital ward/unit with a patient capacity.
// The current patient count is never stored; it is derived from the
// patient rows so it can't drift from the assignments.
type Department struct {
	ent.Schema
}

func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty().
			Unique(),

		field.Int("capacity").
			Default(0).
			NonNegative().
			Comment("Maximum number of patients this department can hold; 0 means unbounded"),

		field.Bool("is_open").
			Default(true).
			Comment("Closed departments reject new patient assignments"),
	}
}

func (Department) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patients", Patient.Type),
	}
}

func (Department) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
