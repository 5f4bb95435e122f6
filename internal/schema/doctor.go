package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Doctor holds the physicians that can be assigned to patients.
// Assignments are non-exclusive: a doctor sees many patients and a
// patient may have several doctors.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(120).
			NotEmpty(),

		field.String("last_name").
			MaxLen(120).
			NotEmpty(),

		field.String("specialization").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("license_number").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("Professional medical license number"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Bool("is_active").
			Default(true),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patients", Patient.Type).
			Ref("doctors"),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_name", "first_name"),
	}
}
