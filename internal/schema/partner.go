package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Partner is the billing/CRM contact record. A partner may be linked to
// at most one patient, and a patient to at most one partner; while
// linked, the two emails are kept identical.
type Partner struct {
	ent.Schema
}

func (Partner) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Partner) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			NotEmpty(),

		field.String("tax_id").
			MaxLen(50).
			NotEmpty().
			Comment("Tax ID is mandatory for all contacts"),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Unique().
			Comment("FK → patients.id; at most one partner per patient"),
	}
}

func (Partner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("partner").
			Unique().
			Field("patient_id"),
	}
}

func (Partner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
