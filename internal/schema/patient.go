package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the central clinical record. Age is always computed from
// birth_date at read time and intentionally has no column here.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(120).
			NotEmpty(),

		field.String("last_name").
			MaxLen(120).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			NotEmpty().
			Comment("Unique among non-deleted patients; enforced in the service layer because of soft deletes"),

		field.Time("birth_date"),

		field.Text("address").
			Optional().
			Nillable(),

		field.Text("medical_history").
			Optional().
			Nillable(),

		field.Enum("blood_type").
			NamedValues(
				"APositive", "A+",
				"ANegative", "A-",
				"BPositive", "B+",
				"BNegative", "B-",
				"ABPositive", "AB+",
				"ABNegative", "AB-",
				"OPositive", "O+",
				"ONegative", "O-",
			).
			Optional(),

		field.Bool("pcr_required").
			Default(false),

		field.Float("cr_ratio").
			Optional().
			Nillable().
			Comment("Creatinine ratio; mandatory whenever pcr_required is set"),

		field.Enum("state").
			Values("undetermined", "good", "fair", "serious").
			Default("undetermined").
			Comment("Current medical state"),

		field.UUID("department_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → departments.id"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("department", Department.Type).
			Ref("patients").
			Unique().
			Field("department_id"),
		edge.To("doctors", Doctor.Type),
		edge.To("logs", PatientLog.Type),
		edge.To("partner", Partner.Type).
			Unique(),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("department_id"),
		index.Fields("state"),
	}
}
