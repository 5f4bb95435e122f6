package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientLog is the append-only audit trail of patient lifecycle events.
// Rows are never updated or deleted through the application; there is no
// updated_at and no soft-delete column on purpose.
type PatientLog struct {
	ent.Schema
}

func (PatientLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PatientLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Immutable().
			Comment("FK → patients.id"),

		field.Enum("log_type").
			Values(
				"creation",
				"state_change",
				"department_change",
				"doctor_assignment",
				"medical_update",
				"system_note",
				"manual_entry",
			).
			Default("manual_entry").
			Immutable(),

		field.Enum("priority").
			Values("low", "normal", "high", "critical").
			Default("normal").
			Immutable(),

		field.Text("description").
			NotEmpty().
			Immutable(),
	}
}

func (PatientLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("logs").
			Unique().
			Required().
			Immutable().
			Field("patient_id"),
	}
}

func (PatientLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
	}
}
