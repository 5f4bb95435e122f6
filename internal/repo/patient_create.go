// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aramhealth/hms_backend/internal/repo/department"
	"github.com/aramhealth/hms_backend/internal/repo/doctor"
	"github.com/aramhealth/hms_backend/internal/repo/partner"
	"github.com/aramhealth/hms_backend/internal/repo/patient"
	"github.com/aramhealth/hms_backend/internal/repo/patientlog"
	"github.com/google/uuid"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PatientCreate) SetFirstName(v string) *PatientCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PatientCreate) SetLastName(v string) *PatientCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *PatientCreate) SetEmail(v string) *PatientCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PatientCreate) SetBirthDate(v time.Time) *PatientCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *PatientCreate) SetAddress(v string) *PatientCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PatientCreate) SetNillableAddress(v *string) *PatientCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetMedicalHistory sets the "medical_history" field.
func (_c *PatientCreate) SetMedicalHistory(v string) *PatientCreate {
	_c.mutation.SetMedicalHistory(v)
	return _c
}

// SetNillableMedicalHistory sets the "medical_history" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMedicalHistory(v *string) *PatientCreate {
	if v != nil {
		_c.SetMedicalHistory(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *PatientCreate) SetBloodType(v patient.BloodType) *PatientCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBloodType(v *patient.BloodType) *PatientCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetPcrRequired sets the "pcr_required" field.
func (_c *PatientCreate) SetPcrRequired(v bool) *PatientCreate {
	_c.mutation.SetPcrRequired(v)
	return _c
}

// SetNillablePcrRequired sets the "pcr_required" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePcrRequired(v *bool) *PatientCreate {
	if v != nil {
		_c.SetPcrRequired(*v)
	}
	return _c
}

// SetCrRatio sets the "cr_ratio" field.
func (_c *PatientCreate) SetCrRatio(v float64) *PatientCreate {
	_c.mutation.SetCrRatio(v)
	return _c
}

// SetNillableCrRatio sets the "cr_ratio" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCrRatio(v *float64) *PatientCreate {
	if v != nil {
		_c.SetCrRatio(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PatientCreate) SetState(v patient.State) *PatientCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *PatientCreate) SetNillableState(v *patient.State) *PatientCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetDepartmentID sets the "department_id" field.
func (_c *PatientCreate) SetDepartmentID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetDepartmentID(v)
	return _c
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDepartmentID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetDepartmentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDepartment sets the "department" edge to the Department entity.
func (_c *PatientCreate) SetDepartment(v *Department) *PatientCreate {
	return _c.SetDepartmentID(v.ID)
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by IDs.
func (_c *PatientCreate) AddDoctorIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddDoctorIDs(ids...)
	return _c
}

// AddDoctors adds the "doctors" edges to the Doctor entity.
func (_c *PatientCreate) AddDoctors(v ...*Doctor) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDoctorIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the PatientLog entity by IDs.
func (_c *PatientCreate) AddLogIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the PatientLog entity.
func (_c *PatientCreate) AddLogs(v ...*PatientLog) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// SetPartnerID sets the "partner" edge to the Partner entity by ID.
func (_c *PatientCreate) SetPartnerID(id uuid.UUID) *PatientCreate {
	_c.mutation.SetPartnerID(id)
	return _c
}

// SetNillablePartnerID sets the "partner" edge to the Partner entity by ID if the given value is not nil.
func (_c *PatientCreate) SetNillablePartnerID(id *uuid.UUID) *PatientCreate {
	if id != nil {
		_c = _c.SetPartnerID(*id)
	}
	return _c
}

// SetPartner sets the "partner" edge to the Partner entity.
func (_c *PatientCreate) SetPartner(v *Partner) *PatientCreate {
	return _c.SetPartnerID(v.ID)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PcrRequired(); !ok {
		v := patient.DefaultPcrRequired
		_c.mutation.SetPcrRequired(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := patient.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Patient.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Patient.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Patient.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthDate(); !ok {
		return &ValidationError{Name: "birth_date", err: errors.New(`repo: missing required field "Patient.birth_date"`)}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PcrRequired(); !ok {
		return &ValidationError{Name: "pcr_required", err: errors.New(`repo: missing required field "Patient.pcr_required"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`repo: missing required field "Patient.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := patient.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "Patient.state": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.MedicalHistory(); ok {
		_spec.SetField(patient.FieldMedicalHistory, field.TypeString, value)
		_node.MedicalHistory = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeEnum, value)
		_node.BloodType = value
	}
	if value, ok := _c.mutation.PcrRequired(); ok {
		_spec.SetField(patient.FieldPcrRequired, field.TypeBool, value)
		_node.PcrRequired = value
	}
	if value, ok := _c.mutation.CrRatio(); ok {
		_spec.SetField(patient.FieldCrRatio, field.TypeFloat64, value)
		_node.CrRatio = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(patient.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if nodes := _c.mutation.DepartmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.DepartmentTable,
			Columns: []string{patient.DepartmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DepartmentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   patient.DoctorsTable,
			Columns: patient.DoctorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LogsTable,
			Columns: []string{patient.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PartnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.PartnerTable,
			Columns: []string{patient.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsert) SetFirstName(v string) *PatientUpsert {
	u.Set(patient.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFirstName() *PatientUpsert {
	u.SetExcluded(patient.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsert) SetLastName(v string) *PatientUpsert {
	u.Set(patient.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateLastName() *PatientUpsert {
	u.SetExcluded(patient.FieldLastName)
	return u
}

// SetEmail sets the "email" field.
func (u *PatientUpsert) SetEmail(v string) *PatientUpsert {
	u.Set(patient.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmail() *PatientUpsert {
	u.SetExcluded(patient.FieldEmail)
	return u
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsert) SetBirthDate(v time.Time) *PatientUpsert {
	u.Set(patient.FieldBirthDate, v)
	return u
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBirthDate() *PatientUpsert {
	u.SetExcluded(patient.FieldBirthDate)
	return u
}

// SetAddress sets the "address" field.
func (u *PatientUpsert) SetAddress(v string) *PatientUpsert {
	u.Set(patient.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAddress() *PatientUpsert {
	u.SetExcluded(patient.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsert) ClearAddress() *PatientUpsert {
	u.SetNull(patient.FieldAddress)
	return u
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientUpsert) SetMedicalHistory(v string) *PatientUpsert {
	u.Set(patient.FieldMedicalHistory, v)
	return u
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMedicalHistory() *PatientUpsert {
	u.SetExcluded(patient.FieldMedicalHistory)
	return u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientUpsert) ClearMedicalHistory() *PatientUpsert {
	u.SetNull(patient.FieldMedicalHistory)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsert) SetBloodType(v patient.BloodType) *PatientUpsert {
	u.Set(patient.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBloodType() *PatientUpsert {
	u.SetExcluded(patient.FieldBloodType)
	return u
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsert) ClearBloodType() *PatientUpsert {
	u.SetNull(patient.FieldBloodType)
	return u
}

// SetPcrRequired sets the "pcr_required" field.
func (u *PatientUpsert) SetPcrRequired(v bool) *PatientUpsert {
	u.Set(patient.FieldPcrRequired, v)
	return u
}

// UpdatePcrRequired sets the "pcr_required" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePcrRequired() *PatientUpsert {
	u.SetExcluded(patient.FieldPcrRequired)
	return u
}

// SetCrRatio sets the "cr_ratio" field.
func (u *PatientUpsert) SetCrRatio(v float64) *PatientUpsert {
	u.Set(patient.FieldCrRatio, v)
	return u
}

// UpdateCrRatio sets the "cr_ratio" field to the value that was provided on create.
func (u *PatientUpsert) UpdateCrRatio() *PatientUpsert {
	u.SetExcluded(patient.FieldCrRatio)
	return u
}

// AddCrRatio adds v to the "cr_ratio" field.
func (u *PatientUpsert) AddCrRatio(v float64) *PatientUpsert {
	u.Add(patient.FieldCrRatio, v)
	return u
}

// ClearCrRatio clears the value of the "cr_ratio" field.
func (u *PatientUpsert) ClearCrRatio() *PatientUpsert {
	u.SetNull(patient.FieldCrRatio)
	return u
}

// SetState sets the "state" field.
func (u *PatientUpsert) SetState(v patient.State) *PatientUpsert {
	u.Set(patient.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PatientUpsert) UpdateState() *PatientUpsert {
	u.SetExcluded(patient.FieldState)
	return u
}

// SetDepartmentID sets the "department_id" field.
func (u *PatientUpsert) SetDepartmentID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldDepartmentID, v)
	return u
}

// UpdateDepartmentID sets the "department_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDepartmentID() *PatientUpsert {
	u.SetExcluded(patient.FieldDepartmentID)
	return u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (u *PatientUpsert) ClearDepartmentID() *PatientUpsert {
	u.SetNull(patient.FieldDepartmentID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertOne) SetFirstName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFirstName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertOne) SetLastName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateLastName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *PatientUpsertOne) SetEmail(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmail() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmail()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertOne) SetBirthDate(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBirthDate() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// SetAddress sets the "address" field.
func (u *PatientUpsertOne) SetAddress(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAddress() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsertOne) ClearAddress() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAddress()
	})
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientUpsertOne) SetMedicalHistory(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalHistory(v)
	})
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMedicalHistory() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalHistory()
	})
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientUpsertOne) ClearMedicalHistory() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalHistory()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsertOne) SetBloodType(v patient.BloodType) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBloodType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsertOne) ClearBloodType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodType()
	})
}

// SetPcrRequired sets the "pcr_required" field.
func (u *PatientUpsertOne) SetPcrRequired(v bool) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPcrRequired(v)
	})
}

// UpdatePcrRequired sets the "pcr_required" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePcrRequired() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePcrRequired()
	})
}

// SetCrRatio sets the "cr_ratio" field.
func (u *PatientUpsertOne) SetCrRatio(v float64) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetCrRatio(v)
	})
}

// AddCrRatio adds v to the "cr_ratio" field.
func (u *PatientUpsertOne) AddCrRatio(v float64) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddCrRatio(v)
	})
}

// UpdateCrRatio sets the "cr_ratio" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateCrRatio() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCrRatio()
	})
}

// ClearCrRatio clears the value of the "cr_ratio" field.
func (u *PatientUpsertOne) ClearCrRatio() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCrRatio()
	})
}

// SetState sets the "state" field.
func (u *PatientUpsertOne) SetState(v patient.State) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateState() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateState()
	})
}

// SetDepartmentID sets the "department_id" field.
func (u *PatientUpsertOne) SetDepartmentID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDepartmentID(v)
	})
}

// UpdateDepartmentID sets the "department_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDepartmentID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDepartmentID()
	})
}

// ClearDepartmentID clears the value of the "department_id" field.
func (u *PatientUpsertOne) ClearDepartmentID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDepartmentID()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertBulk) SetFirstName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFirstName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertBulk) SetLastName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateLastName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *PatientUpsertBulk) SetEmail(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmail() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmail()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertBulk) SetBirthDate(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBirthDate() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// SetAddress sets the "address" field.
func (u *PatientUpsertBulk) SetAddress(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAddress() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsertBulk) ClearAddress() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAddress()
	})
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientUpsertBulk) SetMedicalHistory(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalHistory(v)
	})
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMedicalHistory() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalHistory()
	})
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientUpsertBulk) ClearMedicalHistory() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalHistory()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsertBulk) SetBloodType(v patient.BloodType) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBloodType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsertBulk) ClearBloodType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodType()
	})
}

// SetPcrRequired sets the "pcr_required" field.
func (u *PatientUpsertBulk) SetPcrRequired(v bool) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPcrRequired(v)
	})
}

// UpdatePcrRequired sets the "pcr_required" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePcrRequired() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePcrRequired()
	})
}

// SetCrRatio sets the "cr_ratio" field.
func (u *PatientUpsertBulk) SetCrRatio(v float64) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetCrRatio(v)
	})
}

// AddCrRatio adds v to the "cr_ratio" field.
func (u *PatientUpsertBulk) AddCrRatio(v float64) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddCrRatio(v)
	})
}

// UpdateCrRatio sets the "cr_ratio" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateCrRatio() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCrRatio()
	})
}

// ClearCrRatio clears the value of the "cr_ratio" field.
func (u *PatientUpsertBulk) ClearCrRatio() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCrRatio()
	})
}

// SetState sets the "state" field.
func (u *PatientUpsertBulk) SetState(v patient.State) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateState() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateState()
	})
}

// SetDepartmentID sets the "department_id" field.
func (u *PatientUpsertBulk) SetDepartmentID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDepartmentID(v)
	})
}

// UpdateDepartmentID sets the "department_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDepartmentID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDepartmentID()
	})
}

// ClearDepartmentID clears the value of the "department_id" field.
func (u *PatientUpsertBulk) ClearDepartmentID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDepartmentID()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
