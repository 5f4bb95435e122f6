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
	"github.com/aramhealth/hms_backend/internal/repo/partner"
	"github.com/aramhealth/hms_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// PartnerCreate is the builder for creating a Partner entity.
type PartnerCreate struct {
	config
	mutation *PartnerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PartnerCreate) SetCreatedAt(v time.Time) *PartnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableCreatedAt(v *time.Time) *PartnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PartnerCreate) SetUpdatedAt(v time.Time) *PartnerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableUpdatedAt(v *time.Time) *PartnerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PartnerCreate) SetName(v string) *PartnerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *PartnerCreate) SetEmail(v string) *PartnerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetTaxID sets the "tax_id" field.
func (_c *PartnerCreate) SetTaxID(v string) *PartnerCreate {
	_c.mutation.SetTaxID(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PartnerCreate) SetPhone(v string) *PartnerCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PartnerCreate) SetNillablePhone(v *string) *PartnerCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PartnerCreate) SetPatientID(v uuid.UUID) *PartnerCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *PartnerCreate) SetNillablePatientID(v *uuid.UUID) *PartnerCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PartnerCreate) SetID(v uuid.UUID) *PartnerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableID(v *uuid.UUID) *PartnerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PartnerCreate) SetPatient(v *Patient) *PartnerCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PartnerMutation object of the builder.
func (_c *PartnerCreate) Mutation() *PartnerMutation {
	return _c.mutation
}

// Save creates the Partner in the database.
func (_c *PartnerCreate) Save(ctx context.Context) (*Partner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartnerCreate) SaveX(ctx context.Context) *Partner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartnerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := partner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := partner.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := partner.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartnerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Partner.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Partner.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Partner.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := partner.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Partner.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Partner.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := partner.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Partner.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaxID(); !ok {
		return &ValidationError{Name: "tax_id", err: errors.New(`repo: missing required field "Partner.tax_id"`)}
	}
	if v, ok := _c.mutation.TaxID(); ok {
		if err := partner.TaxIDValidator(v); err != nil {
			return &ValidationError{Name: "tax_id", err: fmt.Errorf(`repo: validator failed for field "Partner.tax_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := partner.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Partner.phone": %w`, err)}
		}
	}
	return nil
}

func (_c *PartnerCreate) sqlSave(ctx context.Context) (*Partner, error) {
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

func (_c *PartnerCreate) createSpec() (*Partner, *sqlgraph.CreateSpec) {
	var (
		_node = &Partner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(partner.Table, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(partner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(partner.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(partner.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(partner.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.TaxID(); ok {
		_spec.SetField(partner.FieldTaxID, field.TypeString, value)
		_node.TaxID = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(partner.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   partner.PatientTable,
			Columns: []string{partner.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Partner.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartnerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartnerCreate) OnConflict(opts ...sql.ConflictOption) *PartnerUpsertOne {
	_c.conflict = opts
	return &PartnerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartnerCreate) OnConflictColumns(columns ...string) *PartnerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartnerUpsertOne{
		create: _c,
	}
}

type (
	// PartnerUpsertOne is the builder for "upsert"-ing
	//  one Partner node.
	PartnerUpsertOne struct {
		create *PartnerCreate
	}

	// PartnerUpsert is the "OnConflict" setter.
	PartnerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PartnerUpsert) SetUpdatedAt(v time.Time) *PartnerUpsert {
	u.Set(partner.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateUpdatedAt() *PartnerUpsert {
	u.SetExcluded(partner.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *PartnerUpsert) SetName(v string) *PartnerUpsert {
	u.Set(partner.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateName() *PartnerUpsert {
	u.SetExcluded(partner.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *PartnerUpsert) SetEmail(v string) *PartnerUpsert {
	u.Set(partner.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateEmail() *PartnerUpsert {
	u.SetExcluded(partner.FieldEmail)
	return u
}

// SetTaxID sets the "tax_id" field.
func (u *PartnerUpsert) SetTaxID(v string) *PartnerUpsert {
	u.Set(partner.FieldTaxID, v)
	return u
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateTaxID() *PartnerUpsert {
	u.SetExcluded(partner.FieldTaxID)
	return u
}

// SetPhone sets the "phone" field.
func (u *PartnerUpsert) SetPhone(v string) *PartnerUpsert {
	u.Set(partner.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PartnerUpsert) UpdatePhone() *PartnerUpsert {
	u.SetExcluded(partner.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *PartnerUpsert) ClearPhone() *PartnerUpsert {
	u.SetNull(partner.FieldPhone)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PartnerUpsert) SetPatientID(v uuid.UUID) *PartnerUpsert {
	u.Set(partner.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PartnerUpsert) UpdatePatientID() *PartnerUpsert {
	u.SetExcluded(partner.FieldPatientID)
	return u
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PartnerUpsert) ClearPatientID() *PartnerUpsert {
	u.SetNull(partner.FieldPatientID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartnerUpsertOne) UpdateNewValues() *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(partner.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(partner.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Partner.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PartnerUpsertOne) Ignore() *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartnerUpsertOne) DoNothing() *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartnerCreate.OnConflict
// documentation for more info.
func (u *PartnerUpsertOne) Update(set func(*PartnerUpsert)) *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartnerUpsertOne) SetUpdatedAt(v time.Time) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateUpdatedAt() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *PartnerUpsertOne) SetName(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateName() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *PartnerUpsertOne) SetEmail(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateEmail() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateEmail()
	})
}

// SetTaxID sets the "tax_id" field.
func (u *PartnerUpsertOne) SetTaxID(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetTaxID(v)
	})
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateTaxID() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateTaxID()
	})
}

// SetPhone sets the "phone" field.
func (u *PartnerUpsertOne) SetPhone(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdatePhone() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PartnerUpsertOne) ClearPhone() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.ClearPhone()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PartnerUpsertOne) SetPatientID(v uuid.UUID) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdatePatientID() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PartnerUpsertOne) ClearPatientID() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.ClearPatientID()
	})
}

// Exec executes the query.
func (u *PartnerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartnerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartnerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PartnerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PartnerUpsertOne.ID is not supported by MySQL driver. Use PartnerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PartnerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PartnerCreateBulk is the builder for creating many Partner entities in bulk.
type PartnerCreateBulk struct {
	config
	err      error
	builders []*PartnerCreate
	conflict []sql.ConflictOption
}

// Save creates the Partner entities in the database.
func (_c *PartnerCreateBulk) Save(ctx context.Context) ([]*Partner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Partner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartnerMutation)
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
func (_c *PartnerCreateBulk) SaveX(ctx context.Context) []*Partner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Partner.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartnerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartnerCreateBulk) OnConflict(opts ...sql.ConflictOption) *PartnerUpsertBulk {
	_c.conflict = opts
	return &PartnerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartnerCreateBulk) OnConflictColumns(columns ...string) *PartnerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartnerUpsertBulk{
		create: _c,
	}
}

// PartnerUpsertBulk is the builder for "upsert"-ing
// a bulk of Partner nodes.
type PartnerUpsertBulk struct {
	create *PartnerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartnerUpsertBulk) UpdateNewValues() *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(partner.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(partner.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PartnerUpsertBulk) Ignore() *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartnerUpsertBulk) DoNothing() *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartnerCreateBulk.OnConflict
// documentation for more info.
func (u *PartnerUpsertBulk) Update(set func(*PartnerUpsert)) *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartnerUpsertBulk) SetUpdatedAt(v time.Time) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateUpdatedAt() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *PartnerUpsertBulk) SetName(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateName() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *PartnerUpsertBulk) SetEmail(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateEmail() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateEmail()
	})
}

// SetTaxID sets the "tax_id" field.
func (u *PartnerUpsertBulk) SetTaxID(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetTaxID(v)
	})
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateTaxID() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateTaxID()
	})
}

// SetPhone sets the "phone" field.
func (u *PartnerUpsertBulk) SetPhone(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdatePhone() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PartnerUpsertBulk) ClearPhone() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.ClearPhone()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PartnerUpsertBulk) SetPatientID(v uuid.UUID) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdatePatientID() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PartnerUpsertBulk) ClearPatientID() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.ClearPatientID()
	})
}

// Exec executes the query.
func (u *PartnerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PartnerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartnerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartnerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
