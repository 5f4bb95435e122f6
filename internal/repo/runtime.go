// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/aramhealth/hms_backend/internal/repo/department"
	"github.com/aramhealth/hms_backend/internal/repo/doctor"
	"github.com/aramhealth/hms_backend/internal/repo/partner"
	"github.com/aramhealth/hms_backend/internal/repo/patient"
	"github.com/aramhealth/hms_backend/internal/repo/patientlog"
	"github.com/aramhealth/hms_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentMixinFields1 := departmentMixin[1].Fields()
	_ = departmentMixinFields1
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields1[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields1[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[0].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = func() func(string) error {
		validators := departmentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// departmentDescCapacity is the schema descriptor for capacity field.
	departmentDescCapacity := departmentFields[1].Descriptor()
	// department.DefaultCapacity holds the default value on creation for the capacity field.
	department.DefaultCapacity = departmentDescCapacity.Default.(int)
	// department.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	department.CapacityValidator = departmentDescCapacity.Validators[0].(func(int) error)
	// departmentDescIsOpen is the schema descriptor for is_open field.
	departmentDescIsOpen := departmentFields[2].Descriptor()
	// department.DefaultIsOpen holds the default value on creation for the is_open field.
	department.DefaultIsOpen = departmentDescIsOpen.Default.(bool)
	// departmentDescID is the schema descriptor for id field.
	departmentDescID := departmentMixinFields0[0].Descriptor()
	// department.DefaultID holds the default value on creation for the id field.
	department.DefaultID = departmentDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescFirstName is the schema descriptor for first_name field.
	doctorDescFirstName := doctorFields[0].Descriptor()
	// doctor.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	doctor.FirstNameValidator = func() func(string) error {
		validators := doctorDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescLastName is the schema descriptor for last_name field.
	doctorDescLastName := doctorFields[1].Descriptor()
	// doctor.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	doctor.LastNameValidator = func() func(string) error {
		validators := doctorDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescSpecialization is the schema descriptor for specialization field.
	doctorDescSpecialization := doctorFields[2].Descriptor()
	// doctor.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	doctor.SpecializationValidator = doctorDescSpecialization.Validators[0].(func(string) error)
	// doctorDescLicenseNumber is the schema descriptor for license_number field.
	doctorDescLicenseNumber := doctorFields[3].Descriptor()
	// doctor.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	doctor.LicenseNumberValidator = doctorDescLicenseNumber.Validators[0].(func(string) error)
	// doctorDescEmail is the schema descriptor for email field.
	doctorDescEmail := doctorFields[4].Descriptor()
	// doctor.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	doctor.EmailValidator = doctorDescEmail.Validators[0].(func(string) error)
	// doctorDescPhone is the schema descriptor for phone field.
	doctorDescPhone := doctorFields[5].Descriptor()
	// doctor.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	doctor.PhoneValidator = doctorDescPhone.Validators[0].(func(string) error)
	// doctorDescIsActive is the schema descriptor for is_active field.
	doctorDescIsActive := doctorFields[6].Descriptor()
	// doctor.DefaultIsActive holds the default value on creation for the is_active field.
	doctor.DefaultIsActive = doctorDescIsActive.Default.(bool)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	partnerMixin := schema.Partner{}.Mixin()
	partnerMixinFields0 := partnerMixin[0].Fields()
	_ = partnerMixinFields0
	partnerMixinFields1 := partnerMixin[1].Fields()
	_ = partnerMixinFields1
	partnerFields := schema.Partner{}.Fields()
	_ = partnerFields
	// partnerDescCreatedAt is the schema descriptor for created_at field.
	partnerDescCreatedAt := partnerMixinFields1[0].Descriptor()
	// partner.DefaultCreatedAt holds the default value on creation for the created_at field.
	partner.DefaultCreatedAt = partnerDescCreatedAt.Default.(func() time.Time)
	// partnerDescUpdatedAt is the schema descriptor for updated_at field.
	partnerDescUpdatedAt := partnerMixinFields1[1].Descriptor()
	// partner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	partner.DefaultUpdatedAt = partnerDescUpdatedAt.Default.(func() time.Time)
	// partner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	partner.UpdateDefaultUpdatedAt = partnerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partnerDescName is the schema descriptor for name field.
	partnerDescName := partnerFields[0].Descriptor()
	// partner.NameValidator is a validator for the "name" field. It is called by the builders before save.
	partner.NameValidator = func() func(string) error {
		validators := partnerDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// partnerDescEmail is the schema descriptor for email field.
	partnerDescEmail := partnerFields[1].Descriptor()
	// partner.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	partner.EmailValidator = func() func(string) error {
		validators := partnerDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// partnerDescTaxID is the schema descriptor for tax_id field.
	partnerDescTaxID := partnerFields[2].Descriptor()
	// partner.TaxIDValidator is a validator for the "tax_id" field. It is called by the builders before save.
	partner.TaxIDValidator = func() func(string) error {
		validators := partnerDescTaxID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(tax_id string) error {
			for _, fn := range fns {
				if err := fn(tax_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// partnerDescPhone is the schema descriptor for phone field.
	partnerDescPhone := partnerFields[3].Descriptor()
	// partner.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	partner.PhoneValidator = partnerDescPhone.Validators[0].(func(string) error)
	// partnerDescID is the schema descriptor for id field.
	partnerDescID := partnerMixinFields0[0].Descriptor()
	// partner.DefaultID holds the default value on creation for the id field.
	partner.DefaultID = partnerDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[0].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = func() func(string) error {
		validators := patientDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[1].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = func() func(string) error {
		validators := patientDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[2].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = func() func(string) error {
		validators := patientDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescPcrRequired is the schema descriptor for pcr_required field.
	patientDescPcrRequired := patientFields[7].Descriptor()
	// patient.DefaultPcrRequired holds the default value on creation for the pcr_required field.
	patient.DefaultPcrRequired = patientDescPcrRequired.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientlogMixin := schema.PatientLog{}.Mixin()
	patientlogMixinFields0 := patientlogMixin[0].Fields()
	_ = patientlogMixinFields0
	patientlogMixinFields1 := patientlogMixin[1].Fields()
	_ = patientlogMixinFields1
	patientlogFields := schema.PatientLog{}.Fields()
	_ = patientlogFields
	// patientlogDescCreatedAt is the schema descriptor for created_at field.
	patientlogDescCreatedAt := patientlogMixinFields1[0].Descriptor()
	// patientlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientlog.DefaultCreatedAt = patientlogDescCreatedAt.Default.(func() time.Time)
	// patientlogDescDescription is the schema descriptor for description field.
	patientlogDescDescription := patientlogFields[3].Descriptor()
	// patientlog.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	patientlog.DescriptionValidator = patientlogDescDescription.Validators[0].(func(string) error)
	// patientlogDescID is the schema descriptor for id field.
	patientlogDescID := patientlogMixinFields0[0].Descriptor()
	// patientlog.DefaultID holds the default value on creation for the id field.
	patientlog.DefaultID = patientlogDescID.Default.(func() uuid.UUID)
}
