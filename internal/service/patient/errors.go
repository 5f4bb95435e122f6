package patient

import "errors"

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrNameRequired      = errors.New("patient first and last name are required")
	ErrDuplicateEmail    = errors.New("a patient with this email already exists")
	ErrBirthDateRequired = errors.New("birth date is required")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
	ErrCRRatioRequired   = errors.New("CR ratio is required when a PCR test is required")
	ErrCRRatioNegative   = errors.New("CR ratio cannot be negative")
	ErrUnknownBloodType  = errors.New("unknown blood type")
	ErrUnknownState      = errors.New("unknown patient state")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorInactive    = errors.New("doctor is not active")
	ErrDoctorAssigned    = errors.New("doctor is already assigned to this patient")
	ErrDoctorNotAssigned = errors.New("doctor is not assigned to this patient")
)
