package partner

import "errors"

var (
	ErrPartnerNotFound      = errors.New("partner not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrNameRequired         = errors.New("partner name is required")
	ErrTaxIDRequired        = errors.New("partner tax id is required")
	ErrEmailMismatch        = errors.New("partner email does not match the patient's email")
	ErrEmailTaken           = errors.New("another patient already uses this email")
	ErrPatientAlreadyLinked = errors.New("patient already has a linked partner")
	ErrPartnerLinked        = errors.New("partner is linked to a patient")
	ErrPartnerNotLinked     = errors.New("partner is not linked to a patient")
)
