package doctor

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrNameRequired   = errors.New("doctor first and last name are required")
	ErrDoctorInactive = errors.New("doctor is not active")
)
