package patientlog

import "errors"

var (
	ErrEmptyDescription = errors.New("log entry description is empty")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrLogNotFound      = errors.New("patient log entry not found")
	ErrUnknownLogType   = errors.New("unknown log type")
	ErrUnknownPriority  = errors.New("unknown priority")
)
