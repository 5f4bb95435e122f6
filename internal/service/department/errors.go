package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameRequired       = errors.New("department name is required")
	ErrNameTaken          = errors.New("a department with this name already exists")
	ErrNegativeCapacity   = errors.New("capacity cannot be negative")
	ErrCapacityBelowCount = errors.New("capacity cannot be lower than current patient count")
	ErrDepartmentFull     = errors.New("department is at capacity")
	ErrDepartmentClosed   = errors.New("department is closed to admissions")
	ErrNotEmpty           = errors.New("department still has patients assigned")
)
