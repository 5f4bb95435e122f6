package patientlog

import "strings"

// Known log types. These mirror the enum on the patient_log schema.
const (
	TypeCreation         = "creation"
	TypeStateChange      = "state_change"
	TypeDepartmentChange = "department_change"
	TypeDoctorAssignment = "doctor_assignment"
	TypeMedicalUpdate    = "medical_update"
	TypeSystemNote       = "system_note"
	TypeManualEntry      = "manual_entry"
)

// Known priorities.
const (
	PriorityLow      = "low"
	PriorityNormal   = "normal"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// typeKeywords maps description keywords to an inferred log type. First
// match wins, checked in the order listed here.
var typeKeywords = []struct {
	keywords []string
	logType  string
}{
	{[]string{"transfer", "moved to", "relocat"}, TypeDepartmentChange},
	{[]string{"assigned", "doctor", "physician"}, TypeDoctorAssignment},
	{[]string{"condition", "state changed", "deteriorat", "improv", "stabiliz"}, TypeStateChange},
	{[]string{"medication", "diagnos", "treatment", "surgery", "prescri", "test result"}, TypeMedicalUpdate},
	{[]string{"admitted", "registered", "record created"}, TypeCreation},
}

var priorityKeywords = []struct {
	keywords []string
	priority string
}{
	{[]string{"critical", "urgent", "emergency", "immediately"}, PriorityCritical},
	{[]string{"serious", "severe", "worsen"}, PriorityHigh},
	{[]string{"routine", "minor", "follow-up", "followup"}, PriorityLow},
}

// CategorizeDescription infers a log type and priority from free-text
// entered by staff. Used when the caller does not classify the entry
// explicitly.
func CategorizeDescription(description string) (logType, priority string) {
	lower := strings.ToLower(description)

	logType = TypeManualEntry
	for _, group := range typeKeywords {
		if containsAny(lower, group.keywords) {
			logType = group.logType
			break
		}
	}

	priority = PriorityNormal
	for _, group := range priorityKeywords {
		if containsAny(lower, group.keywords) {
			priority = group.priority
			break
		}
	}

	return logType, priority
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// IsKnownLogType reports whether t is one of the schema's log types.
func IsKnownLogType(t string) bool {
	switch t {
	case TypeCreation, TypeStateChange, TypeDepartmentChange,
		TypeDoctorAssignment, TypeMedicalUpdate, TypeSystemNote, TypeManualEntry:
		return true
	}
	return false
}

// IsKnownPriority reports whether p is one of the schema's priorities.
func IsKnownPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
