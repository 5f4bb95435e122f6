package patientlog

import "testing"

func TestCategorizeDescription(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		wantType     string
		wantPriority string
	}{
		{"transfer", "Patient transferred to ICU", TypeDepartmentChange, PriorityNormal},
		{"doctor assigned", "Doctor Smith assigned to case", TypeDoctorAssignment, PriorityNormal},
		{"condition worsening", "Condition deteriorating, worsening overnight", TypeStateChange, PriorityHigh},
		{"medication", "New medication prescribed", TypeMedicalUpdate, PriorityNormal},
		{"admission", "Patient admitted through ER", TypeCreation, PriorityNormal},
		{"urgent surgery", "Urgent surgery scheduled", TypeMedicalUpdate, PriorityCritical},
		{"routine note", "Routine check, nothing remarkable", TypeManualEntry, PriorityLow},
		{"plain note", "Spoke with family about visiting hours", TypeManualEntry, PriorityNormal},
		{"case insensitive", "TRANSFERRED TO WARD B", TypeDepartmentChange, PriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotPriority := CategorizeDescription(tt.description)
			if gotType != tt.wantType {
				t.Errorf("type = %q, want %q", gotType, tt.wantType)
			}
			if gotPriority != tt.wantPriority {
				t.Errorf("priority = %q, want %q", gotPriority, tt.wantPriority)
			}
		})
	}
}

func TestIsKnownLogType(t *testing.T) {
	for _, valid := range []string{
		TypeCreation, TypeStateChange, TypeDepartmentChange,
		TypeDoctorAssignment, TypeMedicalUpdate, TypeSystemNote, TypeManualEntry,
	} {
		if !IsKnownLogType(valid) {
			t.Errorf("IsKnownLogType(%q) = false, want true", valid)
		}
	}
	if IsKnownLogType("gossip") {
		t.Error("IsKnownLogType(gossip) = true, want false")
	}
}

func TestIsKnownPriority(t *testing.T) {
	for _, valid := range []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical} {
		if !IsKnownPriority(valid) {
			t.Errorf("IsKnownPriority(%q) = false, want true", valid)
		}
	}
	if IsKnownPriority("whenever") {
		t.Error("IsKnownPriority(whenever) = true, want false")
	}
}
