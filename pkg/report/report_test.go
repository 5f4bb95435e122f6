package report

import (
	"strings"
	"testing"
	"time"
)

func TestRenderPatientStatus(t *testing.T) {
	ratio := 1.2

	data := PatientStatus{
		GeneratedAt: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Age:         24,
		BloodType:   "A+",
		State:       "fair",
		PCRRequired: true,
		CRRatio:     &ratio,
		Department: &DepartmentStatus{
			Name:     "Cardiology",
			IsOpen:   true,
			Capacity: 20,
			Occupied: 7,
		},
		Doctors: []DoctorLine{
			{Name: "Gregory House", Specialization: "Diagnostics"},
		},
		Activity: []ActivityLine{
			{At: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), LogType: "creation", Priority: "normal", Description: "Patient record created"},
		},
	}

	html, err := RenderPatientStatus(data)
	if err != nil {
		t.Fatalf("RenderPatientStatus() error = %v", err)
	}

	for _, want := range []string{
		"Jane", "Doe", "jane@example.com",
		"A+", "fair", "Cardiology",
		"7 / 20", "Gregory House", "Patient record created",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderPatientStatusMinimal(t *testing.T) {
	data := PatientStatus{
		GeneratedAt: time.Now(),
		FirstName:   "John",
		LastName:    "Smith",
		Email:       "john@example.com",
		Age:         40,
		State:       "undetermined",
	}

	html, err := RenderPatientStatus(data)
	if err != nil {
		t.Fatalf("RenderPatientStatus() error = %v", err)
	}

	if strings.Contains(html, "Department") && strings.Contains(html, "<h2>Department</h2>") {
		t.Error("report should omit department section when patient has none")
	}
	if strings.Contains(html, "<h2>Care Team</h2>") {
		t.Error("report should omit care team section when patient has no doctors")
	}
}

func TestRenderPatientStatusEscapesHTML(t *testing.T) {
	data := PatientStatus{
		GeneratedAt: time.Now(),
		FirstName:   "<script>alert(1)</script>",
		LastName:    "X",
		Email:       "x@example.com",
		State:       "good",
	}

	html, err := RenderPatientStatus(data)
	if err != nil {
		t.Fatalf("RenderPatientStatus() error = %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("report must escape HTML in user-entered fields")
	}
}
