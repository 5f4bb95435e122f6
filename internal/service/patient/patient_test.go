package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aramhealth/hms_backend/internal/repo"
	"github.com/aramhealth/hms_backend/internal/repo/enttest"
	entpatientlog "github.com/aramhealth/hms_backend/internal/repo/patientlog"
	"github.com/aramhealth/hms_backend/internal/service/department"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

// birthDateForAge returns a birth date that makes the patient the given age
// today, with the birthday safely in the past.
func birthDateForAge(age int) time.Time {
	return time.Now().UTC().AddDate(-age, 0, -7)
}

func basicCreateReq(email string, age int) CreatePatientRequest {
	ratio := 1.1
	return CreatePatientRequest{
		FirstName: "Test",
		LastName:  "Patient",
		Email:     email,
		BirthDate: birthDateForAge(age),
		CRRatio:   &ratio,
	}
}

func TestCreateAutoPCRUnderThirty(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	young, err := svc.Create(ctx, basicCreateReq("young@example.com", 25))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !young.PcrRequired {
		t.Error("patient under 30 should have PCR required")
	}

	older, err := svc.Create(ctx, basicCreateReq("older@example.com", 45))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if older.PcrRequired {
		t.Error("patient over 30 should not get PCR flag by default")
	}
}

func TestCreateRequiresCRRatioWithPCR(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	req := basicCreateReq("nocr@example.com", 25)
	req.CRRatio = nil

	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrCRRatioRequired) {
		t.Errorf("Create() error = %v, want ErrCRRatioRequired", err)
	}

	// Over 30 without the PCR flag, no ratio needed.
	req = basicCreateReq("nocr2@example.com", 45)
	req.CRRatio = nil
	if _, err := svc.Create(ctx, req); err != nil {
		t.Errorf("Create() error = %v, want nil", err)
	}
}

func TestCreateRejectsNegativeCRRatio(t *testing.T) {
	client := newClient(t)
	svc := New(client)

	req := basicCreateReq("neg@example.com", 25)
	ratio := -0.5
	req.CRRatio = &ratio

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrCRRatioNegative) {
		t.Errorf("Create() error = %v, want ErrCRRatioNegative", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	if _, err := svc.Create(ctx, basicCreateReq("dup@example.com", 40)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Same address, different case.
	_, err := svc.Create(ctx, basicCreateReq("DUP@example.com", 40))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateRejectsFutureBirthDate(t *testing.T) {
	client := newClient(t)
	svc := New(client)

	req := basicCreateReq("future@example.com", 40)
	req.BirthDate = time.Now().AddDate(1, 0, 0)

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrBirthDateInFuture) {
		t.Errorf("Create() error = %v, want ErrBirthDateInFuture", err)
	}
}

func TestCreateDropsHistoryForYoungerPatients(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	history := "childhood asthma"

	req := basicCreateReq("young-history@example.com", 40)
	req.MedicalHistory = &history
	p, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.MedicalHistory != nil {
		t.Error("history should be dropped for patients under 50")
	}

	req = basicCreateReq("old-history@example.com", 60)
	req.MedicalHistory = &history
	p, err = svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.MedicalHistory == nil || *p.MedicalHistory != history {
		t.Error("history should be kept for patients 50 and over")
	}
}

func TestCreateWritesCreationLog(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	p, err := svc.Create(ctx, basicCreateReq("logged@example.com", 40))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	logs, err := client.PatientLog.Query().
		Where(entpatientlog.PatientID(p.ID)).
		All(ctx)
	if err != nil {
		t.Fatalf("query logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d log entries, want 1", len(logs))
	}
	if string(logs[0].LogType) != "creation" {
		t.Errorf("log type = %q, want creation", logs[0].LogType)
	}
}

func TestUpdateStateWritesLog(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	p, err := svc.Create(ctx, basicCreateReq("state@example.com", 40))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.SetState(ctx, p.ID, "serious"); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}

	logs, err := client.PatientLog.Query().
		Where(
			entpatientlog.PatientID(p.ID),
			entpatientlog.LogTypeEQ(entpatientlog.LogType("state_change")),
		).
		All(ctx)
	if err != nil {
		t.Fatalf("query logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d state change entries, want 1", len(logs))
	}
	if string(logs[0].Priority) != "high" {
		t.Errorf("serious state change priority = %q, want high", logs[0].Priority)
	}
}

func TestUpdateRejectsUnknownState(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	p, err := svc.Create(ctx, basicCreateReq("badstate@example.com", 40))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.SetState(ctx, p.ID, "zombie"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("SetState() error = %v, want ErrUnknownState", err)
	}
}

func TestAdmissionCapacityGate(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	dept, err := client.Department.Create().SetName("ICU").SetCapacity(1).Save(ctx)
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	req := basicCreateReq("first@example.com", 40)
	req.DepartmentID = &dept.ID
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req = basicCreateReq("second@example.com", 40)
	req.DepartmentID = &dept.ID
	_, err = svc.Create(ctx, req)
	if !errors.Is(err, department.ErrDepartmentFull) {
		t.Errorf("Create() error = %v, want ErrDepartmentFull", err)
	}

	// The rejected admission must not have created a record.
	count, err := client.Patient.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count patients: %v", err)
	}
	if count != 1 {
		t.Errorf("patient count = %d, want 1", count)
	}
}

func TestAdmissionToClosedDepartment(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	dept, err := client.Department.Create().SetName("Mothballed").SetIsOpen(false).Save(ctx)
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	req := basicCreateReq("closed@example.com", 40)
	req.DepartmentID = &dept.ID
	_, err = svc.Create(ctx, req)
	if !errors.Is(err, department.ErrDepartmentClosed) {
		t.Errorf("Create() error = %v, want ErrDepartmentClosed", err)
	}
}

func TestDepartmentMoveClearsDoctors(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	deptA, err := client.Department.Create().SetName("Ward A").Save(ctx)
	if err != nil {
		t.Fatalf("create department: %v", err)
	}
	deptB, err := client.Department.Create().SetName("Ward B").Save(ctx)
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	doc, err := client.Doctor.Create().SetFirstName("Gregory").SetLastName("House").Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	req := basicCreateReq("moving@example.com", 40)
	req.DepartmentID = &deptA.ID
	p, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.AssignDoctor(ctx, p.ID, doc.ID); err != nil {
		t.Fatalf("AssignDoctor() error = %v", err)
	}

	if _, err := svc.Update(ctx, p.ID, UpdatePatientRequest{DepartmentID: &deptB.ID}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	doctors, err := svc.ListDoctors(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}
	if len(doctors) != 0 {
		t.Errorf("got %d doctors after department move, want 0", len(doctors))
	}
}

func TestAssignDoctorRules(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	p, err := svc.Create(ctx, basicCreateReq("assign@example.com", 40))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	inactive, err := client.Doctor.Create().
		SetFirstName("Retired").SetLastName("Doc").SetIsActive(false).
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	if err := svc.AssignDoctor(ctx, p.ID, inactive.ID); !errors.Is(err, ErrDoctorInactive) {
		t.Errorf("AssignDoctor() error = %v, want ErrDoctorInactive", err)
	}

	active, err := client.Doctor.Create().
		SetFirstName("On").SetLastName("Call").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	if err := svc.AssignDoctor(ctx, p.ID, active.ID); err != nil {
		t.Fatalf("AssignDoctor() error = %v", err)
	}
	if err := svc.AssignDoctor(ctx, p.ID, active.ID); !errors.Is(err, ErrDoctorAssigned) {
		t.Errorf("second AssignDoctor() error = %v, want ErrDoctorAssigned", err)
	}
	if err := svc.UnassignDoctor(ctx, p.ID, active.ID); err != nil {
		t.Fatalf("UnassignDoctor() error = %v", err)
	}
	if err := svc.UnassignDoctor(ctx, p.ID, active.ID); !errors.Is(err, ErrDoctorNotAssigned) {
		t.Errorf("second UnassignDoctor() error = %v, want ErrDoctorNotAssigned", err)
	}
}

func TestDeleteIsSoft(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	p, err := svc.Create(ctx, basicCreateReq("gone@example.com", 40))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetByID(ctx, p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrPatientNotFound", err)
	}

	// The email is free again.
	if _, err := svc.Create(ctx, basicCreateReq("gone@example.com", 40)); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}

	// The row is still there for the audit trail.
	raw, err := client.Patient.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if raw.DeletedAt == nil {
		t.Error("deleted_at should be set")
	}
}

func TestGetByIDUnknown(t *testing.T) {
	client := newClient(t)
	svc := New(client)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByID() error = %v, want ErrPatientNotFound", err)
	}
}
