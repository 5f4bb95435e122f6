package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aramhealth/hms_backend/internal/repo"
	"github.com/aramhealth/hms_backend/internal/repo/enttest"
	entpatientlog "github.com/aramhealth/hms_backend/internal/repo/patientlog"
	"github.com/aramhealth/hms_backend/pkg/email"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func seedPatient(t *testing.T, client *repo.Client) *repo.Patient {
	t.Helper()
	ctx := context.Background()

	dept, err := client.Department.Create().
		SetName("Cardiology").
		SetCapacity(10).
		Save(ctx)
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	doc, err := client.Doctor.Create().
		SetFirstName("Maryam").
		SetLastName("Hosseini").
		SetEmail("m.hosseini@example.com").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	p, err := client.Patient.Create().
		SetFirstName("Omid").
		SetLastName("Karimi").
		SetEmail("omid@example.com").
		SetBirthDate(time.Now().AddDate(-42, 0, -7)).
		SetDepartmentID(dept.ID).
		AddDoctors(doc).
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	_, err = client.PatientLog.Create().
		SetPatientID(p.ID).
		SetLogType(entpatientlog.LogTypeCreation).
		SetDescription("Patient record created for Omid Karimi").
		Save(ctx)
	if err != nil {
		t.Fatalf("create log: %v", err)
	}

	return p
}

func TestPatientStatusHTMLRendersRecord(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	p := seedPatient(t, client)

	html, err := svc.PatientStatusHTML(ctx, p.ID)
	if err != nil {
		t.Fatalf("PatientStatusHTML() error = %v", err)
	}

	for _, want := range []string{"Omid", "Karimi", "Cardiology", "Hosseini", "Patient record created"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestPatientStatusHTMLNotFound(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil, nil)

	_, err := svc.PatientStatusHTML(context.Background(), uuid.New())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("PatientStatusHTML() error = %v, want ErrPatientNotFound", err)
	}
}

func TestSendPatientStatusDisabledMailer(t *testing.T) {
	client := newClient(t)
	mailer, err := email.New(email.DefaultConfig())
	if err != nil {
		t.Fatalf("email.New() error = %v", err)
	}
	svc := New(client, nil, mailer)
	ctx := context.Background()

	p := seedPatient(t, client)

	err = svc.SendPatientStatus(ctx, p.ID)
	var disabled email.ErrDisabled
	if !errors.As(err, &disabled) {
		t.Errorf("SendPatientStatus() error = %v, want ErrDisabled", err)
	}
}
