package patientlog

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
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func addPatient(t *testing.T, client *repo.Client) *repo.Patient {
	t.Helper()
	p, err := client.Patient.Create().
		SetFirstName("Log").
		SetLastName("Subject").
		SetEmail(fmt.Sprintf("%s@example.com", uuid.NewString()[:8])).
		SetBirthDate(time.Now().AddDate(-40, 0, 0)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func TestAppendInfersCategory(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	p := addPatient(t, client)

	entry, err := svc.Append(ctx, p.ID, AppendRequest{
		Description: "Patient transferred to recovery ward",
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if string(entry.LogType) != TypeDepartmentChange {
		t.Errorf("inferred type = %q, want %q", entry.LogType, TypeDepartmentChange)
	}
}

func TestAppendExplicitTypeWins(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	p := addPatient(t, client)

	explicit := TypeSystemNote
	entry, err := svc.Append(ctx, p.ID, AppendRequest{
		Description: "Patient transferred to recovery ward",
		LogType:     &explicit,
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if string(entry.LogType) != TypeSystemNote {
		t.Errorf("type = %q, want explicit %q", entry.LogType, TypeSystemNote)
	}
}

func TestAppendValidation(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	p := addPatient(t, client)

	if _, err := svc.Append(ctx, p.ID, AppendRequest{Description: "   "}); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("Append() error = %v, want ErrEmptyDescription", err)
	}

	bad := "gossip"
	if _, err := svc.Append(ctx, p.ID, AppendRequest{Description: "x", LogType: &bad}); !errors.Is(err, ErrUnknownLogType) {
		t.Errorf("Append() error = %v, want ErrUnknownLogType", err)
	}

	if _, err := svc.Append(ctx, uuid.New(), AppendRequest{Description: "x"}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Append() error = %v, want ErrPatientNotFound", err)
	}
}

func TestListChronologicalOrder(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	p := addPatient(t, client)

	for i := 0; i < 5; i++ {
		if _, err := svc.Append(ctx, p.ID, AppendRequest{
			Description: fmt.Sprintf("note %d", i),
		}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	entries, err := svc.ListByPatient(ctx, p.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListByPatient() error = %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.Before(entries[i-1].CreatedAt) {
			t.Errorf("entries out of order at index %d", i)
		}
	}
	if entries[0].Description != "note 0" || entries[4].Description != "note 4" {
		t.Error("entries should be oldest first")
	}
}

func TestSummary(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	p := addPatient(t, client)

	notes := []string{
		"Patient admitted through ER",
		"New medication prescribed",
		"Another medication prescribed",
	}
	for _, n := range notes {
		if _, err := svc.Append(ctx, p.ID, AppendRequest{Description: n}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	summary, err := svc.Summary(ctx, p.ID, 0)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("total = %d, want 3", summary.Total)
	}
	if summary.PerType[TypeMedicalUpdate] != 2 {
		t.Errorf("medical updates = %d, want 2", summary.PerType[TypeMedicalUpdate])
	}
	if summary.PerType[TypeCreation] != 1 {
		t.Errorf("creation entries = %d, want 1", summary.PerType[TypeCreation])
	}
	if summary.PerPriority[PriorityNormal] != 3 {
		t.Errorf("normal priority entries = %d, want 3", summary.PerPriority[PriorityNormal])
	}
	if len(summary.Recent) != 3 {
		t.Fatalf("recent entries = %d, want 3", len(summary.Recent))
	}
	if summary.Recent[0] != "Another medication prescribed" {
		t.Errorf("most recent = %q, want the last note", summary.Recent[0])
	}

	// Fresh entries fall inside any recent window.
	windowed, err := svc.Summary(ctx, p.ID, 7)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if windowed.Total != 3 {
		t.Errorf("windowed total = %d, want 3 (all entries are fresh)", windowed.Total)
	}
}
