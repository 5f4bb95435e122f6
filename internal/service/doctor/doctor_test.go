package doctor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aramhealth/hms_backend/internal/repo"
	"github.com/aramhealth/hms_backend/internal/repo/enttest"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func strPtr(s string) *string { return &s }

func TestCreateDoctor(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDoctorRequest{
		FirstName:      "  Gregory ",
		LastName:       "House",
		Specialization: strPtr("Diagnostics"),
		Email:          strPtr("House@Hospital.org"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.FirstName != "Gregory" {
		t.Errorf("first name = %q, want trimmed", d.FirstName)
	}
	if d.Email == nil || *d.Email != "house@hospital.org" {
		t.Errorf("email = %v, want normalized lowercase", d.Email)
	}
	if !d.IsActive {
		t.Error("new doctor should be active")
	}
}

func TestCreateDoctorValidation(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateDoctorRequest{FirstName: "", LastName: "X"}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Create() error = %v, want ErrNameRequired", err)
	}

	_, err := svc.Create(ctx, CreateDoctorRequest{
		FirstName: "A", LastName: "B",
		Email: strPtr("not-an-email"),
	})
	if !errors.Is(err, validate.ErrInvalidEmail) {
		t.Errorf("Create() error = %v, want ErrInvalidEmail", err)
	}

	_, err = svc.Create(ctx, CreateDoctorRequest{
		FirstName: "A", LastName: "B",
		Phone: strPtr("123"),
	})
	if !errors.Is(err, validate.ErrInvalidPhone) {
		t.Errorf("Create() error = %v, want ErrInvalidPhone", err)
	}
}

func TestListDoctorsFilters(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateDoctorRequest{
		FirstName: "Meredith", LastName: "Grey",
		Specialization: strPtr("Surgery"),
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	inactive, err := svc.Create(ctx, CreateDoctorRequest{
		FirstName: "Old", LastName: "Timer",
		Specialization: strPtr("Surgery"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.ToggleActive(ctx, inactive.ID); err != nil {
		t.Fatalf("ToggleActive() error = %v", err)
	}

	active, err := svc.List(ctx, ListDoctorsRequest{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(active) != 1 {
		t.Errorf("active doctors = %d, want 1", len(active))
	}

	surgeons, err := svc.List(ctx, ListDoctorsRequest{Specialization: strPtr("surgery")})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(surgeons) != 2 {
		t.Errorf("surgeons = %d, want 2", len(surgeons))
	}

	found, err := svc.List(ctx, ListDoctorsRequest{Search: "grey"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(found) != 1 {
		t.Errorf("search result = %d, want 1", len(found))
	}
}

func TestUpdateDoctorClearsOptionalFields(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDoctorRequest{
		FirstName: "James", LastName: "Wilson",
		Email: strPtr("wilson@hospital.org"),
		Phone: strPtr("+14155552671"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	d, err = svc.Update(ctx, d.ID, UpdateDoctorRequest{
		Email: strPtr(""),
		Phone: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if d.Email != nil {
		t.Error("email should be cleared")
	}
	if d.Phone != nil {
		t.Error("phone should be cleared")
	}
}
