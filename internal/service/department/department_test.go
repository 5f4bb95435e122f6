package department

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

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

func addPatient(t *testing.T, client *repo.Client, email string, deptID *repo.Department) *repo.Patient {
	t.Helper()
	c := client.Patient.Create().
		SetFirstName("Ward").
		SetLastName("Patient").
		SetEmail(email).
		SetBirthDate(time.Now().AddDate(-40, 0, 0))
	if deptID != nil {
		c = c.SetDepartmentID(deptID.ID)
	}
	p, err := c.Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func TestCreateDepartment(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	capacity := 10
	d, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Cardiology", Capacity: &capacity})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !d.IsOpen {
		t.Error("new department should be open by default")
	}
	if d.Capacity != 10 {
		t.Errorf("capacity = %d, want 10", d.Capacity)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Oncology"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Name collision is case-insensitive.
	_, err := svc.Create(ctx, CreateDepartmentRequest{Name: "oncology"})
	if !errors.Is(err, ErrNameTaken) {
		t.Errorf("Create() error = %v, want ErrNameTaken", err)
	}
}

func TestCreateNegativeCapacity(t *testing.T) {
	client := newClient(t)
	svc := New(client)

	capacity := -1
	_, err := svc.Create(context.Background(), CreateDepartmentRequest{Name: "Bad", Capacity: &capacity})
	if !errors.Is(err, ErrNegativeCapacity) {
		t.Errorf("Create() error = %v, want ErrNegativeCapacity", err)
	}
}

func TestUpdateCapacityBelowCount(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Surgery"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	addPatient(t, client, "one@example.com", d)
	addPatient(t, client, "two@example.com", d)

	capacity := 1
	_, err = svc.Update(ctx, d.ID, UpdateDepartmentRequest{Capacity: &capacity})
	if !errors.Is(err, ErrCapacityBelowCount) {
		t.Errorf("Update() error = %v, want ErrCapacityBelowCount", err)
	}

	capacity = 2
	if _, err := svc.Update(ctx, d.ID, UpdateDepartmentRequest{Capacity: &capacity}); err != nil {
		t.Errorf("Update() error = %v", err)
	}
}

func TestDeleteNonEmptyDepartment(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Pediatrics"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	addPatient(t, client, "kid@example.com", d)

	if err := svc.Delete(ctx, d.ID); !errors.Is(err, ErrNotEmpty) {
		t.Errorf("Delete() error = %v, want ErrNotEmpty", err)
	}

	empty, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Empty"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(ctx, empty.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestOccupancyIsDerived(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Recovery"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	occ, err := svc.GetOccupancy(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetOccupancy() error = %v", err)
	}
	if occ.Occupied != 0 {
		t.Errorf("occupied = %d, want 0", occ.Occupied)
	}

	addPatient(t, client, "a@example.com", d)
	p := addPatient(t, client, "b@example.com", d)

	occ, err = svc.GetOccupancy(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetOccupancy() error = %v", err)
	}
	if occ.Occupied != 2 {
		t.Errorf("occupied = %d, want 2", occ.Occupied)
	}

	// Soft-deleted patients do not count.
	now := time.Now()
	if _, err := client.Patient.UpdateOne(p).SetDeletedAt(now).Save(ctx); err != nil {
		t.Fatalf("soft delete patient: %v", err)
	}

	occ, err = svc.GetOccupancy(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetOccupancy() error = %v", err)
	}
	if occ.Occupied != 1 {
		t.Errorf("occupied after soft delete = %d, want 1", occ.Occupied)
	}
}

func TestSetStatus(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDepartmentRequest{Name: "Radiology"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	d, err = svc.SetStatus(ctx, d.ID, false)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if d.IsOpen {
		t.Error("department should be closed")
	}

	ds, err := svc.List(ctx, ListDepartmentsRequest{OpenOnly: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, got := range ds {
		if got.ID == d.ID {
			t.Error("closed department should not appear in open-only listing")
		}
	}
}
