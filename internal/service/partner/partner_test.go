package partner

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aramhealth/hms_backend/internal/repo"
	"github.com/aramhealth/hms_backend/internal/repo/enttest"
	patientsvc "github.com/aramhealth/hms_backend/internal/service/patient"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func addPatient(t *testing.T, client *repo.Client, email string) *repo.Patient {
	t.Helper()
	p, err := client.Patient.Create().
		SetFirstName("Linked").
		SetLastName("Patient").
		SetEmail(email).
		SetBirthDate(time.Now().AddDate(-40, 0, 0)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func basicCreateReq(email string) CreatePartnerRequest {
	return CreatePartnerRequest{
		Name:  "Acme Insurance",
		Email: email,
		TaxID: "TAX-123",
	}
}

func TestCreatePartnerValidation(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	req := basicCreateReq("contact@acme.com")
	req.Name = " "
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Create() error = %v, want ErrNameRequired", err)
	}

	req = basicCreateReq("contact@acme.com")
	req.TaxID = ""
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrTaxIDRequired) {
		t.Errorf("Create() error = %v, want ErrTaxIDRequired", err)
	}
}

func TestLinkRequiresMatchingEmail(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	patient := addPatient(t, client, "a@x.com")
	partner, err := svc.Create(ctx, basicCreateReq("b@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = svc.Link(ctx, partner.ID, patient.ID, false)
	if !errors.Is(err, ErrEmailMismatch) {
		t.Errorf("Link() error = %v, want ErrEmailMismatch", err)
	}

	// Neither record changed.
	gotPartner, err := svc.GetByID(ctx, partner.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if gotPartner.PatientID != nil {
		t.Error("partner should remain unlinked after a mismatch")
	}
	gotPatient, err := client.Patient.Get(ctx, patient.ID)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if gotPatient.Email != "a@x.com" {
		t.Errorf("patient email = %q, should be unchanged", gotPatient.Email)
	}
}

func TestLinkIsCaseInsensitive(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	patient := addPatient(t, client, "family@x.com")
	partner, err := svc.Create(ctx, basicCreateReq("Family@X.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	linked, err := svc.Link(ctx, partner.ID, patient.ID, false)
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if linked.PatientID == nil || *linked.PatientID != patient.ID {
		t.Error("partner should be linked to the patient")
	}
}

func TestOnePartnerPerPatient(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	patient := addPatient(t, client, "shared@x.com")

	first, err := svc.Create(ctx, basicCreateReq("shared@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, first.ID, patient.ID, false); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	second, err := svc.Create(ctx, basicCreateReq("shared@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, second.ID, patient.ID, false); !errors.Is(err, ErrPatientAlreadyLinked) {
		t.Errorf("Link() error = %v, want ErrPatientAlreadyLinked", err)
	}
}

func TestRelinkRequiresForce(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	pa := addPatient(t, client, "first@x.com")

	partner, err := svc.Create(ctx, basicCreateReq("first@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, partner.ID, pa.ID, false); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	other := addPatient(t, client, "second@x.com")
	if _, err := svc.Link(ctx, partner.ID, other.ID, false); !errors.Is(err, ErrPartnerLinked) {
		t.Errorf("Link() error = %v, want ErrPartnerLinked", err)
	}
}

func TestDeleteGuard(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	patient := addPatient(t, client, "guarded@x.com")
	partner, err := svc.Create(ctx, basicCreateReq("guarded@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, partner.ID, patient.ID, false); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	if err := svc.Delete(ctx, partner.ID); !errors.Is(err, ErrPartnerLinked) {
		t.Errorf("Delete() error = %v, want ErrPartnerLinked", err)
	}

	if _, err := svc.Unlink(ctx, partner.ID); err != nil {
		t.Fatalf("Unlink() error = %v", err)
	}
	if err := svc.Delete(ctx, partner.ID); err != nil {
		t.Errorf("Delete() after unlink error = %v", err)
	}
}

func TestLinkWithForceAdoptsPatientEmail(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	patient := addPatient(t, client, "a@x.com")
	partner, err := svc.Create(ctx, basicCreateReq("b@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	linked, err := svc.Link(ctx, partner.ID, patient.ID, true)
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if linked.PatientID == nil || *linked.PatientID != patient.ID {
		t.Error("partner should be linked to the patient")
	}
	if linked.Email != "a@x.com" {
		t.Errorf("partner email = %q, want the patient's a@x.com", linked.Email)
	}
}

func TestUpdateLinkedPartnerEmailSyncsPatient(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	patient := addPatient(t, client, "shared-before@x.com")
	partner, err := svc.Create(ctx, basicCreateReq("shared-before@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, partner.ID, patient.ID, false); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	after := "shared-after@x.com"
	updated, err := svc.Update(ctx, partner.ID, UpdatePartnerRequest{Email: &after})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Email != "shared-after@x.com" {
		t.Errorf("partner email = %q, want shared-after@x.com", updated.Email)
	}

	gotPatient, err := client.Patient.Get(ctx, patient.ID)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if gotPatient.Email != "shared-after@x.com" {
		t.Errorf("patient email = %q, want synced to shared-after@x.com", gotPatient.Email)
	}
}

func TestUpdateLinkedPartnerEmailRefusedWhenTaken(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	addPatient(t, client, "occupied@x.com")

	patient := addPatient(t, client, "mine@x.com")
	partner, err := svc.Create(ctx, basicCreateReq("mine@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, partner.ID, patient.ID, false); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	taken := "occupied@x.com"
	if _, err := svc.Update(ctx, partner.ID, UpdatePartnerRequest{Email: &taken}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Update() error = %v, want ErrEmailTaken", err)
	}
}

func TestPatientEmailChangeSyncsPartner(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	patients := patientsvc.New(client)
	ctx := context.Background()

	ratio := 1.0
	created, err := patients.Create(ctx, patientsvc.CreatePatientRequest{
		FirstName: "Sync",
		LastName:  "Target",
		Email:     "before@x.com",
		BirthDate: time.Now().AddDate(-40, 0, -7),
		CRRatio:   &ratio,
	})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	partner, err := svc.Create(ctx, basicCreateReq("before@x.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Link(ctx, partner.ID, created.ID, false); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	after := "after@x.com"
	if _, err := patients.Update(ctx, created.ID, patientsvc.UpdatePatientRequest{Email: &after}); err != nil {
		t.Fatalf("update patient: %v", err)
	}

	synced, err := svc.GetByID(ctx, partner.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if synced.Email != "after@x.com" {
		t.Errorf("partner email = %q, want synced to after@x.com", synced.Email)
	}
}
