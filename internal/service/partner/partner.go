// Package partner manages the external contact records that can be linked
// to patients for billing and next-of-kin communication. A patient has at
// most one partner, and a linked partner's email always matches the
// patient's.
package partner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/repo"
	entpartner "github.com/aramhealth/hms_backend/internal/repo/partner"
	entpatient "github.com/aramhealth/hms_backend/internal/repo/patient"
	"github.com/aramhealth/hms_backend/pkg/email"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePartnerRequest struct {
	Name  string
	Email string
	TaxID string
	Phone *string

	// PatientID links the partner on creation. The email must match the
	// patient's email.
	PatientID *uuid.UUID
}

type UpdatePartnerRequest struct {
	Name  *string
	Email *string
	TaxID *string
	Phone *string
}

type ListPartnersRequest struct {
	LinkedOnly bool
	Search     string // matches name or email, case-insensitive
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePartnerRequest) (*repo.Partner, error)
	GetByID(ctx context.Context, partnerID uuid.UUID) (*repo.Partner, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*repo.Partner, error)
	List(ctx context.Context, req ListPartnersRequest) ([]*repo.Partner, error)
	Update(ctx context.Context, partnerID uuid.UUID, req UpdatePartnerRequest) (*repo.Partner, error)

	// Delete removes an unlinked partner. Linked partners must be
	// unlinked first.
	Delete(ctx context.Context, partnerID uuid.UUID) error

	// Link attaches the partner to a patient. Fails unless the emails
	// match and the patient has no partner yet. With force, a mismatched
	// partner email is overwritten with the patient's and an existing
	// link on this partner is replaced.
	Link(ctx context.Context, partnerID, patientID uuid.UUID, force bool) (*repo.Partner, error)
	Unlink(ctx context.Context, partnerID uuid.UUID) (*repo.Partner, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type partnerService struct {
	db     *repo.Client
	mailer *email.Client
}

func New(db *repo.Client, mailer *email.Client) Service {
	return &partnerService{db: db, mailer: mailer}
}

func (s *partnerService) Create(ctx context.Context, req CreatePartnerRequest) (*repo.Partner, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	taxID := strings.TrimSpace(req.TaxID)
	if taxID == "" {
		return nil, ErrTaxIDRequired
	}

	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	addr := validate.NormalizeEmail(req.Email)

	if req.Phone != nil && *req.Phone != "" {
		if err := validate.Phone(*req.Phone); err != nil {
			return nil, err
		}
	}

	var patient *repo.Patient
	if req.PatientID != nil {
		var err error
		patient, err = s.getPatient(ctx, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(addr, patient.Email) {
			return nil, ErrEmailMismatch
		}
		if err := s.checkPatientUnlinked(ctx, *req.PatientID, nil); err != nil {
			return nil, err
		}
	}

	c := s.db.Partner.Create().
		SetName(name).
		SetEmail(addr).
		SetTaxID(taxID)

	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.PatientID != nil {
		c = c.SetPatientID(*req.PatientID)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrPatientAlreadyLinked
		}
		return nil, fmt.Errorf("create partner: %w", err)
	}

	if patient != nil {
		s.notifyLinked(ctx, p, patient)
	}

	return p, nil
}

func (s *partnerService) GetByID(ctx context.Context, partnerID uuid.UUID) (*repo.Partner, error) {
	p, err := s.db.Partner.Get(ctx, partnerID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return p, nil
}

func (s *partnerService) GetByPatient(ctx context.Context, patientID uuid.UUID) (*repo.Partner, error) {
	p, err := s.db.Partner.Query().
		Where(entpartner.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("get partner by patient: %w", err)
	}
	return p, nil
}

func (s *partnerService) List(ctx context.Context, req ListPartnersRequest) ([]*repo.Partner, error) {
	q := s.db.Partner.Query()

	if req.LinkedOnly {
		q = q.Where(entpartner.PatientIDNotNil())
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpartner.Or(
			entpartner.NameContainsFold(search),
			entpartner.EmailContainsFold(search),
		))
	}

	ps, err := q.Order(entpartner.ByName(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return ps, nil
}

func (s *partnerService) Update(ctx context.Context, partnerID uuid.UUID, req UpdatePartnerRequest) (*repo.Partner, error) {
	p, err := s.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.TaxID != nil && strings.TrimSpace(*req.TaxID) == "" {
		return nil, ErrTaxIDRequired
	}
	var newEmail *string
	if req.Email != nil {
		if err := validate.Email(*req.Email); err != nil {
			return nil, err
		}
		addr := validate.NormalizeEmail(*req.Email)
		newEmail = &addr
	}
	if req.Phone != nil && *req.Phone != "" {
		if err := validate.Phone(*req.Phone); err != nil {
			return nil, err
		}
	}

	// Editing a linked partner's email carries over to the patient record.
	// Last writer wins on either side.
	if newEmail != nil && p.PatientID != nil && !strings.EqualFold(*newEmail, p.Email) {
		return s.updateWithEmailSync(ctx, p, req, *newEmail)
	}

	u := applyPartnerUpdate(s.db.Partner.UpdateOne(p), req, newEmail)
	p, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return p, nil
}

// updateWithEmailSync writes the partner edit and the patient email change
// in one transaction. The new address must stay unique among live patients.
func (s *partnerService) updateWithEmailSync(ctx context.Context, p *repo.Partner, req UpdatePartnerRequest, addr string) (updated *repo.Partner, err error) {
	patientID := *p.PatientID

	taken, err := s.db.Patient.Query().
		Where(
			entpatient.EmailEqualFold(addr),
			entpatient.DeletedAtIsNil(),
			entpatient.IDNEQ(patientID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.Patient.UpdateOneID(patientID).SetEmail(addr).Exec(ctx); err != nil {
		err = fmt.Errorf("sync patient email: %w", err)
		return nil, err
	}

	u := applyPartnerUpdate(tx.Partner.UpdateOneID(p.ID), req, &addr)
	updated, err = u.Save(ctx)
	if err != nil {
		err = fmt.Errorf("update partner: %w", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("commit transaction: %w", err)
		return nil, err
	}
	return updated, nil
}

func applyPartnerUpdate(u *repo.PartnerUpdateOne, req UpdatePartnerRequest, email *string) *repo.PartnerUpdateOne {
	if req.Name != nil {
		u = u.SetName(strings.TrimSpace(*req.Name))
	}
	if req.TaxID != nil {
		u = u.SetTaxID(strings.TrimSpace(*req.TaxID))
	}
	if email != nil {
		u = u.SetEmail(*email)
	}
	if req.Phone != nil {
		if *req.Phone != "" {
			u = u.SetPhone(*req.Phone)
		} else {
			u = u.ClearPhone()
		}
	}
	return u
}

func (s *partnerService) Delete(ctx context.Context, partnerID uuid.UUID) error {
	p, err := s.GetByID(ctx, partnerID)
	if err != nil {
		return err
	}
	if p.PatientID != nil {
		return ErrPartnerLinked
	}

	if err := s.db.Partner.DeleteOneID(partnerID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrPartnerNotFound
		}
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}

func (s *partnerService) Link(ctx context.Context, partnerID, patientID uuid.UUID, force bool) (*repo.Partner, error) {
	p, err := s.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if p.PatientID != nil {
		if *p.PatientID == patientID {
			return p, nil
		}
		if !force {
			return nil, ErrPartnerLinked
		}
	}

	patient, err := s.getPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	// With force the partner adopts the patient's email; without it the
	// addresses must already agree.
	mismatch := !strings.EqualFold(p.Email, patient.Email)
	if mismatch && !force {
		return nil, ErrEmailMismatch
	}

	if err := s.checkPatientUnlinked(ctx, patientID, &partnerID); err != nil {
		return nil, err
	}

	u := s.db.Partner.UpdateOne(p).SetPatientID(patientID)
	if mismatch {
		u = u.SetEmail(patient.Email)
	}
	p, err = u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrPatientAlreadyLinked
		}
		return nil, fmt.Errorf("link partner: %w", err)
	}

	s.notifyLinked(ctx, p, patient)

	return p, nil
}

func (s *partnerService) Unlink(ctx context.Context, partnerID uuid.UUID) (*repo.Partner, error) {
	p, err := s.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if p.PatientID == nil {
		return nil, ErrPartnerNotLinked
	}

	p, err = s.db.Partner.UpdateOne(p).ClearPatientID().Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("unlink partner: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *partnerService) getPatient(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	patient, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return patient, nil
}

func (s *partnerService) checkPatientUnlinked(ctx context.Context, patientID uuid.UUID, exclude *uuid.UUID) error {
	q := s.db.Partner.Query().Where(entpartner.PatientID(patientID))
	if exclude != nil {
		q = q.Where(entpartner.IDNEQ(*exclude))
	}
	linked, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient link: %w", err)
	}
	if linked {
		return ErrPatientAlreadyLinked
	}
	return nil
}

// notifyLinked emails the partner about the new link. Failures are logged,
// never surfaced: the link itself already succeeded.
func (s *partnerService) notifyLinked(ctx context.Context, p *repo.Partner, patient *repo.Patient) {
	if s.mailer == nil {
		return
	}

	msg := email.BuildPartnerLinkedEmail(email.PartnerEmailData{
		PartnerName: p.Name,
		PatientName: patient.FirstName + " " + patient.LastName,
		Email:       p.Email,
	})
	if err := s.mailer.Send(ctx, msg); err != nil {
		if _, disabled := err.(email.ErrDisabled); !disabled {
			slog.Warn("partner link notification failed", "partner_id", p.ID, "error", err)
		}
	}
}
