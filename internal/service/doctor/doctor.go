package doctor

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/repo"
	entdoctor "github.com/aramhealth/hms_backend/internal/repo/doctor"
	entpatient "github.com/aramhealth/hms_backend/internal/repo/patient"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateDoctorRequest struct {
	FirstName      string
	LastName       string
	Specialization *string
	LicenseNumber  *string
	Email          *string
	Phone          *string
}

type UpdateDoctorRequest struct {
	FirstName      *string
	LastName       *string
	Specialization *string
	LicenseNumber  *string
	Email          *string
	Phone          *string
	IsActive       *bool
}

type ListDoctorsRequest struct {
	ActiveOnly     bool
	Specialization *string
	Search         string // matches first or last name, case-insensitive
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateDoctorRequest) (*repo.Doctor, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)
	List(ctx context.Context, req ListDoctorsRequest) ([]*repo.Doctor, error)
	Update(ctx context.Context, doctorID uuid.UUID, req UpdateDoctorRequest) (*repo.Doctor, error)

	// ToggleActive flips the availability flag. Deactivating a doctor
	// keeps existing patient assignments intact.
	ToggleActive(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)

	// PatientCount reports how many live patient records the doctor is
	// assigned to.
	PatientCount(ctx context.Context, doctorID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) Create(ctx context.Context, req CreateDoctorRequest) (*repo.Doctor, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return nil, ErrNameRequired
	}

	if req.Email != nil && *req.Email != "" {
		if err := validate.Email(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil && *req.Phone != "" {
		if err := validate.Phone(*req.Phone); err != nil {
			return nil, err
		}
	}

	c := s.db.Doctor.Create().
		SetFirstName(first).
		SetLastName(last)

	if req.Specialization != nil {
		c = c.SetNillableSpecialization(req.Specialization)
	}
	if req.LicenseNumber != nil {
		c = c.SetNillableLicenseNumber(req.LicenseNumber)
	}
	if req.Email != nil && *req.Email != "" {
		c = c.SetEmail(validate.NormalizeEmail(*req.Email))
	}
	if req.Phone != nil && *req.Phone != "" {
		c = c.SetNillablePhone(req.Phone)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) List(ctx context.Context, req ListDoctorsRequest) ([]*repo.Doctor, error) {
	q := s.db.Doctor.Query()

	if req.ActiveOnly {
		q = q.Where(entdoctor.IsActive(true))
	}
	if req.Specialization != nil && *req.Specialization != "" {
		q = q.Where(entdoctor.SpecializationEqualFold(*req.Specialization))
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entdoctor.Or(
			entdoctor.FirstNameContainsFold(search),
			entdoctor.LastNameContainsFold(search),
		))
	}

	ds, err := q.Order(
		entdoctor.ByLastName(sql.OrderAsc()),
		entdoctor.ByFirstName(sql.OrderAsc()),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return ds, nil
}

func (s *doctorService) Update(ctx context.Context, doctorID uuid.UUID, req UpdateDoctorRequest) (*repo.Doctor, error) {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	u := s.db.Doctor.UpdateOne(d)

	if req.FirstName != nil {
		first := strings.TrimSpace(*req.FirstName)
		if first == "" {
			return nil, ErrNameRequired
		}
		u = u.SetFirstName(first)
	}
	if req.LastName != nil {
		last := strings.TrimSpace(*req.LastName)
		if last == "" {
			return nil, ErrNameRequired
		}
		u = u.SetLastName(last)
	}
	if req.Specialization != nil {
		u = u.SetNillableSpecialization(req.Specialization)
	}
	if req.LicenseNumber != nil {
		u = u.SetNillableLicenseNumber(req.LicenseNumber)
	}
	if req.Email != nil {
		if *req.Email != "" {
			if err := validate.Email(*req.Email); err != nil {
				return nil, err
			}
			u = u.SetEmail(validate.NormalizeEmail(*req.Email))
		} else {
			u = u.ClearEmail()
		}
	}
	if req.Phone != nil {
		if *req.Phone != "" {
			if err := validate.Phone(*req.Phone); err != nil {
				return nil, err
			}
			u = u.SetPhone(*req.Phone)
		} else {
			u = u.ClearPhone()
		}
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}

	d, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) ToggleActive(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	d, err = s.db.Doctor.UpdateOne(d).SetIsActive(!d.IsActive).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("toggle doctor active: %w", err)
	}
	return d, nil
}

func (s *doctorService) PatientCount(ctx context.Context, doctorID uuid.UUID) (int, error) {
	if _, err := s.GetByID(ctx, doctorID); err != nil {
		return 0, err
	}

	n, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID)).
		QueryPatients().
		Where(entpatient.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count doctor patients: %w", err)
	}
	return n, nil
}
