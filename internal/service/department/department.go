package department

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/repo"
	entdepartment "github.com/aramhealth/hms_backend/internal/repo/department"
	entpatient "github.com/aramhealth/hms_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateDepartmentRequest struct {
	Name     string
	Capacity *int
	IsOpen   *bool
}

type UpdateDepartmentRequest struct {
	Name     *string
	Capacity *int
	IsOpen   *bool
}

type ListDepartmentsRequest struct {
	// OpenOnly restricts the listing to departments accepting admissions.
	OpenOnly bool
}

// Occupancy pairs a department with its live patient count. The count is
// always derived from the patient table, never cached on the department row.
type Occupancy struct {
	Department *repo.Department
	Occupied   int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (*repo.Department, error)
	GetByID(ctx context.Context, departmentID uuid.UUID) (*repo.Department, error)
	List(ctx context.Context, req ListDepartmentsRequest) ([]*repo.Department, error)
	Update(ctx context.Context, departmentID uuid.UUID, req UpdateDepartmentRequest) (*repo.Department, error)
	Delete(ctx context.Context, departmentID uuid.UUID) error

	// SetStatus opens or closes a department for admissions. Closing a
	// department does not move the patients already in it.
	SetStatus(ctx context.Context, departmentID uuid.UUID, open bool) (*repo.Department, error)

	// GetOccupancy returns the department with its current patient count.
	GetOccupancy(ctx context.Context, departmentID uuid.UUID) (*Occupancy, error)
	ListOccupancies(ctx context.Context) ([]*Occupancy, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type departmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &departmentService{db: db}
}

func (s *departmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*repo.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.db.Department.Query().
		Where(entdepartment.NameEqualFold(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check department name: %w", err)
	}
	if exists {
		return nil, ErrNameTaken
	}

	c := s.db.Department.Create().SetName(name)

	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, ErrNegativeCapacity
		}
		c = c.SetCapacity(*req.Capacity)
	}
	if req.IsOpen != nil {
		c = c.SetIsOpen(*req.IsOpen)
	}

	d, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

func (s *departmentService) GetByID(ctx context.Context, departmentID uuid.UUID) (*repo.Department, error) {
	d, err := s.db.Department.Get(ctx, departmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

func (s *departmentService) List(ctx context.Context, req ListDepartmentsRequest) ([]*repo.Department, error) {
	q := s.db.Department.Query()
	if req.OpenOnly {
		q = q.Where(entdepartment.IsOpen(true))
	}
	ds, err := q.Order(entdepartment.ByName(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return ds, nil
}

func (s *departmentService) Update(ctx context.Context, departmentID uuid.UUID, req UpdateDepartmentRequest) (*repo.Department, error) {
	d, err := s.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	u := s.db.Department.UpdateOne(d)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		if !strings.EqualFold(name, d.Name) {
			taken, err := s.db.Department.Query().
				Where(entdepartment.NameEqualFold(name), entdepartment.IDNEQ(departmentID)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check department name: %w", err)
			}
			if taken {
				return nil, ErrNameTaken
			}
		}
		u = u.SetName(name)
	}

	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, ErrNegativeCapacity
		}
		// Shrinking below the live count would strand patients.
		if *req.Capacity > 0 {
			occupied, err := s.countPatients(ctx, departmentID)
			if err != nil {
				return nil, err
			}
			if occupied > *req.Capacity {
				return nil, ErrCapacityBelowCount
			}
		}
		u = u.SetCapacity(*req.Capacity)
	}

	if req.IsOpen != nil {
		u = u.SetIsOpen(*req.IsOpen)
	}

	d, err = u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return d, nil
}

func (s *departmentService) Delete(ctx context.Context, departmentID uuid.UUID) error {
	if _, err := s.GetByID(ctx, departmentID); err != nil {
		return err
	}

	occupied, err := s.countPatients(ctx, departmentID)
	if err != nil {
		return err
	}
	if occupied > 0 {
		return ErrNotEmpty
	}

	if err := s.db.Department.DeleteOneID(departmentID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

func (s *departmentService) SetStatus(ctx context.Context, departmentID uuid.UUID, open bool) (*repo.Department, error) {
	d, err := s.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	d, err = s.db.Department.UpdateOne(d).SetIsOpen(open).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set department status: %w", err)
	}
	return d, nil
}

func (s *departmentService) GetOccupancy(ctx context.Context, departmentID uuid.UUID) (*Occupancy, error) {
	d, err := s.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	occupied, err := s.countPatients(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return &Occupancy{Department: d, Occupied: occupied}, nil
}

func (s *departmentService) ListOccupancies(ctx context.Context) ([]*Occupancy, error) {
	ds, err := s.List(ctx, ListDepartmentsRequest{})
	if err != nil {
		return nil, err
	}

	out := make([]*Occupancy, 0, len(ds))
	for _, d := range ds {
		occupied, err := s.countPatients(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &Occupancy{Department: d, Occupied: occupied})
	}
	return out, nil
}

func (s *departmentService) countPatients(ctx context.Context, departmentID uuid.UUID) (int, error) {
	n, err := s.db.Patient.Query().
		Where(entpatient.DepartmentID(departmentID), entpatient.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count department patients: %w", err)
	}
	return n, nil
}
