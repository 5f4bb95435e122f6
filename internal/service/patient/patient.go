// Package patient implements the patient record lifecycle: registration,
// admission rules, condition tracking and the activity trail that documents
// every change.
package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/repo"
	entdepartment "github.com/aramhealth/hms_backend/internal/repo/department"
	entdoctor "github.com/aramhealth/hms_backend/internal/repo/doctor"
	entpartner "github.com/aramhealth/hms_backend/internal/repo/partner"
	entpatient "github.com/aramhealth/hms_backend/internal/repo/patient"
	entpatientlog "github.com/aramhealth/hms_backend/internal/repo/patientlog"
	"github.com/aramhealth/hms_backend/internal/service/department"
	"github.com/aramhealth/hms_backend/internal/service/patientlog"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

const (
	// Patients younger than this are automatically flagged for a PCR test.
	autoPCRAgeLimit = 30

	// Medical history is only carried for patients at or above this age.
	historyAgeLimit = 50
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreatePatientRequest struct {
	FirstName      string
	LastName       string
	Email          string
	BirthDate      time.Time
	Address        *string
	MedicalHistory *string
	BloodType      *string
	PCRRequired    *bool
	CRRatio        *float64
	DepartmentID   *uuid.UUID
}

type UpdatePatientRequest struct {
	FirstName      *string
	LastName       *string
	Email          *string
	BirthDate      *time.Time
	Address        *string
	MedicalHistory *string
	BloodType      *string
	PCRRequired    *bool
	CRRatio        *float64
	State          *string

	// DepartmentID moves the patient. Setting it to uuid.Nil discharges
	// the patient from their current department.
	DepartmentID *uuid.UUID
}

type ListPatientsRequest struct {
	Page         int
	PerPage      int
	DepartmentID *uuid.UUID
	DoctorID     *uuid.UUID
	State        *string
	BloodType    *string
	Search       string // matches name or email, case-insensitive
	Order        string // asc | desc, by created_at
}

// MedicalSummary is the condensed ward-desk view of one record.
type MedicalSummary struct {
	PatientID   uuid.UUID
	Name        string
	Age         int
	BloodType   string
	State       string
	PCRRequired bool
	CRRatio     *float64
	Department  string
	DoctorCount int
}

// PatientView is a patient row with the derived fields callers usually want.
type PatientView struct {
	*repo.Patient
	Age int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (*PatientView, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*PatientView, error)
	List(ctx context.Context, req ListPatientsRequest) (*PaginatedResult[*PatientView], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdatePatientRequest) (*PatientView, error)

	// Delete soft-deletes the record. The activity trail is preserved.
	Delete(ctx context.Context, patientID uuid.UUID) error

	// SetState records a condition change and logs it.
	SetState(ctx context.Context, patientID uuid.UUID, state string) (*PatientView, error)

	GetMedicalSummary(ctx context.Context, patientID uuid.UUID) (*MedicalSummary, error)

	// Doctor assignment. Assignments survive everything except a
	// department move, which clears the care team.
	AssignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) error
	UnassignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) error
	ListDoctors(ctx context.Context, patientID uuid.UUID) ([]*repo.Doctor, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

var knownStates = map[string]struct{}{
	"undetermined": {},
	"good":         {},
	"fair":         {},
	"serious":      {},
}

var knownBloodTypes = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

func (s *patientService) Create(ctx context.Context, req CreatePatientRequest) (*PatientView, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return nil, ErrNameRequired
	}

	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	email := validate.NormalizeEmail(req.Email)

	if req.BirthDate.IsZero() {
		return nil, ErrBirthDateRequired
	}
	if req.BirthDate.After(time.Now()) {
		return nil, ErrBirthDateInFuture
	}

	if req.BloodType != nil {
		if _, ok := knownBloodTypes[*req.BloodType]; !ok {
			return nil, ErrUnknownBloodType
		}
	}

	age := Age(req.BirthDate)

	// Under-30 patients always get a PCR test, whatever the caller sent.
	pcrRequired := age < autoPCRAgeLimit
	if req.PCRRequired != nil && *req.PCRRequired {
		pcrRequired = true
	}

	if req.CRRatio != nil && *req.CRRatio < 0 {
		return nil, ErrCRRatioNegative
	}
	if pcrRequired && req.CRRatio == nil {
		return nil, ErrCRRatioRequired
	}

	// History is only kept for older patients.
	medicalHistory := req.MedicalHistory
	if age < historyAgeLimit {
		medicalHistory = nil
	}

	taken, err := s.db.Patient.Query().
		Where(entpatient.EmailEqualFold(email), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient email: %w", err)
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	if req.DepartmentID != nil {
		if err := s.checkAdmission(ctx, *req.DepartmentID, nil); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	c := tx.Patient.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail(email).
		SetBirthDate(req.BirthDate).
		SetPcrRequired(pcrRequired)

	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}
	if medicalHistory != nil {
		c = c.SetNillableMedicalHistory(medicalHistory)
	}
	if req.BloodType != nil {
		c = c.SetBloodType(entpatient.BloodType(*req.BloodType))
	}
	if req.CRRatio != nil {
		c = c.SetNillableCrRatio(req.CRRatio)
	}
	if req.DepartmentID != nil {
		c = c.SetDepartmentID(*req.DepartmentID)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	_, err = tx.PatientLog.Create().
		SetPatientID(p.ID).
		SetLogType(entpatientlog.LogType(patientlog.TypeCreation)).
		SetPriority(entpatientlog.Priority(patientlog.PriorityNormal)).
		SetDescription(fmt.Sprintf("Patient record created for %s %s", first, last)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("write creation log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.view(p), nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*PatientView, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		WithDepartment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return s.view(p), nil
}

func (s *patientService) List(ctx context.Context, req ListPatientsRequest) (*PaginatedResult[*PatientView], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil())

	if req.DepartmentID != nil {
		q = q.Where(entpatient.DepartmentID(*req.DepartmentID))
	}
	if req.DoctorID != nil {
		q = q.Where(entpatient.HasDoctorsWith(entdoctor.ID(*req.DoctorID)))
	}
	if req.State != nil {
		if _, ok := knownStates[*req.State]; !ok {
			return nil, ErrUnknownState
		}
		q = q.Where(entpatient.StateEQ(entpatient.State(*req.State)))
	}
	if req.BloodType != nil {
		if _, ok := knownBloodTypes[*req.BloodType]; !ok {
			return nil, ErrUnknownBloodType
		}
		q = q.Where(entpatient.BloodTypeEQ(entpatient.BloodType(*req.BloodType)))
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(search),
			entpatient.LastNameContainsFold(search),
			entpatient.EmailContainsFold(search),
		))
	}

	if req.Order == "asc" {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.WithDepartment().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	views := make([]*PatientView, 0, len(patients))
	for _, p := range patients {
		views = append(views, s.view(p))
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*PatientView]{
		Data:       views,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdatePatientRequest) (*PatientView, error) {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return nil, err
	}

	// Resolve what the record will look like after the update so the
	// PCR and CR ratio rules check the final state, not the delta.
	birthDate := p.BirthDate
	if req.BirthDate != nil {
		if req.BirthDate.After(time.Now()) {
			return nil, ErrBirthDateInFuture
		}
		birthDate = *req.BirthDate
	}
	age := Age(birthDate)

	pcrRequired := p.PcrRequired
	if req.PCRRequired != nil {
		pcrRequired = *req.PCRRequired
	}
	if age < autoPCRAgeLimit {
		pcrRequired = true
	}

	crRatio := p.CrRatio
	if req.CRRatio != nil {
		if *req.CRRatio < 0 {
			return nil, ErrCRRatioNegative
		}
		crRatio = req.CRRatio
	}
	if pcrRequired && crRatio == nil {
		return nil, ErrCRRatioRequired
	}

	var newEmail *string
	if req.Email != nil {
		if err := validate.Email(*req.Email); err != nil {
			return nil, err
		}
		email := validate.NormalizeEmail(*req.Email)
		if !strings.EqualFold(email, p.Email) {
			taken, err := s.db.Patient.Query().
				Where(
					entpatient.EmailEqualFold(email),
					entpatient.DeletedAtIsNil(),
					entpatient.IDNEQ(patientID),
				).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check patient email: %w", err)
			}
			if taken {
				return nil, ErrDuplicateEmail
			}
		}
		newEmail = &email
	}

	if req.State != nil {
		if _, ok := knownStates[*req.State]; !ok {
			return nil, ErrUnknownState
		}
	}
	if req.BloodType != nil {
		if _, ok := knownBloodTypes[*req.BloodType]; !ok {
			return nil, ErrUnknownBloodType
		}
	}

	departmentChanged := false
	if req.DepartmentID != nil && *req.DepartmentID != uuid.Nil {
		current := uuid.Nil
		if p.DepartmentID != nil {
			current = *p.DepartmentID
		}
		if *req.DepartmentID != current {
			if err := s.checkAdmission(ctx, *req.DepartmentID, &patientID); err != nil {
				return nil, err
			}
			departmentChanged = true
		}
	}
	discharging := req.DepartmentID != nil && *req.DepartmentID == uuid.Nil && p.DepartmentID != nil

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u := tx.Patient.UpdateOneID(patientID)

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
	if newEmail != nil {
		u = u.SetEmail(*newEmail)
	}
	if req.BirthDate != nil {
		u = u.SetBirthDate(*req.BirthDate)
	}
	if req.Address != nil {
		u = u.SetNillableAddress(req.Address)
	}
	if req.MedicalHistory != nil {
		// Same age gate as creation.
		if age < historyAgeLimit {
			u = u.ClearMedicalHistory()
		} else {
			u = u.SetNillableMedicalHistory(req.MedicalHistory)
		}
	}
	if req.BloodType != nil {
		u = u.SetBloodType(entpatient.BloodType(*req.BloodType))
	}
	u = u.SetPcrRequired(pcrRequired)
	if req.CRRatio != nil {
		u = u.SetNillableCrRatio(req.CRRatio)
	}
	if req.State != nil {
		u = u.SetState(entpatient.State(*req.State))
	}

	if departmentChanged {
		// A department move resets the care team.
		u = u.SetDepartmentID(*req.DepartmentID).ClearDoctors()
	}
	if discharging {
		u = u.ClearDepartmentID().ClearDoctors()
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	// Partner contact records mirror the patient's email.
	if newEmail != nil && !strings.EqualFold(*newEmail, p.Email) {
		_, err = tx.Partner.Update().
			Where(entpartner.PatientID(patientID)).
			SetEmail(*newEmail).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("sync partner email: %w", err)
		}
	}

	if req.State != nil && string(p.State) != *req.State {
		priority := patientlog.PriorityNormal
		if *req.State == "serious" {
			priority = patientlog.PriorityHigh
		}
		_, err = tx.PatientLog.Create().
			SetPatientID(patientID).
			SetLogType(entpatientlog.LogType(patientlog.TypeStateChange)).
			SetPriority(entpatientlog.Priority(priority)).
			SetDescription(fmt.Sprintf("Condition changed from %s to %s", p.State, *req.State)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("write state change log: %w", err)
		}
	}

	if departmentChanged || discharging {
		desc := "Patient discharged from department"
		if departmentChanged {
			desc = "Patient moved to a different department; care team cleared"
		}
		_, err = tx.PatientLog.Create().
			SetPatientID(patientID).
			SetLogType(entpatientlog.LogType(patientlog.TypeDepartmentChange)).
			SetPriority(entpatientlog.Priority(patientlog.PriorityNormal)).
			SetDescription(desc).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("write department change log: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.view(updated), nil
}

func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return err
	}

	_, err = s.db.Patient.UpdateOne(p).
		SetDeletedAt(time.Now()).
		ClearDepartmentID().
		ClearDoctors().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (s *patientService) SetState(ctx context.Context, patientID uuid.UUID, state string) (*PatientView, error) {
	return s.Update(ctx, patientID, UpdatePatientRequest{State: &state})
}

func (s *patientService) GetMedicalSummary(ctx context.Context, patientID uuid.UUID) (*MedicalSummary, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		WithDepartment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	doctorCount, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		QueryDoctors().
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patient doctors: %w", err)
	}

	summary := &MedicalSummary{
		PatientID:   p.ID,
		Name:        p.FirstName + " " + p.LastName,
		Age:         Age(p.BirthDate),
		BloodType:   string(p.BloodType),
		State:       string(p.State),
		PCRRequired: p.PcrRequired,
		CRRatio:     p.CrRatio,
		DoctorCount: doctorCount,
	}
	if dept := p.Edges.Department; dept != nil {
		summary.Department = dept.Name
	}
	return summary, nil
}

func (s *patientService) AssignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) error {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return err
	}

	d, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("get doctor: %w", err)
	}
	if !d.IsActive {
		return ErrDoctorInactive
	}

	assigned, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		QueryDoctors().
		Where(entdoctor.ID(doctorID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor assignment: %w", err)
	}
	if assigned {
		return ErrDoctorAssigned
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.Patient.UpdateOne(p).AddDoctorIDs(doctorID).Exec(ctx); err != nil {
		return fmt.Errorf("assign doctor: %w", err)
	}

	_, err = tx.PatientLog.Create().
		SetPatientID(patientID).
		SetLogType(entpatientlog.LogType(patientlog.TypeDoctorAssignment)).
		SetPriority(entpatientlog.Priority(patientlog.PriorityNormal)).
		SetDescription(fmt.Sprintf("Doctor %s %s assigned", d.FirstName, d.LastName)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("write doctor assignment log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *patientService) UnassignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) error {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return err
	}

	d, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("get doctor: %w", err)
	}

	assigned, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		QueryDoctors().
		Where(entdoctor.ID(doctorID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor assignment: %w", err)
	}
	if !assigned {
		return ErrDoctorNotAssigned
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.Patient.UpdateOne(p).RemoveDoctorIDs(doctorID).Exec(ctx); err != nil {
		return fmt.Errorf("unassign doctor: %w", err)
	}

	_, err = tx.PatientLog.Create().
		SetPatientID(patientID).
		SetLogType(entpatientlog.LogType(patientlog.TypeDoctorAssignment)).
		SetPriority(entpatientlog.Priority(patientlog.PriorityNormal)).
		SetDescription(fmt.Sprintf("Doctor %s %s unassigned", d.FirstName, d.LastName)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("write doctor assignment log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *patientService) ListDoctors(ctx context.Context, patientID uuid.UUID) ([]*repo.Doctor, error) {
	if _, err := s.getRow(ctx, patientID); err != nil {
		return nil, err
	}

	ds, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		QueryDoctors().
		Order(entdoctor.ByLastName(sql.OrderAsc()), entdoctor.ByFirstName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient doctors: %w", err)
	}
	return ds, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *patientService) getRow(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) view(p *repo.Patient) *PatientView {
	return &PatientView{Patient: p, Age: Age(p.BirthDate)}
}

// checkAdmission verifies a department can take one more patient. The
// excluded patient id keeps a same-department update from counting itself.
func (s *patientService) checkAdmission(ctx context.Context, departmentID uuid.UUID, exclude *uuid.UUID) error {
	d, err := s.db.Department.Query().
		Where(entdepartment.ID(departmentID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("get department: %w", err)
	}

	if !d.IsOpen {
		return department.ErrDepartmentClosed
	}

	if d.Capacity > 0 {
		q := s.db.Patient.Query().
			Where(entpatient.DepartmentID(departmentID), entpatient.DeletedAtIsNil())
		if exclude != nil {
			q = q.Where(entpatient.IDNEQ(*exclude))
		}
		occupied, err := q.Count(ctx)
		if err != nil {
			return fmt.Errorf("count department patients: %w", err)
		}
		if occupied >= d.Capacity {
			return department.ErrDepartmentFull
		}
	}

	return nil
}
