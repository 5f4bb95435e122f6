// Package report composes patient data into rendered status reports.
// Rendered documents are cached briefly in Redis since printing flows
// tend to request the same report several times in a row.
package report

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/aramhealth/hms_backend/internal/repo"
	entdoctor "github.com/aramhealth/hms_backend/internal/repo/doctor"
	entpatient "github.com/aramhealth/hms_backend/internal/repo/patient"
	entpatientlog "github.com/aramhealth/hms_backend/internal/repo/patientlog"
	"github.com/aramhealth/hms_backend/internal/service/patient"
	"github.com/aramhealth/hms_backend/pkg/email"
	pkgreport "github.com/aramhealth/hms_backend/pkg/report"
)

const cacheTTL = 60 * time.Second

// Service renders patient status reports.
type Service interface {
	// PatientStatusHTML renders the full status report for one patient.
	PatientStatusHTML(ctx context.Context, patientID uuid.UUID) (string, error)

	// SendPatientStatus renders the report and emails it to the patient.
	SendPatientStatus(ctx context.Context, patientID uuid.UUID) error
}

type reportService struct {
	db     *repo.Client
	rdb    *goredis.Client
	mailer *email.Client
}

func New(db *repo.Client, rdb *goredis.Client, mailer *email.Client) Service {
	return &reportService{db: db, rdb: rdb, mailer: mailer}
}

func (s *reportService) PatientStatusHTML(ctx context.Context, patientID uuid.UUID) (string, error) {
	cacheKey := "report:patient_status:" + patientID.String()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		WithDepartment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrPatientNotFound
		}
		return "", fmt.Errorf("get patient: %w", err)
	}

	data := pkgreport.PatientStatus{
		GeneratedAt: time.Now(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Age:         patient.Age(p.BirthDate),
		BloodType:   string(p.BloodType),
		State:       string(p.State),
		PCRRequired: p.PcrRequired,
		CRRatio:     p.CrRatio,
	}

	if dept := p.Edges.Department; dept != nil {
		occupied, err := s.db.Patient.Query().
			Where(entpatient.DepartmentID(dept.ID), entpatient.DeletedAtIsNil()).
			Count(ctx)
		if err != nil {
			return "", fmt.Errorf("count department patients: %w", err)
		}
		data.Department = &pkgreport.DepartmentStatus{
			Name:     dept.Name,
			IsOpen:   dept.IsOpen,
			Capacity: dept.Capacity,
			Occupied: occupied,
		}
	}

	doctors, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		QueryDoctors().
		Order(entdoctor.ByLastName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("list patient doctors: %w", err)
	}
	data.Doctors = lo.Map(doctors, func(d *repo.Doctor, _ int) pkgreport.DoctorLine {
		spec := ""
		if d.Specialization != nil {
			spec = *d.Specialization
		}
		return pkgreport.DoctorLine{
			Name:           d.FirstName + " " + d.LastName,
			Specialization: spec,
		}
	})

	logs, err := s.db.PatientLog.Query().
		Where(entpatientlog.PatientID(patientID)).
		Order(
			entpatientlog.ByCreatedAt(sql.OrderAsc()),
			entpatientlog.ByID(sql.OrderAsc()),
		).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("list patient logs: %w", err)
	}
	data.Activity = lo.Map(logs, func(l *repo.PatientLog, _ int) pkgreport.ActivityLine {
		return pkgreport.ActivityLine{
			At:          l.CreatedAt,
			LogType:     string(l.LogType),
			Priority:    string(l.Priority),
			Description: l.Description,
		}
	})

	html, err := pkgreport.RenderPatientStatus(data)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	if s.rdb != nil {
		// Best effort. A cold cache just re-renders.
		s.rdb.Set(ctx, cacheKey, html, cacheTTL)
	}

	return html, nil
}

func (s *reportService) SendPatientStatus(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("get patient: %w", err)
	}

	html, err := s.PatientStatusHTML(ctx, patientID)
	if err != nil {
		return err
	}

	if s.mailer == nil {
		return email.ErrDisabled{}
	}

	msg := email.BuildPatientReportEmail(p.Email, p.FirstName+" "+p.LastName, html, "")
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}
