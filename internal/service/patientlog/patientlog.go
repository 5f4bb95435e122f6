// Package patientlog manages the append-only activity trail attached to
// every patient record. Entries are never updated or deleted once written.
package patientlog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/repo"
	entpatient "github.com/aramhealth/hms_backend/internal/repo/patient"
	entpatientlog "github.com/aramhealth/hms_backend/internal/repo/patientlog"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AppendRequest struct {
	Description string

	// LogType and Priority are optional. When omitted they are inferred
	// from the description keywords.
	LogType  *string
	Priority *string
}

type ListRequest struct {
	LogType  *string
	Priority *string
	Limit    int
}

// ActivitySummary aggregates a patient's recent log activity.
type ActivitySummary struct {
	Total       int
	PerType     map[string]int
	PerPriority map[string]int

	// Recent holds the newest descriptions, most recent first.
	Recent []string
}

const recentEntries = 5

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Append writes a new log entry for the patient. Entries are immutable.
	Append(ctx context.Context, patientID uuid.UUID, req AppendRequest) (*repo.PatientLog, error)

	// ListByPatient returns entries in chronological order (oldest first).
	ListByPatient(ctx context.Context, patientID uuid.UUID, req ListRequest) ([]*repo.PatientLog, error)

	GetByID(ctx context.Context, logID uuid.UUID) (*repo.PatientLog, error)

	// Summary aggregates the last `days` days of activity. A non-positive
	// days value covers the whole trail.
	Summary(ctx context.Context, patientID uuid.UUID, days int) (*ActivitySummary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type logService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &logService{db: db}
}

func (s *logService) Append(ctx context.Context, patientID uuid.UUID, req AppendRequest) (*repo.PatientLog, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	inferredType, inferredPriority := CategorizeDescription(description)

	logType := inferredType
	if req.LogType != nil {
		if !IsKnownLogType(*req.LogType) {
			return nil, ErrUnknownLogType
		}
		logType = *req.LogType
	}

	priority := inferredPriority
	if req.Priority != nil {
		if !IsKnownPriority(*req.Priority) {
			return nil, ErrUnknownPriority
		}
		priority = *req.Priority
	}

	entry, err := s.db.PatientLog.Create().
		SetPatientID(patientID).
		SetLogType(entpatientlog.LogType(logType)).
		SetPriority(entpatientlog.Priority(priority)).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append patient log: %w", err)
	}
	return entry, nil
}

func (s *logService) ListByPatient(ctx context.Context, patientID uuid.UUID, req ListRequest) ([]*repo.PatientLog, error) {
	q := s.db.PatientLog.Query().
		Where(entpatientlog.PatientID(patientID))

	if req.LogType != nil {
		if !IsKnownLogType(*req.LogType) {
			return nil, ErrUnknownLogType
		}
		q = q.Where(entpatientlog.LogTypeEQ(entpatientlog.LogType(*req.LogType)))
	}
	if req.Priority != nil {
		if !IsKnownPriority(*req.Priority) {
			return nil, ErrUnknownPriority
		}
		q = q.Where(entpatientlog.PriorityEQ(entpatientlog.Priority(*req.Priority)))
	}

	// Stable chronological order: created_at, then id for same-instant rows.
	q = q.Order(
		entpatientlog.ByCreatedAt(sql.OrderAsc()),
		entpatientlog.ByID(sql.OrderAsc()),
	)

	if req.Limit > 0 {
		q = q.Limit(req.Limit)
	}

	entries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient logs: %w", err)
	}
	return entries, nil
}

func (s *logService) GetByID(ctx context.Context, logID uuid.UUID) (*repo.PatientLog, error) {
	entry, err := s.db.PatientLog.Get(ctx, logID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("get patient log: %w", err)
	}
	return entry, nil
}

func (s *logService) Summary(ctx context.Context, patientID uuid.UUID, days int) (*ActivitySummary, error) {
	q := s.db.PatientLog.Query().
		Where(entpatientlog.PatientID(patientID))
	if days > 0 {
		since := time.Now().AddDate(0, 0, -days)
		q = q.Where(entpatientlog.CreatedAtGTE(since))
	}

	entries, err := q.Order(
		entpatientlog.ByCreatedAt(sql.OrderAsc()),
		entpatientlog.ByID(sql.OrderAsc()),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize patient logs: %w", err)
	}

	summary := &ActivitySummary{
		Total:       len(entries),
		PerType:     make(map[string]int),
		PerPriority: make(map[string]int),
	}
	for _, e := range entries {
		summary.PerType[string(e.LogType)]++
		summary.PerPriority[string(e.Priority)]++
	}
	for i := len(entries) - 1; i >= 0 && len(summary.Recent) < recentEntries; i-- {
		summary.Recent = append(summary.Recent, entries[i].Description)
	}
	return summary, nil
}
