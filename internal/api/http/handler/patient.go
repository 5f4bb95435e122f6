package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/service/department"
	"github.com/aramhealth/hms_backend/internal/service/patient"
	"github.com/aramhealth/hms_backend/internal/service/patientlog"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

type PatientHandler struct {
	svc  patient.Service
	logs patientlog.Service
}

func NewPatientHandler(svc patient.Service, logs patientlog.Service) *PatientHandler {
	return &PatientHandler{svc: svc, logs: logs}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNameRequired),
		errors.Is(err, patient.ErrBirthDateRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrBirthDateInFuture),
		errors.Is(err, patient.ErrCRRatioRequired),
		errors.Is(err, patient.ErrCRRatioNegative),
		errors.Is(err, patient.ErrUnknownBloodType),
		errors.Is(err, patient.ErrUnknownState),
		errors.Is(err, validate.ErrInvalidEmail):
		return unprocessable(c, err.Error())
	case errors.Is(err, patient.ErrDuplicateEmail),
		errors.Is(err, patient.ErrDoctorAssigned),
		errors.Is(err, patient.ErrDoctorNotAssigned),
		errors.Is(err, patient.ErrDoctorInactive):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, department.ErrDepartmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, department.ErrDepartmentFull),
		errors.Is(err, department.ErrDepartmentClosed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func mapPatientLogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patientlog.ErrPatientNotFound),
		errors.Is(err, patientlog.ErrLogNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patientlog.ErrEmptyDescription):
		return badRequest(c, err.Error())
	case errors.Is(err, patientlog.ErrUnknownLogType),
		errors.Is(err, patientlog.ErrUnknownPriority):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
		DepartmentID string `query:"department_id"`
		DoctorID     string `query:"doctor_id"`
		State        string `query:"state"`
		BloodType    string `query:"blood_type"`
		Search       string `query:"search"`
		Order        string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListPatientsRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Order:   q.Order,
	}
	if q.DepartmentID != "" {
		id, err := uuid.Parse(q.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.State != "" {
		req.State = &q.State
	}
	if q.BloodType != "" {
		req.BloodType = &q.BloodType
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName      string     `json:"first_name"`
		LastName       string     `json:"last_name"`
		Email          string     `json:"email"`
		BirthDate      *time.Time `json:"birth_date"`
		Address        *string    `json:"address"`
		MedicalHistory *string    `json:"medical_history"`
		BloodType      *string    `json:"blood_type"`
		PCRRequired    *bool      `json:"pcr_required"`
		CRRatio        *float64   `json:"cr_ratio"`
		DepartmentID   *string    `json:"department_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.CreatePatientRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Address:        body.Address,
		MedicalHistory: body.MedicalHistory,
		BloodType:      body.BloodType,
		PCRRequired:    body.PCRRequired,
		CRRatio:        body.CRRatio,
	}
	if body.BirthDate != nil {
		req.BirthDate = *body.BirthDate
	}
	if body.DepartmentID != nil {
		id, err := uuid.Parse(*body.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName      *string    `json:"first_name"`
		LastName       *string    `json:"last_name"`
		Email          *string    `json:"email"`
		BirthDate      *time.Time `json:"birth_date"`
		Address        *string    `json:"address"`
		MedicalHistory *string    `json:"medical_history"`
		BloodType      *string    `json:"blood_type"`
		PCRRequired    *bool      `json:"pcr_required"`
		CRRatio        *float64   `json:"cr_ratio"`
		State          *string    `json:"state"`

		// department_id moves the patient; the zero uuid discharges them.
		DepartmentID *string `json:"department_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdatePatientRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		BirthDate:      body.BirthDate,
		Address:        body.Address,
		MedicalHistory: body.MedicalHistory,
		BloodType:      body.BloodType,
		PCRRequired:    body.PCRRequired,
		CRRatio:        body.CRRatio,
		State:          body.State,
	}
	if body.DepartmentID != nil {
		if *body.DepartmentID == "" {
			discharge := uuid.Nil
			req.DepartmentID = &discharge
		} else {
			deptID, err := uuid.Parse(*body.DepartmentID)
			if err != nil {
				return badRequest(c, "invalid department_id")
			}
			req.DepartmentID = &deptID
		}
	}

	p, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// POST /patients/:id/state
func (h *PatientHandler) SetState(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		State string `json:"state"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.State == "" {
		return badRequest(c, "state is required")
	}

	p, err := h.svc.SetState(c.Context(), id, body.State)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /patients/:id/summary
func (h *PatientHandler) MedicalSummary(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	summary, err := h.svc.GetMedicalSummary(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, summary)
}

// ---------------------------------------------------------------------------
// Care team
// ---------------------------------------------------------------------------

// GET /patients/:id/doctors
func (h *PatientHandler) ListDoctors(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	ds, err := h.svc.ListDoctors(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, ds)
}

// POST /patients/:id/doctors/:did
func (h *PatientHandler) AssignDoctor(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	doctorID, err := uuid.Parse(c.Params("did"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.AssignDoctor(c.Context(), patientID, doctorID); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// DELETE /patients/:id/doctors/:did
func (h *PatientHandler) UnassignDoctor(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	doctorID, err := uuid.Parse(c.Params("did"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.UnassignDoctor(c.Context(), patientID, doctorID); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Activity trail
// ---------------------------------------------------------------------------

// GET /patients/:id/logs
func (h *PatientHandler) ListLogs(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var q struct {
		LogType  string `query:"log_type"`
		Priority string `query:"priority"`
		Limit    int    `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	req := patientlog.ListRequest{Limit: q.Limit}
	if q.LogType != "" {
		req.LogType = &q.LogType
	}
	if q.Priority != "" {
		req.Priority = &q.Priority
	}

	logs, err := h.logs.ListByPatient(c.Context(), id, req)
	if err != nil {
		return mapPatientLogError(c, err)
	}
	return ok(c, logs)
}

// POST /patients/:id/logs
func (h *PatientHandler) AppendLog(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Description string  `json:"description"`
		LogType     *string `json:"log_type"`
		Priority    *string `json:"priority"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.logs.Append(c.Context(), id, patientlog.AppendRequest{
		Description: body.Description,
		LogType:     body.LogType,
		Priority:    body.Priority,
	})
	if err != nil {
		return mapPatientLogError(c, err)
	}
	return created(c, entry)
}

// GET /patients/:id/logs/summary
func (h *PatientHandler) LogSummary(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var q struct {
		Days int `query:"days"`
	}
	_ = c.Bind().Query(&q)

	summary, err := h.logs.Summary(c.Context(), id, q.Days)
	if err != nil {
		return mapPatientLogError(c, err)
	}
	return ok(c, fiber.Map{
		"total":        summary.Total,
		"per_type":     summary.PerType,
		"per_priority": summary.PerPriority,
		"recent":       summary.Recent,
	})
}
