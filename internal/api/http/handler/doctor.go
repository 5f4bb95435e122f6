package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/service/doctor"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrNameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, validate.ErrInvalidEmail):
		return unprocessable(c, err.Error())
	case errors.Is(err, validate.ErrInvalidPhone):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q struct {
		ActiveOnly     bool   `query:"active_only"`
		Specialization string `query:"specialization"`
		Search         string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	req := doctor.ListDoctorsRequest{
		ActiveOnly: q.ActiveOnly,
		Search:     q.Search,
	}
	if q.Specialization != "" {
		req.Specialization = &q.Specialization
	}

	ds, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, ds)
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName      string  `json:"first_name"`
		LastName       string  `json:"last_name"`
		Specialization *string `json:"specialization"`
		LicenseNumber  *string `json:"license_number"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Create(c.Context(), doctor.CreateDoctorRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Specialization: body.Specialization,
		LicenseNumber:  body.LicenseNumber,
		Email:          body.Email,
		Phone:          body.Phone,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, d)
}

// GET /doctors/:id
func (h *DoctorHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	patients, err := h.svc.PatientCount(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{
		"doctor":        d,
		"patient_count": patients,
	})
}

// PATCH /doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		Specialization *string `json:"specialization"`
		LicenseNumber  *string `json:"license_number"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		IsActive       *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Update(c.Context(), id, doctor.UpdateDoctorRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Specialization: body.Specialization,
		LicenseNumber:  body.LicenseNumber,
		Email:          body.Email,
		Phone:          body.Phone,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}

// POST /doctors/:id/toggle
func (h *DoctorHandler) ToggleActive(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.ToggleActive(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}
