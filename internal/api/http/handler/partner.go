package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/service/partner"
	"github.com/aramhealth/hms_backend/pkg/validate"
)

type PartnerHandler struct {
	svc partner.Service
}

func NewPartnerHandler(svc partner.Service) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

func mapPartnerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, partner.ErrPartnerNotFound),
		errors.Is(err, partner.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, partner.ErrNameRequired),
		errors.Is(err, partner.ErrTaxIDRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, validate.ErrInvalidEmail),
		errors.Is(err, validate.ErrInvalidPhone):
		return unprocessable(c, err.Error())
	case errors.Is(err, partner.ErrEmailMismatch),
		errors.Is(err, partner.ErrEmailTaken),
		errors.Is(err, partner.ErrPatientAlreadyLinked),
		errors.Is(err, partner.ErrPartnerLinked),
		errors.Is(err, partner.ErrPartnerNotLinked):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /partners
func (h *PartnerHandler) List(c fiber.Ctx) error {
	var q struct {
		LinkedOnly bool   `query:"linked_only"`
		Search     string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	ps, err := h.svc.List(c.Context(), partner.ListPartnersRequest{
		LinkedOnly: q.LinkedOnly,
		Search:     q.Search,
	})
	if err != nil {
		return mapPartnerError(c, err)
	}
	return ok(c, ps)
}

// POST /partners
func (h *PartnerHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name      string  `json:"name"`
		Email     string  `json:"email"`
		TaxID     string  `json:"tax_id"`
		Phone     *string `json:"phone"`
		PatientID *string `json:"patient_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := partner.CreatePartnerRequest{
		Name:  body.Name,
		Email: body.Email,
		TaxID: body.TaxID,
		Phone: body.Phone,
	}
	if body.PatientID != nil {
		id, err := uuid.Parse(*body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPartnerError(c, err)
	}
	return created(c, p)
}

// GET /partners/:id
func (h *PartnerHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPartnerError(c, err)
	}
	return ok(c, p)
}

// PATCH /partners/:id
func (h *PartnerHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	var body struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		TaxID *string `json:"tax_id"`
		Phone *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, partner.UpdatePartnerRequest{
		Name:  body.Name,
		Email: body.Email,
		TaxID: body.TaxID,
		Phone: body.Phone,
	})
	if err != nil {
		return mapPartnerError(c, err)
	}
	return ok(c, p)
}

// DELETE /partners/:id
func (h *PartnerHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapPartnerError(c, err)
	}
	return noContent(c)
}

// POST /partners/:id/link
func (h *PartnerHandler) Link(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	var body struct {
		PatientID string `json:"patient_id"`
		Force     bool   `json:"force"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	p, err := h.svc.Link(c.Context(), id, patientID, body.Force)
	if err != nil {
		return mapPartnerError(c, err)
	}
	return ok(c, p)
}

// DELETE /partners/:id/link
func (h *PartnerHandler) Unlink(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	p, err := h.svc.Unlink(c.Context(), id)
	if err != nil {
		return mapPartnerError(c, err)
	}
	return ok(c, p)
}

// GET /patients/:id/partner
func (h *PartnerHandler) GetByPatient(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByPatient(c.Context(), id)
	if err != nil {
		return mapPartnerError(c, err)
	}
	return ok(c, p)
}
