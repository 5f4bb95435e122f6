package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/service/report"
	"github.com/aramhealth/hms_backend/pkg/email"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GET /patients/:id/report
func (h *ReportHandler) PatientStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	html, err := h.svc.PatientStatusHTML(c.Context(), id)
	if err != nil {
		if errors.Is(err, report.ErrPatientNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// POST /patients/:id/report/send
func (h *ReportHandler) SendPatientStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.SendPatientStatus(c.Context(), id); err != nil {
		if errors.Is(err, report.ErrPatientNotFound) {
			return notFound(c, err.Error())
		}
		var disabled email.ErrDisabled
		if errors.As(err, &disabled) {
			return conflict(c, disabled.Error())
		}
		return internalError(c)
	}
	return noContent(c)
}
