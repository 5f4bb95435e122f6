package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aramhealth/hms_backend/internal/api/http/handler"
	"github.com/aramhealth/hms_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	prh *handler.PartnerHandler,
	rh *handler.ReportHandler,
	actorRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", actorRequired)

	// Patient CRUD
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Delete)
	p.Post("/state", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.SetState)

	// Care team
	p.Get("/doctors", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.ListDoctors)
	p.Post("/doctors/:did", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.AssignDoctor)
	p.Delete("/doctors/:did", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.UnassignDoctor)

	// Activity trail
	p.Get("/logs", requirePerm(authorize.ResourcePatientLog, authorize.ActionList), ph.ListLogs)
	p.Post("/logs", requirePerm(authorize.ResourcePatientLog, authorize.ActionCreate), ph.AppendLog)
	p.Get("/logs/summary", requirePerm(authorize.ResourcePatientLog, authorize.ActionRead), ph.LogSummary)

	// Linked partner
	p.Get("/partner", requirePerm(authorize.ResourcePartner, authorize.ActionRead), prh.GetByPatient)

	// Status report
	p.Get("/report", requirePerm(authorize.ResourceReport, authorize.ActionRead), rh.PatientStatus)
	p.Post("/report/send", requirePerm(authorize.ResourceReport, authorize.ActionRead), rh.SendPatientStatus)

	// Ward-desk summary
	p.Get("/summary", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.MedicalSummary)
}
