package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aramhealth/hms_backend/internal/api/http/handler"
	"github.com/aramhealth/hms_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	actorRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctors := api.Group("/doctors", actorRequired)

	doctors.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionList), dh.List)
	doctors.Post("/", requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), dh.Create)

	d := doctors.Group("/:id")
	d.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionRead), dh.Get)
	d.Patch("/", requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), dh.Update)
	d.Post("/toggle", requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), dh.ToggleActive)
}
