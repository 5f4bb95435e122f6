package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aramhealth/hms_backend/internal/api/http/handler"
	"github.com/aramhealth/hms_backend/pkg/authorize"
)

func (r *Router) registerDepartmentRoutes(
	api fiber.Router,
	dh *handler.DepartmentHandler,
	actorRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	departments := api.Group("/departments", actorRequired)

	departments.Get("/", requirePerm(authorize.ResourceDepartment, authorize.ActionList), dh.List)
	departments.Post("/", requirePerm(authorize.ResourceDepartment, authorize.ActionCreate), dh.Create)

	d := departments.Group("/:id")
	d.Get("/", requirePerm(authorize.ResourceDepartment, authorize.ActionRead), dh.Get)
	d.Patch("/", requirePerm(authorize.ResourceDepartment, authorize.ActionUpdate), dh.Update)
	d.Delete("/", requirePerm(authorize.ResourceDepartment, authorize.ActionDelete), dh.Delete)
	d.Patch("/status", requirePerm(authorize.ResourceDepartment, authorize.ActionUpdate), dh.SetStatus)
	d.Get("/occupancy", requirePerm(authorize.ResourceDepartment, authorize.ActionRead), dh.Occupancy)
}
