package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aramhealth/hms_backend/internal/api/http/handler"
	"github.com/aramhealth/hms_backend/pkg/authorize"
)

func (r *Router) registerPartnerRoutes(
	api fiber.Router,
	ph *handler.PartnerHandler,
	actorRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	partners := api.Group("/partners", actorRequired)

	partners.Get("/", requirePerm(authorize.ResourcePartner, authorize.ActionList), ph.List)
	partners.Post("/", requirePerm(authorize.ResourcePartner, authorize.ActionCreate), ph.Create)

	p := partners.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePartner, authorize.ActionRead), ph.Get)
	p.Patch("/", requirePerm(authorize.ResourcePartner, authorize.ActionUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePartner, authorize.ActionDelete), ph.Delete)
	p.Post("/link", requirePerm(authorize.ResourcePartner, authorize.ActionUpdate), ph.Link)
	p.Delete("/link", requirePerm(authorize.ResourcePartner, authorize.ActionUpdate), ph.Unlink)
}
