package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aramhealth/hms_backend/internal/api/http/handler"
	"github.com/aramhealth/hms_backend/pkg/authorize"
)

func (r *Router) registerRBACRoutes(
	api fiber.Router,
	rh *handler.RBACHandler,
	actorRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/rbac/users/:id", actorRequired)

	users.Get("/roles", requirePerm(authorize.ResourceRBAC, authorize.ActionGrant), rh.ListRoles)
	users.Post("/roles", requirePerm(authorize.ResourceRBAC, authorize.ActionGrant), rh.GrantRole)
	users.Delete("/roles/:role", requirePerm(authorize.ResourceRBAC, authorize.ActionRevoke), rh.RevokeRole)
}
