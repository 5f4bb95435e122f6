package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/aramhealth/hms_backend/pkg/authorize"
)

type RBACHandler struct {
	auth authorize.IAuthorization
}

func NewRBACHandler(auth authorize.IAuthorization) *RBACHandler {
	return &RBACHandler{auth: auth}
}

// GET /rbac/users/:id/roles
func (h *RBACHandler) ListRoles(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	roles, err := authorize.StaffRoles(c.Context(), h.auth, userID.String())
	if err != nil {
		return internalError(c)
	}

	out := lo.Map(roles, func(r authorize.Role, _ int) fiber.Map {
		return fiber.Map{
			"role":         r,
			"display_name": authorize.RoleDisplayNames[r],
		}
	})
	return ok(c, out)
}

// POST /rbac/users/:id/roles
func (h *RBACHandler) GrantRole(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := authorize.AssignStaffRole(c.Context(), h.auth, userID.String(), authorize.Role(body.Role)); err != nil {
		if errors.Is(err, authorize.ErrInvalidArgs) {
			return badRequest(c, "unknown role")
		}
		return internalError(c)
	}
	return noContent(c)
}

// DELETE /rbac/users/:id/roles/:role
func (h *RBACHandler) RevokeRole(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	role := authorize.Role(c.Params("role"))
	if _, known := authorize.KnownRoles[role]; !known {
		return badRequest(c, "unknown role")
	}

	if err := authorize.RevokeStaffRole(c.Context(), h.auth, userID.String(), role); err != nil {
		return internalError(c)
	}
	return noContent(c)
}
