package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/pkg/reqctx"
)

const (
	// HeaderActorID carries the authenticated staff user id. The hospital
	// gateway authenticates the session and asserts this header; requests
	// reaching this service without it are rejected.
	HeaderActorID = "X-Actor-Id"

	LocalActorID = "actor_id"
)

// ActorRequired extracts the acting user from the gateway header and puts
// it on the request context for the services and the RBAC check.
func ActorRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Get(HeaderActorID)
		if raw == "" {
			return fiber.ErrUnauthorized
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(LocalActorID, id.String())
		c.SetContext(reqctx.WithActor(c.Context(), &reqctx.Actor{UserID: id}))

		return c.Next()
	}
}

// ActorIDFromFiber retrieves the acting user id from Fiber locals.
func ActorIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocalActorID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}
