package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Actor identifies the staff member performing the current request.
// Authentication happens upstream (the hospital gateway asserts the
// identity); this module only consumes the asserted id.
type Actor struct {
	UserID uuid.UUID
}

// WithActor stores the acting user in the context.
func WithActor(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, keyActor, a)
}

// ActorFromContext retrieves the acting user from the context.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	v := ctx.Value(keyActor)
	if v == nil {
		return nil, false
	}
	a, ok := v.(*Actor)
	return a, ok && a != nil
}

// ActorIDFromContext returns the acting user's id, or uuid.Nil.
func ActorIDFromContext(ctx context.Context) uuid.UUID {
	a, ok := ActorFromContext(ctx)
	if !ok {
		return uuid.Nil
	}
	return a.UserID
}
