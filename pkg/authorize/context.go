package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// SubjectFromContext extracts the GroupSubject (acting user id) from context.
// The actor is placed there by HTTP middleware after the gateway asserts it.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id := reqctx.ActorIDFromContext(ctx)
	if id == uuid.Nil {
		return "", ErrNoSubjectInContext
	}
	return GroupSubject(id.String()), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only after middleware has guaranteed an actor is present.
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the acting user id as uuid.UUID from context.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id := reqctx.ActorIDFromContext(ctx)
	if id == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}
	return id, nil
}
