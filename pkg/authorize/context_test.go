package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/pkg/reqctx"
)

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "actor in context",
			setupCtx: func() context.Context {
				return reqctx.WithActor(context.Background(), &reqctx.Actor{UserID: validUUID})
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no actor in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid actor",
			setupCtx: func() context.Context {
				return reqctx.WithActor(context.Background(), &reqctx.Actor{UserID: uuid.Nil})
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics when no actor", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject when actor exists", func(t *testing.T) {
		validUUID := uuid.New()
		ctx := reqctx.WithActor(context.Background(), &reqctx.Actor{UserID: validUUID})

		subject := MustSubjectFromContext(ctx)
		expected := GroupSubject(validUUID.String())
		if subject != expected {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, expected)
		}
	})
}

func TestUserIDFromContext(t *testing.T) {
	validUUID := uuid.New()

	t.Run("returns id when actor exists", func(t *testing.T) {
		ctx := reqctx.WithActor(context.Background(), &reqctx.Actor{UserID: validUUID})
		id, err := UserIDFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if id != validUUID {
			t.Errorf("UserIDFromContext() = %q, want %q", id, validUUID)
		}
	})

	t.Run("errors when no actor", func(t *testing.T) {
		if _, err := UserIDFromContext(context.Background()); err == nil {
			t.Error("Expected error but got nil")
		}
	})
}
