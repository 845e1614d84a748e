package scope

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestRequestedWeddingPrecedence(t *testing.T) {
	queryID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bodyID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	tests := []struct {
		name    string
		target  string
		bodyID  *uuid.UUID
		want    *uuid.UUID
		wantErr bool
	}{
		{
			name:   "query wins over body",
			target: "/guests?wedding_profile_id=" + queryID.String(),
			bodyID: &bodyID,
			want:   &queryID,
		},
		{
			name:   "body used when query absent",
			target: "/guests",
			bodyID: &bodyID,
			want:   &bodyID,
		},
		{
			name:   "nothing requested",
			target: "/guests",
		},
		{
			name:    "malformed query id rejected",
			target:  "/guests?wedding_profile_id=not-a-uuid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *uuid.UUID
			var gotErr error

			app := fiber.New()
			app.Get("/guests", func(c *fiber.Ctx) error {
				got, gotErr = RequestedWedding(c, tt.bodyID)
				return c.SendStatus(fiber.StatusOK)
			})

			if _, err := app.Test(httptest.NewRequest("GET", tt.target, nil)); err != nil {
				t.Fatalf("request failed: %v", err)
			}

			if tt.wantErr {
				if gotErr == nil {
					t.Fatal("expected an error for malformed id")
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("RequestedWedding() unexpected error: %v", gotErr)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("RequestedWedding() = %v, want nil", got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("RequestedWedding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not authenticated", ErrNotAuthenticated, fiber.StatusUnauthorized},
		{"no wedding renders as not found", ErrNoWedding, fiber.StatusNotFound},
		{"access denied", ErrAccessDenied, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return RespondError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
