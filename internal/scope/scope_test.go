package scope

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestAuthorize(t *testing.T) {
	ownID := uuid.MustParse("00000000-0000-0000-0000-000000000005")
	otherID := uuid.MustParse("00000000-0000-0000-0000-000000000006")

	tests := []struct {
		name      string
		wedding   *uuid.UUID
		requested *uuid.UUID
		wantID    uuid.UUID
		wantErr   error
	}{
		{
			name:      "own tenant requested explicitly",
			wedding:   &ownID,
			requested: &ownID,
			wantID:    ownID,
		},
		{
			name:    "no tenant requested falls back to own",
			wedding: &ownID,
			wantID:  ownID,
		},
		{
			name:      "foreign tenant requested",
			wedding:   &ownID,
			requested: &otherID,
			wantErr:   ErrAccessDenied,
		},
		{
			name:    "principal without wedding",
			wantErr: ErrNoWedding,
		},
		{
			name:      "principal without wedding requesting one",
			requested: &otherID,
			wantErr:   ErrNoWedding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Principal{UserID: uuid.New(), WeddingID: tt.wedding}
			got, err := Authorize(p, tt.requested)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Authorize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authorize() unexpected error: %v", err)
			}
			if got != tt.wantID {
				t.Errorf("Authorize() = %v, want %v", got, tt.wantID)
			}
		})
	}
}

// The no-wedding case must stay distinct from access denial: the first
// renders as not-found, the second as forbidden.
func TestAuthorizeErrorsDistinct(t *testing.T) {
	if errors.Is(ErrNoWedding, ErrAccessDenied) || errors.Is(ErrAccessDenied, ErrNoWedding) {
		t.Fatal("ErrNoWedding and ErrAccessDenied must be distinct")
	}
	if errors.Is(ErrNotAuthenticated, ErrNoWedding) || errors.Is(ErrNotAuthenticated, ErrAccessDenied) {
		t.Fatal("ErrNotAuthenticated must be distinct from scoping errors")
	}
}

func TestHasWedding(t *testing.T) {
	if (Principal{}).HasWedding() {
		t.Error("principal without wedding reports HasWedding")
	}
	id := uuid.New()
	if !(Principal{WeddingID: &id}).HasWedding() {
		t.Error("principal with wedding reports !HasWedding")
	}
}
