// Package scope implements tenant scoping for wedding resources: every
// read or write of a per-wedding record must be authorized against the
// caller's own wedding profile before any storage call runs.
package scope

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotAuthenticated means no valid session; surfaced before any
	// scoping decision is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoWedding means the principal is authenticated but has not
	// completed onboarding yet. Rendered as "not found" rather than
	// "forbidden" so responses do not confirm resource existence.
	ErrNoWedding = errors.New("no wedding profile assigned")

	// ErrAccessDenied means the request named a wedding profile other
	// than the principal's own.
	ErrAccessDenied = errors.New("access denied")
)

// Principal is the authenticated actor, resolved once per request and
// never mutated afterwards. WeddingID is nil until onboarding completes.
type Principal struct {
	UserID    uuid.UUID
	Username  string
	Role      string
	WeddingID *uuid.UUID
}

// HasWedding reports whether onboarding has completed for this principal.
func (p Principal) HasWedding() bool {
	return p.WeddingID != nil
}

// Authorize applies the scoping check and returns the wedding profile id
// all storage operations for this request must be filtered by.
//
// requested is the wedding profile id named by the request (path, query
// or body), or nil when the request names none. The check is uniform
// across reads and writes; callers must run it before touching storage.
func Authorize(p Principal, requested *uuid.UUID) (uuid.UUID, error) {
	if p.WeddingID == nil {
		return uuid.Nil, ErrNoWedding
	}
	if requested != nil && *requested != *p.WeddingID {
		return uuid.Nil, ErrAccessDenied
	}
	return *p.WeddingID, nil
}
