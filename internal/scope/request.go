package scope

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
)

const principalKey = "principal"

// SetPrincipal stores the resolved principal in the request context.
// Called exactly once, by the principal middleware.
func SetPrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(principalKey, p)
}

// GetPrincipal extracts the principal resolved by the middleware.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	p, ok := c.Locals(principalKey).(Principal)
	if !ok {
		return Principal{}, ErrNotAuthenticated
	}
	return p, nil
}

// RequestedWedding resolves the wedding profile id named by the request.
// Canonical precedence is path > query > body; routes whose path names a
// wedding profile id parse it themselves and pass it to Authorize
// directly, so this helper resolves query first, then the body value
// supplied by the handler. Returns nil when the request names none. A
// malformed id is reported so it can be rejected instead of silently
// widening the query.
func RequestedWedding(c *fiber.Ctx, bodyID *uuid.UUID) (*uuid.UUID, error) {
	if raw := c.Query("wedding_profile_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid wedding_profile_id query parameter")
		}
		return &id, nil
	}
	return bodyID, nil
}

// AuthorizeRequest combines principal lookup, tenant resolution and the
// scoping check for a handler. bodyID carries a wedding profile id parsed
// from the request body, if any.
func AuthorizeRequest(c *fiber.Ctx, bodyID *uuid.UUID) (uuid.UUID, error) {
	p, err := GetPrincipal(c)
	if err != nil {
		return uuid.Nil, err
	}
	requested, err := RequestedWedding(c, bodyID)
	if err != nil {
		return uuid.Nil, err
	}
	return Authorize(p, requested)
}

// RespondError maps scoping failures to HTTP responses. The three error
// kinds stay distinct internally; ErrNoWedding deliberately renders as
// 404 to avoid confirming that tenant resources exist.
func RespondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	case errors.Is(err, ErrNoWedding):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	case errors.Is(err, ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}
