package guests

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/scope"
)

type GuestHandler struct {
	guestService *GuestService
}

func NewGuestHandler(guestService *GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// List handles GET /guests with view predicates in query params:
// search, side, rsvp (default pending, "all" opts out), sort_by, sort_dir.
func (h *GuestHandler) List(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	guests, err := h.guestService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list guests",
		})
	}

	derived := Derive(guests, Query{
		Search:    c.Query("search"),
		Side:      c.Query("side", "all"),
		RSVP:      c.Query("rsvp"),
		SortField: c.Query("sort_by", "name"),
		SortDir:   c.Query("sort_dir", "asc"),
	})
	counts := Count(guests)

	return c.JSON(GuestListResponse{
		Guests:     derived,
		Total:      counts.Total,
		SideCounts: counts.BySide,
		RSVPCounts: counts.ByRSVP,
	})
}

func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var req CreateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, req.WeddingProfileID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	guest, err := h.guestService.Create(weddingID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(guest)
}

// BulkCreate handles POST /guests/bulk. Items are created sequentially;
// earlier successes persist when a later item fails.
func (h *GuestHandler) BulkCreate(c *fiber.Ctx) error {
	var req BulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, req.WeddingProfileID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	if len(req.Guests) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "guests list is empty",
		})
	}

	resp := h.guestService.BulkCreate(weddingID, req.Guests)
	status := fiber.StatusCreated
	if resp.Failed > 0 {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(resp)
}

func (h *GuestHandler) Update(c *fiber.Ctx) error {
	guestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid guest id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req UpdateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	guest, err := h.guestService.Update(weddingID, guestID, req)
	if err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Guest not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(guest)
}

func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	guestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid guest id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	if err := h.guestService.Delete(weddingID, guestID); err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Guest not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete guest",
		})
	}

	return c.JSON(fiber.Map{"message": "Guest deleted"})
}

// Export handles GET /guests/export — the full collection as CSV.
func (h *GuestHandler) Export(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	guests, err := h.guestService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export guests",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="guests.csv"`)
	return c.SendString(ExportCSV(guests))
}
