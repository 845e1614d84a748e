package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"github.com/richatenany98/wedding-planner/internal/services"
)

type WeddingHandler struct {
	weddingService *services.WeddingService
}

func NewWeddingHandler(weddingService *services.WeddingService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

// Create handles POST /wedding-profile. This is the one tenant endpoint
// reachable before a wedding is assigned: it completes onboarding.
func (h *WeddingHandler) Create(c *fiber.Ctx) error {
	principal, err := scope.GetPrincipal(c)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req dto.CreateWeddingProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.weddingService.Create(principal.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Get handles GET /wedding-profile — the caller's own profile only.
func (h *WeddingHandler) Get(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	profile, err := h.weddingService.Get(weddingID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(profile)
}

// Update handles PUT /wedding-profile/:id. The path id goes through the
// scoping check, so updating another tenant's profile is a 403.
func (h *WeddingHandler) Update(c *fiber.Ctx) error {
	principal, err := scope.GetPrincipal(c)
	if err != nil {
		return scope.RespondError(c, err)
	}

	pathID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid wedding profile id",
		})
	}

	weddingID, err := scope.Authorize(principal, &pathID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req dto.UpdateWeddingProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.weddingService.Update(weddingID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(profile)
}
