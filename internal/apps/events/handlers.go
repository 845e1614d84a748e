package events

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/scope"
)

type EventHandler struct {
	eventService *EventService
}

func NewEventHandler(eventService *EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	events, err := h.eventService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list events",
		})
	}

	return c.JSON(EventListResponse{Events: events, Total: len(events)})
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, req.WeddingProfileID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	event, err := h.eventService.Create(weddingID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	event, err := h.eventService.Update(weddingID, eventID, req)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(event)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	if err := h.eventService.Delete(weddingID, eventID); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete event",
		})
	}

	return c.JSON(fiber.Map{"message": "Event deleted"})
}
