package budget

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/scope"
)

type BudgetHandler struct {
	budgetService *BudgetService
}

func NewBudgetHandler(budgetService *BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func (h *BudgetHandler) List(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	items, err := h.budgetService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list budget items",
		})
	}

	estimated, actual, paid := Totals(items)
	return c.JSON(BudgetListResponse{
		Items:          items,
		Total:          len(items),
		EstimatedTotal: estimated,
		ActualTotal:    actual,
		PaidTotal:      paid,
	})
}

func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var req CreateBudgetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, req.WeddingProfileID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	item, err := h.budgetService.Create(weddingID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid budget item id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req UpdateBudgetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.budgetService.Update(weddingID, itemID, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Budget item not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(item)
}

func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid budget item id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	if err := h.budgetService.Delete(weddingID, itemID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Budget item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete budget item",
		})
	}

	return c.JSON(fiber.Map{"message": "Budget item deleted"})
}
