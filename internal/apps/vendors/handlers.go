package vendors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/scope"
)

type VendorHandler struct {
	vendorService *VendorService
}

func NewVendorHandler(vendorService *VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) List(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	vendors, err := h.vendorService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list vendors",
		})
	}

	return c.JSON(VendorListResponse{Vendors: vendors, Total: len(vendors)})
}

func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var req CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, req.WeddingProfileID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	vendor, err := h.vendorService.Create(weddingID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(vendor)
}

func (h *VendorHandler) Update(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vendor id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	vendor, err := h.vendorService.Update(weddingID, vendorID, req)
	if err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Vendor not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(vendor)
}

func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vendor id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	if err := h.vendorService.Delete(weddingID, vendorID); err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Vendor not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete vendor",
		})
	}

	return c.JSON(fiber.Map{"message": "Vendor deleted"})
}
