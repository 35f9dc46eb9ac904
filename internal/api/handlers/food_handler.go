package handlers

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/api/presenters"
	"Zero-Desperdicio/pkg/inventory"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		ConsumeFoodItem(c *fiber.Ctx) error
		WasteFoodItem(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	foodHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
		now              func() time.Time
	}
)

func NewFoodHandler(inventoryService inventory.InventoryService, validator *validator.Validate, now func() time.Time) FoodHandler {
	return &foodHandler{
		inventoryService: inventoryService,
		validator:        validator,
		now:              now,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.inventoryService.AddFoodItem(c.Context(), *req, householdID, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	status := c.Query("status", inventory.StatusFilterActive)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > inventory.MaxPageLimit {
		limit = inventory.MaxPageLimit
	}

	items, count, err := h.inventoryService.GetFoodItems(c.Context(), householdID, status, page, limit, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.inventoryService.GetFoodItemByID(c.Context(), c.Params("id"), householdID, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) ConsumeFoodItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.inventoryService.ConsumeFoodItem(c.Context(), c.Params("id"), householdID, h.now()); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedConsumeFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConsumeFoodItem)
}

func (h *foodHandler) WasteFoodItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.inventoryService.WasteFoodItem(c.Context(), c.Params("id"), householdID, h.now()); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedWasteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWasteFoodItem)
}

func (h *foodHandler) GetDashboardStats(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	stats := h.inventoryService.GetDashboardStats(c.Context(), householdID, h.now())
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}
