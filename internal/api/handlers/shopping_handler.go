package handlers

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/api/presenters"
	"Zero-Desperdicio/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		AddShoppingItem(c *fiber.Ctx) error
		ToggleShoppingItem(c *fiber.Ctx) error
		DeleteShoppingItem(c *fiber.Ctx) error
		ClearChecked(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	list := h.shoppingService.GetShoppingList(c.Context(), householdID)
	return presenters.SuccessResponse(c, list, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddShoppingItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	item, err := h.shoppingService.AddShoppingItem(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) ToggleShoppingItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	item, err := h.shoppingService.ToggleShoppingItem(c.Context(), c.Params("id"), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleShopping, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessToggleShopping)
}

func (h *shoppingHandler) DeleteShoppingItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.shoppingService.DeleteShoppingItem(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteShopping, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShopping)
}

func (h *shoppingHandler) ClearChecked(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	removed, err := h.shoppingService.ClearChecked(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedClearShoppingList, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"removed": removed}, fiber.StatusOK, domain.MessageSuccessClearShoppingList)
}
