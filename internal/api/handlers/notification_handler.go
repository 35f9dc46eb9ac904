package handlers

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/api/presenters"
	"Zero-Desperdicio/pkg/notification"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		GenerateNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		now                 func() time.Time
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, now func() time.Time) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		now:                 now,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	res := h.notificationService.GetNotifications(c.Context(), householdID)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) GenerateNotifications(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	created, err := h.notificationService.GenerateAll(c.Context(), householdID, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGenerateNotifications, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusOK, domain.MessageSuccessGenerateNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.notificationService.MarkAsRead(c.Context(), householdID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedMarkNotificationRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkNotificationRead)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.notificationService.MarkAllAsRead(c.Context(), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedMarkNotificationRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkNotificationRead)
}
