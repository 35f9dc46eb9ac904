package handlers

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/api/presenters"
	"Zero-Desperdicio/pkg/stats"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		GetMonthlyStats(c *fiber.Ctx) error
		GetCurrentMonth(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
		now          func() time.Time
	}
)

func NewStatsHandler(statsService stats.StatsService, now func() time.Time) StatsHandler {
	return &statsHandler{
		statsService: statsService,
		now:          now,
	}
}

func (h *statsHandler) GetMonthlyStats(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	res := h.statsService.GetMonthlyStats(c.Context(), householdID)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *statsHandler) GetCurrentMonth(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.statsService.GetCurrentMonth(c.Context(), householdID, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
