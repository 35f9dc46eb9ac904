package handlers

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/api/presenters"
	"Zero-Desperdicio/pkg/challenge"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	ChallengeHandler interface {
		GetActiveChallenges(c *fiber.Ctx) error
		ScanChallenges(c *fiber.Ctx) error
		CompleteChallenge(c *fiber.Ctx) error
		GetEarnedMedals(c *fiber.Ctx) error
	}

	challengeHandler struct {
		challengeService challenge.ChallengeService
		now              func() time.Time
	}
)

func NewChallengeHandler(challengeService challenge.ChallengeService, now func() time.Time) ChallengeHandler {
	return &challengeHandler{
		challengeService: challengeService,
		now:              now,
	}
}

func (h *challengeHandler) GetActiveChallenges(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	challenges := h.challengeService.GetActiveChallenges(c.Context(), householdID)
	return presenters.SuccessResponse(c, challenges, fiber.StatusOK, domain.MessageSuccessGetChallenges)
}

func (h *challengeHandler) ScanChallenges(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	detected, err := h.challengeService.Scan(c.Context(), householdID, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedScanChallenges, err)
	}

	return presenters.SuccessResponse(c, domain.ScanChallengeResponse{Challenge: detected}, fiber.StatusOK, domain.MessageSuccessScanChallenges)
}

func (h *challengeHandler) CompleteChallenge(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	challengeID := c.Params("id")

	medal, err := h.challengeService.CompleteChallenge(c.Context(), householdID, challengeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCompleteChallenge, err)
	}

	return presenters.SuccessResponse(c, domain.CompleteChallengeResponse{
		ChallengeID: challengeID,
		Medal:       medal,
	}, fiber.StatusOK, domain.MessageSuccessCompleteChallenge)
}

func (h *challengeHandler) GetEarnedMedals(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	medals := h.challengeService.GetEarnedMedals(c.Context(), householdID)
	return presenters.SuccessResponse(c, medals, fiber.StatusOK, domain.MessageSuccessGetMedals)
}
