package handlers

import (
	"Zero-Desperdicio/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes. Anything unknown is
// an infrastructure fault and reported as 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, domain.ErrChallengeNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrNoStatsForMonth),
		errors.Is(err, domain.ErrHouseholdNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotInStock),
		errors.Is(err, domain.ErrHouseholdEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
