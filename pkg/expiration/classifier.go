package expiration

import (
	"Zero-Desperdicio/domain"
	"fmt"
	"time"
)

// ExpiringThresholdDays is the largest number of days left for which an
// item still counts as expiring.
const ExpiringThresholdDays = 3

// Classify buckets expirationDate relative to today. Only the calendar day of
// each value is considered.
func Classify(expirationDate, today time.Time) domain.ExpirationStatus {
	daysLeft := DaysUntilExpiration(expirationDate, today)
	if daysLeft < 0 {
		return domain.ExpirationExpired
	}
	if daysLeft <= ExpiringThresholdDays {
		return domain.ExpirationExpiring
	}
	return domain.ExpirationFresh
}

// DaysUntilExpiration returns the signed number of calendar days between
// today and expirationDate, negative once the item has expired.
func DaysUntilExpiration(expirationDate, today time.Time) int {
	return int(civilDay(expirationDate).Sub(civilDay(today)).Hours() / 24)
}

// civilDay maps t to midnight UTC of the calendar day it shows in its own
// location, so day differences are immune to DST and time-of-day.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func StatusLabel(status domain.ExpirationStatus) string {
	switch status {
	case domain.ExpirationExpired:
		return "Vencido"
	case domain.ExpirationExpiring:
		return "Vence em breve"
	default:
		return "OK"
	}
}

func DaysLeftLabel(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return fmt.Sprintf("Vencido há %d %s", -daysLeft, dayWord(-daysLeft))
	case daysLeft == 0:
		return "Vence hoje"
	default:
		return fmt.Sprintf("Vence em %d %s", daysLeft, dayWord(daysLeft))
	}
}

// Urgency orders statuses most-urgent first.
func Urgency(status domain.ExpirationStatus) int {
	switch status {
	case domain.ExpirationExpired:
		return 0
	case domain.ExpirationExpiring:
		return 1
	default:
		return 2
	}
}

func dayWord(n int) string {
	if n == 1 {
		return "dia"
	}
	return "dias"
}
