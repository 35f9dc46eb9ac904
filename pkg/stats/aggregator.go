// Package stats tallies inventory activity per calendar month.
package stats

import (
	"Zero-Desperdicio/domain"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PerformanceExcellent = "Excelente"
	PerformanceGood      = "Bom"
	PerformanceWarning   = "Atenção"
)

var (
	excellentCeiling = decimal.NewFromInt(10)
	goodCeiling      = decimal.NewFromInt(30)
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the pt-BR name of t's month, capitalized.
func MonthName(t time.Time) string {
	return monthNames[t.Month()-1]
}

func KnownAction(action domain.StatsAction) bool {
	switch action {
	case domain.ActionAdded, domain.ActionConsumed, domain.ActionWasted:
		return true
	}
	return false
}

// RecordAction increments the counter for action in the record of today's
// month, appending a zeroed record first when the month has none. The
// input slice is not modified.
func RecordAction(stats []domain.MonthlyStats, action domain.StatsAction, today time.Time) []domain.MonthlyStats {
	month, year := MonthName(today), today.Year()

	out := make([]domain.MonthlyStats, len(stats), len(stats)+1)
	copy(out, stats)

	idx := Find(out, month, year)
	if idx < 0 {
		out = append(out, domain.MonthlyStats{Month: month, Year: year})
		idx = len(out) - 1
	}

	switch action {
	case domain.ActionAdded:
		out[idx].TotalAdded++
	case domain.ActionConsumed:
		out[idx].Consumed++
	case domain.ActionWasted:
		out[idx].Wasted++
	}
	return out
}

// Find returns the index of the (month, year) record or -1.
func Find(stats []domain.MonthlyStats, month string, year int) int {
	for i, s := range stats {
		if s.Month == month && s.Year == year {
			return i
		}
	}
	return -1
}

// WasteRate is wasted/totalAdded as a whole percentage. It is nil when
// nothing was added in the month.
func WasteRate(s domain.MonthlyStats) *decimal.Decimal {
	if s.TotalAdded <= 0 {
		return nil
	}
	rate := decimal.NewFromInt(int64(s.Wasted)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(s.TotalAdded))).
		Round(0)
	return &rate
}

func Performance(rate *decimal.Decimal) string {
	switch {
	case rate == nil:
		return ""
	case rate.LessThanOrEqual(excellentCeiling):
		return PerformanceExcellent
	case rate.LessThanOrEqual(goodCeiling):
		return PerformanceGood
	default:
		return PerformanceWarning
	}
}

func ToResponse(s domain.MonthlyStats) domain.MonthlyStatsResponse {
	rate := WasteRate(s)
	return domain.MonthlyStatsResponse{
		Month:       s.Month,
		Year:        s.Year,
		TotalAdded:  s.TotalAdded,
		Consumed:    s.Consumed,
		Wasted:      s.Wasted,
		WasteRate:   rate,
		Performance: Performance(rate),
	}
}
