package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetStats = "monthly statistics retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve monthly statistics"

	ErrNoStatsForMonth = errors.New("no statistics recorded for the current month")
	ErrUnknownAction   = errors.New("unknown stats action")
)

type StatsAction string

const (
	ActionAdded    StatsAction = "added"
	ActionConsumed StatsAction = "consumed"
	ActionWasted   StatsAction = "wasted"
)

type (
	MonthlyStats struct {
		Month      string `json:"month"`
		Year       int    `json:"year"`
		TotalAdded int    `json:"totalAdded"`
		Consumed   int    `json:"consumed"`
		Wasted     int    `json:"wasted"`
	}

	MonthlyStatsResponse struct {
		Month       string           `json:"month"`
		Year        int              `json:"year"`
		TotalAdded  int              `json:"total_added"`
		Consumed    int              `json:"consumed"`
		Wasted      int              `json:"wasted"`
		WasteRate   *decimal.Decimal `json:"waste_rate,omitempty"`
		Performance string           `json:"performance,omitempty"`
	}
)
