package stats

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/store"
	"context"
	"time"
)

type (
	StatsService interface {
		RecordAction(ctx context.Context, householdID string, action domain.StatsAction, now time.Time) error
		GetMonthlyStats(ctx context.Context, householdID string) []domain.MonthlyStatsResponse
		GetCurrentMonth(ctx context.Context, householdID string, now time.Time) (domain.MonthlyStatsResponse, error)
	}

	statsService struct {
		store *store.Store
	}
)

func NewStatsService(store *store.Store) StatsService {
	return &statsService{store: store}
}

func (s *statsService) RecordAction(ctx context.Context, householdID string, action domain.StatsAction, now time.Time) error {
	if !KnownAction(action) {
		return domain.ErrUnknownAction
	}
	return s.store.Atomically(householdID, func() error {
		current := s.store.LoadMonthlyStats(ctx, householdID)
		return s.store.SaveMonthlyStats(ctx, householdID, RecordAction(current, action, now))
	})
}

func (s *statsService) GetMonthlyStats(ctx context.Context, householdID string) []domain.MonthlyStatsResponse {
	records := s.store.LoadMonthlyStats(ctx, householdID)
	res := make([]domain.MonthlyStatsResponse, 0, len(records))
	for _, r := range records {
		res = append(res, ToResponse(r))
	}
	return res
}

func (s *statsService) GetCurrentMonth(ctx context.Context, householdID string, now time.Time) (domain.MonthlyStatsResponse, error) {
	records := s.store.LoadMonthlyStats(ctx, householdID)
	idx := Find(records, MonthName(now), now.Year())
	if idx < 0 {
		return domain.MonthlyStatsResponse{}, domain.ErrNoStatsForMonth
	}
	return ToResponse(records[idx]), nil
}
