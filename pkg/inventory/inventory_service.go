// Package inventory manages the household pantry: adding items with
// estimated dates and prices, listing them by urgency and closing them out
// as consumed or wasted.
package inventory

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/estimation"
	"Zero-Desperdicio/pkg/expiration"
	"Zero-Desperdicio/pkg/stats"
	"Zero-Desperdicio/pkg/store"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxPageLimit bounds the page size accepted from clients.
	MaxPageLimit = 100

	StatusFilterActive = "active"
	StatusFilterAll    = "all"
)

type (
	InventoryService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, householdID string, now time.Time) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, householdID string, status string, page, limit int, now time.Time) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, householdID string, now time.Time) (domain.FoodItemResponse, error)
		ConsumeFoodItem(ctx context.Context, id string, householdID string, now time.Time) error
		WasteFoodItem(ctx context.Context, id string, householdID string, now time.Time) error
		GetDashboardStats(ctx context.Context, householdID string, now time.Time) domain.DashboardStatsResponse
	}

	inventoryService struct {
		store *store.Store
		newID func() string
	}
)

func NewInventoryService(store *store.Store) InventoryService {
	return NewInventoryServiceWithIDs(store, uuid.NewString)
}

func NewInventoryServiceWithIDs(store *store.Store, newID func() string) InventoryService {
	return &inventoryService{store: store, newID: newID}
}

func (s *inventoryService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, householdID string, now time.Time) (domain.FoodItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	category := domain.FoodCategory(req.Category)
	if !category.Valid() {
		return domain.FoodItemResponse{}, domain.ErrInvalidCategory
	}

	name := strings.TrimSpace(req.Name)
	natural := estimation.IsNatural(category)

	var expirationDate time.Time
	switch {
	case req.ExpirationDate != "":
		parsed, err := time.ParseInLocation("2006-01-02", req.ExpirationDate, now.Location())
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expirationDate = parsed
	case natural:
		expirationDate = estimation.EstimateExpirationDate(name, category, now)
	default:
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	var price decimal.Decimal
	if req.EstimatedPrice != nil {
		price = decimal.NewFromFloat(*req.EstimatedPrice).Round(2)
	} else {
		price = estimation.EstimatePrice(name)
	}

	item := domain.FoodItem{
		ID:             s.newID(),
		Name:           name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Category:       category,
		ExpirationDate: expirationDate,
		Status:         domain.StatusInStock,
		AddedAt:        now,
		EstimatedPrice: &price,
		IsNatural:      natural,
	}

	err := s.store.Atomically(householdID, func() error {
		items := s.store.LoadFoodItems(ctx, householdID)
		if err := s.store.SaveFoodItems(ctx, householdID, append(items, item)); err != nil {
			return err
		}
		return s.recordAction(ctx, householdID, domain.ActionAdded, now)
	})
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toResponse(item, now), nil
}

// GetFoodItems pages through the items matching status ("active" by
// default, "all", or a stored status), most urgent first.
func (s *inventoryService) GetFoodItems(ctx context.Context, householdID string, status string, page, limit int, now time.Time) ([]domain.FoodItemResponse, int64, error) {
	items := s.store.LoadFoodItems(ctx, householdID)

	filtered := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if matchesStatus(item, status) {
			filtered = append(filtered, item)
		}
	}
	SortByUrgency(filtered, now)

	count := int64(len(filtered))
	start, end := pageBounds(len(filtered), page, limit)

	response := make([]domain.FoodItemResponse, 0, end-start)
	for _, item := range filtered[start:end] {
		response = append(response, toResponse(item, now))
	}
	return response, count, nil
}

func (s *inventoryService) GetFoodItemByID(ctx context.Context, id string, householdID string, now time.Time) (domain.FoodItemResponse, error) {
	for _, item := range s.store.LoadFoodItems(ctx, householdID) {
		if item.ID == id {
			return toResponse(item, now), nil
		}
	}
	return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
}

func (s *inventoryService) ConsumeFoodItem(ctx context.Context, id string, householdID string, now time.Time) error {
	return s.closeOut(ctx, id, householdID, domain.StatusConsumed, domain.ActionConsumed, now)
}

func (s *inventoryService) WasteFoodItem(ctx context.Context, id string, householdID string, now time.Time) error {
	return s.closeOut(ctx, id, householdID, domain.StatusWasted, domain.ActionWasted, now)
}

func (s *inventoryService) closeOut(ctx context.Context, id, householdID string, status domain.ItemStatus, action domain.StatsAction, now time.Time) error {
	return s.store.Atomically(householdID, func() error {
		items := s.store.LoadFoodItems(ctx, householdID)

		idx := -1
		for i := range items {
			if items[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrFoodItemNotFound
		}
		if items[idx].Status.Terminal() {
			return domain.ErrItemNotInStock
		}

		items[idx].Status = status
		if err := s.store.SaveFoodItems(ctx, householdID, items); err != nil {
			return err
		}
		return s.recordAction(ctx, householdID, action, now)
	})
}

// recordAction must run inside Atomically.
func (s *inventoryService) recordAction(ctx context.Context, householdID string, action domain.StatsAction, now time.Time) error {
	current := s.store.LoadMonthlyStats(ctx, householdID)
	return s.store.SaveMonthlyStats(ctx, householdID, stats.RecordAction(current, action, now))
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, householdID string, now time.Time) domain.DashboardStatsResponse {
	return Dashboard(s.store.LoadFoodItems(ctx, householdID), now)
}

// Dashboard counts in-stock items per expiration status and sums the
// estimated value of everything marked wasted.
func Dashboard(items []domain.FoodItem, now time.Time) domain.DashboardStatsResponse {
	var res domain.DashboardStatsResponse
	res.WastedValue = decimal.Zero

	for _, item := range items {
		switch item.Status {
		case domain.StatusInStock:
			res.TotalItems++
			switch expiration.Classify(item.ExpirationDate, now) {
			case domain.ExpirationFresh:
				res.FreshItems++
			case domain.ExpirationExpiring:
				res.ExpiringItems++
			case domain.ExpirationExpired:
				res.ExpiredItems++
			}
		case domain.StatusWasted:
			res.WastedValue = res.WastedValue.Add(estimation.PriceOf(item))
		}
	}
	return res
}

// SortByUrgency orders expired items first, then expiring, then fresh;
// within a class the earliest date comes first.
func SortByUrgency(items []domain.FoodItem, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		ui := expiration.Urgency(expiration.Classify(items[i].ExpirationDate, now))
		uj := expiration.Urgency(expiration.Classify(items[j].ExpirationDate, now))
		if ui != uj {
			return ui < uj
		}
		return items[i].ExpirationDate.Before(items[j].ExpirationDate)
	})
}

// pageBounds returns the [start, end) window of a 1-based page over total
// items. Out-of-range pages are empty; page and limit below 1 count as 1.
func pageBounds(total, page, limit int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	// compare before multiplying so (page-1)*limit cannot overflow
	if page-1 > total/limit {
		return total, total
	}
	start = (page - 1) * limit
	if start > total {
		return total, total
	}
	if limit > total-start {
		return start, total
	}
	return start, start + limit
}

func matchesStatus(item domain.FoodItem, status string) bool {
	switch status {
	case "", StatusFilterActive:
		return item.Status == domain.StatusInStock
	case StatusFilterAll:
		return true
	default:
		return string(item.Status) == status
	}
}

func toResponse(item domain.FoodItem, now time.Time) domain.FoodItemResponse {
	status := expiration.Classify(item.ExpirationDate, now)
	daysLeft := expiration.DaysUntilExpiration(item.ExpirationDate, now)
	return domain.FoodItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Quantity:         item.Quantity,
		Unit:             item.Unit,
		Category:         item.Category,
		ExpirationDate:   item.ExpirationDate,
		Status:           item.Status,
		ExpirationStatus: status,
		StatusLabel:      expiration.StatusLabel(status),
		DaysLeft:         daysLeft,
		DaysLeftLabel:    expiration.DaysLeftLabel(daysLeft),
		EstimatedPrice:   item.EstimatedPrice,
		IsNatural:        item.IsNatural,
		AddedAt:          item.AddedAt,
	}
}
