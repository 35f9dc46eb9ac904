// Package store is the key-value persistence contract of the inventory
// engine. Each household owns six slots, each one a JSON array read and
// written as a whole.
package store

import (
	"Zero-Desperdicio/domain"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

const (
	SlotFoodItems     = "zerodesperdicio_items"
	SlotShoppingList  = "zerodesperdicio_shopping"
	SlotChallenges    = "zerodesperdicio_challenges"
	SlotNotifications = "zerodesperdicio_notifications"
	SlotMonthlyStats  = "zerodesperdicio_stats"
	SlotMedals        = "zerodesperdicio_medals"
)

// Store reads and writes whole collections. Writes are last-writer-wins per
// collection; callers that read-modify-write wrap the sequence in
// Atomically, which serializes mutations of one household within this
// process. Writers in other processes are not coordinated. One mutex per
// household ever seen is kept for the life of the Store and never pruned.
type Store struct {
	repository SlotRepository
	locks      sync.Map
}

func NewStore(repository SlotRepository) *Store {
	return &Store{repository: repository}
}

func (s *Store) Atomically(householdID string, fn func() error) error {
	lock, _ := s.locks.LoadOrStore(householdID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func (s *Store) LoadFoodItems(ctx context.Context, householdID string) []domain.FoodItem {
	return load[domain.FoodItem](ctx, s, householdID, SlotFoodItems)
}

func (s *Store) SaveFoodItems(ctx context.Context, householdID string, items []domain.FoodItem) error {
	return save(ctx, s, householdID, SlotFoodItems, items)
}

func (s *Store) LoadShoppingList(ctx context.Context, householdID string) []domain.ShoppingItem {
	return load[domain.ShoppingItem](ctx, s, householdID, SlotShoppingList)
}

func (s *Store) SaveShoppingList(ctx context.Context, householdID string, items []domain.ShoppingItem) error {
	return save(ctx, s, householdID, SlotShoppingList, items)
}

func (s *Store) LoadChallenges(ctx context.Context, householdID string) []domain.Challenge {
	return load[domain.Challenge](ctx, s, householdID, SlotChallenges)
}

func (s *Store) SaveChallenges(ctx context.Context, householdID string, challenges []domain.Challenge) error {
	return save(ctx, s, householdID, SlotChallenges, challenges)
}

func (s *Store) LoadNotifications(ctx context.Context, householdID string) []domain.Notification {
	return load[domain.Notification](ctx, s, householdID, SlotNotifications)
}

func (s *Store) SaveNotifications(ctx context.Context, householdID string, notifications []domain.Notification) error {
	return save(ctx, s, householdID, SlotNotifications, notifications)
}

func (s *Store) LoadMonthlyStats(ctx context.Context, householdID string) []domain.MonthlyStats {
	return load[domain.MonthlyStats](ctx, s, householdID, SlotMonthlyStats)
}

func (s *Store) SaveMonthlyStats(ctx context.Context, householdID string, stats []domain.MonthlyStats) error {
	return save(ctx, s, householdID, SlotMonthlyStats, stats)
}

func (s *Store) LoadMedals(ctx context.Context, householdID string) []string {
	return load[string](ctx, s, householdID, SlotMedals)
}

func (s *Store) SaveMedals(ctx context.Context, householdID string, medals []string) error {
	return save(ctx, s, householdID, SlotMedals, medals)
}

func slotKey(householdID, slot string) string {
	if householdID == "" {
		return slot
	}
	return householdID + ":" + slot
}

// load never fails: a missing, unreadable or malformed slot yields an empty
// collection.
func load[T any](ctx context.Context, s *Store, householdID, slot string) []T {
	key := slotKey(householdID, slot)
	raw, err := s.repository.GetSlot(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			log.Warnf("store: reading %s: %v", key, err)
		}
		return []T{}
	}

	var values []T
	if err := json.Unmarshal(raw, &values); err != nil {
		log.Warnf("store: decoding %s: %v", key, err)
		return []T{}
	}
	if values == nil {
		return []T{}
	}
	return values
}

func save[T any](ctx context.Context, s *Store, householdID, slot string, values []T) error {
	if values == nil {
		values = []T{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return s.repository.PutSlot(ctx, slotKey(householdID, slot), raw)
}
