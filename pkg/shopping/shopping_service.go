package shopping

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/store"
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultQuantity = 1
	DefaultUnit     = "un"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, householdID string) []domain.ShoppingItem
		AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, householdID string) (domain.ShoppingItem, error)
		ToggleShoppingItem(ctx context.Context, id string, householdID string) (domain.ShoppingItem, error)
		DeleteShoppingItem(ctx context.Context, id string, householdID string) error
		ClearChecked(ctx context.Context, householdID string) (int, error)
	}

	shoppingService struct {
		store *store.Store
		newID func() string
	}
)

func NewShoppingService(store *store.Store) ShoppingService {
	return NewShoppingServiceWithIDs(store, uuid.NewString)
}

func NewShoppingServiceWithIDs(store *store.Store, newID func() string) ShoppingService {
	return &shoppingService{store: store, newID: newID}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, householdID string) []domain.ShoppingItem {
	return s.store.LoadShoppingList(ctx, householdID)
}

func (s *shoppingService) AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, householdID string) (domain.ShoppingItem, error) {
	item := domain.ShoppingItem{
		ID:       s.newID(),
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
	if item.Quantity <= 0 {
		item.Quantity = DefaultQuantity
	}
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}

	err := s.store.Atomically(householdID, func() error {
		list := s.store.LoadShoppingList(ctx, householdID)
		return s.store.SaveShoppingList(ctx, householdID, append(list, item))
	})
	if err != nil {
		return domain.ShoppingItem{}, err
	}
	return item, nil
}

func (s *shoppingService) ToggleShoppingItem(ctx context.Context, id string, householdID string) (domain.ShoppingItem, error) {
	var toggled domain.ShoppingItem
	err := s.store.Atomically(householdID, func() error {
		list := s.store.LoadShoppingList(ctx, householdID)
		for i := range list {
			if list[i].ID == id {
				list[i].Checked = !list[i].Checked
				toggled = list[i]
				return s.store.SaveShoppingList(ctx, householdID, list)
			}
		}
		return domain.ErrShoppingItemNotFound
	})
	return toggled, err
}

func (s *shoppingService) DeleteShoppingItem(ctx context.Context, id string, householdID string) error {
	return s.store.Atomically(householdID, func() error {
		list := s.store.LoadShoppingList(ctx, householdID)
		for i := range list {
			if list[i].ID == id {
				return s.store.SaveShoppingList(ctx, householdID, append(list[:i], list[i+1:]...))
			}
		}
		return domain.ErrShoppingItemNotFound
	})
}

// ClearChecked drops every checked item and reports how many were removed.
func (s *shoppingService) ClearChecked(ctx context.Context, householdID string) (int, error) {
	removed := 0
	err := s.store.Atomically(householdID, func() error {
		list := s.store.LoadShoppingList(ctx, householdID)
		kept := list[:0]
		for _, item := range list {
			if item.Checked {
				continue
			}
			kept = append(kept, item)
		}
		removed = len(list) - len(kept)
		if removed == 0 {
			return nil
		}
		return s.store.SaveShoppingList(ctx, householdID, kept)
	})
	return removed, err
}
