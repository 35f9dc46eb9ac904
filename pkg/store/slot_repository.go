package store

import (
	"Zero-Desperdicio/entities"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// SlotRepository persists raw JSON documents by key. GetSlot returns
	// ErrSlotNotFound when nothing was ever written under key.
	SlotRepository interface {
		GetSlot(ctx context.Context, key string) ([]byte, error)
		PutSlot(ctx context.Context, key string, value []byte) error
	}

	slotRepository struct {
		db *gorm.DB
	}
)

var ErrSlotNotFound = errors.New("slot not found")

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) GetSlot(ctx context.Context, key string) ([]byte, error) {
	var slot entities.StoreSlot
	if err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return []byte(slot.Value), nil
}

func (r *slotRepository) PutSlot(ctx context.Context, key string, value []byte) error {
	slot := entities.StoreSlot{Key: key, Value: string(value), Version: 1}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      slot.Value,
				"version":    gorm.Expr("store_slots.version + 1"),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(&slot).Error
}
