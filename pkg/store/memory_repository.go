package store

import (
	"context"
	"sync"
)

type memorySlotRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotRepository keeps slots in process memory. Used by tests and
// by STORE_BACKEND=memory.
func NewMemorySlotRepository() SlotRepository {
	return &memorySlotRepository{slots: make(map[string][]byte)}
}

func (r *memorySlotRepository) GetSlot(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), value...), nil
}

func (r *memorySlotRepository) PutSlot(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[key] = append([]byte(nil), value...)
	return nil
}
