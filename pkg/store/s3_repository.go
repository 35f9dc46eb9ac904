package store

import (
	"Zero-Desperdicio/internal/utils/storage"
	"context"
	"errors"
)

type s3SlotRepository struct {
	s3     storage.AwsS3
	prefix string
}

// NewS3SlotRepository stores every slot as a JSON object under prefix.
func NewS3SlotRepository(s3 storage.AwsS3, prefix string) SlotRepository {
	return &s3SlotRepository{s3: s3, prefix: prefix}
}

func (r *s3SlotRepository) objectKey(key string) string {
	return r.prefix + key + ".json"
}

func (r *s3SlotRepository) GetSlot(ctx context.Context, key string) ([]byte, error) {
	body, err := r.s3.GetObject(ctx, r.objectKey(key))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return body, nil
}

func (r *s3SlotRepository) PutSlot(ctx context.Context, key string, value []byte) error {
	return r.s3.PutObject(ctx, r.objectKey(key), value, "application/json")
}
