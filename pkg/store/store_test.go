package store

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/utils/storage"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const household = "b3f1c1de-2f5e-4c39-9d0c-7b8f4a2b6e11"

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemorySlotRepository())

	items := []domain.FoodItem{{
		ID:             "item-1",
		Name:           "Banana",
		Quantity:       4,
		Unit:           "un",
		Category:       domain.CategoryFruit,
		ExpirationDate: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Status:         domain.StatusInStock,
		AddedAt:        time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
		IsNatural:      true,
	}}
	require.NoError(t, s.SaveFoodItems(ctx, household, items))
	assert.Equal(t, items, s.LoadFoodItems(ctx, household))

	require.NoError(t, s.SaveMedals(ctx, household, []string{"Rei das Bananas 🍌"}))
	assert.Equal(t, []string{"Rei das Bananas 🍌"}, s.LoadMedals(ctx, household))
}

func TestStore_MissingSlotIsEmpty(t *testing.T) {
	s := NewStore(NewMemorySlotRepository())
	ctx := context.Background()

	assert.NotNil(t, s.LoadFoodItems(ctx, household))
	assert.Empty(t, s.LoadFoodItems(ctx, household))
	assert.Empty(t, s.LoadShoppingList(ctx, household))
	assert.Empty(t, s.LoadChallenges(ctx, household))
	assert.Empty(t, s.LoadNotifications(ctx, household))
	assert.Empty(t, s.LoadMonthlyStats(ctx, household))
	assert.Empty(t, s.LoadMedals(ctx, household))
}

func TestStore_MalformedSlotIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySlotRepository()
	s := NewStore(repo)

	require.NoError(t, repo.PutSlot(ctx, slotKey(household, SlotChallenges), []byte(`{not json`)))
	require.NoError(t, repo.PutSlot(ctx, slotKey(household, SlotFoodItems), []byte(`[{"expirationDate":"amanhã"}]`)))
	require.NoError(t, repo.PutSlot(ctx, slotKey(household, SlotMedals), []byte(`null`)))

	assert.Empty(t, s.LoadChallenges(ctx, household))
	assert.Empty(t, s.LoadFoodItems(ctx, household))
	assert.NotNil(t, s.LoadMedals(ctx, household))
}

func TestStore_ParsesISODates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySlotRepository()
	s := NewStore(repo)

	raw := `[{"id":"n1","type":"chef","itemId":"item-1","read":false,"createdAt":"2024-03-10T12:30:00.000Z"}]`
	require.NoError(t, repo.PutSlot(ctx, slotKey(household, SlotNotifications), []byte(raw)))

	got := s.LoadNotifications(ctx, household)
	require.Len(t, got, 1)
	assert.True(t, got[0].CreatedAt.Equal(time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, domain.NotificationChef, got[0].Type)
}

func TestStore_HouseholdsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemorySlotRepository())

	require.NoError(t, s.SaveShoppingList(ctx, "a", []domain.ShoppingItem{{ID: "1", Name: "Arroz"}}))

	assert.Len(t, s.LoadShoppingList(ctx, "a"), 1)
	assert.Empty(t, s.LoadShoppingList(ctx, "b"))
}

func TestStore_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySlotRepository()
	s := NewStore(repo)

	require.NoError(t, s.SaveMonthlyStats(ctx, household, nil))
	raw, err := repo.GetSlot(ctx, slotKey(household, SlotMonthlyStats))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestStore_AtomicallySerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemorySlotRepository())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Atomically(household, func() error {
				medals := s.LoadMedals(ctx, household)
				medals = append(medals, "m")
				return s.SaveMedals(ctx, household, medals)
			})
		}()
	}
	wg.Wait()

	assert.Len(t, s.LoadMedals(ctx, household), 50)
}

func TestStore_AtomicallyLocksPerHousehold(t *testing.T) {
	s := NewStore(NewMemorySlotRepository())

	err := s.Atomically("house-1", func() error {
		// a second household is not blocked by the first one's lock
		return s.Atomically("house-2", func() error { return nil })
	})
	require.NoError(t, err)

	require.NoError(t, s.Atomically("house-1", func() error { return nil }))

	first, ok := s.locks.Load("house-1")
	require.True(t, ok)
	require.NoError(t, s.Atomically("house-1", func() error { return nil }))
	again, _ := s.locks.Load("house-1")
	assert.Same(t, first, again)

	households := 0
	s.locks.Range(func(_, _ any) bool {
		households++
		return true
	})
	assert.Equal(t, 2, households)
}

type fakeS3 struct {
	objects map[string][]byte
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, key string, body []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.objects[key] = body
	return nil
}

func (f *fakeS3) GetObject(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return body, nil
}

func TestS3SlotRepository(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string][]byte{}}
	repo := NewS3SlotRepository(fake, "households/")

	_, err := repo.GetSlot(ctx, "k")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, repo.PutSlot(ctx, "k", []byte(`[]`)))
	assert.Contains(t, fake.objects, "households/k.json")

	got, err := repo.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestStore_BackendFailureDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string][]byte{}, err: errors.New("connection reset")}
	s := NewStore(NewS3SlotRepository(fake, ""))

	assert.Empty(t, s.LoadFoodItems(ctx, household))
	assert.Error(t, s.SaveFoodItems(ctx, household, nil))
}
