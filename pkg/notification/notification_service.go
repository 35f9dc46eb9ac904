package notification

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/store"
	"context"
	"math/rand/v2"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	NotificationService interface {
		GenerateAll(ctx context.Context, householdID string, now time.Time) ([]domain.Notification, error)
		GetNotifications(ctx context.Context, householdID string) domain.NotificationListResponse
		MarkAsRead(ctx context.Context, householdID string, notificationID string) error
		MarkAllAsRead(ctx context.Context, householdID string) error
	}

	notificationService struct {
		store       *store.Store
		picker      Picker
		newID       func() string
		dispatchers []Dispatcher
	}

	globalPicker struct{}
)

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

func NewNotificationService(store *store.Store, dispatchers ...Dispatcher) NotificationService {
	return NewNotificationServiceWith(store, globalPicker{}, uuid.NewString, dispatchers...)
}

func NewNotificationServiceWith(store *store.Store, picker Picker, newID func() string, dispatchers ...Dispatcher) NotificationService {
	return &notificationService{
		store:       store,
		picker:      picker,
		newID:       newID,
		dispatchers: dispatchers,
	}
}

// GenerateAll stores and returns the notifications created for the
// household's stock. Delivery failures are logged and never fail the call.
func (s *notificationService) GenerateAll(ctx context.Context, householdID string, now time.Time) ([]domain.Notification, error) {
	var created []domain.Notification
	err := s.store.Atomically(householdID, func() error {
		items := s.store.LoadFoodItems(ctx, householdID)
		existing := s.store.LoadNotifications(ctx, householdID)

		var stored []domain.Notification
		created, stored = GenerateAll(items, existing, now, s.picker, s.newID)
		if len(created) == 0 {
			return nil
		}
		return s.store.SaveNotifications(ctx, householdID, stored)
	})
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		log.Infof("generated %d notifications for household %s", len(created), householdID)
		s.dispatch(ctx, householdID, created)
	}
	return created, nil
}

func (s *notificationService) dispatch(ctx context.Context, householdID string, notifications []domain.Notification) {
	for _, d := range s.dispatchers {
		if err := d.Dispatch(ctx, householdID, notifications); err != nil {
			log.Errorf("dispatching notifications via %s for household %s: %v", d.Name(), householdID, err)
		}
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, householdID string) domain.NotificationListResponse {
	notifications := s.store.LoadNotifications(ctx, householdID)
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return domain.NotificationListResponse{Notifications: notifications, Unread: unread}
}

func (s *notificationService) MarkAsRead(ctx context.Context, householdID string, notificationID string) error {
	return s.store.Atomically(householdID, func() error {
		notifications := s.store.LoadNotifications(ctx, householdID)
		for i := range notifications {
			if notifications[i].ID == notificationID {
				if notifications[i].Read {
					return nil
				}
				notifications[i].Read = true
				return s.store.SaveNotifications(ctx, householdID, notifications)
			}
		}
		return domain.ErrNotificationNotFound
	})
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, householdID string) error {
	return s.store.Atomically(householdID, func() error {
		notifications := s.store.LoadNotifications(ctx, householdID)
		changed := false
		for i := range notifications {
			if !notifications[i].Read {
				notifications[i].Read = true
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return s.store.SaveNotifications(ctx, householdID, notifications)
	})
}
