package challenge

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/store"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	ChallengeService interface {
		Scan(ctx context.Context, householdID string, now time.Time) (*domain.Challenge, error)
		CreateChallenge(ctx context.Context, householdID string, challenge domain.Challenge) error
		CompleteChallenge(ctx context.Context, householdID string, challengeID string) (*string, error)
		GetActiveChallenges(ctx context.Context, householdID string) []domain.Challenge
		GetEarnedMedals(ctx context.Context, householdID string) []string
	}

	challengeService struct {
		store *store.Store
		newID func() string
	}
)

func NewChallengeService(store *store.Store) ChallengeService {
	return NewChallengeServiceWithIDs(store, uuid.NewString)
}

func NewChallengeServiceWithIDs(store *store.Store, newID func() string) ChallengeService {
	return &challengeService{store: store, newID: newID}
}

// Scan detects a challenge over the household's current stock and stores it.
// A nil challenge means nothing qualified.
func (s *challengeService) Scan(ctx context.Context, householdID string, now time.Time) (*domain.Challenge, error) {
	var detected *domain.Challenge
	err := s.store.Atomically(householdID, func() error {
		items := s.store.LoadFoodItems(ctx, householdID)
		challenges := s.store.LoadChallenges(ctx, householdID)

		detected = Detect(items, challenges, now, s.newID)
		if detected == nil {
			return nil
		}
		return s.store.SaveChallenges(ctx, householdID, Prepend(challenges, *detected))
	})
	if err != nil {
		return nil, err
	}

	if detected != nil {
		log.Infof("challenge %s created for %q in household %s", detected.ID, detected.ItemName, householdID)
	}
	return detected, nil
}

func (s *challengeService) CreateChallenge(ctx context.Context, householdID string, challenge domain.Challenge) error {
	return s.store.Atomically(householdID, func() error {
		challenges := s.store.LoadChallenges(ctx, householdID)
		return s.store.SaveChallenges(ctx, householdID, Prepend(challenges, challenge))
	})
}

func (s *challengeService) CompleteChallenge(ctx context.Context, householdID string, challengeID string) (*string, error) {
	var awarded *string
	err := s.store.Atomically(householdID, func() error {
		challenges := s.store.LoadChallenges(ctx, householdID)
		medals := s.store.LoadMedals(ctx, householdID)

		updatedMedals, medal, ok := Complete(challenges, medals, challengeID)
		if !ok {
			return domain.ErrChallengeNotFound
		}
		if err := s.store.SaveChallenges(ctx, householdID, challenges); err != nil {
			return err
		}
		if medal != nil {
			if err := s.store.SaveMedals(ctx, householdID, updatedMedals); err != nil {
				return err
			}
		}
		awarded = medal
		return nil
	})
	return awarded, err
}

func (s *challengeService) GetActiveChallenges(ctx context.Context, householdID string) []domain.Challenge {
	return Active(s.store.LoadChallenges(ctx, householdID))
}

func (s *challengeService) GetEarnedMedals(ctx context.Context, householdID string) []string {
	return s.store.LoadMedals(ctx, householdID)
}
