// Package household owns the accounts whose ids scope every inventory slot.
package household

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/entities"
	"Zero-Desperdicio/pkg/jwt"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	HouseholdService interface {
		Register(ctx context.Context, req domain.RegisterHouseholdRequest) (domain.HouseholdResponse, error)
		Login(ctx context.Context, req domain.LoginHouseholdRequest) (domain.HouseholdResponse, error)
		GetEmail(ctx context.Context, householdID string) (string, error)
	}

	householdService struct {
		householdRepository HouseholdRepository
		jwtService          jwt.JWTService
		hashCost            int
	}
)

func NewHouseholdService(householdRepository HouseholdRepository, jwtService jwt.JWTService) HouseholdService {
	return NewHouseholdServiceWithCost(householdRepository, jwtService, bcrypt.DefaultCost)
}

func NewHouseholdServiceWithCost(householdRepository HouseholdRepository, jwtService jwt.JWTService, hashCost int) HouseholdService {
	return &householdService{
		householdRepository: householdRepository,
		jwtService:          jwtService,
		hashCost:            hashCost,
	}
}

func (s *householdService) Register(ctx context.Context, req domain.RegisterHouseholdRequest) (domain.HouseholdResponse, error) {
	email := normalizeEmail(req.Email)

	_, err := s.householdRepository.GetHouseholdByEmail(ctx, email)
	if err == nil {
		return domain.HouseholdResponse{}, domain.ErrHouseholdEmailTaken
	}
	if !errors.Is(err, domain.ErrHouseholdNotFound) {
		return domain.HouseholdResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Passphrase), s.hashCost)
	if err != nil {
		return domain.HouseholdResponse{}, domain.ErrFailedHashPassphrase
	}

	household := &entities.Household{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		PassphraseHash: string(hash),
	}
	if err := s.householdRepository.CreateHousehold(ctx, household); err != nil {
		return domain.HouseholdResponse{}, err
	}

	return s.withToken(household)
}

func (s *householdService) Login(ctx context.Context, req domain.LoginHouseholdRequest) (domain.HouseholdResponse, error) {
	household, err := s.householdRepository.GetHouseholdByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrHouseholdNotFound) {
			return domain.HouseholdResponse{}, domain.ErrInvalidCredentials
		}
		return domain.HouseholdResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(household.PassphraseHash), []byte(req.Passphrase)); err != nil {
		return domain.HouseholdResponse{}, domain.ErrInvalidCredentials
	}

	return s.withToken(household)
}

// GetEmail resolves the digest recipient for a household.
func (s *householdService) GetEmail(ctx context.Context, householdID string) (string, error) {
	if _, err := uuid.Parse(householdID); err != nil {
		return "", domain.ErrParseUUID
	}
	household, err := s.householdRepository.GetHouseholdByID(ctx, householdID)
	if err != nil {
		return "", err
	}
	return household.Email, nil
}

func (s *householdService) withToken(household *entities.Household) (domain.HouseholdResponse, error) {
	token, err := s.jwtService.GenerateTokenHousehold(household.ID.String())
	if err != nil {
		return domain.HouseholdResponse{}, err
	}
	return domain.HouseholdResponse{
		ID:    household.ID.String(),
		Name:  household.Name,
		Email: household.Email,
		Token: token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
