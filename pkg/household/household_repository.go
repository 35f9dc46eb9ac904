package household

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	HouseholdRepository interface {
		CreateHousehold(ctx context.Context, household *entities.Household) error
		GetHouseholdByEmail(ctx context.Context, email string) (*entities.Household, error)
		GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error)
	}

	householdRepository struct {
		db *gorm.DB
	}
)

func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &householdRepository{db: db}
}

func (r *householdRepository) CreateHousehold(ctx context.Context, household *entities.Household) error {
	return r.db.WithContext(ctx).Create(household).Error
}

func (r *householdRepository) GetHouseholdByEmail(ctx context.Context, email string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, err
	}
	return &household, nil
}
