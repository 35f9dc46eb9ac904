package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetFoodItem       = "food item retrieved successfully"
	MessageSuccessConsumeFoodItem   = "food item marked as consumed"
	MessageSuccessWasteFoodItem     = "food item marked as wasted"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedGetFoodItem       = "failed to retrieve food item"
	MessageFailedConsumeFoodItem   = "failed to mark food item as consumed"
	MessageFailedWasteFoodItem     = "failed to mark food item as wasted"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrItemNotInStock    = errors.New("food item is no longer in stock")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidCategory   = errors.New("invalid category")
)

type FoodCategory string

const (
	CategoryIndustrialized FoodCategory = "Industrializado"
	CategoryFruit          FoodCategory = "Fruta"
	CategoryVegetable      FoodCategory = "Legume"
	CategoryGreens         FoodCategory = "Verdura"
	CategoryDairy          FoodCategory = "Laticínio"
	CategoryMeat           FoodCategory = "Carne"
	CategoryGrain          FoodCategory = "Grão"
	CategoryBeverage       FoodCategory = "Bebida"
	CategoryFrozen         FoodCategory = "Congelado"
	CategorySeasoning      FoodCategory = "Tempero"
	CategoryOther          FoodCategory = "Outro"
)

var FoodCategories = []FoodCategory{
	CategoryIndustrialized,
	CategoryFruit,
	CategoryVegetable,
	CategoryGreens,
	CategoryDairy,
	CategoryMeat,
	CategoryGrain,
	CategoryBeverage,
	CategoryFrozen,
	CategorySeasoning,
	CategoryOther,
}

func (c FoodCategory) Valid() bool {
	for _, known := range FoodCategories {
		if c == known {
			return true
		}
	}
	return false
}

type ItemStatus string

const (
	StatusInStock  ItemStatus = "em_estoque"
	StatusConsumed ItemStatus = "consumido"
	StatusWasted   ItemStatus = "desperdicado"
)

// Terminal reports whether the status no longer counts as active inventory.
func (s ItemStatus) Terminal() bool {
	return s == StatusConsumed || s == StatusWasted
}

type ExpirationStatus string

const (
	ExpirationFresh    ExpirationStatus = "fresh"
	ExpirationExpiring ExpirationStatus = "expiring"
	ExpirationExpired  ExpirationStatus = "expired"
)

type (
	FoodItem struct {
		ID             string           `json:"id"`
		Name           string           `json:"name"`
		Quantity       float64          `json:"quantity"`
		Unit           string           `json:"unit"`
		Category       FoodCategory     `json:"category"`
		ExpirationDate time.Time        `json:"expirationDate"`
		Status         ItemStatus       `json:"status"`
		AddedAt        time.Time        `json:"addedAt"`
		EstimatedPrice *decimal.Decimal `json:"estimatedPrice,omitempty"`
		IsNatural      bool             `json:"isNatural"`
	}

	AddFoodItemRequest struct {
		Name           string   `json:"name" validate:"required"`
		Quantity       float64  `json:"quantity" validate:"required,gt=0"`
		Unit           string   `json:"unit" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		ExpirationDate string   `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
		EstimatedPrice *float64 `json:"estimated_price" validate:"omitempty,gte=0"`
	}

	FoodItemResponse struct {
		ID               string           `json:"id"`
		Name             string           `json:"name"`
		Quantity         float64          `json:"quantity"`
		Unit             string           `json:"unit"`
		Category         FoodCategory     `json:"category"`
		ExpirationDate   time.Time        `json:"expiration_date"`
		Status           ItemStatus       `json:"status"`
		ExpirationStatus ExpirationStatus `json:"expiration_status"`
		StatusLabel      string           `json:"status_label"`
		DaysLeft         int              `json:"days_left"`
		DaysLeftLabel    string           `json:"days_left_label"`
		EstimatedPrice   *decimal.Decimal `json:"estimated_price,omitempty"`
		IsNatural        bool             `json:"is_natural"`
		AddedAt          time.Time        `json:"added_at"`
	}

	DashboardStatsResponse struct {
		TotalItems    int             `json:"total_items"`
		FreshItems    int             `json:"fresh_items"`
		ExpiringItems int             `json:"expiring_items"`
		ExpiredItems  int             `json:"expired_items"`
		WastedValue   decimal.Decimal `json:"wasted_value"`
	}
)
