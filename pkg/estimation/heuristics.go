// Package estimation fills in data the user did not provide: shelf life for
// natural goods and a rough price used to frame waste in money terms.
package estimation

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/expiration"
	"time"

	"github.com/shopspring/decimal"
)

func IsNatural(category domain.FoodCategory) bool {
	return naturalCategories[category]
}

// EstimateExpirationDate returns the start of today plus the shelf life of
// the first keyword found in name, falling back to the category default.
func EstimateExpirationDate(name string, category domain.FoodCategory, today time.Time) time.Time {
	return expiration.StartOfDay(today).AddDate(0, 0, ShelfLifeDays(name, category))
}

func ShelfLifeDays(name string, category domain.FoodCategory) int {
	if days, ok := shelfLifeByKeyword.Lookup(name); ok {
		return days
	}
	if days, ok := shelfLifeByCategory[category]; ok {
		return days
	}
	return DefaultShelfLifeDays
}

func EstimatePrice(name string) decimal.Decimal {
	return decimal.NewFromInt(priceByKeyword.LookupOr(name, DefaultPrice))
}

// PriceOf prefers the recorded price of an item over the estimate.
func PriceOf(item domain.FoodItem) decimal.Decimal {
	if item.EstimatedPrice != nil {
		return *item.EstimatedPrice
	}
	return EstimatePrice(item.Name)
}
