package estimation

import (
	"Zero-Desperdicio/domain"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, time.March, 10, 18, 45, 0, 0, time.UTC)

func TestIsNatural(t *testing.T) {
	natural := []domain.FoodCategory{
		domain.CategoryFruit, domain.CategoryVegetable, domain.CategoryGreens,
		domain.CategoryDairy, domain.CategoryMeat,
	}
	for _, c := range natural {
		assert.True(t, IsNatural(c), c)
	}

	for _, c := range []domain.FoodCategory{
		domain.CategoryIndustrialized, domain.CategoryGrain, domain.CategoryBeverage,
		domain.CategoryFrozen, domain.CategorySeasoning, domain.CategoryOther, "Desconhecida",
	} {
		assert.False(t, IsNatural(c), c)
	}
}

func TestEstimateExpirationDate_KeywordMatch(t *testing.T) {
	got := EstimateExpirationDate("  Banana Prata ", domain.CategoryFruit, today)
	assert.Equal(t, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), got)

	got = EstimateExpirationDate("Peixe", domain.CategoryOther, today)
	assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestEstimateExpirationDate_CategoryFallback(t *testing.T) {
	assert.Equal(t, 180, ShelfLifeDays("arroz integral", domain.CategoryGrain))
	assert.Equal(t, 3, ShelfLifeDays("picanha", domain.CategoryMeat))
	assert.Equal(t, DefaultShelfLifeDays, ShelfLifeDays("mistério", "Desconhecida"))
}

func TestEstimateExpirationDate_FirstKeywordWins(t *testing.T) {
	// "tomate" (7) is declared before "cebola" (30).
	assert.Equal(t, 7, ShelfLifeDays("molho de tomate com cebola", domain.CategoryOther))
	// "batata" (21) is declared before "frango" (3).
	assert.Equal(t, 21, ShelfLifeDays("batata com frango", domain.CategoryOther))
}

func TestEstimateExpirationDate_Deterministic(t *testing.T) {
	a := EstimateExpirationDate("Alface crespa", domain.CategoryGreens, today)
	b := EstimateExpirationDate("Alface crespa", domain.CategoryGreens, today)
	assert.Equal(t, a, b)
}

func TestEstimatePrice(t *testing.T) {
	assert.True(t, decimal.NewFromInt(6).Equal(EstimatePrice("Leite")))
	assert.True(t, decimal.NewFromInt(6).Equal(EstimatePrice("Leite integral")))
	assert.True(t, decimal.NewFromInt(DefaultPrice).Equal(EstimatePrice("Azeite")))
	assert.True(t, EstimatePrice("Queijo").Equal(EstimatePrice("Queijo")))
}

func TestEstimatePrice_FirstKeywordWins(t *testing.T) {
	// "queijo" (25) is declared before "pão" (10).
	assert.True(t, decimal.NewFromInt(25).Equal(EstimatePrice("pão de queijo")))
}

func TestPriceOf(t *testing.T) {
	recorded := decimal.RequireFromString("12.50")
	item := domain.FoodItem{Name: "Leite", EstimatedPrice: &recorded}
	assert.True(t, recorded.Equal(PriceOf(item)))

	item.EstimatedPrice = nil
	assert.True(t, decimal.NewFromInt(6).Equal(PriceOf(item)))
}
