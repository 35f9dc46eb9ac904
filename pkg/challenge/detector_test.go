package challenge

import (
	"Zero-Desperdicio/domain"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("challenge-%d", n)
	}
}

func item(name string, quantity float64, daysLeft int) domain.FoodItem {
	return domain.FoodItem{
		ID:             name + "-" + fmt.Sprint(daysLeft),
		Name:           name,
		Quantity:       quantity,
		Unit:           "un",
		Category:       domain.CategoryFruit,
		ExpirationDate: time.Date(2024, time.March, 10+daysLeft, 0, 0, 0, 0, time.UTC),
		Status:         domain.StatusInStock,
	}
}

func TestDetect_AbundantBananas(t *testing.T) {
	got := Detect([]domain.FoodItem{item("Banana", 4, 2)}, nil, today, sequentialIDs())

	require.NotNil(t, got)
	assert.Equal(t, "challenge-1", got.ID)
	assert.Equal(t, "Banana", got.ItemName)
	assert.Equal(t, 4.0, got.Quantity)
	assert.Equal(t, 2, got.DaysLeft)
	assert.Equal(t, "Rei das Bananas 🍌", got.Medal)
	assert.Equal(t, "Bolo de banana com canela", got.RecipeSuggestion)
	assert.False(t, got.IsCompleted)
}

func TestDetect_QualifyingRules(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.FoodItem
		want  bool
	}{
		{"single unit expiring in 3 days", []domain.FoodItem{item("Tomate", 1, 3)}, false},
		{"single unit expiring in 2 days", []domain.FoodItem{item("Tomate", 1, 2)}, true},
		{"single unit expiring today", []domain.FoodItem{item("Tomate", 1, 0)}, true},
		{"abundant at window edge", []domain.FoodItem{item("Tomate", 3, 3)}, true},
		{"quantity summed across entries", []domain.FoodItem{item("Tomate", 2, 3), item("tomate", 1, 3)}, true},
		{"abundant but outside window", []domain.FoodItem{item("Tomate", 10, 4)}, false},
		{"already expired", []domain.FoodItem{item("Tomate", 10, -1)}, false},
		{"group with an expired entry is discarded", []domain.FoodItem{item("Tomate", 5, 1), item("Tomate", 1, -2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.items, nil, today, sequentialIDs())
			assert.Equal(t, tt.want, got != nil)
		})
	}
}

func TestDetect_GroupsByFoldedName(t *testing.T) {
	items := []domain.FoodItem{item("Leite", 1, 3), item("LEITE ", 1, 1), item("leite", 1, 5)}

	got := Detect(items, nil, today, sequentialIDs())

	require.NotNil(t, got)
	assert.Equal(t, "Leite", got.ItemName)
	assert.Equal(t, 3.0, got.Quantity)
	assert.Equal(t, 1, got.DaysLeft)
	assert.Equal(t, "Leiteiro Supremo 🥛", got.Medal)
}

func TestDetect_IgnoresItemsOutOfStock(t *testing.T) {
	consumed := item("Banana", 5, 1)
	consumed.Status = domain.StatusConsumed
	wasted := item("Banana", 5, 1)
	wasted.Status = domain.StatusWasted

	assert.Nil(t, Detect([]domain.FoodItem{consumed, wasted}, nil, today, sequentialIDs()))
}

func TestDetect_OnePerScanInEncounterOrder(t *testing.T) {
	items := []domain.FoodItem{item("Pepino", 1, 10), item("Morango", 1, 1), item("Cenoura", 5, 2)}

	got := Detect(items, nil, today, sequentialIDs())

	require.NotNil(t, got)
	assert.Equal(t, "Morango", got.ItemName)
	assert.Equal(t, "Rei dos Morangos 🍓", got.Medal)
}

func TestDetect_SkipsNamesWithActiveChallenge(t *testing.T) {
	items := []domain.FoodItem{item("Morango", 1, 1), item("Cenoura", 5, 2)}
	existing := []domain.Challenge{{ID: "old", ItemName: "MORANGO", Medal: "Rei dos Morangos 🍓"}}

	got := Detect(items, existing, today, sequentialIDs())

	require.NotNil(t, got)
	assert.Equal(t, "Cenoura", got.ItemName)
	assert.Equal(t, "Bolo de cenoura", got.RecipeSuggestion)

	existing = append(existing, domain.Challenge{ID: "older", ItemName: "cenoura"})
	assert.Nil(t, Detect(items, existing, today, sequentialIDs()))
}

func TestDetect_CompletedChallengeDoesNotBlock(t *testing.T) {
	existing := []domain.Challenge{{ID: "old", ItemName: "Banana", IsCompleted: true}}

	got := Detect([]domain.FoodItem{item("Banana", 4, 2)}, existing, today, sequentialIDs())
	assert.NotNil(t, got)
}

func TestDetect_DefaultReward(t *testing.T) {
	got := Detect([]domain.FoodItem{item("Jiló", 1, 0)}, nil, today, sequentialIDs())

	require.NotNil(t, got)
	assert.Equal(t, DefaultReward.Medal, got.Medal)
	assert.Equal(t, DefaultReward.Recipe, got.RecipeSuggestion)
}

func TestRewardFor_FirstKeywordWins(t *testing.T) {
	// "ovo" is declared before "queijo".
	assert.Equal(t, "Mestre dos Ovos 🥚", RewardFor("ovo com queijo").Medal)
	// "limão" is declared before "banana".
	assert.Equal(t, "Mestre Cítrico 🍋", RewardFor("banana com limão").Medal)
}

func TestDetect_RespectsLimit(t *testing.T) {
	items := []domain.FoodItem{item("Morango", 1, 1), item("Cenoura", 5, 2), item("Abacate", 1, 0)}

	all := detect(items, nil, today, sequentialIDs(), len(items))
	require.Len(t, all, 3)
	assert.Equal(t, []string{"challenge-1", "challenge-2", "challenge-3"}, []string{all[0].ID, all[1].ID, all[2].ID})
}
