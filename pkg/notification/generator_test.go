package notification

import (
	"Zero-Desperdicio/domain"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

type fixedPicker int

func (p fixedPicker) IntN(int) int { return int(p) }

const (
	pickFinancial       fixedPicker = 0
	pickChef            fixedPicker = 1
	pickPersonification fixedPicker = 2
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("notification-%d", n)
	}
}

func stockItem(id, name string, daysLeft int) domain.FoodItem {
	return domain.FoodItem{
		ID:             id,
		Name:           name,
		Quantity:       1,
		Unit:           "un",
		Category:       domain.CategoryDairy,
		ExpirationDate: time.Date(2024, time.March, 10+daysLeft, 0, 0, 0, 0, time.UTC),
		Status:         domain.StatusInStock,
	}
}

func TestGenerate_TodayPhrasingInEveryVoice(t *testing.T) {
	item := stockItem("i1", "Leite", 0)

	for _, p := range []fixedPicker{pickFinancial, pickChef, pickPersonification} {
		n := Generate(item, now, p, sequentialIDs())
		require.NotNil(t, n)
		assert.Contains(t, n.Body, "hoje", n.Type)
		assert.Equal(t, "i1", n.ItemID)
		assert.Equal(t, now, n.CreatedAt)
		assert.False(t, n.Read)
	}
}

func TestGenerate_Window(t *testing.T) {
	assert.Nil(t, Generate(stockItem("i", "Leite", -1), now, pickChef, sequentialIDs()))
	assert.Nil(t, Generate(stockItem("i", "Leite", 4), now, pickChef, sequentialIDs()))
	assert.NotNil(t, Generate(stockItem("i", "Leite", 3), now, pickChef, sequentialIDs()))
}

func TestGenerate_Financial(t *testing.T) {
	n := Generate(stockItem("i1", "Leite", 2), now, pickFinancial, sequentialIDs())

	require.NotNil(t, n)
	assert.Equal(t, domain.NotificationFinancial, n.Type)
	assert.Equal(t, "💸 Dinheiro indo pro lixo!", n.Title)
	assert.Equal(t, "Seu Leite (aprox. R$ 6,00) vence em 2 dias. Que tal usar agora?", n.Body)
	assert.Equal(t, "Ver Receita", n.CTA)

	recorded := decimal.RequireFromString("4.5")
	item := stockItem("i2", "Leite", 1)
	item.EstimatedPrice = &recorded
	n = Generate(item, now, pickFinancial, sequentialIDs())
	assert.Equal(t, "Seu Leite (aprox. R$ 4,50) vence amanhã. Que tal usar agora?", n.Body)
}

func TestGenerate_Chef(t *testing.T) {
	n := Generate(stockItem("i1", "Tomate italiano", 1), now, pickChef, sequentialIDs())
	require.NotNil(t, n)
	assert.Equal(t, domain.NotificationChef, n.Type)
	assert.Equal(t, "Tomate italiano vence amanhã? O Chef IA sugere um molho caseiro!", n.Body)
	assert.Equal(t, "Ver modo de preparo", n.CTA)

	n = Generate(stockItem("i2", "Kefir", 1), now, pickChef, sequentialIDs())
	assert.Contains(t, n.Body, defaultChefSuggestion)
}

func TestGenerate_Personification(t *testing.T) {
	n := Generate(stockItem("i1", "Banana", 2), now, pickPersonification, sequentialIDs())
	require.NotNil(t, n)
	assert.Equal(t, domain.NotificationPersonification, n.Type)
	assert.Equal(t, `🍌 "Não me deixe morrer!" - ass: Banana`, n.Title)
	assert.Equal(t, "Estou ficando pretinha... Viro um bolo delicioso se você me usar até daqui a 2 dias!", n.Body)
	assert.Equal(t, "Salvar Banana", n.CTA)

	n = Generate(stockItem("i2", "Kefir", 0), now, pickPersonification, sequentialIDs())
	assert.Equal(t, "Não me deixe estragar... Me use se você me usar até hoje!", n.Body)
}

func TestGenerateAll_OneNotificationForItemExpiringToday(t *testing.T) {
	created, stored := GenerateAll([]domain.FoodItem{stockItem("i1", "Leite", 0)}, nil, now, rand.New(rand.NewPCG(1, 2)), sequentialIDs())

	require.Len(t, created, 1)
	assert.Contains(t, created[0].Body, "hoje")
	assert.Equal(t, created, stored)
}

func TestGenerateAll_FiltersItems(t *testing.T) {
	consumed := stockItem("c", "Leite", 1)
	consumed.Status = domain.StatusConsumed
	items := []domain.FoodItem{
		stockItem("far", "Arroz", 30),
		stockItem("expired", "Queijo", -2),
		consumed,
		stockItem("ok", "Ovo", 3),
	}

	created, _ := GenerateAll(items, nil, now, pickChef, sequentialIDs())

	require.Len(t, created, 1)
	assert.Equal(t, "ok", created[0].ItemID)
}

func TestGenerateAll_DeduplicatesWithin24Hours(t *testing.T) {
	items := []domain.FoodItem{stockItem("i1", "Leite", 2), stockItem("i2", "Banana", 2)}
	existing := []domain.Notification{
		{ID: "old", ItemID: "i1", CreatedAt: now.Add(-23 * time.Hour)},
		{ID: "older", ItemID: "i2", CreatedAt: now.Add(-24 * time.Hour)},
	}

	created, stored := GenerateAll(items, existing, now, pickChef, sequentialIDs())

	require.Len(t, created, 1)
	assert.Equal(t, "i2", created[0].ItemID)
	require.Len(t, stored, 3)
	assert.Equal(t, created[0].ID, stored[0].ID)
	assert.Equal(t, "old", stored[1].ID)
}

func TestGenerateAll_NoDuplicatesAcrossRuns(t *testing.T) {
	items := []domain.FoodItem{stockItem("i1", "Leite", 3), stockItem("i1", "Leite", 3)}
	ids := sequentialIDs()
	picker := rand.New(rand.NewPCG(7, 7))

	var stored []domain.Notification
	for hour := 0; hour < 72; hour += 6 {
		var created []domain.Notification
		created, stored = GenerateAll(items, stored, now.Add(time.Duration(hour)*time.Hour), picker, ids)
		assert.LessOrEqual(t, len(created), 1)
	}

	for i := range stored {
		for j := range stored {
			if i == j || stored[i].ItemID != stored[j].ItemID {
				continue
			}
			gap := stored[i].CreatedAt.Sub(stored[j].CreatedAt)
			if gap < 0 {
				gap = -gap
			}
			assert.GreaterOrEqual(t, gap, DedupWindow)
		}
	}
}

func TestGenerateAll_CapsHistory(t *testing.T) {
	var existing []domain.Notification
	for i := 0; i < MaxStoredNotifications; i++ {
		existing = append(existing, domain.Notification{ID: fmt.Sprint(i), ItemID: "other", CreatedAt: now.Add(-48 * time.Hour)})
	}

	created, stored := GenerateAll([]domain.FoodItem{stockItem("i1", "Leite", 1)}, existing, now, pickChef, sequentialIDs())

	require.Len(t, created, 1)
	require.Len(t, stored, MaxStoredNotifications)
	assert.Equal(t, created[0].ID, stored[0].ID)
	assert.Equal(t, fmt.Sprint(MaxStoredNotifications-2), stored[MaxStoredNotifications-1].ID)
}

func TestGenerateAll_NothingNewKeepsHistory(t *testing.T) {
	existing := []domain.Notification{{ID: "keep", ItemID: "x"}}

	created, stored := GenerateAll(nil, existing, now, pickChef, sequentialIDs())

	assert.NotNil(t, created)
	assert.Empty(t, created)
	assert.Equal(t, existing, stored)
}

func TestGenerateAll_SeededPickerIsReproducible(t *testing.T) {
	items := []domain.FoodItem{
		stockItem("a", "Leite", 0), stockItem("b", "Banana", 1),
		stockItem("c", "Tomate", 2), stockItem("d", "Ovo", 3),
	}

	first, _ := GenerateAll(items, nil, now, rand.New(rand.NewPCG(42, 0)), sequentialIDs())
	second, _ := GenerateAll(items, nil, now, rand.New(rand.NewPCG(42, 0)), sequentialIDs())

	assert.Equal(t, first, second)
}
