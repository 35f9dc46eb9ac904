package challenge

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/utils/keywords"
	"Zero-Desperdicio/pkg/expiration"
	"time"
)

const (
	// WindowDays bounds the minimum days left of a group; groups outside
	// [0, WindowDays] never produce a challenge.
	WindowDays = 3
	// AbundantQuantity is the total quantity that qualifies a group.
	AbundantQuantity = 3
	// UrgentDaysLeft qualifies a group regardless of quantity.
	UrgentDaysLeft = 2
	// MaxChallengesPerScan keeps a household on one new challenge at a
	// time: a scan stops at the first qualifying group.
	MaxChallengesPerScan = 1
)

type Reward struct {
	Medal  string
	Recipe string
}

var DefaultReward = Reward{Medal: "Chef Sustentável 🌱", Recipe: "Receita criativa"}

var rewards = keywords.Table[Reward]{
	{Keyword: "limão", Value: Reward{Medal: "Mestre Cítrico 🍋", Recipe: "Torta de limão"}},
	{Keyword: "banana", Value: Reward{Medal: "Rei das Bananas 🍌", Recipe: "Bolo de banana com canela"}},
	{Keyword: "tomate", Value: Reward{Medal: "Chef Italiano 🍅", Recipe: "Molho de tomate caseiro"}},
	{Keyword: "ovo", Value: Reward{Medal: "Mestre dos Ovos 🥚", Recipe: "Quiche ou fritada"}},
	{Keyword: "leite", Value: Reward{Medal: "Leiteiro Supremo 🥛", Recipe: "Pudim ou mingau"}},
	{Keyword: "maçã", Value: Reward{Medal: "Guardião das Maçãs 🍎", Recipe: "Torta ou compota"}},
	{Keyword: "batata", Value: Reward{Medal: "Rei da Batata 🥔", Recipe: "Nhoque ou purê especial"}},
	{Keyword: "queijo", Value: Reward{Medal: "Mestre Queijeiro 🧀", Recipe: "Fondue ou sanduíche gourmet"}},
	{Keyword: "frango", Value: Reward{Medal: "Chef de Frango 🍗", Recipe: "Estrogonofe ou frango assado"}},
	{Keyword: "carne", Value: Reward{Medal: "Churrasqueiro Master 🥩", Recipe: "Carne assada ou picadinho"}},
	{Keyword: "laranja", Value: Reward{Medal: "Mestre Vitamina C 🍊", Recipe: "Suco natural ou bolo"}},
	{Keyword: "morango", Value: Reward{Medal: "Rei dos Morangos 🍓", Recipe: "Mousse ou salada de frutas"}},
	{Keyword: "cenoura", Value: Reward{Medal: "Olhos de Águia 🥕", Recipe: "Bolo de cenoura"}},
	{Keyword: "abacate", Value: Reward{Medal: "Guacamole Master 🥑", Recipe: "Guacamole ou vitamina"}},
}

func RewardFor(name string) Reward {
	return rewards.LookupOr(name, DefaultReward)
}

type group struct {
	key         string
	displayName string
	quantity    float64
	minDaysLeft int
}

// Detect scans in-stock items for a group of the same product that is
// either abundant or about to expire and returns a new, unsaved challenge
// for it. It returns nil when no group qualifies or every qualifying group
// already has an active challenge.
func Detect(items []domain.FoodItem, existing []domain.Challenge, today time.Time, newID func() string) *domain.Challenge {
	found := detect(items, existing, today, newID, MaxChallengesPerScan)
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}

func detect(items []domain.FoodItem, existing []domain.Challenge, today time.Time, newID func() string, limit int) []domain.Challenge {
	active := make(map[string]bool)
	for _, c := range existing {
		if !c.IsCompleted {
			active[keywords.Normalize(c.ItemName)] = true
		}
	}

	var found []domain.Challenge
	for _, g := range groupByName(items, today) {
		if len(found) >= limit {
			break
		}
		if g.minDaysLeft < 0 || g.minDaysLeft > WindowDays {
			continue
		}
		if g.quantity < AbundantQuantity && g.minDaysLeft > UrgentDaysLeft {
			continue
		}
		if active[g.key] {
			continue
		}

		reward := RewardFor(g.key)
		found = append(found, domain.Challenge{
			ID:               newID(),
			ItemName:         g.displayName,
			Quantity:         g.quantity,
			DaysLeft:         g.minDaysLeft,
			RecipeSuggestion: reward.Recipe,
			Medal:            reward.Medal,
		})
		active[g.key] = true
	}
	return found
}

// groupByName folds in-stock items by normalized name, keeping the order in
// which names are first encountered.
func groupByName(items []domain.FoodItem, today time.Time) []*group {
	var groups []*group
	index := make(map[string]*group)

	for _, item := range items {
		if item.Status != domain.StatusInStock {
			continue
		}
		key := keywords.Normalize(item.Name)
		daysLeft := expiration.DaysUntilExpiration(item.ExpirationDate, today)

		g, ok := index[key]
		if !ok {
			g = &group{key: key, displayName: item.Name, minDaysLeft: daysLeft}
			index[key] = g
			groups = append(groups, g)
		}
		g.quantity += item.Quantity
		if daysLeft < g.minDaysLeft {
			g.minDaysLeft = daysLeft
		}
	}
	return groups
}
