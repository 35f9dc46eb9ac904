// Package notification turns items close to expiring into nudges written in
// one of three voices and keeps them deduplicated per item.
package notification

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/pkg/estimation"
	"Zero-Desperdicio/pkg/expiration"
	"fmt"
	"strings"
	"time"
)

const (
	// WindowDays is the last day-count, inclusive, that gets a notification.
	WindowDays = 3
	// DedupWindow suppresses a second notification for the same item.
	DedupWindow = 24 * time.Hour
	// MaxStoredNotifications caps the stored history, newest first.
	MaxStoredNotifications = 50
)

// Picker chooses the message voice; *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

type template struct {
	title string
	body  string
	cta   string
}

// Generate builds a notification for item when it expires within
// [0, WindowDays] days of now, picking the voice with picker. It returns
// nil for expired or distant items.
func Generate(item domain.FoodItem, now time.Time, picker Picker, newID func() string) *domain.Notification {
	daysLeft := expiration.DaysUntilExpiration(item.ExpirationDate, now)
	if daysLeft < 0 || daysLeft > WindowDays {
		return nil
	}

	kind := domain.NotificationTypes[picker.IntN(len(domain.NotificationTypes))]

	var t template
	switch kind {
	case domain.NotificationFinancial:
		t = financial(item, daysLeft)
	case domain.NotificationChef:
		t = chef(item, daysLeft)
	default:
		t = personification(item, daysLeft)
	}

	return &domain.Notification{
		ID:        newID(),
		Type:      kind,
		Title:     t.title,
		Body:      t.body,
		ItemID:    item.ID,
		CTA:       t.cta,
		CreatedAt: now,
	}
}

// GenerateAll creates one notification per in-stock item inside the window
// that has none younger than DedupWindow. It returns the new notifications
// and the history to store: new ones first, capped at
// MaxStoredNotifications.
func GenerateAll(items []domain.FoodItem, existing []domain.Notification, now time.Time, picker Picker, newID func() string) (created, stored []domain.Notification) {
	created = []domain.Notification{}
	for _, item := range items {
		if item.Status != domain.StatusInStock {
			continue
		}
		if notifiedRecently(existing, item.ID, now) || notifiedRecently(created, item.ID, now) {
			continue
		}
		if n := Generate(item, now, picker, newID); n != nil {
			created = append(created, *n)
		}
	}
	if len(created) == 0 {
		return created, existing
	}

	stored = make([]domain.Notification, 0, len(created)+len(existing))
	stored = append(stored, created...)
	stored = append(stored, existing...)
	if len(stored) > MaxStoredNotifications {
		stored = stored[:MaxStoredNotifications]
	}
	return created, stored
}

func notifiedRecently(notifications []domain.Notification, itemID string, now time.Time) bool {
	for _, n := range notifications {
		if n.ItemID == itemID && now.Sub(n.CreatedAt) < DedupWindow {
			return true
		}
	}
	return false
}

func financial(item domain.FoodItem, daysLeft int) template {
	price := estimation.PriceOf(item)
	return template{
		title: "💸 Dinheiro indo pro lixo!",
		body: fmt.Sprintf("Seu %s (aprox. R$ %s) vence %s. Que tal usar agora?",
			item.Name, formatBRL(price.StringFixed(2)), dueIn(daysLeft)),
		cta: "Ver Receita",
	}
}

func chef(item domain.FoodItem, daysLeft int) template {
	suggestion := chefSuggestions.LookupOr(item.Name, defaultChefSuggestion)
	return template{
		title: "🍝 O jantar está resolvido!",
		body:  fmt.Sprintf("%s vence %s? O Chef IA sugere %s!", item.Name, dueIn(daysLeft), suggestion),
		cta:   "Ver modo de preparo",
	}
}

func personification(item domain.FoodItem, daysLeft int) template {
	p := personas.LookupOr(item.Name, defaultPersona)
	return template{
		title: fmt.Sprintf("%s \"Não me deixe morrer!\" - ass: %s", p.Emoji, item.Name),
		body:  fmt.Sprintf("%s %s se você me usar até %s!", p.Complaint, p.Resolution, deadline(daysLeft)),
		cta:   "Salvar " + item.Name,
	}
}

// dueIn phrases "vence ___".
func dueIn(daysLeft int) string {
	switch daysLeft {
	case 0:
		return "hoje"
	case 1:
		return "amanhã"
	default:
		return fmt.Sprintf("em %d dias", daysLeft)
	}
}

// deadline phrases "até ___".
func deadline(daysLeft int) string {
	switch daysLeft {
	case 0:
		return "hoje"
	case 1:
		return "amanhã"
	default:
		return fmt.Sprintf("daqui a %d dias", daysLeft)
	}
}

// formatBRL swaps the decimal point for a comma: "6.00" -> "6,00".
func formatBRL(amount string) string {
	return strings.Replace(amount, ".", ",", 1)
}
