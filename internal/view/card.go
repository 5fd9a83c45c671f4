// Package view turns ideas into display-ready values. Nothing here touches
// the terminal, so rendering rules can be tested on their own.
package view

import "github.com/Makepad-fr/datenight/internal/model"

// Fallbacks shown when an idea field is absent or empty.
const (
	UnknownBudget    = "Unknown"
	AnywhereLocation = "Anywhere"
)

// Card is what the list shows for one idea. ID binds the card's own
// update and delete controls to its idea.
type Card struct {
	ID          int64
	Title       string
	Description string
	Budget      string
	Location    string
}

// Render builds the card for idea.
func Render(idea model.Idea) Card {
	return Card{
		ID:          idea.ID,
		Title:       idea.Title,
		Description: idea.Description,
		Budget:      orDefault(idea.BudgetCategory, UnknownBudget),
		Location:    orDefault(idea.Location, AnywhereLocation),
	}
}

// RenderAll builds one card per idea, in order.
func RenderAll(ideas []model.Idea) []Card {
	cards := make([]Card, 0, len(ideas))
	for _, idea := range ideas {
		cards = append(cards, Render(idea))
	}
	return cards
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
