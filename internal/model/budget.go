package model

import "strings"

// Budget tiers known to the backend. Other values are passed through untouched.
const (
	BudgetFree      = "Free"
	BudgetCheap     = "Cheap"
	BudgetModerate  = "Moderate"
	BudgetExpensive = "Expensive"
)

// Budgets lists the known tiers from cheapest to most expensive.
var Budgets = []string{BudgetFree, BudgetCheap, BudgetModerate, BudgetExpensive}

// NormalizeBudget maps a known tier to its canonical spelling ("free" -> "Free").
// Unknown tiers are returned trimmed but otherwise unchanged.
func NormalizeBudget(s string) string {
	s = strings.TrimSpace(s)
	for _, b := range Budgets {
		if strings.EqualFold(s, b) {
			return b
		}
	}
	return s
}

// NextBudget returns the tier after cur, wrapping around.
func NextBudget(cur string) string {
	for i, b := range Budgets {
		if b == cur {
			return Budgets[(i+1)%len(Budgets)]
		}
	}
	return Budgets[0]
}
