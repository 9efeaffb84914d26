package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/semneura/semneura/internal/model"
)

// CategorySpend is one category's computed line in the spend report.
type CategorySpend struct {
	Name   string
	Spent  decimal.Decimal
	Budget float64
}

// Ratio returns min(spent/budget, 1) when a budget ceiling is configured.
// A zero budget means "no ceiling configured" and always reports 0.
func (c CategorySpend) Ratio() float64 {
	if c.Budget <= 0 {
		return 0
	}
	spent, _ := c.Spent.Float64()
	ratio := spent / c.Budget
	if ratio > 1 {
		return 1
	}
	return ratio
}

// OverBudget reports whether spending exceeds a configured ceiling.
func (c CategorySpend) OverBudget() bool {
	return c.Budget > 0 && c.Spent.GreaterThan(decimal.NewFromFloat(c.Budget))
}

// matches reports whether the description contains any of the category's keywords.
func (c Category) matches(description string) bool {
	lower := strings.ToLower(description)
	for _, k := range c.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Spend computes per-category totals over the payable transactions.
//
// A payable matching keywords of several non-catch-all categories counts
// toward every one of them; no mutual exclusivity is enforced. The catch-all
// bucket totals the payables matched by NO other category plus the payables
// matching its own keyword list, so a payable matched both elsewhere and by
// the catch-all's keywords is counted twice. Both behaviors are preserved
// from the data this report has always produced; see DESIGN.md before
// "fixing" either.
//
// budgets overrides the default ceilings by category name; a missing entry
// keeps the default, and an explicit 0 disables the ceiling.
func Spend(transactions []model.Transaction, budgets map[string]float64) []CategorySpend {
	payables := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == model.TypePayable {
			payables = append(payables, t)
		}
	}

	// ids matched by any non-catch-all category, for the residual bucket.
	matchedElsewhere := make(map[string]bool)
	for _, cat := range Categories {
		if cat.CatchAll {
			continue
		}
		for _, t := range payables {
			if cat.matches(t.Description) {
				matchedElsewhere[t.ID] = true
			}
		}
	}

	out := make([]CategorySpend, 0, len(Categories))
	for _, cat := range Categories {
		sum := decimal.Zero
		if cat.CatchAll {
			for _, t := range payables {
				if !matchedElsewhere[t.ID] {
					sum = sum.Add(decimal.NewFromFloat(t.Amount))
				}
			}
			for _, t := range payables {
				if cat.matches(t.Description) {
					sum = sum.Add(decimal.NewFromFloat(t.Amount))
				}
			}
		} else {
			for _, t := range payables {
				if cat.matches(t.Description) {
					sum = sum.Add(decimal.NewFromFloat(t.Amount))
				}
			}
		}

		budget := cat.DefaultBudget
		if budgets != nil {
			if v, ok := budgets[cat.Name]; ok {
				budget = v
			}
		}

		out = append(out, CategorySpend{Name: cat.Name, Spent: sum, Budget: budget})
	}
	return out
}
