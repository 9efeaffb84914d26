package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/semneura/semneura/internal/model"
)

// Summary aggregates a profile's transactions for the dashboard. Realized
// figures count only PAID transactions; every other status is "not yet
// settled" regardless of its urgency.
type Summary struct {
	TotalPayable      decimal.Decimal
	TotalReceivable   decimal.Decimal
	PaidPayable       decimal.Decimal
	PaidReceivable    decimal.Decimal
	ProjectedBalance  decimal.Decimal
	OpenPayableCount  int
	TransactionCount  int
}

// Summarize computes the dashboard figures for the profile.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	txns, err := s.store.LoadTransactions(ctx, s.profile)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(txns), nil
}

// BuildSummary computes the figures over an in-memory list.
func BuildSummary(txns []model.Transaction) Summary {
	var sum Summary
	sum.TransactionCount = len(txns)

	for _, t := range txns {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case model.TypePayable:
			sum.TotalPayable = sum.TotalPayable.Add(amount)
			if t.Status == model.StatusPaid {
				sum.PaidPayable = sum.PaidPayable.Add(amount)
			} else {
				sum.OpenPayableCount++
			}
		case model.TypeReceivable:
			sum.TotalReceivable = sum.TotalReceivable.Add(amount)
			if t.Status == model.StatusPaid {
				sum.PaidReceivable = sum.PaidReceivable.Add(amount)
			}
		}
	}

	sum.ProjectedBalance = sum.TotalReceivable.Sub(sum.TotalPayable)
	return sum
}
