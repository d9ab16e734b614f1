package billing

import "github.com/shopspring/decimal"

// CostItem is one subscription's contribution to a user's monthly total:
// its effective price (override when present, plan price otherwise) and the
// billing cycle inherited from the plan.
type CostItem struct {
	EffectivePrice decimal.Decimal
	Cycle          Cycle
}

// TotalMonthlyCost sums the monthly-equivalent effective price of every item.
// Scoping to the requesting user's active subscriptions is the caller's
// responsibility. Yearly items are normalized to a monthly basis, matching
// the catalog range filter, so the total is a true monthly figure. An empty
// slice yields zero.
func TotalMonthlyCost(items []CostItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(MonthlyEquivalent(item.EffectivePrice, item.Cycle))
	}
	return total
}
