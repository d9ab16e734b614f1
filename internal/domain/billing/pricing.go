package billing

import "github.com/shopspring/decimal"

// monthsPerYear is the normalization divisor for yearly cycles.
var monthsPerYear = decimal.NewFromInt(12)

// MonthlyEquivalent converts a price under the given billing cycle into its
// monthly-equivalent value. Monthly prices pass through unchanged; yearly
// prices divide by 12 using decimal arithmetic, so repeated aggregation does
// not accumulate floating-point drift.
func MonthlyEquivalent(price decimal.Decimal, cycle Cycle) decimal.Decimal {
	if cycle == CycleYear {
		return price.Div(monthsPerYear)
	}
	return price
}

// MatchesRange reports whether a plan's monthly-equivalent price falls within
// [min, max]. Either bound may be nil, which leaves that side unbounded.
// Prices are normalized before comparison; comparing a yearly plan's raw
// price against a monthly budget is exactly the bug this guards against.
func MatchesRange(price decimal.Decimal, cycle Cycle, min, max *decimal.Decimal) bool {
	monthly := MonthlyEquivalent(price, cycle)

	if min != nil && monthly.LessThan(*min) {
		return false
	}
	if max != nil && monthly.GreaterThan(*max) {
		return false
	}
	return true
}
