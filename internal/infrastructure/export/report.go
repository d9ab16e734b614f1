// Package export renders a user's active subscriptions into downloadable
// report formats. Prices are monthly equivalents; yearly plans are already
// normalized by the caller.
package export

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is one subscription line in a report.
type Row struct {
	ServiceName     string
	PlanName        string
	MonthlyPrice    decimal.Decimal
	NextPaymentDate time.Time
}

// Report is the renderable view of a user's subscription ledger.
type Report struct {
	Title     string
	Currency  string
	Username  string
	Generated time.Time
	Rows      []Row
	Total     decimal.Decimal
}
