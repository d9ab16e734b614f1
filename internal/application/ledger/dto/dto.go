package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionDTO is one row of a user's subscription ledger, joined with
// the catalog data it references. EffectivePrice already applies the
// override; MonthlyPrice is its monthly equivalent.
type SubscriptionDTO struct {
	ID              uint             `json:"id"`
	ServiceID       uint             `json:"service_id"`
	ServiceName     string           `json:"service_name"`
	PlanID          uint             `json:"plan_id"`
	PlanName        string           `json:"plan_name"`
	BillingCycle    string           `json:"billing_cycle"`
	Status          string           `json:"status"`
	StartDate       string           `json:"start_date"`
	NextPaymentDate string           `json:"next_payment_date"`
	EffectivePrice  decimal.Decimal  `json:"effective_price"`
	MonthlyPrice    decimal.Decimal  `json:"monthly_price"`
	PriceOverride   *decimal.Decimal `json:"price_override,omitempty"`
	Currency        string           `json:"currency"`
	Memo            string           `json:"memo"`
	CreatedAt       time.Time        `json:"created_at"`
}

// SubscriptionListDTO is the fixed wire shape of the ledger listing.
type SubscriptionListDTO struct {
	Count      int                `json:"count"`
	Results    []*SubscriptionDTO `json:"results"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// BookmarkDTO is one saved service reference.
type BookmarkDTO struct {
	ID          uint      `json:"id"`
	ServiceID   uint      `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Category    string    `json:"category"`
	Memo        string    `json:"memo"`
	CreatedAt   time.Time `json:"created_at"`
}
