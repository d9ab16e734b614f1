package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/domain/billing"
)

var validCurrencies = map[string]bool{
	"KRW": true,
	"USD": true,
	"EUR": true,
	"JPY": true,
}

// Plan is a priced offering of a service with a billing cycle.
type Plan struct {
	id           uint
	serviceID    uint
	name         string
	billingCycle billing.Cycle
	price        decimal.Decimal
	currency     string
	benefits     []string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPlan creates a new plan for a service.
func NewPlan(serviceID uint, name string, cycle billing.Cycle, price decimal.Decimal,
	currency string, benefits []string) (*Plan, error) {

	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if currency == "" {
		currency = "KRW"
	}
	if !validCurrencies[currency] {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}

	now := time.Now()
	return &Plan{
		serviceID:    serviceID,
		name:         name,
		billingCycle: cycle,
		price:        price,
		currency:     currency,
		benefits:     benefits,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(id, serviceID uint, name string, cycle billing.Cycle,
	price decimal.Decimal, currency string, benefits []string,
	createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	return &Plan{
		id:           id,
		serviceID:    serviceID,
		name:         name,
		billingCycle: cycle,
		price:        price,
		currency:     currency,
		benefits:     benefits,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) ServiceID() uint {
	return p.serviceID
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) BillingCycle() billing.Cycle {
	return p.billingCycle
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

func (p *Plan) Currency() string {
	return p.currency
}

func (p *Plan) Benefits() []string {
	return p.benefits
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// MonthlyPrice returns the plan's monthly-equivalent price.
func (p *Plan) MonthlyPrice() decimal.Decimal {
	return billing.MonthlyEquivalent(p.price, p.billingCycle)
}

// Update replaces the mutable attributes of the plan.
func (p *Plan) Update(name string, cycle billing.Cycle, price decimal.Decimal, benefits []string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if !cycle.IsValid() {
		return fmt.Errorf("invalid billing cycle: %s", cycle)
	}
	if price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}

	p.name = name
	p.billingCycle = cycle
	p.price = price
	p.benefits = benefits
	p.updatedAt = time.Now()
	return nil
}
