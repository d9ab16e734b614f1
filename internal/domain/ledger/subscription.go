// Package ledger holds a user's personal subscription records and bookmarks.
// Subscriptions reference catalog plans and may override the plan price;
// bookmarks reference catalog services.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/domain/billing"
)

// Status is a subscription's lifecycle state. Canceled is terminal for
// billing purposes; the record is retained for history.
type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

var ValidStatuses = map[Status]bool{
	StatusActive:   true,
	StatusCanceled: true,
}

// Subscription is one user's commitment to a plan.
type Subscription struct {
	id              uint
	userID          uint
	planID          uint
	status          Status
	startDate       time.Time
	nextPaymentDate time.Time
	memo            string
	priceOverride   *decimal.Decimal
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSubscription opens a subscription on a plan. The start date is the
// creation date and the next payment date lies one billing cycle ahead.
func NewSubscription(userID, planID uint, cycle billing.Cycle, startDate time.Time,
	memo string, priceOverride *decimal.Decimal) (*Subscription, error) {

	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}
	if priceOverride != nil && priceOverride.IsNegative() {
		return nil, fmt.Errorf("price override cannot be negative")
	}

	now := time.Now()
	return &Subscription{
		userID:          userID,
		planID:          planID,
		status:          StatusActive,
		startDate:       startDate,
		nextPaymentDate: cycle.Advance(startDate),
		memo:            memo,
		priceOverride:   priceOverride,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(id, userID, planID uint, status Status,
	startDate, nextPaymentDate time.Time, memo string,
	priceOverride *decimal.Decimal, createdAt, updatedAt time.Time) (*Subscription, error) {

	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:              id,
		userID:          userID,
		planID:          planID,
		status:          status,
		startDate:       startDate,
		nextPaymentDate: nextPaymentDate,
		memo:            memo,
		priceOverride:   priceOverride,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) UserID() uint {
	return s.userID
}

func (s *Subscription) PlanID() uint {
	return s.planID
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) NextPaymentDate() time.Time {
	return s.nextPaymentDate
}

func (s *Subscription) Memo() string {
	return s.memo
}

func (s *Subscription) PriceOverride() *decimal.Decimal {
	return s.priceOverride
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive
}

// EffectivePrice is the override when present, the plan price otherwise.
func (s *Subscription) EffectivePrice(planPrice decimal.Decimal) decimal.Decimal {
	if s.priceOverride != nil {
		return *s.priceOverride
	}
	return planPrice
}

// Cancel flips the subscription to canceled. Dates are left untouched.
func (s *Subscription) Cancel() error {
	if s.status == StatusCanceled {
		return fmt.Errorf("subscription is already canceled")
	}
	s.status = StatusCanceled
	s.updatedAt = time.Now()
	return nil
}

// Renew advances the next payment date by one billing cycle.
func (s *Subscription) Renew(cycle billing.Cycle) error {
	if s.status != StatusActive {
		return fmt.Errorf("cannot renew a %s subscription", s.status)
	}
	if !cycle.IsValid() {
		return fmt.Errorf("invalid billing cycle: %s", cycle)
	}
	s.nextPaymentDate = cycle.Advance(s.nextPaymentDate)
	s.updatedAt = time.Now()
	return nil
}

// UpdateMemo replaces the free-text memo.
func (s *Subscription) UpdateMemo(memo string) {
	s.memo = memo
	s.updatedAt = time.Now()
}

// SetPriceOverride sets or clears the per-subscription price override.
func (s *Subscription) SetPriceOverride(override *decimal.Decimal) error {
	if override != nil && override.IsNegative() {
		return fmt.Errorf("price override cannot be negative")
	}
	s.priceOverride = override
	s.updatedAt = time.Now()
	return nil
}
