package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/domain/billing"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSubscriptionSetsNextPaymentDate(t *testing.T) {
	tests := []struct {
		name     string
		cycle    billing.Cycle
		start    time.Time
		wantNext time.Time
	}{
		{
			name:     "month cycle advances one month",
			cycle:    billing.CycleMonth,
			start:    date(2025, time.January, 1),
			wantNext: date(2025, time.February, 1),
		},
		{
			name:     "year cycle advances one year",
			cycle:    billing.CycleYear,
			start:    date(2025, time.January, 1),
			wantNext: date(2026, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewSubscription(1, 2, tt.cycle, tt.start, "", nil)
			if err != nil {
				t.Fatalf("NewSubscription() error = %v", err)
			}
			if sub.Status() != StatusActive {
				t.Errorf("Status() = %v, want %v", sub.Status(), StatusActive)
			}
			if !sub.StartDate().Equal(tt.start) {
				t.Errorf("StartDate() = %v, want %v", sub.StartDate(), tt.start)
			}
			if !sub.NextPaymentDate().Equal(tt.wantNext) {
				t.Errorf("NextPaymentDate() = %v, want %v", sub.NextPaymentDate(), tt.wantNext)
			}
		})
	}
}

func TestNewSubscriptionValidation(t *testing.T) {
	if _, err := NewSubscription(0, 2, billing.CycleMonth, date(2025, time.January, 1), "", nil); err == nil {
		t.Error("expected error for zero user ID")
	}
	if _, err := NewSubscription(1, 0, billing.CycleMonth, date(2025, time.January, 1), "", nil); err == nil {
		t.Error("expected error for zero plan ID")
	}
	neg := dec("-1")
	if _, err := NewSubscription(1, 2, billing.CycleMonth, date(2025, time.January, 1), "", &neg); err == nil {
		t.Error("expected error for negative override")
	}
}

func TestSubscriptionEffectivePrice(t *testing.T) {
	planPrice := dec("9500")

	sub, err := NewSubscription(1, 2, billing.CycleMonth, date(2025, time.January, 1), "", nil)
	if err != nil {
		t.Fatalf("NewSubscription() error = %v", err)
	}
	if got := sub.EffectivePrice(planPrice); !got.Equal(planPrice) {
		t.Errorf("EffectivePrice without override = %s, want %s", got, planPrice)
	}

	override := dec("7900")
	sub, err = NewSubscription(1, 2, billing.CycleMonth, date(2025, time.January, 1), "", &override)
	if err != nil {
		t.Fatalf("NewSubscription() error = %v", err)
	}
	if got := sub.EffectivePrice(planPrice); !got.Equal(override) {
		t.Errorf("EffectivePrice with override = %s, want %s", got, override)
	}
}

func TestSubscriptionCancel(t *testing.T) {
	sub, err := NewSubscription(1, 2, billing.CycleMonth, date(2025, time.January, 1), "", nil)
	if err != nil {
		t.Fatalf("NewSubscription() error = %v", err)
	}

	next := sub.NextPaymentDate()
	if err := sub.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if sub.Status() != StatusCanceled {
		t.Errorf("Status() = %v, want %v", sub.Status(), StatusCanceled)
	}
	// cancellation mutates no dates
	if !sub.NextPaymentDate().Equal(next) {
		t.Errorf("NextPaymentDate changed on cancel: %v", sub.NextPaymentDate())
	}

	if err := sub.Cancel(); err == nil {
		t.Error("expected error canceling twice")
	}
}

func TestSubscriptionRenew(t *testing.T) {
	sub, err := NewSubscription(1, 2, billing.CycleMonth, date(2025, time.January, 31), "", nil)
	if err != nil {
		t.Fatalf("NewSubscription() error = %v", err)
	}
	// Jan 31 -> Feb 28 on creation
	if want := date(2025, time.February, 28); !sub.NextPaymentDate().Equal(want) {
		t.Fatalf("NextPaymentDate() = %v, want %v", sub.NextPaymentDate(), want)
	}

	if err := sub.Renew(billing.CycleMonth); err != nil {
		t.Fatalf("Renew() error = %v", err)
	}
	if want := date(2025, time.March, 28); !sub.NextPaymentDate().Equal(want) {
		t.Errorf("NextPaymentDate() after renew = %v, want %v", sub.NextPaymentDate(), want)
	}

	if err := sub.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := sub.Renew(billing.CycleMonth); err == nil {
		t.Error("expected error renewing a canceled subscription")
	}
}

func TestNewBookmark(t *testing.T) {
	b, err := NewBookmark(1, 3, "")
	if err != nil {
		t.Fatalf("NewBookmark() error = %v", err)
	}
	if b.Memo() != "" {
		t.Errorf("Memo() = %q, want empty string", b.Memo())
	}

	if _, err := NewBookmark(0, 3, ""); err == nil {
		t.Error("expected error for zero user ID")
	}
	if _, err := NewBookmark(1, 0, ""); err == nil {
		t.Error("expected error for zero service ID")
	}
}
