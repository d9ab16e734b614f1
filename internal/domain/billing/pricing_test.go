package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name  string
		price string
		cycle Cycle
		want  string
	}{
		{
			name:  "month price passes through",
			price: "9500",
			cycle: CycleMonth,
			want:  "9500",
		},
		{
			name:  "year price divides by twelve",
			price: "120000",
			cycle: CycleYear,
			want:  "10000",
		},
		{
			name:  "year price with cents",
			price: "119.88",
			cycle: CycleYear,
			want:  "9.99",
		},
		{
			name:  "zero price",
			price: "0",
			cycle: CycleYear,
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyEquivalent(dec(tt.price), tt.cycle)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("MonthlyEquivalent(%s, %s) = %s, want %s", tt.price, tt.cycle, got, tt.want)
			}
		})
	}
}

func TestMonthlyEquivalentNoDriftOverRepeatedAggregation(t *testing.T) {
	// summing the monthly equivalent 12 times must reproduce the annual price
	annual := dec("119.88")
	monthly := MonthlyEquivalent(annual, CycleYear)

	sum := decimal.Zero
	for i := 0; i < 12; i++ {
		sum = sum.Add(monthly)
	}

	if !sum.Equal(annual) {
		t.Errorf("12 * monthly = %s, want %s", sum, annual)
	}
}

func TestMatchesRange(t *testing.T) {
	tests := []struct {
		name  string
		price string
		cycle Cycle
		min   *decimal.Decimal
		max   *decimal.Decimal
		want  bool
	}{
		{
			name:  "monthly price inside bounds",
			price: "10450",
			cycle: CycleMonth,
			min:   decPtr("10000"),
			max:   decPtr("11000"),
			want:  true,
		},
		{
			name:  "monthly price below min",
			price: "9500",
			cycle: CycleMonth,
			min:   decPtr("10000"),
			max:   decPtr("11000"),
			want:  false,
		},
		{
			name:  "monthly price above max",
			price: "17000",
			cycle: CycleMonth,
			min:   decPtr("10000"),
			max:   decPtr("11000"),
			want:  false,
		},
		{
			name:  "yearly price normalized before comparing",
			price: "126000", // 10500/month
			cycle: CycleYear,
			min:   decPtr("10000"),
			max:   decPtr("11000"),
			want:  true,
		},
		{
			name:  "yearly raw price would match but monthly does not",
			price: "10450", // ~871/month
			cycle: CycleYear,
			min:   decPtr("10000"),
			max:   decPtr("11000"),
			want:  false,
		},
		{
			name:  "open lower bound",
			price: "9500",
			cycle: CycleMonth,
			max:   decPtr("11000"),
			want:  true,
		},
		{
			name:  "open upper bound",
			price: "17000",
			cycle: CycleMonth,
			min:   decPtr("10000"),
			want:  true,
		},
		{
			name:  "both bounds open matches everything",
			price: "17000",
			cycle: CycleMonth,
			want:  true,
		},
		{
			name:  "boundary values are inclusive",
			price: "10000",
			cycle: CycleMonth,
			min:   decPtr("10000"),
			max:   decPtr("10000"),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesRange(dec(tt.price), tt.cycle, tt.min, tt.max)
			if got != tt.want {
				t.Errorf("MatchesRange(%s, %s, %v, %v) = %v, want %v",
					tt.price, tt.cycle, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
