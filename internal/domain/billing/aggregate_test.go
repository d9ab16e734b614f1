package billing

import "testing"

func TestTotalMonthlyCostEmpty(t *testing.T) {
	total := TotalMonthlyCost(nil)
	if !total.IsZero() {
		t.Errorf("TotalMonthlyCost(nil) = %s, want 0", total)
	}

	total = TotalMonthlyCost([]CostItem{})
	if !total.IsZero() {
		t.Errorf("TotalMonthlyCost([]) = %s, want 0", total)
	}
}

func TestTotalMonthlyCostSumsEffectivePrices(t *testing.T) {
	// two overridden monthly subscriptions: 10.00 + 15.00 = 25.00
	items := []CostItem{
		{EffectivePrice: dec("10.00"), Cycle: CycleMonth},
		{EffectivePrice: dec("15.00"), Cycle: CycleMonth},
	}

	total := TotalMonthlyCost(items)
	if !total.Equal(dec("25.00")) {
		t.Errorf("TotalMonthlyCost = %s, want 25.00", total)
	}
}

func TestTotalMonthlyCostNormalizesYearlyItems(t *testing.T) {
	items := []CostItem{
		{EffectivePrice: dec("9500"), Cycle: CycleMonth},
		{EffectivePrice: dec("120000"), Cycle: CycleYear}, // 10000/month
	}

	total := TotalMonthlyCost(items)
	if !total.Equal(dec("19500")) {
		t.Errorf("TotalMonthlyCost = %s, want 19500", total)
	}
}
