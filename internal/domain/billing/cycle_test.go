package billing

import (
	"testing"
	"time"
)

func TestParseCycle(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Cycle
		wantErr bool
	}{
		{
			name:  "valid month",
			value: "month",
			want:  CycleMonth,
		},
		{
			name:  "valid year",
			value: "year",
			want:  CycleYear,
		},
		{
			name:  "uppercase is normalized",
			value: " YEAR ",
			want:  CycleYear,
		},
		{
			name:    "invalid cycle",
			value:   "weekly",
			wantErr: true,
		},
		{
			name:    "empty cycle",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCycle(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCycle() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCycle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleAdvance(t *testing.T) {
	tests := []struct {
		name  string
		cycle Cycle
		from  time.Time
		want  time.Time
	}{
		{
			name:  "month plan advances one calendar month",
			cycle: CycleMonth,
			from:  date(2025, time.January, 1),
			want:  date(2025, time.February, 1),
		},
		{
			name:  "year plan advances one calendar year",
			cycle: CycleYear,
			from:  date(2025, time.January, 1),
			want:  date(2026, time.January, 1),
		},
		{
			name:  "month end clamps to shorter month",
			cycle: CycleMonth,
			from:  date(2025, time.January, 31),
			want:  date(2025, time.February, 28),
		},
		{
			name:  "month end clamps to leap february",
			cycle: CycleMonth,
			from:  date(2024, time.January, 31),
			want:  date(2024, time.February, 29),
		},
		{
			name:  "december rolls into next year",
			cycle: CycleMonth,
			from:  date(2025, time.December, 15),
			want:  date(2026, time.January, 15),
		},
		{
			name:  "leap day plus one year clamps",
			cycle: CycleYear,
			from:  date(2024, time.February, 29),
			want:  date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cycle.Advance(tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("Advance(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestCycleAdvancePreservesClock(t *testing.T) {
	from := time.Date(2025, time.March, 31, 10, 30, 0, 0, time.UTC)
	got := CycleMonth.Advance(from)
	want := time.Date(2025, time.April, 30, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Advance(%v) = %v, want %v", from, got, want)
	}
}
