package billing

import (
	"fmt"
	"strings"
	"time"
)

// Cycle is a plan's billing cycle.
type Cycle string

const (
	CycleMonth Cycle = "month"
	CycleYear  Cycle = "year"
)

var ValidCycles = map[Cycle]bool{
	CycleMonth: true,
	CycleYear:  true,
}

// ParseCycle normalizes and validates a billing cycle string.
func ParseCycle(value string) (Cycle, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", fmt.Errorf("billing cycle cannot be empty")
	}

	cycle := Cycle(normalized)
	if !ValidCycles[cycle] {
		return "", fmt.Errorf("invalid billing cycle: %s", value)
	}

	return cycle, nil
}

func (c Cycle) String() string {
	return string(c)
}

func (c Cycle) IsValid() bool {
	return ValidCycles[c]
}

// Advance moves a date forward by one billing cycle. The day of month is
// clamped to the last valid day of the target month, so Jan 31 + 1 month is
// Feb 28 (or Feb 29 in a leap year) rather than overflowing into March.
func (c Cycle) Advance(date time.Time) time.Time {
	y, m, d := date.Date()

	var ty int
	var tm time.Month
	switch c {
	case CycleYear:
		ty, tm = y+1, m
	default:
		ty, tm = y, m+1
		if tm > time.December {
			ty, tm = ty+1, time.January
		}
	}

	if last := daysInMonth(ty, tm); d > last {
		d = last
	}

	return time.Date(ty, tm, d,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (c Cycle) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Cycle) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	cycle, err := ParseCycle(str)
	if err != nil {
		return err
	}

	*c = cycle
	return nil
}
