package calendar

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Fatal("New() returned nil")
	}

	foundingDay := &cal.Holiday{
		Name:  "Aniversario del colegio",
		Type:  cal.ObservanceOther,
		Month: time.October,
		Day:   20,
		Func:  cal.CalcDayOfMonth,
	}
	c = New(foundingDay)
	if c.IsWorkday(date(2026, 10, 20)) {
		t.Error("extra holiday 2026-10-20 should not be a workday")
	}
}

func TestIsWorkday(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"regular weekday", date(2026, 10, 14), true},            // Wednesday
		{"Saturday", date(2026, 10, 17), false},                  // Saturday
		{"Sunday", date(2026, 10, 18), false},                    // Sunday
		{"New Year", date(2026, 1, 1), false},                    // Thursday
		{"Constitution Day", date(2026, 2, 2), false},            // first Monday of February
		{"Monday after", date(2026, 2, 9), true},                 // second Monday
		{"Juarez birthday", date(2026, 3, 16), false},            // third Monday of March
		{"Labor Day", date(2026, 5, 1), false},                   // Friday
		{"Independence Day", date(2026, 9, 16), false},           // Wednesday
		{"Revolution Day", date(2026, 11, 16), false},            // third Monday of November
		{"November 20 not moved", date(2026, 11, 20), true},      // Friday
		{"Christmas", date(2026, 12, 25), false},                 // Friday
		{"Columbus Day is worked", date(2026, 10, 12), true},     // Monday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.IsWorkday(tt.date)
			if got != tt.expected {
				t.Errorf("IsWorkday(%s) = %v, want %v", tt.date.Format("2006-01-02 Monday"), got, tt.expected)
			}
		})
	}
}

func TestBusinessDays(t *testing.T) {
	c := New()

	tests := []struct {
		name       string
		start, end time.Time
		expected   int
	}{
		{"single weekday", date(2026, 10, 14), date(2026, 10, 14), 1},
		{"single Saturday", date(2026, 10, 17), date(2026, 10, 17), 0},
		{"full week", date(2026, 10, 12), date(2026, 10, 18), 5},
		{"October", date(2026, 10, 1), date(2026, 10, 31), 22},
		{"September with holiday", date(2026, 9, 1), date(2026, 9, 30), 21},
		{"reversed range", date(2026, 10, 31), date(2026, 10, 1), 0},
		{"time of day ignored", time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC), time.Date(2026, 10, 16, 0, 1, 0, 0, time.UTC), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessDays(c, tt.start, tt.end)
			if got != tt.expected {
				t.Errorf("BusinessDays(%s, %s) = %d, want %d",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.expected)
			}
		})
	}
}

func TestBusinessDaysBoundsLongRanges(t *testing.T) {
	c := New()
	got := BusinessDays(c, date(1900, 1, 1), date(2900, 1, 1))
	if got <= 0 || got > maxRangeDays {
		t.Errorf("BusinessDays over a millennium = %d, want between 1 and %d", got, maxRangeDays)
	}
}
