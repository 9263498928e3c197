// Package calendar counts school business days for a closing range.
package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// maxRangeDays bounds the day-by-day walk over absurd ranges.
const maxRangeDays = 3660

// Mexican federal rest days (Ley Federal del Trabajo, art. 74).
var (
	NewYear = &cal.Holiday{
		Name:  "Año Nuevo",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	ConstitutionDay = &cal.Holiday{
		Name:    "Día de la Constitución",
		Type:    cal.ObservancePublic,
		Month:   time.February,
		Weekday: time.Monday,
		Offset:  1,
		Func:    cal.CalcWeekdayOffset,
	}
	JuarezBirthday = &cal.Holiday{
		Name:    "Natalicio de Benito Juárez",
		Type:    cal.ObservancePublic,
		Month:   time.March,
		Weekday: time.Monday,
		Offset:  3,
		Func:    cal.CalcWeekdayOffset,
	}
	LaborDay = &cal.Holiday{
		Name:  "Día del Trabajo",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	IndependenceDay = &cal.Holiday{
		Name:  "Día de la Independencia",
		Type:  cal.ObservancePublic,
		Month: time.September,
		Day:   16,
		Func:  cal.CalcDayOfMonth,
	}
	RevolutionDay = &cal.Holiday{
		Name:    "Día de la Revolución",
		Type:    cal.ObservancePublic,
		Month:   time.November,
		Weekday: time.Monday,
		Offset:  3,
		Func:    cal.CalcWeekdayOffset,
	}
	ChristmasDay = &cal.Holiday{
		Name:  "Navidad",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	// Holidays lists every federal rest day above.
	Holidays = []*cal.Holiday{
		NewYear,
		ConstitutionDay,
		JuarezBirthday,
		LaborDay,
		IndependenceDay,
		RevolutionDay,
		ChristmasDay,
	}
)

// New creates a business calendar with the federal rest days plus any
// school-specific holidays.
func New(extra ...*cal.Holiday) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "Calendario escolar"
	c.Description = "Días de descanso obligatorio (México)"
	c.AddHoliday(Holidays...)
	c.AddHoliday(extra...)
	return c
}

// BusinessDays counts the workdays in [start, end], both inclusive.
// It returns 0 when end is before start.
func BusinessDays(c *cal.BusinessCalendar, start, end time.Time) int {
	start = time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 12, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}

	count := 0
	for d, i := start, 0; !d.After(end) && i < maxRangeDays; d, i = d.AddDate(0, 0, 1), i+1 {
		if c.IsWorkday(d) {
			count++
		}
	}
	return count
}
