// Package calendar defines the scheduling period and the day indices the
// roster refers to. Day 1 is always a Monday, so day%7 identifies the
// weekday (1 = Monday ... 0 = Sunday).
package calendar

import (
	"fmt"
	"time"
)

const (
	// DaysPerWeek is the width of one week row.
	DaysPerWeek = 7
	// DefaultPeriodDays covers five full week rows.
	DefaultPeriodDays = 35
	// MaxPeriodDays bounds the grid to something that fits a terminal.
	MaxPeriodDays = 6 * DaysPerWeek

	dateLayout = "2006-01-02"
)

// WeekdayLabels are the grid column headers, Monday first.
var WeekdayLabels = []string{"Mon.", "Tue.", "Wed.", "Thu.", "Fri.", "Sat.", "Sun."}

// ColumnWeekday maps a grid column (0 = Monday) to its day%7 remainder.
func ColumnWeekday(col int) int {
	return (col + 1) % DaysPerWeek
}

// Period is a run of days starting on a Monday.
type Period struct {
	Start time.Time
	Length int
}

// NewPeriod creates a period of length days starting on the Monday on or
// before start.
func NewPeriod(start time.Time, length int) (Period, error) {
	if length <= 0 || length > MaxPeriodDays {
		return Period{}, fmt.Errorf("period length must be between 1 and %d days, got %d", MaxPeriodDays, length)
	}
	return Period{Start: mondayOnOrBefore(start), Length: length}, nil
}

// ParsePeriod builds a period from a YYYY-MM-DD start date. An empty start
// uses the month containing now; a zero length uses DefaultPeriodDays.
func ParsePeriod(start string, length int, now time.Time) (Period, error) {
	if length == 0 {
		length = DefaultPeriodDays
	}
	if start == "" {
		return NewPeriod(firstOfMonth(now), length)
	}
	t, err := time.ParseInLocation(dateLayout, start, now.Location())
	if err != nil {
		return Period{}, fmt.Errorf("invalid period start %q: %w", start, err)
	}
	return NewPeriod(t, length)
}

// DefaultPeriod starts on the Monday on or before the first of now's month.
func DefaultPeriod(now time.Time) Period {
	p, _ := NewPeriod(firstOfMonth(now), DefaultPeriodDays)
	return p
}

// Days returns the ordered day indices 1..Length.
func (p Period) Days() []int {
	days := make([]int, p.Length)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// Date returns the calendar date of a day index.
func (p Period) Date(day int) time.Time {
	return p.Start.AddDate(0, 0, day-1)
}

// Contains reports whether day is a valid index of the period.
func (p Period) Contains(day int) bool {
	return day >= 1 && day <= p.Length
}

// StartString formats the start date the way it is stored in config.
func (p Period) StartString() string {
	return p.Start.Format(dateLayout)
}

// String describes the period as a date range.
func (p Period) String() string {
	end := p.Date(p.Length)
	return fmt.Sprintf("%s → %s (%d days)", p.Start.Format(dateLayout), end.Format(dateLayout), p.Length)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func mondayOnOrBefore(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}
