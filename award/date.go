package award

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date (UTC)
// =============================================================================

// Date is a calendar date with day granularity. All production
// scheduling happens at day resolution; time-of-day never matters.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from year/month/day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date string. Calendar layers arrive as JSON
// documents that may carry either a bare date or a full timestamp
// (with or without a trailing Z); both collapse to the date part.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	if len(s) > 10 {
		if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// =============================================================================
// DAY CLASSIFIER
// =============================================================================

// ClassifyDay returns the weekday/weekend classification of a date.
// Total over all valid dates; no errors possible. The holiday flag is
// supplied independently by a HolidayCalendar and is deliberately NOT
// derived here: a holiday can fall on any day of the week.
func ClassifyDay(d Date) DayType {
	switch d.Weekday() {
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	default:
		return Weekday
	}
}

// =============================================================================
// HOLIDAY CALENDAR - External collaborator capability
// =============================================================================

// HolidayCalendar answers holiday queries for the dates of a
// calculation. Implementations may be backed by a remote source with
// caching; by the time the engine sees one it must be a plain lookup
// that cannot fail. A lookup outage upstream degrades to NoHolidays.
type HolidayCalendar interface {
	IsHoliday(d Date) bool
	HolidayName(d Date) (string, bool)
}

// NoHolidays is the degraded calendar used when holiday data is
// unavailable: every day prices at its plain weekday/weekend rate.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(Date) bool             { return false }
func (NoHolidays) HolidayName(Date) (string, bool) { return "", false }
