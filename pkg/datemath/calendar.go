package datemath

import (
	"fmt"
	"time"
)

// DateFormat is the calendar date layout GitLab uses for due dates.
const DateFormat = "2006-01-02"

// Calendar does weekday arithmetic in a fixed timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string.
// e.g. "Europe/Berlin". An empty string selects UTC.
func NewCalendar(timezone string) (*Calendar, error) {
	if timezone == "" {
		return &Calendar{location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// AddWeekdays moves n weekdays forward from the day of t, skipping Saturdays and Sundays.
// The result is at the start of the day. n <= 0 returns the start of t's day.
func (c *Calendar) AddWeekdays(t time.Time, n int) time.Time {
	day := c.StartOfDay(t)
	for n > 0 {
		day = day.AddDate(0, 0, 1)
		if IsWeekday(day) {
			n--
		}
	}
	return day
}

// Format renders t as a calendar date in the calendar's timezone.
func (c *Calendar) Format(t time.Time) string {
	return t.In(c.location).Format(DateFormat)
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}
