package gcalendar

import "time"

const (
	dateLayout      = "2006-01-02"
	defaultCalendar = "primary"
)

// AllDayEventRequest is the input for publishing an all-day Google Calendar event.
type AllDayEventRequest struct {
	CalendarID  string // Defaults to "primary"
	EventID     string // Stable id; base32hex characters only (a-v, 0-9), 5 to 1024 long
	Summary     string
	Description string
	Date        time.Time // Only the calendar date is used
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string // YYYY-MM-DD
}
