package estimate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	notePrefix = "estimate"

	// FooterPrefix starts the time tracking heading kept at the end of every considered issue.
	FooterPrefix = "## Time Tracking - Estimated: "
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours|hour|hrs|hr|h)(?:[^a-z]|$)`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*(?:minutes|minute|mins|min|m)(?:[^a-z]|$)`)
)

// ParseNote reads an estimate comment such as "/estimate 1h 30m" and returns it in hours.
// Minutes are rounded up to the next quarter hour. ok is false when the note is not an
// estimate or carries no duration.
func ParseNote(body string) (hours float64, ok bool) {
	body = strings.TrimPrefix(body, "/")
	lower := strings.ToLower(body)
	if !strings.HasPrefix(lower, notePrefix) {
		return 0, false
	}
	lower = lower[len(notePrefix):]

	h, hasHours := firstNumber(hoursPattern, lower)
	m, hasMinutes := firstNumber(minutesPattern, lower)
	if !hasHours && !hasMinutes {
		return 0, false
	}

	return h + math.Ceil(m/15)*0.25, true
}

func firstNumber(re *regexp.Regexp, s string) (float64, bool) {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatHours renders hours rounded to two decimals without trailing zeros.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(math.Round(hours*100)/100, 'f', -1, 64)
}

// ApplyFooter returns description with its time tracking footer set to hours.
// Without an estimate an existing footer is left alone and a missing one is added as 0h.
func ApplyFooter(description string, hours float64, estimated bool) string {
	pos := strings.Index(description, FooterPrefix)
	if pos < 0 {
		return description + "\n\n" + FooterPrefix + FormatHours(hours) + "h"
	}
	if !estimated {
		return description
	}
	return description[:pos] + FooterPrefix + FormatHours(hours) + "h"
}
