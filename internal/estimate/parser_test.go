package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		hours  float64
		wantOK bool
	}{
		{name: "hours", body: "estimate 3h", hours: 3, wantOK: true},
		{name: "slash command", body: "/estimate 2h", hours: 2, wantOK: true},
		{name: "case insensitive", body: "Estimate: 4 hours", hours: 4, wantOK: true},
		{name: "fractional hours", body: "estimate 1.5hrs", hours: 1.5, wantOK: true},
		{name: "hours and minutes", body: "estimate 1h 30m", hours: 1.5, wantOK: true},
		{name: "compact hours and minutes", body: "estimate 1h30m", hours: 1.5, wantOK: true},
		{name: "minutes round up", body: "estimate 20 minutes", hours: 0.5, wantOK: true},
		{name: "exact quarter", body: "estimate - 45 min", hours: 0.75, wantOK: true},
		{name: "single minute", body: "estimate 1m", hours: 0.25, wantOK: true},
		{name: "not an estimate", body: "I estimate 3h", wantOK: false},
		{name: "double slash", body: "//estimate 3h", wantOK: false},
		{name: "no duration", body: "estimate soon", wantOK: false},
		{name: "empty", body: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, ok := ParseNote(tt.body)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.hours, hours, 1e-9)
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0", FormatHours(0))
	assert.Equal(t, "3", FormatHours(3))
	assert.Equal(t, "2.5", FormatHours(2.5))
	assert.Equal(t, "0.33", FormatHours(1.0/3))
}

func TestApplyFooter(t *testing.T) {
	tests := []struct {
		name        string
		description string
		hours       float64
		estimated   bool
		want        string
	}{
		{
			name:        "adds zero footer",
			description: "Body",
			want:        "Body\n\n## Time Tracking - Estimated: 0h",
		},
		{
			name:        "adds footer with estimate once",
			description: "Body",
			hours:       2.5,
			estimated:   true,
			want:        "Body\n\n## Time Tracking - Estimated: 2.5h",
		},
		{
			name:        "keeps existing footer without estimate",
			description: "Body\n\n## Time Tracking - Estimated: 4h",
			want:        "Body\n\n## Time Tracking - Estimated: 4h",
		},
		{
			name:        "replaces existing footer",
			description: "Body\n\n## Time Tracking - Estimated: 4h\ntrailing",
			hours:       6,
			estimated:   true,
			want:        "Body\n\n## Time Tracking - Estimated: 6h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFooter(tt.description, tt.hours, tt.estimated)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ApplyFooter(got, tt.hours, tt.estimated))
		})
	}
}
