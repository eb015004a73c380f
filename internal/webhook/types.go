package webhook

import "time"

// Config holds webhook settings
type Config struct {
	Secret          string // Expected X-Gitlab-Token value
	RateLimitPerMin int    // Max requests per minute per source, 0 disables limiting
	MilestoneID     int    // Note events outside this milestone are ignored when set
}

// Job is a unit of background work a webhook can request.
type Job string

const (
	JobSync     Job = "sync"
	JobEstimate Job = "estimate"
)

const (
	eventIssue = "Issue Hook"
	eventNote  = "Note Hook"

	noteableIssue = "Issue"

	defaultJobTimeout = 2 * time.Minute
)
