package model

import "time"

// Environment names used by config.environment.name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// WebhookEvent represents a parsed GitLab webhook event
type WebhookEvent struct {
	EventType    string    // "issue" or "note"
	Repository   string    // path_with_namespace
	ProjectID    int       // Numeric project id
	Author       string    // Username that triggered the event
	IssueNumber  int       // Issue IID (if applicable)
	MilestoneID  int       // Milestone of the issue, 0 when unset
	Action       string    // open, close, reopen, update
	State        string    // Issue state after the event
	NoteBody     string    // Comment body for note events
	NoteableType string    // "Issue", "MergeRequest", ... for note events
	ReceivedAt   time.Time // When webhook was received
}
