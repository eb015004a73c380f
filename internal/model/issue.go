package model

import "time"

// Issue states reported by GitLab. Only IssueStateClosed is significant for reconciliation.
const (
	IssueStateOpened = "opened"
	IssueStateClosed = "closed"
)

// Issue represents a GitLab issue addressed by its project-scoped IID.
type Issue struct {
	ID          int // Global id
	IID         int // Per-project sequential number, the "#123" users see
	Title       string
	Description string // Markdown body; the master checklist lives here
	State       string // "opened", "closed", or anything the tracker sends
	Labels      []string
	MilestoneID int
	WebURL      string
}

// IsClosed reports whether the tracker marked the issue closed.
func (i Issue) IsClosed() bool {
	return i.State == IssueStateClosed
}

// HasLabel reports whether the issue carries label exactly (case-sensitive).
func (i Issue) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Note is an issue comment.
type Note struct {
	ID        int
	Author    string // Username
	Body      string
	System    bool // GitLab-generated activity note
	CreatedAt time.Time
}

// Milestone is a GitLab project milestone.
type Milestone struct {
	ID      int
	IID     int
	Title   string
	DueDate string // YYYY-MM-DD, empty when unset
}
