package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"gitlab-master-sync/internal/model"
)

// GitLabWebhookParser parses GitLab webhook payloads
type GitLabWebhookParser struct{}

func NewGitLabParser() *GitLabWebhookParser {
	return &GitLabWebhookParser{}
}

type gitlabProject struct {
	ID                int    `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
}

type gitlabUser struct {
	Username string `json:"username"`
}

// ParseIssueEvent parses GitLab issue event
func (p *GitLabWebhookParser) ParseIssueEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		ObjectKind       string `json:"object_kind"`
		ObjectAttributes struct {
			IID         int    `json:"iid"` // Issue number
			State       string `json:"state"`
			Action      string `json:"action"`
			MilestoneID *int   `json:"milestone_id"`
		} `json:"object_attributes"`
		User    gitlabUser    `json:"user"`
		Project gitlabProject `json:"project"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issue event: %w", err)
	}

	return &model.WebhookEvent{
		EventType:   "issue",
		Repository:  event.Project.PathWithNamespace,
		ProjectID:   event.Project.ID,
		Author:      event.User.Username,
		IssueNumber: event.ObjectAttributes.IID,
		MilestoneID: deref(event.ObjectAttributes.MilestoneID),
		Action:      event.ObjectAttributes.Action,
		State:       event.ObjectAttributes.State,
		ReceivedAt:  time.Now(),
	}, nil
}

// ParseNoteEvent parses GitLab comment event
func (p *GitLabWebhookParser) ParseNoteEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		ObjectKind       string `json:"object_kind"`
		ObjectAttributes struct {
			Note         string `json:"note"`
			NoteableType string `json:"noteable_type"`
		} `json:"object_attributes"`
		Issue *struct {
			IID         int    `json:"iid"`
			State       string `json:"state"`
			MilestoneID *int   `json:"milestone_id"`
		} `json:"issue"`
		User    gitlabUser    `json:"user"`
		Project gitlabProject `json:"project"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse note event: %w", err)
	}

	out := &model.WebhookEvent{
		EventType:    "note",
		Repository:   event.Project.PathWithNamespace,
		ProjectID:    event.Project.ID,
		Author:       event.User.Username,
		NoteBody:     event.ObjectAttributes.Note,
		NoteableType: event.ObjectAttributes.NoteableType,
		ReceivedAt:   time.Now(),
	}
	if event.Issue != nil {
		out.IssueNumber = event.Issue.IID
		out.State = event.Issue.State
		out.MilestoneID = deref(event.Issue.MilestoneID)
	}
	return out, nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
