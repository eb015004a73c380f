package repository

import (
	"context"
	"time"

	"gitlab-master-sync/internal/model"
)

// IssueRepository is the interface for issue tracker data access operations.
type IssueRepository interface {
	GetIssue(ctx context.Context, iid int) (model.Issue, error)
	UpdateIssueDescription(ctx context.Context, iid int, description string) (model.Issue, error)
	ListMilestoneIssues(ctx context.Context, milestoneID int) ([]model.Issue, error)
	ListIssueNotes(ctx context.Context, iid int) ([]model.Note, error)
	UpdateMilestoneDueDate(ctx context.Context, milestoneID int, due time.Time) error
}
