package gitlab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab-master-sync/internal/issue/repository"
	"gitlab-master-sync/internal/model"
	pkgGitLab "gitlab-master-sync/pkg/gitlab"
)

const dueDateLayout = "2006-01-02"

func (r *implRepository) GetIssue(ctx context.Context, iid int) (model.Issue, error) {
	issue, err := r.client.GetIssue(ctx, iid)
	if err != nil {
		return model.Issue{}, mapError(err)
	}
	return toIssue(issue), nil
}

func (r *implRepository) UpdateIssueDescription(ctx context.Context, iid int, description string) (model.Issue, error) {
	issue, err := r.client.UpdateIssue(ctx, iid, pkgGitLab.UpdateIssueRequest{Description: &description})
	if err != nil {
		r.l.Errorf(ctx, "gitlab repository: failed to update issue #%d: %v", iid, err)
		return model.Issue{}, mapError(err)
	}
	return toIssue(issue), nil
}

func (r *implRepository) ListMilestoneIssues(ctx context.Context, milestoneID int) ([]model.Issue, error) {
	issues, err := r.client.ListMilestoneIssues(ctx, milestoneID)
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]model.Issue, 0, len(issues))
	for i := range issues {
		out = append(out, toIssue(&issues[i]))
	}
	return out, nil
}

func (r *implRepository) ListIssueNotes(ctx context.Context, iid int) ([]model.Note, error) {
	notes, err := r.client.ListIssueNotes(ctx, iid)
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		note := model.Note{
			ID:     n.ID,
			Author: n.Author.Username,
			Body:   n.Body,
			System: n.System,
		}
		if t, err := time.Parse(time.RFC3339, n.CreatedAt); err == nil {
			note.CreatedAt = t
		}
		out = append(out, note)
	}
	return out, nil
}

func (r *implRepository) UpdateMilestoneDueDate(ctx context.Context, milestoneID int, due time.Time) error {
	_, err := r.client.UpdateMilestone(ctx, milestoneID, pkgGitLab.UpdateMilestoneRequest{
		DueDate: due.Format(dueDateLayout),
	})
	if err != nil {
		r.l.Errorf(ctx, "gitlab repository: failed to update milestone %d: %v", milestoneID, err)
		return mapError(err)
	}
	return nil
}

// mapError keeps the original error text but lets callers match repository.ErrNotFound.
func mapError(err error) error {
	if errors.Is(err, pkgGitLab.ErrNotFound) {
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	}
	return err
}

// toIssue converts a GitLab API issue to the internal model.Issue.
func toIssue(i *pkgGitLab.Issue) model.Issue {
	issue := model.Issue{
		ID:     i.ID,
		IID:    i.IID,
		Title:  i.Title,
		State:  i.State,
		Labels: i.Labels,
		WebURL: i.WebURL,
	}
	if i.Description != nil {
		issue.Description = *i.Description
	}
	if i.Milestone != nil {
		issue.MilestoneID = i.Milestone.ID
	}
	return issue
}
