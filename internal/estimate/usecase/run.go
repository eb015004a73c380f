package usecase

import (
	"context"
	"fmt"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/model"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

func (uc *implUseCase) Run(ctx context.Context, input estimate.RunInput) (estimate.RunOutput, error) {
	out, err := uc.run(ctx, input)
	if err != nil {
		uc.metrics.ObserveEstimate(statusError)
		uc.l.Errorf(ctx, "estimate.usecase.Run: %v", err)
		return out, err
	}

	uc.metrics.ObserveEstimate(statusOK)
	uc.l.Infof(ctx, "estimate.usecase.Run: milestone=%d issues=%d hours=%s due=%q",
		out.MilestoneID, len(out.Issues), estimate.FormatHours(out.TotalHours), out.DueDate)
	return out, nil
}

func (uc *implUseCase) run(ctx context.Context, input estimate.RunInput) (estimate.RunOutput, error) {
	milestoneID := input.MilestoneID
	if milestoneID == 0 {
		milestoneID = uc.cfg.MilestoneID
	}
	if milestoneID == 0 {
		return estimate.RunOutput{}, estimate.ErrNoMilestone
	}
	out := estimate.RunOutput{MilestoneID: milestoneID}

	issues, err := uc.repo.ListMilestoneIssues(ctx, milestoneID)
	if err != nil {
		return out, fmt.Errorf("estimate.usecase.run: list milestone %d: %w", milestoneID, err)
	}

	for _, issue := range issues {
		if !uc.considered(issue) {
			continue
		}

		est, err := uc.estimateIssue(ctx, issue, input.DryRun)
		if err != nil {
			return out, err
		}
		out.Issues = append(out.Issues, est)
		out.TotalHours += est.Hours
	}

	if input.RecalculateDueDate || uc.cfg.RecalculateDueDate {
		due, err := uc.updateDueDate(ctx, milestoneID, out.TotalHours, input.DryRun)
		if err != nil {
			return out, err
		}
		out.DueDate = due
	}

	return out, nil
}

// considered drops closed issues and issues carrying a skip label.
func (uc *implUseCase) considered(issue model.Issue) bool {
	if issue.IsClosed() {
		return false
	}
	for _, label := range uc.cfg.SkipLabels {
		if issue.HasLabel(label) {
			return false
		}
	}
	return true
}

func (uc *implUseCase) estimateIssue(ctx context.Context, issue model.Issue, dryRun bool) (estimate.IssueEstimate, error) {
	est := estimate.IssueEstimate{IID: issue.IID, Title: issue.Title}

	notes, err := uc.repo.ListIssueNotes(ctx, issue.IID)
	if err != nil {
		return est, fmt.Errorf("estimate.usecase.estimateIssue: notes of #%d: %w", issue.IID, err)
	}

	var sum float64
	for _, note := range notes {
		if note.System {
			continue
		}
		hours, ok := estimate.ParseNote(note.Body)
		if !ok {
			continue
		}
		uc.l.Debugf(ctx, "estimate.usecase.estimateIssue: #%d %s estimated %sh", issue.IID, note.Author, estimate.FormatHours(hours))
		sum += hours
		est.Estimates++
	}
	if est.Estimates > 0 {
		est.Hours = sum / float64(est.Estimates)
	}

	description := estimate.ApplyFooter(issue.Description, est.Hours, est.Estimates > 0)
	if description == issue.Description {
		return est, nil
	}
	est.Changed = true
	if dryRun {
		return est, nil
	}

	if _, err := uc.repo.UpdateIssueDescription(ctx, issue.IID, description); err != nil {
		return est, fmt.Errorf("estimate.usecase.estimateIssue: update #%d: %w", issue.IID, err)
	}
	return est, nil
}
