package usecase

import (
	"context"

	"gitlab-master-sync/internal/checklist"
)

// resolve asks the tracker for the state of issue ref. Any failure yields StateUnknown.
func (uc *implUseCase) resolve(ctx context.Context, ref int) checklist.IssueState {
	issue, err := uc.repo.GetIssue(ctx, ref)
	if err != nil {
		uc.l.Warnf(ctx, "mastersync.usecase.resolve: issue #%d: %v", ref, err)
		uc.metrics.ResolveFailed()
		return checklist.StateUnknown
	}
	if issue.IsClosed() {
		return checklist.StateClosed
	}
	return checklist.StateOpen
}

// resolveAll returns one state per entry, in entry order.
func (uc *implUseCase) resolveAll(ctx context.Context, entries []checklist.Entry) []checklist.IssueState {
	states := make([]checklist.IssueState, len(entries))
	for i, e := range entries {
		states[i] = uc.resolve(ctx, e.IssueRef)
	}
	return states
}
