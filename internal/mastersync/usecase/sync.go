package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab-master-sync/internal/issue/repository"
	"gitlab-master-sync/internal/mastersync"
	pkgLog "gitlab-master-sync/pkg/log"
)

const statusError = "error"

// Sync fetches the master issue, resolves every referenced issue, and writes the reconciled
// checklist back when any box disagrees with its issue.
func (uc *implUseCase) Sync(ctx context.Context, input mastersync.SyncInput) (mastersync.SyncOutput, error) {
	runID := uuid.NewString()
	ctx = pkgLog.WithRunID(ctx, runID)
	out := mastersync.SyncOutput{RunID: runID}

	report := input.Reporter
	if report == nil {
		report = mastersync.NopReporter()
	}

	unlock, err := uc.lock(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "mastersync.usecase.Sync: %v", err)
		return out, err
	}
	defer unlock()

	started := time.Now()
	out, err = uc.pass(ctx, out, input.DryRun, report)
	if err != nil {
		uc.metrics.ObservePass(statusError, len(out.Mismatches), time.Since(started))
		uc.l.Errorf(ctx, "mastersync.usecase.Sync: %v", err)
		return out, err
	}

	uc.metrics.ObservePass(string(out.Status), len(out.Mismatches), time.Since(started))
	uc.l.Infof(ctx, "mastersync.usecase.Sync: status=%s entries=%d mismatches=%d", out.Status, out.Entries, len(out.Mismatches))
	return out, nil
}

func (uc *implUseCase) pass(ctx context.Context, out mastersync.SyncOutput, dryRun bool, report mastersync.Reporter) (mastersync.SyncOutput, error) {
	master, err := uc.repo.GetIssue(ctx, uc.cfg.MasterIssueIID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			out.Status = mastersync.StatusNoMaster
			report.NoMaster()
			return out, nil
		}
		return out, fmt.Errorf("%w #%d: %w", mastersync.ErrFetchMaster, uc.cfg.MasterIssueIID, err)
	}

	text := master.Description
	if text == "" {
		out.Status = mastersync.StatusNoMaster
		report.NoMaster()
		return out, nil
	}

	entries := uc.checklist.Parse(text)
	if len(entries) == 0 {
		out.Status = mastersync.StatusNoEntries
		report.NoEntries()
		return out, nil
	}
	out.Entries = len(entries)

	states := uc.resolveAll(ctx, entries)
	// A cancelled pass would otherwise reopen every entry.
	if err := ctx.Err(); err != nil {
		return out, fmt.Errorf("mastersync.usecase.pass: %w", err)
	}

	res := uc.checklist.Reconcile(entries, states, text)
	out.Mismatches = res.Mismatches
	if !res.Changed {
		out.Status = mastersync.StatusUpToDate
		out.Stats = uc.checklist.Stats(text)
		report.UpToDate()
		return out, nil
	}

	for _, m := range res.Mismatches {
		if !m.Applied {
			uc.l.Warnf(ctx, "mastersync.usecase.pass: line %d for issue #%d has no box to rewrite", m.Line, m.IssueRef)
		}
		report.Mismatch(m.IssueRef, m.WasOpen, m.ShouldBeOpen)
	}
	report.OutOfSync()

	out.Text = res.Text
	out.Stats = uc.checklist.Stats(res.Text)

	if dryRun {
		out.Status = mastersync.StatusDryRun
		return out, nil
	}

	report.Updating()
	if _, err := uc.repo.UpdateIssueDescription(ctx, uc.cfg.MasterIssueIID, res.Text); err != nil {
		return out, fmt.Errorf("%w #%d: %w", mastersync.ErrWriteBack, uc.cfg.MasterIssueIID, err)
	}

	out.Status = mastersync.StatusUpdated
	report.Complete(res.Text)
	return out, nil
}
