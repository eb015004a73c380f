package http

import (
	"gitlab-master-sync/internal/checklist"
	"gitlab-master-sync/internal/mastersync"
)

// --- Request DTOs ---

type syncReq struct {
	DryRun bool `json:"dry_run"`
}

func (r syncReq) toInput() mastersync.SyncInput {
	return mastersync.SyncInput{DryRun: r.DryRun}
}

// --- Response DTOs ---

type mismatchResp struct {
	IssueRef     int  `json:"issue_ref"`
	Line         int  `json:"line"`
	WasOpen      bool `json:"was_open"`
	ShouldBeOpen bool `json:"should_be_open"`
	Unknown      bool `json:"unknown"`
	Applied      bool `json:"applied"`
}

type syncResp struct {
	RunID      string          `json:"run_id"`
	Status     string          `json:"status"`
	Entries    int             `json:"entries"`
	Mismatches []mismatchResp  `json:"mismatches"`
	Text       string          `json:"text,omitempty"`
	Stats      checklist.Stats `json:"stats"`
}

func (h *handler) newSyncResp(out mastersync.SyncOutput) syncResp {
	mismatches := make([]mismatchResp, len(out.Mismatches))
	for i, m := range out.Mismatches {
		mismatches[i] = mismatchResp{
			IssueRef:     m.IssueRef,
			Line:         m.Line,
			WasOpen:      m.WasOpen,
			ShouldBeOpen: m.ShouldBeOpen,
			Unknown:      m.Unknown,
			Applied:      m.Applied,
		}
	}
	return syncResp{
		RunID:      out.RunID,
		Status:     string(out.Status),
		Entries:    out.Entries,
		Mismatches: mismatches,
		Text:       out.Text,
		Stats:      out.Stats,
	}
}
