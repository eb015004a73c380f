package mastersync

import "gitlab-master-sync/internal/checklist"

// Status is the outcome of a pass.
type Status string

const (
	StatusNoMaster  Status = "no_master"
	StatusNoEntries Status = "no_entries"
	StatusUpToDate  Status = "up_to_date"
	StatusUpdated   Status = "updated"
	StatusDryRun    Status = "dry_run"
)

// Config is the sync section of the service configuration.
type Config struct {
	MasterIssueIID int
	LockFile       string // Optional; empty disables host-local locking
}

// SyncInput controls a single pass.
type SyncInput struct {
	DryRun   bool     // Compute and report, but never write back
	Reporter Reporter // Optional; nil discards the report
}

// SyncOutput describes what a pass did.
type SyncOutput struct {
	RunID      string               `json:"run_id"`
	Status     Status               `json:"status"`
	Entries    int                  `json:"entries"`
	Mismatches []checklist.Mismatch `json:"mismatches"`
	Text       string               `json:"text,omitempty"` // Reconciled description, set when changed
	Stats      checklist.Stats      `json:"stats"`          // Progress after reconciliation
}
