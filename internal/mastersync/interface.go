package mastersync

import "context"

// UseCase keeps the master issue checklist in line with the issues it references.
type UseCase interface {
	// Sync runs one reconciliation pass over the master issue.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}

// Reporter receives the human-readable progress of a pass.
type Reporter interface {
	NoMaster()
	NoEntries()
	Mismatch(issueRef int, isOpen, shouldBeOpen bool)
	OutOfSync()
	Updating()
	Complete(text string)
	UpToDate()
}
