package usecase

import (
	"context"
	"fmt"

	"github.com/gofrs/flock"

	"gitlab-master-sync/internal/mastersync"
)

// lock takes the optional host-local pass lock without blocking.
func (uc *implUseCase) lock(ctx context.Context) (func(), error) {
	if uc.cfg.LockFile == "" {
		return func() {}, nil
	}

	fl := flock.New(uc.cfg.LockFile)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("mastersync.usecase.lock: %w", err)
	}
	if !locked {
		return nil, mastersync.ErrSyncInProgress
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			uc.l.Warnf(ctx, "mastersync.usecase.lock: unlock %s: %v", uc.cfg.LockFile, err)
		}
	}, nil
}
