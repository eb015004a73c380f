package mastersync

import "errors"

var (
	ErrFetchMaster    = errors.New("failed to fetch master issue")
	ErrWriteBack      = errors.New("failed to update master issue")
	ErrSyncInProgress = errors.New("another sync pass holds the lock")
)
