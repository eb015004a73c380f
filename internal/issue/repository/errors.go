package repository

import "errors"

// ErrNotFound is returned when the tracker does not know the requested object.
var ErrNotFound = errors.New("not found")
