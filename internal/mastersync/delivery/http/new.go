package http

import (
	"gitlab-master-sync/internal/mastersync"
	"gitlab-master-sync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc mastersync.UseCase
}

// New creates a new HTTP handler for the mastersync domain.
func New(l log.Logger, uc mastersync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
