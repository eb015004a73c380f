package http

import (
	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc estimate.UseCase
}

// New creates a new HTTP handler for the estimate domain.
func New(l log.Logger, uc estimate.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
