package middleware

import (
	"gitlab-master-sync/pkg/log"
)

type Middleware struct {
	l        log.Logger
	apiToken string
}

// New creates the shared route middleware. An empty apiToken leaves Auth open.
func New(l log.Logger, apiToken string) Middleware {
	return Middleware{
		l:        l,
		apiToken: apiToken,
	}
}
