package usecase

import (
	"time"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/issue/repository"
	"gitlab-master-sync/pkg/datemath"
	pkgLog "gitlab-master-sync/pkg/log"
	"gitlab-master-sync/pkg/metrics"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.IssueRepository
	calendar *datemath.Calendar
	events   estimate.CalendarPublisher
	metrics  *metrics.Recorder
	cfg      estimate.Config
	now      func() time.Time
}

// New creates a new estimate UseCase instance. events and rec may be nil.
func New(
	l pkgLog.Logger,
	repo repository.IssueRepository,
	calendar *datemath.Calendar,
	events estimate.CalendarPublisher,
	rec *metrics.Recorder,
	cfg estimate.Config,
) estimate.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		events:   events,
		metrics:  rec,
		cfg:      cfg,
		now:      time.Now,
	}
}
