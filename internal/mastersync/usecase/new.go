package usecase

import (
	"gitlab-master-sync/internal/checklist"
	"gitlab-master-sync/internal/issue/repository"
	"gitlab-master-sync/internal/mastersync"
	pkgLog "gitlab-master-sync/pkg/log"
	"gitlab-master-sync/pkg/metrics"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.IssueRepository
	checklist checklist.Service
	metrics   *metrics.Recorder
	cfg       mastersync.Config
}

// New creates a new mastersync UseCase instance. rec may be nil.
func New(
	l pkgLog.Logger,
	repo repository.IssueRepository,
	cl checklist.Service,
	rec *metrics.Recorder,
	cfg mastersync.Config,
) mastersync.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		checklist: cl,
		metrics:   rec,
		cfg:       cfg,
	}
}
