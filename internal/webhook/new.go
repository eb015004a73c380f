package webhook

import (
	pkgLog "gitlab-master-sync/pkg/log"
)

type Handler struct {
	dispatcher   *Dispatcher
	security     *SecurityValidator
	gitlabParser *GitLabWebhookParser
	milestoneID  int
	l            pkgLog.Logger
}

func NewHandler(
	dispatcher *Dispatcher,
	cfg Config,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		dispatcher:   dispatcher,
		security:     NewSecurityValidator(cfg),
		gitlabParser: NewGitLabParser(),
		milestoneID:  cfg.MilestoneID,
		l:            l,
	}
}
