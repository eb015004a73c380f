package gitlab

import (
	"gitlab-master-sync/internal/issue/repository"
	pkgGitLab "gitlab-master-sync/pkg/gitlab"
	pkgLog "gitlab-master-sync/pkg/log"
)

type implRepository struct {
	client *pkgGitLab.Client
	l      pkgLog.Logger
}

// New creates a GitLab-backed issue repository.
func New(client *pkgGitLab.Client, l pkgLog.Logger) repository.IssueRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
