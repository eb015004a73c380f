// Package bootstrap builds the domain use cases from configuration.
package bootstrap

import (
	"context"
	"fmt"

	"gitlab-master-sync/config"
	"gitlab-master-sync/internal/checklist"
	"gitlab-master-sync/internal/estimate"
	estimateUC "gitlab-master-sync/internal/estimate/usecase"
	issueRepo "gitlab-master-sync/internal/issue/repository/gitlab"
	"gitlab-master-sync/internal/mastersync"
	syncUC "gitlab-master-sync/internal/mastersync/usecase"
	"gitlab-master-sync/pkg/datemath"
	"gitlab-master-sync/pkg/gcalendar"
	pkgGitLab "gitlab-master-sync/pkg/gitlab"
	"gitlab-master-sync/pkg/log"
	"gitlab-master-sync/pkg/metrics"
)

// App is the set of wired use cases shared by the CLI and the API server.
type App struct {
	Metrics    *metrics.Recorder
	SyncUC     mastersync.UseCase
	EstimateUC estimate.UseCase
}

// New wires the GitLab client, the checklist service and both use cases.
// Google Calendar is optional: a broken credentials file only disables it.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	client := pkgGitLab.NewClient(ctx, cfg.GitLab.URL, cfg.GitLab.Token, cfg.GitLab.ProjectID, cfg.GitLab.Timeout)
	repo := issueRepo.New(client, l)

	cl, err := checklist.New(checklist.Options{
		Grammar:       cfg.Checklist.Grammar,
		LineSeparator: cfg.Checklist.LineSeparator,
	})
	if err != nil {
		return nil, fmt.Errorf("checklist: %w", err)
	}

	cal, err := datemath.NewCalendar(cfg.Estimate.Timezone)
	if err != nil {
		return nil, fmt.Errorf("estimate.timezone: %w", err)
	}

	rec := metrics.New()

	var events estimate.CalendarPublisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			events = calendarClient
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	return &App{
		Metrics: rec,
		SyncUC: syncUC.New(l, repo, cl, rec, mastersync.Config{
			MasterIssueIID: cfg.Sync.MasterIssueIID,
			LockFile:       cfg.Sync.LockFile,
		}),
		EstimateUC: estimateUC.New(l, repo, cal, events, rec, estimate.Config{
			MilestoneID:        cfg.Estimate.MilestoneID,
			SkipLabels:         cfg.Estimate.SkipLabels,
			RecalculateDueDate: cfg.Estimate.RecalculateDueDate,
			DeveloperCount:     cfg.Estimate.DeveloperCount,
			WorkHoursPerDay:    cfg.Estimate.WorkHoursPerDay,
			CalendarID:         cfg.GoogleCalendar.CalendarID,
		}),
	}, nil
}

// NewLogger builds the zap logger described by cfg.Logger.
func NewLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}
