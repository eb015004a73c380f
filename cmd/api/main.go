package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab-master-sync/config"
	_ "gitlab-master-sync/docs" // Swagger docs
	"gitlab-master-sync/internal/bootstrap"
	"gitlab-master-sync/internal/httpserver"
	"gitlab-master-sync/internal/webhook"
)

// @title       GitLab Master Sync API
// @description Keeps a GitLab master issue checklist in line with the issues it references.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := flag.String("config", "", "Config file path (YAML)")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitLab master sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "GitLab: %s project=%s master=#%d", cfg.GitLab.URL, cfg.GitLab.ProjectID, cfg.Sync.MasterIssueIID)

	// 3. Use cases
	app, err := bootstrap.New(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize use cases: ", err)
		os.Exit(1)
	}

	// 4. GitLab webhooks (optional)
	var webhookHandler httpserver.WebhookHandler
	if cfg.Webhook.Enabled {
		dispatcher := webhook.NewDispatcher(logger, app.SyncUC, app.EstimateUC, cfg.Webhook.JobTimeout)
		go dispatcher.Run(ctx)

		webhookHandler = webhook.NewHandler(dispatcher, webhook.Config{
			Secret:          cfg.Webhook.Secret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			MilestoneID:     cfg.Estimate.MilestoneID,
		}, logger)
		logger.Info(ctx, "GitLab webhooks enabled at /webhook/gitlab")
	} else {
		logger.Warn(ctx, "GitLab webhooks disabled: set webhook.enabled and webhook.secret to receive events")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		APIToken:       cfg.HTTPServer.APIToken,
		Metrics:        app.Metrics,
		SyncUC:         app.SyncUC,
		EstimateUC:     app.EstimateUC,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
