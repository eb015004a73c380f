package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/mastersync"
	"gitlab-master-sync/internal/middleware"
	"gitlab-master-sync/pkg/log"
	"gitlab-master-sync/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	metrics     *metrics.Recorder

	// Domains
	syncUC     mastersync.UseCase
	estimateUC estimate.UseCase

	// GitLab webhooks
	webhookHandler WebhookHandler
}

// WebhookHandler receives GitLab webhook deliveries.
type WebhookHandler interface {
	HandleGitLabWebhook(c *gin.Context)
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIToken    string
	Metrics     *metrics.Recorder

	SyncUC     mastersync.UseCase
	EstimateUC estimate.UseCase // Optional

	WebhookHandler WebhookHandler // Optional
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.APIToken),
		metrics:        cfg.Metrics,
		syncUC:         cfg.SyncUC,
		estimateUC:     cfg.EstimateUC,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.syncUC == nil {
		return errors.New("sync use case is required")
	}
	return nil
}
