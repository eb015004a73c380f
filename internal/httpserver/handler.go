package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	estimateHTTP "gitlab-master-sync/internal/estimate/delivery/http"
	syncHTTP "gitlab-master-sync/internal/mastersync/delivery/http"
	"gitlab-master-sync/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.Logger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	syncHTTP.RegisterRoutes(api.Group("/sync"), syncHTTP.New(srv.l, srv.syncUC), srv.mw)
	srv.l.Infof(ctx, "Sync route registered at POST /api/v1/sync")

	if srv.estimateUC != nil {
		estimateHTTP.RegisterRoutes(api.Group("/estimates"), estimateHTTP.New(srv.l, srv.estimateUC), srv.mw)
		srv.l.Infof(ctx, "Estimate route registered at POST /api/v1/estimates")
	} else {
		srv.l.Infof(ctx, "Estimates not configured, skipping estimate route")
	}

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/gitlab", srv.webhookHandler.HandleGitLabWebhook)
		srv.l.Infof(ctx, "GitLab webhook route registered at POST /webhook/gitlab")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping GitLab webhook route")
	}
}
