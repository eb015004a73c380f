package http

import (
	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), h.Run)
}
