package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/mastersync"
	"gitlab-master-sync/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mastersync.ErrSyncInProgress):
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}
