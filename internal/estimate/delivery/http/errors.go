package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estimate.ErrNoMilestone), errors.Is(err, estimate.ErrInvalidWorkload):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
