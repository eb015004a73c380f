package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processSyncReq binds the optional sync request body.
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
