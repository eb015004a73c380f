package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processRunReq binds and validates the optional run request body.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}
