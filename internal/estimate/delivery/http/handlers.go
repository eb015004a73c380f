package http

import (
	"github.com/gin-gonic/gin"

	"gitlab-master-sync/pkg/response"
)

// Run godoc
// @Summary     Aggregate milestone estimates
// @Description Averages estimate comments per issue, updates the time tracking footers and optionally the milestone due date.
// @Tags        Estimates
// @Accept      json
// @Produce     json
// @Param       body body runReq false "Run options"
// @Success     200  {object} runResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/estimates [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newRunResp(output))
}
