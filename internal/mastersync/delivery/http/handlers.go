package http

import (
	"github.com/gin-gonic/gin"

	"gitlab-master-sync/pkg/response"
)

// Sync godoc
// @Summary     Run a sync pass
// @Description Reconciles the master issue checklist with the state of the referenced issues.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       body body syncReq false "Pass options"
// @Success     200  {object} syncResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     409  {object} response.Resp "Another pass holds the lock"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sync(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSyncResp(output))
}
