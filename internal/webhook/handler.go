package webhook

import (
	"io"

	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/model"
	pkgResponse "gitlab-master-sync/pkg/response"
)

// HandleGitLabWebhook godoc
// @Summary      Receive a GitLab webhook
// @Description  Issue events queue a checklist sync, estimate comments queue an estimate run.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        X-Gitlab-Token  header  string  true  "Shared webhook secret"
// @Param        X-Gitlab-Event  header  string  true  "GitLab event name"
// @Success      200  {object}  response.Resp
// @Success      202  {object}  response.Resp
// @Failure      400  {object}  response.Resp
// @Failure      401  {object}  response.Resp
// @Failure      429  {object}  response.Resp
// @Router       /webhook/gitlab [post]
func (h *Handler) HandleGitLabWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitLabWebhook: read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify token
	if err := h.security.ValidateGitLabToken(c.GetHeader("X-Gitlab-Token")); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitLabWebhook: token verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitLabWebhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	eventType := c.GetHeader("X-Gitlab-Event")

	var event *model.WebhookEvent
	switch eventType {
	case eventIssue:
		event, err = h.gitlabParser.ParseIssueEvent(body)
	case eventNote:
		event, err = h.gitlabParser.ParseNoteEvent(body)
	default:
		h.l.Infof(ctx, "webhook.HandleGitLabWebhook: unsupported event type %q", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitLabWebhook: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	job, reason := h.route(*event)
	if reason != "" {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": reason})
		return
	}

	status := "queued"
	if !h.dispatcher.Enqueue(job) {
		status = "coalesced"
	}
	h.l.Infof(ctx, "webhook.HandleGitLabWebhook: %s #%d by %s, %s %s", event.EventType, event.IssueNumber, event.Author, job, status)
	pkgResponse.Accepted(c, gin.H{"status": status, "job": job})
}

// route picks the job an event asks for, or explains why it is ignored.
func (h *Handler) route(event model.WebhookEvent) (Job, string) {
	switch event.EventType {
	case "issue":
		return JobSync, ""
	case "note":
		if event.NoteableType != noteableIssue {
			return "", "not an issue comment"
		}
		if _, ok := estimate.ParseNote(event.NoteBody); !ok {
			return "", "not an estimate"
		}
		if h.milestoneID != 0 && event.MilestoneID != h.milestoneID {
			return "", "issue outside the estimated milestone"
		}
		if !h.dispatcher.Supports(JobEstimate) {
			return "", "estimates disabled"
		}
		return JobEstimate, ""
	default:
		return "", "unsupported event type"
	}
}
