package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/mastersync"
	"gitlab-master-sync/pkg/response"
)

const testSecret = "s3cret"

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock sync use case for testing
type mockSync struct {
	calls   chan struct{}
	release chan struct{} // When set, each call blocks until it receives
}

func (m *mockSync) Sync(ctx context.Context, input mastersync.SyncInput) (mastersync.SyncOutput, error) {
	m.calls <- struct{}{}
	if m.release != nil {
		<-m.release
	}
	return mastersync.SyncOutput{RunID: "run", Status: mastersync.StatusUpToDate}, nil
}

// Mock estimate use case for testing
type mockEstimate struct {
	calls chan struct{}
}

func (m *mockEstimate) Run(ctx context.Context, input estimate.RunInput) (estimate.RunOutput, error) {
	m.calls <- struct{}{}
	return estimate.RunOutput{}, nil
}

func waitCall(t *testing.T, calls chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job")
	}
}

func TestValidateGitLabToken(t *testing.T) {
	v := NewSecurityValidator(Config{Secret: testSecret})
	if err := v.ValidateGitLabToken(testSecret); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.ValidateGitLabToken("wrong"); err == nil {
		t.Error("expected invalid token error")
	}

	unset := NewSecurityValidator(Config{})
	if err := unset.ValidateGitLabToken(""); err == nil {
		t.Error("expected error when secret is not configured")
	}
}

func TestRateLimiter(t *testing.T) {
	limited := newRateLimiter(1)
	if err := limited.Allow("a"); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	if err := limited.Allow("a"); err == nil {
		t.Error("second request should be limited")
	}
	if err := limited.Allow("b"); err != nil {
		t.Errorf("other sources have their own bucket: %v", err)
	}

	unlimited := newRateLimiter(0)
	for i := 0; i < 100; i++ {
		if err := unlimited.Allow("a"); err != nil {
			t.Fatalf("request %d limited: %v", i, err)
		}
	}
}

func TestExtractIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.RemoteAddr = "10.0.0.5:5555"
	if ip := extractIP(r); ip != "10.0.0.5" {
		t.Errorf("got %s", ip)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if ip := extractIP(r); ip != "203.0.113.9" {
		t.Errorf("got %s", ip)
	}
}

func TestParseEvents(t *testing.T) {
	p := NewGitLabParser()

	issue, err := p.ParseIssueEvent([]byte(`{
		"object_kind": "issue",
		"user": {"username": "alice"},
		"project": {"id": 5, "path_with_namespace": "team/app"},
		"object_attributes": {"iid": 42, "state": "closed", "action": "close", "milestone_id": 3}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issue.IssueNumber != 42 || issue.State != "closed" || issue.Action != "close" || issue.MilestoneID != 3 || issue.ProjectID != 5 || issue.Author != "alice" {
		t.Errorf("unexpected issue event: %+v", issue)
	}

	note, err := p.ParseNoteEvent([]byte(`{
		"object_kind": "note",
		"user": {"username": "bob"},
		"project": {"id": 5, "path_with_namespace": "team/app"},
		"object_attributes": {"note": "/estimate 2h", "noteable_type": "Issue"},
		"issue": {"iid": 7, "state": "opened", "milestone_id": null}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.IssueNumber != 7 || note.NoteBody != "/estimate 2h" || note.NoteableType != "Issue" || note.MilestoneID != 0 {
		t.Errorf("unexpected note event: %+v", note)
	}

	if _, err := p.ParseIssueEvent([]byte(`{`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestDispatcherCoalesces(t *testing.T) {
	syncUC := &mockSync{calls: make(chan struct{}, 10), release: make(chan struct{})}
	d := NewDispatcher(&mockLogger{}, syncUC, nil, time.Second)

	if d.Enqueue(JobEstimate) {
		t.Error("estimate jobs need an estimate use case")
	}
	if !d.Enqueue(JobSync) {
		t.Fatal("first sync should be queued")
	}
	if d.Enqueue(JobSync) {
		t.Error("second sync should coalesce into the pending one")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	// The worker is now busy with the first run, so one more can be queued.
	waitCall(t, syncUC.calls)
	if !d.Enqueue(JobSync) {
		t.Error("sync should be queued while another one runs")
	}
	if d.Enqueue(JobSync) {
		t.Error("only one sync can be pending")
	}

	syncUC.release <- struct{}{}
	waitCall(t, syncUC.calls)
	syncUC.release <- struct{}{}

	cancel()
	<-done

	select {
	case <-syncUC.calls:
		t.Error("unexpected third run")
	default:
	}
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/gitlab", h.HandleGitLabWebhook)
	return r
}

func post(r *gin.Engine, event, token, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(http.MethodPost, "/webhook/gitlab", strings.NewReader(body))
	req.Header.Set("X-Gitlab-Event", event)
	req.Header.Set("X-Gitlab-Token", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func status(resp response.Resp) any {
	data, _ := resp.Data.(map[string]any)
	return data["status"]
}

func TestHandleGitLabWebhook(t *testing.T) {
	issueBody := `{"object_kind": "issue", "object_attributes": {"iid": 42, "state": "closed"}}`
	noteBody := func(note string, milestone int) string {
		return fmt.Sprintf(`{"object_kind": "note", "object_attributes": {"note": %q, "noteable_type": "Issue"},
			"issue": {"iid": 7, "milestone_id": %d}}`, note, milestone)
	}

	syncUC := &mockSync{calls: make(chan struct{}, 10)}
	estimateUC := &mockEstimate{calls: make(chan struct{}, 10)}
	d := NewDispatcher(&mockLogger{}, syncUC, estimateUC, time.Second)
	r := newTestRouter(NewHandler(d, Config{Secret: testSecret, MilestoneID: 3}, &mockLogger{}))

	t.Run("wrong token", func(t *testing.T) {
		w, _ := post(r, eventIssue, "nope", issueBody)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unsupported event", func(t *testing.T) {
		w, resp := post(r, "Push Hook", testSecret, `{}`)
		if w.Code != http.StatusOK || status(resp) != "ignored" {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		w, _ := post(r, eventIssue, testSecret, `{`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("issue event queues a sync", func(t *testing.T) {
		w, resp := post(r, eventIssue, testSecret, issueBody)
		if w.Code != http.StatusAccepted || status(resp) != "queued" {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}

		w, resp = post(r, eventIssue, testSecret, issueBody)
		if w.Code != http.StatusAccepted || status(resp) != "coalesced" {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}
	})

	t.Run("plain comment is ignored", func(t *testing.T) {
		w, resp := post(r, eventNote, testSecret, noteBody("looks good", 3))
		if w.Code != http.StatusOK || status(resp) != "ignored" {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}
	})

	t.Run("estimate in another milestone is ignored", func(t *testing.T) {
		w, resp := post(r, eventNote, testSecret, noteBody("/estimate 2h", 4))
		if w.Code != http.StatusOK || status(resp) != "ignored" {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}
	})

	t.Run("estimate comment queues an estimate run", func(t *testing.T) {
		w, resp := post(r, eventNote, testSecret, noteBody("/estimate 2h", 3))
		if w.Code != http.StatusAccepted || status(resp) != "queued" {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	waitCall(t, syncUC.calls)
	waitCall(t, estimateUC.calls)
}

func TestHandleGitLabWebhookRateLimit(t *testing.T) {
	d := NewDispatcher(&mockLogger{}, &mockSync{calls: make(chan struct{}, 10)}, nil, time.Second)
	r := newTestRouter(NewHandler(d, Config{Secret: testSecret, RateLimitPerMin: 1}, &mockLogger{}))

	w, _ := post(r, "Push Hook", testSecret, `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w, _ = post(r, "Push Hook", testSecret, `{}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}
