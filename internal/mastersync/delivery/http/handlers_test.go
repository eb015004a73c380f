package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gitlab-master-sync/internal/checklist"
	"gitlab-master-sync/internal/mastersync"
	"gitlab-master-sync/internal/middleware"
	"gitlab-master-sync/pkg/log"
	"gitlab-master-sync/pkg/response"
)

type mockUseCase struct {
	input mastersync.SyncInput
	out   mastersync.SyncOutput
	err   error
}

func (m *mockUseCase) Sync(ctx context.Context, input mastersync.SyncInput) (mastersync.SyncOutput, error) {
	m.input = input
	return m.out, m.err
}

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/sync"), New(log.NewNop(), uc), middleware.New(log.NewNop(), ""))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSync(t *testing.T) {
	t.Run("dry run", func(t *testing.T) {
		uc := &mockUseCase{out: mastersync.SyncOutput{
			RunID:      "r1",
			Status:     mastersync.StatusDryRun,
			Entries:    2,
			Mismatches: []checklist.Mismatch{{IssueRef: 42, WasOpen: true, Applied: true}},
			Text:       "* [x] Fix (#42)",
		}}

		w := serve(uc, `{"dry_run": true}`)
		if w.Code != nethttp.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !uc.input.DryRun {
			t.Error("dry_run was not forwarded")
		}

		var resp struct {
			Data syncResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Data.Status != "dry_run" || len(resp.Data.Mismatches) != 1 || resp.Data.Mismatches[0].IssueRef != 42 {
			t.Errorf("unexpected body: %+v", resp.Data)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		uc := &mockUseCase{out: mastersync.SyncOutput{Status: mastersync.StatusUpToDate}}
		if w := serve(uc, ""); w.Code != nethttp.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if uc.input.DryRun {
			t.Error("expected a real pass")
		}
	})

	t.Run("bad body", func(t *testing.T) {
		if w := serve(&mockUseCase{}, `{"dry_run": "yes"}`); w.Code != nethttp.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lock held", func(t *testing.T) {
		w := serve(&mockUseCase{err: mastersync.ErrSyncInProgress}, "")
		if w.Code != nethttp.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("write back failed", func(t *testing.T) {
		w := serve(&mockUseCase{err: errors.Join(mastersync.ErrWriteBack, errors.New("403"))}, "")
		if w.Code != nethttp.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}

		var resp response.Resp
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})
}
