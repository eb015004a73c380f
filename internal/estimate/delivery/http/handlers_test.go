package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/middleware"
	"gitlab-master-sync/pkg/log"
)

type mockUseCase struct {
	input estimate.RunInput
	out   estimate.RunOutput
	err   error
}

func (m *mockUseCase) Run(ctx context.Context, input estimate.RunInput) (estimate.RunOutput, error) {
	m.input = input
	return m.out, m.err
}

func serve(uc *mockUseCase, token, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/estimates"), New(log.NewNop(), uc), middleware.New(log.NewNop(), "tok"))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/estimates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRun(t *testing.T) {
	uc := &mockUseCase{out: estimate.RunOutput{
		MilestoneID: 3,
		Issues:      []estimate.IssueEstimate{{IID: 10, Estimates: 2, Hours: 3, Changed: true}},
		TotalHours:  3,
		DueDate:     "2024-05-03",
	}}

	w := serve(uc, "tok", `{"milestone_id": 3, "recalculate_due_date": true}`)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, estimate.RunInput{MilestoneID: 3, RecalculateDueDate: true}, uc.input)

	var resp struct {
		Data runResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-05-03", resp.Data.DueDate)
	require.Len(t, resp.Data.Issues, 1)
	assert.Equal(t, 10, resp.Data.Issues[0].IID)
}

func TestRunErrors(t *testing.T) {
	assert.Equal(t, nethttp.StatusUnauthorized, serve(&mockUseCase{}, "", "").Code)
	assert.Equal(t, nethttp.StatusBadRequest, serve(&mockUseCase{}, "tok", `{"milestone_id": -1}`).Code)
	assert.Equal(t, nethttp.StatusBadRequest, serve(&mockUseCase{err: estimate.ErrNoMilestone}, "tok", "").Code)
	assert.Equal(t, nethttp.StatusInternalServerError, serve(&mockUseCase{err: context.DeadlineExceeded}, "tok", "").Code)
}
