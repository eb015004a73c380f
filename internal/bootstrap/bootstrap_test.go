package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab-master-sync/config"
	"gitlab-master-sync/internal/checklist"
	"gitlab-master-sync/pkg/log"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.GitLab.URL = "http://gitlab.invalid/api/v4"
	cfg.GitLab.Token = "token"
	cfg.GitLab.ProjectID = "42"
	cfg.GitLab.Timeout = time.Second
	cfg.Sync.MasterIssueIID = 1
	cfg.Checklist.Grammar = checklist.GrammarLegacy
	cfg.Checklist.LineSeparator = "\n"
	cfg.Estimate.Timezone = "UTC"
	cfg.Estimate.DeveloperCount = 1
	cfg.Estimate.WorkHoursPerDay = 8
	return cfg
}

func TestNew(t *testing.T) {
	app, err := New(context.Background(), log.NewNop(), testConfig())
	require.NoError(t, err)
	assert.NotNil(t, app.Metrics)
	assert.NotNil(t, app.SyncUC)
	assert.NotNil(t, app.EstimateUC)
}

func TestNewErrors(t *testing.T) {
	t.Run("unknown grammar", func(t *testing.T) {
		cfg := testConfig()
		cfg.Checklist.Grammar = "fancy"
		_, err := New(context.Background(), log.NewNop(), cfg)
		assert.ErrorIs(t, err, checklist.ErrUnknownGrammar)
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := testConfig()
		cfg.Estimate.Timezone = "Mars/Olympus_Mons"
		_, err := New(context.Background(), log.NewNop(), cfg)
		assert.Error(t, err)
	})
}

func TestNewWithoutCalendarCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.GoogleCalendar.CredentialsPath = filepath.Join(t.TempDir(), "missing.json")

	app, err := New(context.Background(), log.NewNop(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, app.EstimateUC)
}
