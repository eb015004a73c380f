package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
environment:
  name: production
gitlab:
  url: https://gitlab.example.com/
  token: ${GITLAB_PAT}
  project_id: group/app
sync:
  master_issue_iid: 12
  lock_file: /tmp/gitlab-sync.lock
checklist:
  grammar: strict
  line_separator: '\r\n'
estimate:
  milestone_id: 3
  skip_labels: [Master, "master issue", epic]
  developer_count: 2
  work_hours_per_day: 6.5
webhook:
  enabled: true
  secret: hook
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("GITLAB_PAT", "glpat-secret")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment.Name)
	assert.Equal(t, "https://gitlab.example.com", cfg.GitLab.URL)
	assert.Equal(t, "glpat-secret", cfg.GitLab.Token)
	assert.Equal(t, "group/app", cfg.GitLab.ProjectID)
	assert.Equal(t, 30*time.Second, cfg.GitLab.Timeout)
	assert.Equal(t, 12, cfg.Sync.MasterIssueIID)
	assert.Equal(t, "/tmp/gitlab-sync.lock", cfg.Sync.LockFile)
	assert.Equal(t, "strict", cfg.Checklist.Grammar)
	assert.Equal(t, "\r\n", cfg.Checklist.LineSeparator)
	assert.Equal(t, []string{"Master", "master issue", "epic"}, cfg.Estimate.SkipLabels)
	assert.Equal(t, 2, cfg.Estimate.DeveloperCount)
	assert.Equal(t, 6.5, cfg.Estimate.WorkHoursPerDay)
	assert.Equal(t, "UTC", cfg.Estimate.Timezone)
	assert.True(t, cfg.Webhook.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Webhook.JobTimeout)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
gitlab:
  url: https://gitlab.example.com
  token: t
  project_id: "5"
sync:
  master_issue_iid: 1
`))
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.Checklist.Grammar)
	assert.Equal(t, "\n", cfg.Checklist.LineSeparator)
	assert.Equal(t, []string{"Master", "master issue"}, cfg.Estimate.SkipLabels)
	assert.Equal(t, 8.0, cfg.Estimate.WorkHoursPerDay)
	assert.False(t, cfg.Webhook.Enabled)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GITLAB_PAT", "glpat-secret")
	t.Setenv("SYNC_MASTER_ISSUE_IID", "99")
	t.Setenv("ESTIMATE_SKIP_LABELS", "Master, master issue ,chore")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 99, cfg.Sync.MasterIssueIID)
	assert.Equal(t, []string{"Master", "master issue", "chore"}, cfg.Estimate.SkipLabels)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing url", content: "gitlab: {token: t, project_id: '5'}\nsync: {master_issue_iid: 1}"},
		{name: "missing token", content: "gitlab: {url: u, project_id: '5'}\nsync: {master_issue_iid: 1}"},
		{name: "missing project", content: "gitlab: {url: u, token: t}\nsync: {master_issue_iid: 1}"},
		{name: "missing master issue", content: "gitlab: {url: u, token: t, project_id: '5'}"},
		{name: "webhook without secret", content: "gitlab: {url: u, token: t, project_id: '5'}\nsync: {master_issue_iid: 1}\nwebhook: {enabled: true}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
