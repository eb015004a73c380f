package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// GitLab master issue sync
	GitLab    GitLabConfig
	Sync      SyncConfig
	Checklist ChecklistConfig
	Estimate  EstimateConfig

	// Integrations
	Webhook        WebhookConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port     int
	Mode     string
	APIToken string // Bearer token for /api/v1, empty leaves it open
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GitLabConfig struct {
	URL       string
	Token     string
	ProjectID string // Numeric id or "group/project" path
	Timeout   time.Duration
}

type SyncConfig struct {
	MasterIssueIID int
	LockFile       string
}

type ChecklistConfig struct {
	Grammar       string
	LineSeparator string
}

type EstimateConfig struct {
	MilestoneID        int
	SkipLabels         []string
	RecalculateDueDate bool
	DeveloperCount     int
	WorkHoursPerDay    float64
	Timezone           string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	RateLimitPerMin int
	JobTimeout      time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// With an empty path, config.yaml is searched in ./config, ., /etc/gitlab-sync/; a missing file is not an error.
// Environment variables override file values, e.g. GITLAB_TOKEN or SYNC_MASTER_ISSUE_IID.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/gitlab-sync/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIToken = expandEnvVar(v, v.GetString("http_server.api_token"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// GitLab
	cfg.GitLab.URL = strings.TrimRight(v.GetString("gitlab.url"), "/")
	cfg.GitLab.Token = expandEnvVar(v, v.GetString("gitlab.token"))
	cfg.GitLab.ProjectID = v.GetString("gitlab.project_id")
	cfg.GitLab.Timeout = v.GetDuration("gitlab.timeout")

	cfg.Sync.MasterIssueIID = v.GetInt("sync.master_issue_iid")
	cfg.Sync.LockFile = v.GetString("sync.lock_file")

	cfg.Checklist.Grammar = v.GetString("checklist.grammar")
	cfg.Checklist.LineSeparator = unescape(v.GetString("checklist.line_separator"))

	cfg.Estimate.MilestoneID = v.GetInt("estimate.milestone_id")
	cfg.Estimate.SkipLabels = getList(v, "estimate.skip_labels")
	cfg.Estimate.RecalculateDueDate = v.GetBool("estimate.recalculate_due_date")
	cfg.Estimate.DeveloperCount = v.GetInt("estimate.developer_count")
	cfg.Estimate.WorkHoursPerDay = v.GetFloat64("estimate.work_hours_per_day")
	cfg.Estimate.Timezone = v.GetString("estimate.timezone")

	// Webhooks
	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.Secret = expandEnvVar(v, v.GetString("webhook.secret"))
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.JobTimeout = v.GetDuration("webhook.job_timeout")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("gitlab.timeout", "30s")
	v.SetDefault("checklist.grammar", "legacy")
	v.SetDefault("checklist.line_separator", `\n`)
	v.SetDefault("estimate.skip_labels", []string{"Master", "master issue"})
	v.SetDefault("estimate.developer_count", 1)
	v.SetDefault("estimate.work_hours_per_day", 8)
	v.SetDefault("estimate.timezone", "UTC")
	v.SetDefault("webhook.enabled", false)
	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.job_timeout", "2m")
}

func (cfg *Config) validate() error {
	if cfg.GitLab.URL == "" {
		return errors.New("gitlab.url is required")
	}
	if cfg.GitLab.Token == "" {
		return errors.New("gitlab.token is required")
	}
	if cfg.GitLab.ProjectID == "" {
		return errors.New("gitlab.project_id is required")
	}
	if cfg.GitLab.Timeout <= 0 {
		return errors.New("gitlab.timeout must be positive")
	}
	if cfg.Sync.MasterIssueIID <= 0 {
		return errors.New("sync.master_issue_iid must be a positive issue number")
	}
	if cfg.Checklist.LineSeparator == "" {
		return errors.New("checklist.line_separator must not be empty")
	}
	if cfg.Estimate.MilestoneID < 0 {
		return errors.New("estimate.milestone_id must not be negative")
	}
	if cfg.Webhook.Enabled && cfg.Webhook.Secret == "" {
		return errors.New("webhook.secret is required when webhooks are enabled")
	}
	return nil
}

// expandEnvVar expands values of the form ${VAR_NAME} from viper or the process environment.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// getList reads a list key that may also arrive as a comma separated string from the environment.
func getList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// unescape turns the escape sequences \n, \r and \t written in YAML or env values into control characters.
func unescape(s string) string {
	return strings.NewReplacer(`\r`, "\r", `\n`, "\n", `\t`, "\t").Replace(s)
}
