package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, "leadgate", cfg.Service.Name)
	assert.Equal(t, 8090, cfg.Service.Port)
	assert.Equal(t, "data/leads.jsonl", cfg.LeadLog.Path)
	assert.Equal(t, 10, cfg.Intake.RatePerSecond)
	assert.Equal(t, 24*time.Hour, cfg.Redis.DuplicateWindow)
	assert.Equal(t, "leadgate_high_leads", cfg.Elasticsearch.Index)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9000
  debug: true
lead_log:
  path: /var/lib/leadgate/leads.jsonl
notify:
  webhook_url: https://hooks.example.com/T123/B456
  max_attempts: 5
elasticsearch:
  url: http://localhost:9200
  index: custom_leads
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Service.Port)
	assert.True(t, cfg.Service.Debug)
	assert.Equal(t, "/var/lib/leadgate/leads.jsonl", cfg.LeadLog.Path)
	assert.Equal(t, "https://hooks.example.com/T123/B456", cfg.Notify.WebhookURL)
	assert.Equal(t, 5, cfg.Notify.MaxAttempts)
	assert.Equal(t, "custom_leads", cfg.Elasticsearch.Index)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9000
`)

	t.Setenv("LEADGATE_PORT", "9100")
	t.Setenv("NOTIFY_WEBHOOK_URL", "https://hooks.example.com/env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Service.Port)
	assert.Equal(t, "https://hooks.example.com/env", cfg.Notify.WebhookURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestOptionalSectionsDisabledByDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Elasticsearch.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Mailer.Enabled())
}

func TestOptionalSectionsEnabledByEnv(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("ELASTICSEARCH_URL", "http://es.internal:9200")
	t.Setenv("REDIS_URL", "redis.internal:6379")
	t.Setenv("MAILER_URL", "https://mail.example.com/send")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.True(t, cfg.Elasticsearch.Enabled())
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Mailer.Enabled())

	// Defaults still fill the rest of the enabled sections.
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.NotEmpty(t, cfg.Mailer.Subject)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "service: [not a map")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/leadgate/config.yml")
	assert.Equal(t, "/etc/leadgate/config.yml", GetConfigPath("config.yml"))
}
