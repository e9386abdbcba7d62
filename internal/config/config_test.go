package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "9090"
  mode: debug

database:
  host: db.internal
  port: 3306
  user: lms
  password: secret
  dbname: lms
  charset: utf8mb4
  parsetime: true

jwt:
  secret: short
  expire_hours: 48

redis:
  host: cache.internal
  port: 6379
  db: 1

storage:
  type: minio
  minio_endpoint: minio.internal:9000
  minio_bucket: lms-files

ai:
  base_url: https://ai.internal/v1
  model: test-model

mail:
  backend: console
  from_email: no-reply@lms.local

cors:
  allowed_origins:
    - http://localhost:3000

rate_limit:
  max_requests: 500
  window_minutes: 5

reminder:
  enabled: true
  interval_minutes: 30
`

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeTestConfig(t, testYAML)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 48*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "minio", cfg.Storage.Type)
	assert.Equal(t, "https://ai.internal/v1", cfg.AI.BaseURL)
	assert.Equal(t, "console", cfg.Mail.Backend)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 500, cfg.RateLimit.MaxRequests)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, 30, cfg.Reminder.IntervalMinutes)
}

func TestLoadConfigRejectsShortSecretInRelease(t *testing.T) {
	releaseYAML := "server:\n  port: \"9090\"\n  mode: release\n\njwt:\n  secret: short\n  expire_hours: 48\n"
	dir := writeTestConfig(t, releaseYAML)

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
