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
	path := filepath.Join(t.TempDir(), "wisehub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
llm:
  primary_model: claude-sonnet-4-20250514
  fast_model: claude-3-5-haiku-20241022
redis:
  addr: localhost:6379
  vector_index: test-index
chat:
  base_url: https://chat.example.com/v2
  bot_account_id: "12345"
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Brain.RequestTimeout.Std())
	assert.Equal(t, 0.7, cfg.Brain.ConfirmThreshold)
	assert.Equal(t, 10, cfg.Brain.SummaryTriggerTurns)
	assert.Equal(t, 90, cfg.Retention.DecisionLogDays)
	assert.Equal(t, "ANTHROPIC_API_KEY", cfg.LLM.APIKeyEnv)
}

func TestLoadParsesDurations(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
brain:
  request_timeout: 20s
  recency_affinity_window: 5m
server:
  port: 9090
  shutdown_timeout: 15s
`))
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, cfg.Brain.RequestTimeout.Std())
	assert.Equal(t, 5*time.Minute, cfg.Brain.RecencyAffinityWindow.Std())
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout.Std())
	assert.Equal(t, 9090, cfg.Server.Port)
	// Unset durations in a partially specified section still get defaults.
	assert.Equal(t, 30*time.Second, cfg.Brain.HandlerTimeout.Std())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
brain:
  request_timeout: soon
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
server:
  port: 99999
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
