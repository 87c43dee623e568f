package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "teable-666", cfg.ProjectID)
	assert.Equal(t, "asia-east2-a", cfg.Zone)
	assert.Equal(t, 12, cfg.IdleTimeoutHours)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "devreaper.cleanup", cfg.NATSSubject)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 15*time.Minute, cfg.PollTimeout)
	assert.Empty(t, cfg.NATSURL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GCP_PROJECT_ID", "acme-dev")
	t.Setenv("GCP_ZONE", "us-central1-a")
	t.Setenv("IDLE_TIMEOUT_HOURS", "6")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("POLL_INTERVAL", "500ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "acme-dev", cfg.ProjectID)
	assert.Equal(t, "us-central1-a", cfg.Zone)
	assert.Equal(t, 6, cfg.IdleTimeoutHours)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("IDLE_TIMEOUT_HOURS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "idle timeout must be positive")
}

func TestIdleTimeout(t *testing.T) {
	cfg := &Config{IdleTimeoutHours: 12}
	assert.Equal(t, 12*time.Hour, cfg.IdleTimeout())
}
