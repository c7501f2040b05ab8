package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./invoices.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "@every 1m", cfg.SweepSchedule)
	assert.False(t, cfg.SimulateLatency)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30s")
	t.Setenv("SIMULATE_LATENCY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.SessionTTL)
	assert.True(t, cfg.SimulateLatency)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}
