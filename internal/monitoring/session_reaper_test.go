package monitoring

import (
	"testing"
	"time"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/alias8/invoices-demo-be/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionReaperRejectsBadSchedule(t *testing.T) {
	store := session.NewStore(&models.Dataset{})
	_, err := NewSessionReaper(store, time.Minute, "not a schedule")
	assert.Error(t, err)

	_, err = NewSessionReaper(store, time.Minute, "@every 1m")
	assert.NoError(t, err)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	store := session.NewStore(&models.Dataset{})
	store.Get("s1")
	require.Equal(t, 1, store.Len())

	// With a zero TTL every session is already idle.
	reaper, err := NewSessionReaper(store, 0, "@every 1m")
	require.NoError(t, err)
	reaper.sweep()

	assert.Equal(t, 0, store.Len())
}

func TestRunStop(t *testing.T) {
	store := session.NewStore(&models.Dataset{})
	reaper, err := NewSessionReaper(store, time.Minute, "@every 1h")
	require.NoError(t, err)

	go reaper.Run()
	reaper.Stop()
}
