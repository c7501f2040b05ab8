package monitoring

import (
	"time"

	"github.com/alias8/invoices-demo-be/internal/session"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// SessionReaper periodically evicts idle session copies so memory stays
// bounded as clients come and go.
type SessionReaper struct {
	sessions *session.Store
	ttl      time.Duration
	schedule cron.Schedule
	done     chan bool
}

// NewSessionReaper creates a reaper sweeping on the given cron schedule
// (e.g. "@every 1m"). Sessions idle longer than ttl are evicted.
func NewSessionReaper(sessions *session.Store, ttl time.Duration, scheduleExpr string) (*SessionReaper, error) {
	schedule, err := cron.ParseStandard(scheduleExpr)
	if err != nil {
		return nil, err
	}
	return &SessionReaper{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the reaper's sweep loop.
func (sr *SessionReaper) Run() {
	log.Info().Msg("Starting background session reaper...")
	for {
		timer := time.NewTimer(time.Until(sr.schedule.Next(time.Now())))
		select {
		case <-sr.done:
			timer.Stop()
			log.Info().Msg("Stopping background session reaper.")
			return
		case <-timer.C:
			sr.sweep()
		}
	}
}

// Stop halts the reaper.
func (sr *SessionReaper) Stop() {
	sr.done <- true
}

func (sr *SessionReaper) sweep() {
	if evicted := sr.sessions.EvictIdle(sr.ttl); evicted > 0 {
		log.Info().Int("evicted", evicted).Int("live", sr.sessions.Len()).Msg("Evicted idle sessions")
	}
}
