package session

import (
	"sync"
	"time"

	"github.com/alias8/invoices-demo-be/internal/models"
)

// Session owns one mutable working copy of the canonical dataset. The
// store hands the same *Session back for every request carrying the same
// key; callers must hold the session lock while reading or mutating Data
// so interleaved requests against one session stay serialized.
type Session struct {
	ID   string
	Data *models.Dataset

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store keys owned dataset copies by session id. Copies are cloned from
// the canonical snapshot on first use; the canonical snapshot itself is
// never handed out and never mutated.
type Store struct {
	mu        sync.Mutex
	canonical *models.Dataset
	sessions  map[string]*Session
}

// NewStore creates a session store around the canonical snapshot.
func NewStore(canonical *models.Dataset) *Store {
	return &Store{
		canonical: canonical,
		sessions:  make(map[string]*Session),
	}
}

// Get returns the session for the given key, cloning the canonical
// snapshot on first use. Creation happens under the store mutex, so two
// concurrent first requests for the same key observe the same copy.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		sess = &Session{
			ID:   id,
			Data: st.canonical.Clone(),
		}
		st.sessions[id] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// EvictIdle drops every session that has not been touched within ttl and
// returns how many were removed. An evicted key simply gets a fresh clone
// on its next request.
func (st *Store) EvictIdle(ttl time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	evicted := 0
	for id, sess := range st.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			evicted++
		}
	}
	return evicted
}
