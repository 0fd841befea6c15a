// Package store owns the persisted application state: the dark-theme flag,
// the logged-in user and the activity log. It is constructed explicitly in
// main and passed to the components that need it; there are no package-level
// singletons.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/userdesk-dev/userdesk/internal/client/models"
	"github.com/userdesk-dev/userdesk/internal/logging"
)

// persistedState is the JSON shape of the state file, one blob holding
// everything, mirroring the single local-storage entry of the original UI.
type persistedState struct {
	Dark         bool                   `json:"dark"`
	LoggedInUser *models.User           `json:"loggedInUser,omitempty"`
	ActivityLog  []models.ActivityEntry `json:"activityLog"`
}

// Store is the thread-safe state of record. Every mutation persists the
// whole state; persistence failures are logged and swallowed so they never
// block the operation they accompany.
type Store struct {
	mu    sync.RWMutex
	state persistedState

	persister *Persistence
	log       logging.Logger
	now       func() time.Time
}

// New builds a Store rehydrated from the persister, if it holds a previous
// session's state. A nil persister keeps the store purely in memory.
func New(p *Persistence, log logging.Logger) *Store {
	s := &Store{persister: p, log: log, now: time.Now}
	s.state.Dark = true // the UI defaults to dark until the user says otherwise

	if p != nil {
		if saved, err := p.Load(); err == nil && saved != nil {
			s.state = *saved
		} else if err != nil {
			log.Warn(context.Background(), "could not rehydrate state, starting empty", "error", err)
		}
	}
	return s
}

// Dark reports whether dark mode is enabled.
func (s *Store) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Dark
}

// ToggleDark flips the theme and persists the new state.
func (s *Store) ToggleDark() bool {
	s.mu.Lock()
	s.state.Dark = !s.state.Dark
	dark := s.state.Dark
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
	return dark
}

// LoggedInUser returns the current user, or nil when nobody is logged in.
func (s *Store) LoggedInUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LoggedInUser == nil {
		return nil
	}
	u := *s.state.LoggedInUser
	return &u
}

// SetLoggedInUser records the current user (nil logs out) and persists.
func (s *Store) SetLoggedInUser(u *models.User) {
	s.mu.Lock()
	if u == nil {
		s.state.LoggedInUser = nil
	} else {
		copied := *u
		s.state.LoggedInUser = &copied
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// AddActivity prepends an entry to the log (newest first), filling ID and
// Timestamp when absent. Entries are immutable once appended.
func (s *Store) AddActivity(entry models.ActivityEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	s.mu.Lock()
	s.state.ActivityLog = append([]models.ActivityEntry{entry}, s.state.ActivityLog...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// Activities returns a copy of the log, newest first.
func (s *Store) Activities() []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityEntry, len(s.state.ActivityLog))
	copy(out, s.state.ActivityLog)
	return out
}

// ClearActivity empties the log and persists.
func (s *Store) ClearActivity() {
	s.mu.Lock()
	s.state.ActivityLog = nil
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// snapshotLocked deep-copies the state for persistence outside the lock.
// Callers must hold s.mu.
func (s *Store) snapshotLocked() persistedState {
	snapshot := s.state
	snapshot.ActivityLog = make([]models.ActivityEntry, len(s.state.ActivityLog))
	copy(snapshot.ActivityLog, s.state.ActivityLog)
	if s.state.LoggedInUser != nil {
		u := *s.state.LoggedInUser
		snapshot.LoggedInUser = &u
	}
	return snapshot
}

func (s *Store) persist(snapshot persistedState) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(snapshot); err != nil {
		s.log.Warn(context.Background(), "could not persist state", "error", err)
	}
}
