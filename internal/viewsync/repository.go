package viewsync

import (
	"errors"
	"sync"
	"time"
)

// SessionID identifies one viewer session.
type SessionID string

// Session is one viewer's controller.
type Session struct {
	ID         SessionID
	Controller *Controller
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repository defines the concurrency-safe contract for accessing and mutating
// viewer sessions. Every controller access goes through it, which serializes
// events for a session.
type Repository interface {
	// CreateSession stores a new session. It fails with ErrSessionExists if
	// the id is taken.
	CreateSession(s *Session) error

	// Update runs fn on the session's controller under the write lock.
	Update(id SessionID, fn func(*Controller) error) error

	// View runs fn on the session's controller under the read lock. fn must
	// not mutate the controller.
	View(id SessionID, fn func(*Controller)) error

	// DeleteSession removes a session.
	DeleteSession(id SessionID) error

	// ActiveSessionCount returns the number of live sessions.
	// Used for metrics.
	ActiveSessionCount() int
}

var (
	// ErrSessionNotFound is returned for an unknown or deleted session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when creating a session whose id is taken.
	ErrSessionExists = errors.New("session already exists")
)

// InMemoryRepository is a concurrency-safe implementation of Repository.
// It uses a Store for persistence; by default that is an InMemoryStore.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store Store
	now   func() time.Time
}

// NewInMemoryRepository constructs a new repository with a default in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithStore(NewInMemoryStore())
}

// NewInMemoryRepositoryWithStore constructs a repository that uses the given Store.
func NewInMemoryRepositoryWithStore(store Store) *InMemoryRepository {
	return &InMemoryRepository{store: store, now: time.Now}
}

// CreateSession implements Repository.CreateSession.
func (r *InMemoryRepository) CreateSession(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store.GetSession(s.ID); exists {
		return ErrSessionExists
	}

	now := r.now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.store.SetSession(s)
	return nil
}

// Update implements Repository.Update.
func (r *InMemoryRepository) Update(id SessionID, fn func(*Controller) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.store.GetSession(id)
	if !exists {
		return ErrSessionNotFound
	}

	if err := fn(s.Controller); err != nil {
		return err
	}
	s.UpdatedAt = r.now().UTC()
	return nil
}

// View implements Repository.View.
func (r *InMemoryRepository) View(id SessionID, fn func(*Controller)) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.store.GetSession(id)
	if !exists {
		return ErrSessionNotFound
	}
	fn(s.Controller)
	return nil
}

// DeleteSession implements Repository.DeleteSession.
func (r *InMemoryRepository) DeleteSession(id SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store.GetSession(id); !exists {
		return ErrSessionNotFound
	}
	r.store.DeleteSession(id)
	return nil
}

// ActiveSessionCount implements Repository.ActiveSessionCount.
func (r *InMemoryRepository) ActiveSessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.store.ListSessionIDs())
}
