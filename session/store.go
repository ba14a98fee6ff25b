package session

import "sync"

// Store is the single source of truth for the current Session. It is safe
// for concurrent use; instances are injected into collaborators rather than
// shared through package state, so independent stores never interfere.
type Store struct {
	mu          sync.RWMutex
	current     Session
	subscribers []func(Session)
}

// NewStore creates a Store holding the empty (unauthenticated) Session.
func NewStore() *Store {
	return &Store{}
}

// Read returns the current Session.
func (s *Store) Read() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace merges the non-nil fields of the patch into the current Session
// and notifies subscribers synchronously.
func (s *Store) Replace(patch Patch) {
	s.mu.Lock()
	if patch.Name != nil {
		s.current.Name = *patch.Name
	}
	if patch.Email != nil {
		s.current.Email = *patch.Email
	}
	if patch.Roles != nil {
		s.current.Roles = *patch.Roles
	}
	if patch.AccessToken != nil {
		s.current.AccessToken = *patch.AccessToken
	}
	updated := s.current
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(updated)
	}
}

// Clear resets the Store to the empty Session and notifies subscribers.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = Session{}
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(Session{})
	}
}

// Subscribe registers a callback invoked synchronously on every change.
// Subscriptions cannot be removed; the Store lives for the process lifetime.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
