package client

import (
	"encoding/json"
	"strings"
	"sync"
)

const (
	sessionTokenKey = "gatorhire_token"
	sessionUserKey  = "gatorhire_user"
)

// Session holds the logged-in identity and persists it through a Storage so
// a CLI invocation picks up where the last one stopped. It implements
// TokenSource for the API client.
type Session struct {
	mu      sync.RWMutex
	storage Storage
	token   string
	user    *User
}

func NewSession(storage Storage) *Session {
	return &Session{storage: storage}
}

// Load restores the session from storage. Token and user must co-occur: a
// missing or corrupt half means no session, and both keys are cleared so the
// orphan never resurfaces on a later start.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, tokenOK, err := s.storage.Get(sessionTokenKey)
	if err != nil {
		return err
	}
	raw, userOK, err := s.storage.Get(sessionUserKey)
	if err != nil {
		return err
	}

	if !tokenOK || strings.TrimSpace(token) == "" || !userOK {
		return s.resetLocked()
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return s.resetLocked()
	}

	s.token = token
	s.user = &u
	return nil
}

// Establish records a successful login.
func (s *Session) Establish(u User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.storage.Set(sessionTokenKey, token); err != nil {
		return err
	}
	if err := s.storage.Set(sessionUserKey, string(raw)); err != nil {
		return err
	}

	s.token = token
	s.user = &u
	return nil
}

// Clear logs the session out locally regardless of server state.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetLocked()
}

// resetLocked removes both persisted keys and leaves the session anonymous.
// Callers must hold s.mu.
func (s *Session) resetLocked() error {
	if err := s.storage.Delete(sessionTokenKey); err != nil {
		return err
	}
	if err := s.storage.Delete(sessionUserKey); err != nil {
		return err
	}
	s.token = ""
	s.user = nil
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// User returns the cached identity from the last login, if any.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// UpdateUser refreshes the cached identity after a profile change.
func (s *Session) UpdateUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.storage.Set(sessionUserKey, string(raw)); err != nil {
		return err
	}
	s.user = &u
	return nil
}
