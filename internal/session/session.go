// Package session holds the state of the one logged-in user of this client.
// A Session is created at startup, handed to the transport as its token
// source and to the auth service, and emptied on logout.
package session

import (
	"sync"

	"movie-booking-client/internal/data/entity"
)

type Session struct {
	mu      sync.RWMutex
	token   string
	user    *entity.User
	loading bool
}

// New returns a session in the loading state; call Ready once restored.
func New() *Session {
	return &Session{loading: true}
}

// Token implements apiclient.TokenSource
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the cached profile, nil when logged out.
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	user.Roles = append([]string(nil), s.user.Roles...)
	return &user
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) Set(token string, user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

func (s *Session) Ready() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}
