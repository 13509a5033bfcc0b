package session

import (
	"sync"

	model "scrap-auction/internal/models"
)

// Session tracks the single active user. The workflow engine never consults
// it; callers resolve the acting user here and pass ids into operations.
type Session struct {
	mu      sync.Mutex
	current *model.User
}

// New returns a session with no user signed in.
func New() *Session {
	return &Session{}
}

// Current returns the signed-in user, or nil.
func (s *Session) Current() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set records the signed-in user.
func (s *Session) Set(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
}

// Clear signs the current user out.
func (s *Session) Clear() {
	s.Set(nil)
}
