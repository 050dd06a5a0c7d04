package auth

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// UserChangedMsg is delivered to the program whenever the logged-in user changes.
// User is nil after a logout.
type UserChangedMsg struct {
	User *User
}

// Store holds the logged-in user. Readers get a read-only view through
// LoggedInUser; changes are published to subscribers.
type Store struct {
	mu   sync.RWMutex
	user *User
	subs []chan *User
}

func NewStore(initial *User) *Store {
	return &Store{user: initial}
}

func (s *Store) LoggedInUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	if u := s.LoggedInUser(); u != nil {
		return u.Token
	}
	return ""
}

// Subscribe returns a channel that receives every subsequent user change.
// Only the latest pending change is kept for a slow reader.
func (s *Store) Subscribe() <-chan *User {
	ch := make(chan *User, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// SignIn sets u as the logged-in user.
func (s *Store) SignIn(u *User) { s.set(u) }

// SignOut clears the logged-in user.
func (s *Store) SignOut() { s.set(nil) }

func (s *Store) set(u *User) {
	s.mu.Lock()
	s.user = u
	subs := s.subs
	s.mu.Unlock()
	for _, ch := range subs {
		// drop a stale pending value so the newest always lands
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- u:
		default:
		}
	}
}

// WaitForChange blocks on ch and turns the next change into a UserChangedMsg.
// Callers re-arm it after each delivery.
func WaitForChange(ch <-chan *User) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return UserChangedMsg{User: u}
	}
}
