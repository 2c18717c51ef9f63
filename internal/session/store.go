// Package session holds the logged-in identity and its bearer token.
package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/errs"
	"venue-booking-web/internal/pkg/jwt"
)

// StorageKey names the persisted record wherever a key is needed.
const StorageKey = "eventbooking.auth"

// Record is the persisted shape: {token, user}.
type Record struct {
	Token string         `json:"token"`
	User  *user.Identity `json:"user"`
}

// Reader is the read side views and the route guard depend on.
type Reader interface {
	Token() string
	Identity() (user.Identity, bool)
	Authenticated() bool
	HasRole(roles ...user.Role) bool
}

// Store is the session of one client. Only Login and Logout mutate it.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	token   string
	user    *user.Identity
}

// Load restores the session from storage. It never fails: an absent,
// unparsable or incomplete record, or an expired JWT, yields the empty session.
func Load(storage Storage, clk clock.Clock) *Store {
	s := &Store{storage: storage}

	raw, ok := storage.Read()
	if !ok || raw == "" {
		return s
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		slog.Debug("discarding unreadable session record", "error", err.Error())
		return s
	}
	if rec.Token == "" || rec.User == nil {
		return s
	}
	if clk != nil && jwt.Expired(rec.Token, clk.Now()) {
		if err := storage.Remove(); err != nil {
			slog.Warn("failed to remove expired session record", "error", err.Error())
		}
		return s
	}

	s.token = rec.Token
	s.user = rec.User
	return s
}

// Login replaces the session and persists it as one record.
func (s *Store) Login(resp user.LoginResponse) error {
	identity := resp.Identity()
	raw, err := json.Marshal(Record{Token: resp.Token, User: &identity})
	if err != nil {
		return errs.Wrap(err, "failed to encode session record")
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = &identity
	s.mu.Unlock()

	if err := s.storage.Write(string(raw)); err != nil {
		return errs.Wrap(err, "failed to persist session record")
	}
	return nil
}

func (s *Store) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Remove(); err != nil {
		return errs.Wrap(err, "failed to remove session record")
	}
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Identity() (user.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return user.Identity{}, false
	}
	return *s.user, true
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// HasRole is true iff an identity is present and its role is among roles.
func (s *Store) HasRole(roles ...user.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	return s.user.Role.In(roles...)
}
