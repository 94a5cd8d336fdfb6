package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"invctl/internal/models"
)

var (
	// ErrNotAuthenticated is returned when an operation needs a session
	// and none is active
	ErrNotAuthenticated = errors.New("not authenticated: run login first")
)

// state is the on-disk shape of a session
type state struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store holds the process-wide credential state. It has an explicit
// lifecycle: Init on login, Clear on logout or when the back end rejects
// the credential. The token is persisted to a file between invocations,
// the CLI counterpart of the browser's localStorage.
type Store struct {
	path string

	mu     sync.RWMutex
	active bool
	s      state
}

// NewStore creates a session store backed by the given file.
// An existing session file is loaded eagerly; a missing or unreadable
// file just means no active session.
func NewStore(path string) *Store {
	st := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil || s.Token == "" {
		return st
	}

	st.active = true
	st.s = s
	return st
}

// Init establishes a new session and persists it
func (st *Store) Init(token string, user models.User) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.active = true
	st.s = state{Token: token, User: user}

	return st.persist()
}

// Clear tears down the session and removes the persisted file.
// Safe to call when no session is active.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.active = false
	st.s = state{}

	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Token returns the bearer token, or ErrNotAuthenticated if no session
// is active
func (st *Store) Token() (string, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if !st.active {
		return "", ErrNotAuthenticated
	}
	return st.s.Token, nil
}

// User returns the authenticated user of the active session
func (st *Store) User() (models.User, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if !st.active {
		return models.User{}, ErrNotAuthenticated
	}
	return st.s.User, nil
}

// Active reports whether a session is established
func (st *Store) Active() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.active
}

func (st *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(st.s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
