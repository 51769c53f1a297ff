// Package session keeps the panel's sign-in state between runs.
//
// Two JSON files live side by side under the configured session directory,
// mirroring the two independent concerns of the sign-in flow: the
// authenticated-session snapshot and the opt-in remembered credentials.
// The admin-gate verification is deliberately held in memory only, so every
// new process has to re-enter the access code.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/models"
)

const rememberFileName = "remember.json"

// Store persists the panel session state as JSON files on disk.
// All methods are safe for concurrent use.
type Store struct {
	path         string
	rememberPath string
	logger       *logger.Logger

	mu        sync.Mutex
	state     models.SessionState
	gateToken string
	verified  bool
}

// NewStore creates a session store over the given file path. The remembered
// credentials live in a sibling file within the same directory.
func NewStore(path string, logger *logger.Logger) *Store {
	return &Store{
		path:         path,
		rememberPath: filepath.Join(filepath.Dir(path), rememberFileName),
		logger:       logger,
	}
}

// Restore loads the persisted session snapshot. A missing or malformed file
// is not an error: the panel simply starts signed out.
func (s *Store) Restore() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.state = models.SessionState{}
		return s.state
	}

	var state models.SessionState
	if err = json.Unmarshal(data, &state); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("session file is malformed, starting signed out")
		s.state = models.SessionState{}
		return s.state
	}

	s.state = state
	return s.state
}

// Establish persists an authenticated session snapshot. Callers invoke it
// only on accepted sign-ins; rejections never touch the stored state.
func (s *Store) Establish(user models.User, admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.SessionState{
		Authenticated: true,
		Admin:         admin,
		CurrentUser:   &user,
	}

	return s.write(s.path, s.state)
}

// Clear removes the persisted session and resets the transient admin-gate
// verification. Remembered credentials survive a sign-out.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.SessionState{}
	s.verified = false
	s.gateToken = ""

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// State returns the current in-memory session snapshot.
func (s *Store) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remember persists the given credentials for sign-in form prefill.
func (s *Store) Remember(credentials models.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(s.rememberPath, credentials)
}

// Remembered returns the persisted credentials, if any.
func (s *Store) Remembered() (models.Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.rememberPath)
	if err != nil {
		return models.Credentials{}, false
	}

	var credentials models.Credentials
	if err = json.Unmarshal(data, &credentials); err != nil {
		s.logger.Warn().Err(err).Str("path", s.rememberPath).Msg("remember file is malformed, ignoring")
		return models.Credentials{}, false
	}
	if credentials.Email == "" {
		return models.Credentials{}, false
	}

	return credentials, true
}

// Forget drops the persisted credentials.
func (s *Store) Forget() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.rememberPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing remember file: %w", err)
	}
	return nil
}

// MarkAdminVerified records a passed access-code check for the rest of the
// process lifetime.
func (s *Store) MarkAdminVerified(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.verified = true
	s.gateToken = token
}

// AdminVerified reports whether the access code was entered this run and
// returns the gate token issued for it.
func (s *Store) AdminVerified() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gateToken, s.verified
}

func (s *Store) write(path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
