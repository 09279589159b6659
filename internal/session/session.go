// Package session persists the authentication token and user id between
// invocations. It is the terminal analogue of browser session storage:
// two opaque string values under fixed keys, no expiry, no validation.
// A non-empty token is treated as "logged in"; the server rejects stale ones.
package session

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store reads and writes the session file. Every read is a fresh file
// lookup so concurrent CLI invocations observe each other's writes.
type Store struct {
	path string
}

// sessionFile is the on-disk shape. Key names match the storage keys the
// platform has always used.
type sessionFile struct {
	Token  string `yaml:"token"`
	UserID string `yaml:"userId"`
}

// NewStore creates a store at the default path, ~/.collab/session.yaml.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(homeDir, ".collab", "session.yaml")), nil
}

// NewStoreAt creates a store backed by the given file path.
// Used directly in tests and anywhere the state directory is overridden.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Token returns the current auth token, or "" when logged out.
func (s *Store) Token() string {
	return s.load().Token
}

// UserID returns the current user id, or "" when logged out.
func (s *Store) UserID() string {
	return s.load().UserID
}

// SetToken writes the auth token, preserving the stored user id.
func (s *Store) SetToken(token string) error {
	f := s.load()
	f.Token = token
	return s.save(f)
}

// SetUserID writes the user id, preserving the stored token.
func (s *Store) SetUserID(id string) error {
	f := s.load()
	f.UserID = id
	return s.save(f)
}

// Clear removes the session file entirely (logout).
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// load reads the session file. Any failure (missing file, bad YAML) reads
// as a logged-out session rather than an error.
func (s *Store) load() sessionFile {
	var f sessionFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		return sessionFile{}
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return sessionFile{}
	}
	return f
}

func (s *Store) save(f sessionFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	// The token is a credential; keep the file private to the user.
	return os.WriteFile(s.path, data, 0o600)
}
