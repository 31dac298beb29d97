package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"connectlife/internal/logging"
)

// Store persists a TokenSet as a JSON file. The file is the only
// authentication state shared between invocations; it is created at first
// login, rewritten on refresh, and deleted on logout.
type Store struct {
	path string
}

// NewStore creates a token store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored TokenSet. A missing file returns (nil, nil);
// a corrupt file is an error.
func (s *Store) Load() (*TokenSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var ts TokenSet
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	logging.LogTokenEvent("loaded", ts.ExpiresAt)
	return &ts, nil
}

// Save writes the TokenSet, replacing any previous contents. The file is
// created with user-only permissions and written atomically.
func (s *Store) Save(ts *TokenSet) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	// Write to temporary file first (atomic write)
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save token file: %w", err)
	}

	logging.LogTokenEvent("saved", ts.ExpiresAt)
	return nil
}

// Clear removes the token file. Removing an already-absent file is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token file: %w", err)
	}
	logging.LogTokenEvent("cleared", 0)
	return nil
}
