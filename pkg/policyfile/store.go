package policyfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rolegate/rolegate/pkg/policy"
)

// Store persists a role table as a single JSON document on disk, in the same
// per-role object shape the loader accepts. Saves are atomic (temp file plus
// rename) so a crash mid-write never leaves a truncated document behind.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a file-backed store at the given path. Parent directories
// are created if missing. The file itself is created on first Save; a missing
// file loads as an empty table.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Join(ErrWriteFailed, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, errors.Join(ErrWriteFailed, err)
	}
	return &Store{path: abs}, nil
}

// Load reads the persisted table. A missing file is an empty table, not an
// error.
func (s *Store) Load(ctx context.Context) (policy.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy.Table{}, nil
		}
		return nil, errors.Join(ErrReadFailed, err)
	}

	var table policy.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return table, nil
}

// Save writes the table atomically. The document on disk is independent of
// the caller's table once Save returns.
func (s *Store) Save(ctx context.Context, table policy.Table) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".policy-*.json")
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Clear removes the persisted document. Clearing an absent file is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
