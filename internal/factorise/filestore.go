package factorise

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/pencalc/pencalc/internal/errors"
)

// DefaultStoreFileName is the prime-cache file kept in the user's home
// directory.
const DefaultStoreFileName = ".pencalc_primes.json"

// DefaultStorePath returns the default location of the prime-cache file.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperrors.NewCacheStoreError("resolve", DefaultStoreFileName, err)
	}
	return filepath.Join(home, DefaultStoreFileName), nil
}

// FileStore persists prime-cache snapshots as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

// Load reads the snapshot from disk. A missing file is not an error: it
// yields the zero snapshot, and the sieve starts from scratch.
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, apperrors.NewCacheStoreError("load", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, apperrors.NewCacheStoreError("load", s.path, err)
	}
	return snap, nil
}

// Save writes the snapshot to disk, creating parent directories as needed.
// The file is written with owner-only permissions.
func (s *FileStore) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return apperrors.NewCacheStoreError("save", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewCacheStoreError("save", s.path, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return apperrors.NewCacheStoreError("save", s.path, err)
	}
	return nil
}
