// Package highscore persists the best score between runs.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// ErrNotFound is returned by Load when no best score has been saved yet.
var ErrNotFound = errors.New("highscore: no saved score")

// Store reads and writes a single best-score value.
type Store interface {
	Load() (int, error)
	Save(best int) error
}

// LoadOrZero returns the stored best score, treating a missing, unreadable or
// negative value as zero. The error is returned for logging only.
func LoadOrZero(store Store) (int, error) {
	best, err := store.Load()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if best < 0 {
		return 0, fmt.Errorf("highscore: negative best score %d", best)
	}
	return best, nil
}

type record struct {
	Best int `toml:"best"`
}

// FileStore keeps the best score in a small TOML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file and its
// directory are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (int, error) {
	var rec record
	meta, err := toml.DecodeFile(s.path, &rec)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("highscore: read %s: %w", s.path, err)
	}
	if !meta.IsDefined("best") {
		return 0, ErrNotFound
	}
	return rec.Best, nil
}

// Save writes the value through a temporary file so a crash never leaves a
// truncated record behind.
func (s *FileStore) Save(best int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("highscore: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".best-*.toml")
	if err != nil {
		return fmt.Errorf("highscore: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(record{Best: best}); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("highscore: replace %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	best  int
	saved bool
	saves int
}

func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return 0, ErrNotFound
	}
	return s.best, nil
}

func (s *MemoryStore) Save(best int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = best
	s.saved = true
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
