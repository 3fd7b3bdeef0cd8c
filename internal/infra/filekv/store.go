// Package filekv provides a file-based implementation of the KV medium.
// Each key is stored as its own file under the data directory.
package filekv

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"syscall"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store implements domain.KV using one file per key.
type Store struct {
	dir      string
	lockPath string
}

// New creates a new Store rooted at dir. The directory does not need to
// exist; it is created on first write.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		lockPath: filepath.Join(dir, ".lock"),
	}
}

// Available reports whether the data directory can be used.
func (s *Store) Available() bool {
	if s.dir == "" {
		return false
	}
	return os.MkdirAll(s.dir, 0o750) == nil
}

// Get returns the stored value for key, and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.keyPath(key))
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("read value file: %w", err)
		}
		value = string(content)
		found = true
		return nil
	})
	return value, found, err
}

// Set stores value under key, replacing any prior value.
func (s *Store) Set(key, value string) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		return writeAtomic(s.keyPath(key), []byte(value), 0o600)
	})
}

// keyPath maps a key to its file. Keys are path-escaped so that any
// identity string yields a single flat filename.
func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure Store implements KV.
var _ domain.KV = (*Store)(nil)
