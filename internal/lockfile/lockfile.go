// Package lockfile guards against concurrent hyprhelp instances with an
// exclusive flock on a well-known runtime file.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ErrAlreadyRunning is returned when another instance holds the lock.
var ErrAlreadyRunning = errors.New("another hyprhelp instance is running")

// Lock is a held single-instance lock.
type Lock struct {
	file *os.File
}

// DefaultPath returns the lock file location, preferring XDG_RUNTIME_DIR.
func DefaultPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "hyprhelp.lock")
}

// Acquire takes an exclusive non-blocking flock on path. A held lock
// elsewhere yields ErrAlreadyRunning.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()

		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, ErrAlreadyRunning
		}

		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return &Lock{file: f}, nil
}

// Release drops the lock. The file itself is left in place; the flock
// dies with the file descriptor.
func (l *Lock) Release() error {
	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil

	return err
}
