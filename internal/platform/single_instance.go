package platform

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds an advisory OS lock on a file for the lifetime of the
// process. The operating system drops the lock if the process dies.
type InstanceGuard struct {
	lock *flock.Flock
}

// AcquireSingleInstance takes the lock on path without blocking. The
// returned error wraps ErrAlreadyRunning when another process holds it.
func AcquireSingleInstance(path string) (*InstanceGuard, error) {
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, path)
	}
	return &InstanceGuard{lock: lock}, nil
}

// Release frees the single instance lock. It is safe to call more than once.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.lock == nil {
		return nil
	}
	return guard.lock.Unlock()
}

// Path returns the lock file location.
func (guard *InstanceGuard) Path() string {
	if guard == nil || guard.lock == nil {
		return ""
	}
	return guard.lock.Path()
}
