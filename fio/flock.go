package fio

import (
	"github.com/gofrs/flock"
)

// FileLocker guards a log file against being replaced while readers hold
// it. Readers take the shared side of the lock; a writer or compactor
// swapping files takes the exclusive side.
type FileLocker interface {
	TryRLock() (bool, error)
	Unlock() error
}

const lockSuffix = ".lock"

// NewFlock returns the shared lock guarding path.
func NewFlock(path string) *flock.Flock {
	return flock.New(path + lockSuffix)
}
