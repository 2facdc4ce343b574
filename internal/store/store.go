// Package store scopes access to the directory holding golden
// reference data. Acquisition and release are explicit so a failed
// open aborts a run before any test case starts, and the importer
// only ever sees a filesystem handle, never a host path.
package store

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// ErrReleased is returned when a store is used after Release.
var ErrReleased = errors.New("store: already released")

// Store is an acquired view of the reference-data directory.
type Store struct {
	fs       afero.Fs
	root     string
	released bool
}

// Open acquires a read-only view rooted at an existing directory on
// the host filesystem. A missing or unreadable root is a fatal
// precondition for the whole run; callers do not retry.
func Open(root string) (*Store, error) {
	base := afero.NewOsFs()
	info, err := base.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: open %s: not a directory", root)
	}

	return &Store{
		fs:   afero.NewReadOnlyFs(afero.NewBasePathFs(base, root)),
		root: root,
	}, nil
}

// OpenMem acquires a writable in-memory store. Tests use it to stand
// in for real storage.
func OpenMem() *Store {
	return &Store{fs: afero.NewMemMapFs(), root: ":memory:"}
}

// FS returns the store's filesystem handle.
func (s *Store) FS() (afero.Fs, error) {
	if s.released {
		return nil, ErrReleased
	}
	return s.fs, nil
}

// Root returns the acquisition root, for log messages.
func (s *Store) Root() string {
	return s.root
}

// Release gives the store back. Further FS calls fail; releasing twice
// is an error so lifecycle bugs surface instead of hiding.
func (s *Store) Release() error {
	if s.released {
		return ErrReleased
	}
	s.released = true
	s.fs = nil
	return nil
}
