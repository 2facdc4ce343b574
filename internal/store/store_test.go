package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingRoot(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestOpenNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Open(file)
	assert.Error(t, err)
}

func TestOpenReadOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ref.idx"), []byte{0, 0}, 0o644))

	s, err := Open(dir)
	require.NoError(t, err)

	fsys, err := s.FS()
	require.NoError(t, err)

	f, err := fsys.Open("ref.idx")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Writes must be refused.
	_, err = fsys.Create("new.idx")
	assert.Error(t, err)

	require.NoError(t, s.Release())
}

func TestReleaseLifecycle(t *testing.T) {
	s := OpenMem()

	_, err := s.FS()
	require.NoError(t, err)

	require.NoError(t, s.Release())
	assert.ErrorIs(t, s.Release(), ErrReleased)

	_, err = s.FS()
	assert.ErrorIs(t, err, ErrReleased)
}
