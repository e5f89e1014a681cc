package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
	logger "github.com/PolarWolf314/holecard/internal/logging"
)

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "vault.enc"), logger.Logger{})
	assert.ErrorIs(t, err, herrors.ErrDeckNotInitialized)
}

func TestWriteAtomic_And_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks", "vault.enc")

	require.NoError(t, WriteAtomic(path, []byte("first")))

	data, err := Read(path, logger.Logger{})
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAtomic_Replace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")

	require.NoError(t, WriteAtomic(path, []byte("first")))
	require.NoError(t, WriteAtomic(path, []byte("second")))

	data, err := Read(path, logger.Logger{})
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestWriteAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.enc")

	require.NoError(t, WriteAtomic(path, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".tmp."), "stray temp file %s", entry.Name())
	}
}

func TestWriteAtomic_FailurePreservesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.enc")
	require.NoError(t, WriteAtomic(path, []byte("original")))

	// A directory squatting on the target makes the final rename fail after
	// the temp file has been written, simulating an interrupted replace.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "x"), 0o700))
	err := WriteAtomic(blocked, []byte("new"))
	require.Error(t, err)

	data, err := Read(path, logger.Logger{})
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".tmp."), "stray temp file %s", entry.Name())
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")

	exists, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, WriteAtomic(path, []byte("data")))

	exists, err = Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLock_Contention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")

	release, err := Lock(path)
	require.NoError(t, err)

	_, err = Lock(path)
	assert.ErrorIs(t, err, herrors.ErrDeckBusy)

	release()

	release2, err := Lock(path)
	require.NoError(t, err)
	release2()
}
