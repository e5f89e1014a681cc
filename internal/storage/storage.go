package storage

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gofrs/flock"

	"github.com/PolarWolf314/holecard/internal/crypto"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	logger "github.com/PolarWolf314/holecard/internal/logging"
)

// Read returns the full contents of a deck file. A missing file is reported
// as ErrDeckNotInitialized. Loose permissions produce a warning on the given
// logger but do not block the read.
func Read(path string, log logger.Logger) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, herrors.ErrDeckNotInitialized
		}
		return nil, fmt.Errorf("checking deck file: %w", err)
	}

	if runtime.GOOS != "windows" && info.Mode().Perm()&0o077 != 0 {
		log.Warnf("deck file %s is readable by other users (mode %o); consider chmod 600", path, info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, herrors.ErrDeckNotInitialized
		}
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	return data, nil
}

// Exists reports whether a deck file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking deck file: %w", err)
	}
	return true, nil
}

// WriteAtomic replaces the file at path with data. The bytes land in a
// 0600 temp file first, are fsynced, and are renamed over the target, so an
// interrupted write leaves the previous contents untouched. The temp file is
// unlinked on any failure.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating deck directory: %w", err)
	}

	suffix, err := crypto.Random(6)
	if err != nil {
		return err
	}
	tmpPath := fmt.Sprintf("%s.tmp.%s", path, hex.EncodeToString(suffix))

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing deck file: %w", err)
	}

	return nil
}

// Lock takes a best-effort exclusive lock guarding the read-modify-write
// window of a deck file. Contention fails fast with ErrDeckBusy instead of
// blocking. The returned release function is safe to defer.
func Lock(path string) (release func(), err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating deck directory: %w", err)
	}

	fl := flock.New(path + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring deck lock: %w", err)
	}
	if !locked {
		return nil, herrors.ErrDeckBusy
	}

	return func() {
		_ = fl.Unlock()
	}, nil
}
