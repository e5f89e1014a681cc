package configs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// SaveTOML writes a value to a TOML file with owner-only permissions. The
// document is encoded in memory first so an encoding failure never leaves a
// truncated file behind.
func SaveTOML(filePath string, data interface{}) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(filePath), err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return err
	}

	return os.WriteFile(filePath, buf.Bytes(), 0o600)
}

// LoadTOML loads a TOML file into a value. A file that is not valid TOML is
// reported as ErrInvalidInput naming the offending file, so callers can tell
// a hand-edited config mistake from an I/O failure.
func LoadTOML(filePath string, data interface{}) error {
	if _, err := toml.DecodeFile(filePath, data); err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("%w: %s is not valid TOML: %s", herrors.ErrInvalidInput, filepath.Base(filePath), parseErr.ErrorWithPosition())
		}
		return err
	}

	return nil
}
