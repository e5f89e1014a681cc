package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// Recognised configuration keys. The set is closed: anything else in the
// file is preserved verbatim on rewrite but never acted upon.
const (
	KeySessionTimeoutMinutes = "session-timeout-minutes"
	KeyDefaultDeckPath       = "default-deck-path"
	KeyEnableBiometric       = "enable-biometric"

	DefaultSessionTimeoutMinutes = 60
)

const configFileName = "config.toml"

// Config is the user configuration loaded from ~/.holecard/config.toml.
type Config struct {
	SessionTimeoutMinutes int
	DefaultDeckPath       string
	EnableBiometric       bool

	// extra keeps unrecognised keys so a rewrite never drops them.
	extra map[string]interface{}
}

// SessionTimeout returns the configured timeout as a duration.
func (c *Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutMinutes) * time.Minute
}

// defaultConfig returns the documented defaults for a config directory.
func defaultConfig(dir string) *Config {
	return &Config{
		SessionTimeoutMinutes: DefaultSessionTimeoutMinutes,
		DefaultDeckPath:       filepath.Join(dir, "vault.enc"),
		EnableBiometric:       false,
		extra:                 make(map[string]interface{}),
	}
}

// Load reads the configuration from dir. A missing file yields the defaults.
// Out-of-range values for recognised keys are rejected with ErrInvalidInput.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, configFileName)
	config := defaultConfig(dir)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	raw := make(map[string]interface{})
	if err := LoadTOML(configPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	for key, value := range raw {
		switch key {
		case KeySessionTimeoutMinutes:
			minutes, ok := value.(int64)
			if !ok || minutes < 1 {
				return nil, fmt.Errorf("%w: %s must be an integer >= 1", herrors.ErrInvalidInput, key)
			}
			config.SessionTimeoutMinutes = int(minutes)
		case KeyDefaultDeckPath:
			path, ok := value.(string)
			if !ok || path == "" {
				return nil, fmt.Errorf("%w: %s must be a non-empty path", herrors.ErrInvalidInput, key)
			}
			config.DefaultDeckPath = path
		case KeyEnableBiometric:
			enabled, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a boolean", herrors.ErrInvalidInput, key)
			}
			config.EnableBiometric = enabled
		default:
			config.extra[key] = value
		}
	}

	return config, nil
}

// Save writes the configuration back to dir, recognised keys and preserved
// unknown keys alike.
func (c *Config) Save(dir string) error {
	raw := make(map[string]interface{}, len(c.extra)+3)
	for key, value := range c.extra {
		raw[key] = value
	}
	raw[KeySessionTimeoutMinutes] = c.SessionTimeoutMinutes
	raw[KeyDefaultDeckPath] = c.DefaultDeckPath
	raw[KeyEnableBiometric] = c.EnableBiometric

	configPath := filepath.Join(dir, configFileName)
	if err := SaveTOML(configPath, raw); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Set updates one recognised key from its string form. The key set is
// closed; unrecognised keys are rejected.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeySessionTimeoutMinutes:
		var minutes int
		if _, err := fmt.Sscanf(value, "%d", &minutes); err != nil || minutes < 1 {
			return fmt.Errorf("%w: %s must be an integer >= 1", herrors.ErrInvalidInput, key)
		}
		c.SessionTimeoutMinutes = minutes
	case KeyDefaultDeckPath:
		if value == "" {
			return fmt.Errorf("%w: %s must be a non-empty path", herrors.ErrInvalidInput, key)
		}
		c.DefaultDeckPath = value
	case KeyEnableBiometric:
		switch value {
		case "true":
			c.EnableBiometric = true
		case "false":
			c.EnableBiometric = false
		default:
			return fmt.Errorf("%w: %s must be true or false", herrors.ErrInvalidInput, key)
		}
	default:
		return fmt.Errorf("%w: unknown configuration key %q", herrors.ErrInvalidInput, key)
	}

	return nil
}
