// Package config loads runtime configuration: built-in defaults, an
// optional TOML file, then environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL = "https://api.taiga.io/api/v1"

	apiURLEnvKey      = "TAIGA_API_URL"
	timeoutEnvKey     = "TAIGA_HTTP_TIMEOUT"
	configFileEnvKey  = "TAIGA_GANTT_CONFIG"
	sessionPathEnvKey = "TAIGA_GANTT_SESSION"
)

// Duration lets TOML carry values like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = parsed

	return nil
}

// Config defines runtime configuration.
type Config struct {
	APIURL      string   `toml:"api_url"`
	HTTPTimeout Duration `toml:"http_timeout"`
	SessionPath string   `toml:"session_path"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		APIURL:      DefaultAPIURL,
		HTTPTimeout: Duration{10 * time.Second},
	}
}

// Load assembles the effective configuration. A .env file in the
// working directory is honored best-effort before the environment is
// consulted, so credentials and URLs can live next to the checkout.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path, explicit := configFilePath()
	if path != "" {
		if err := loadFile(path, &cfg, explicit); err != nil {
			return cfg, err
		}
	}

	if url := os.Getenv(apiURLEnvKey); url != "" {
		cfg.APIURL = url
	}

	if raw := os.Getenv(timeoutEnvKey); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s value %q: %w", timeoutEnvKey, raw, err)
		}
		cfg.HTTPTimeout = Duration{timeout}
	}

	if path := os.Getenv(sessionPathEnvKey); path != "" {
		cfg.SessionPath = path
	}

	return cfg, nil
}

func configFilePath() (path string, explicit bool) {
	if path := os.Getenv(configFileEnvKey); path != "" {
		return path, true
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}

	return filepath.Join(base, "taiga_gantt", "config.toml"), false
}

func loadFile(path string, cfg *Config, explicit bool) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		// a missing default-location file is fine, a missing explicitly
		// requested file is not
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return nil
}
