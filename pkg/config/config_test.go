package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate makes Load deterministic regardless of the developer's real
// environment and config directory.
func isolate(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv(configFileEnvKey, "")
	t.Setenv(apiURLEnvKey, "")
	t.Setenv(timeoutEnvKey, "")
	t.Setenv(sessionPathEnvKey, "")

	return tmp
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("expected default API URL %q, got %q", DefaultAPIURL, cfg.APIURL)
	}

	if cfg.HTTPTimeout.Duration != 10*time.Second {
		t.Errorf("expected default timeout of 10s, got %v", cfg.HTTPTimeout.Duration)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "config.toml")
	body := "api_url = \"https://taiga.example.com/api/v1\"\nhttp_timeout = \"30s\"\n"

	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(configFileEnvKey, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.APIURL != "https://taiga.example.com/api/v1" {
		t.Errorf("unexpected API URL %q", cfg.APIURL)
	}

	if cfg.HTTPTimeout.Duration != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.HTTPTimeout.Duration)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	tmp := isolate(t)

	t.Setenv(configFileEnvKey, filepath.Join(tmp, "nope.toml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a missing, explicitly requested config file")
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(path, []byte("api_url = \"https://from-file.example.com\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(configFileEnvKey, path)
	t.Setenv(apiURLEnvKey, "https://from-env.example.com")
	t.Setenv(timeoutEnvKey, "5s")
	t.Setenv(sessionPathEnvKey, "/tmp/elsewhere.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.APIURL != "https://from-env.example.com" {
		t.Errorf("environment must win over the file, got %q", cfg.APIURL)
	}

	if cfg.HTTPTimeout.Duration != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.HTTPTimeout.Duration)
	}

	if cfg.SessionPath != "/tmp/elsewhere.yaml" {
		t.Errorf("unexpected session path %q", cfg.SessionPath)
	}
}

func TestInvalidTimeoutValue(t *testing.T) {
	isolate(t)

	t.Setenv(timeoutEnvKey, "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable timeout")
	}
}
