package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestBuildConfigDefaults(t *testing.T) {
	// Point at a file that does not exist: everything falls back to defaults.
	v, err := NewViper(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("NewViper returned error: %v", err)
	}

	cfg := BuildConfig(v)

	if cfg.API.OdesliKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.API.OdesliKey)
	}
	if cfg.Defaults.Target != "" {
		t.Errorf("expected empty default target, got %q", cfg.Defaults.Target)
	}
	if cfg.Defaults.UserCountry != DefaultUserCountry {
		t.Errorf("expected user country %q, got %q", DefaultUserCountry, cfg.Defaults.UserCountry)
	}
	if cfg.Output.Simple {
		t.Error("expected simple output to default to false")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected log level %q, got %q", DefaultLogLevel, cfg.Log.Level)
	}
}

func TestBuildConfigFromFile(t *testing.T) {
	path := writeTempConfig(t, `
[api]
odesli_key = "file-key"

[default]
target = "spotify"
user_country = "DE"

[output]
simple = true
`)

	v, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper returned error: %v", err)
	}

	cfg := BuildConfig(v)

	if cfg.API.OdesliKey != "file-key" {
		t.Errorf("expected API key from file, got %q", cfg.API.OdesliKey)
	}
	if cfg.Defaults.Target != "spotify" {
		t.Errorf("expected target from file, got %q", cfg.Defaults.Target)
	}
	if cfg.Defaults.UserCountry != "DE" {
		t.Errorf("expected user country from file, got %q", cfg.Defaults.UserCountry)
	}
	if !cfg.Output.Simple {
		t.Error("expected simple output from file")
	}
}

func TestBuildConfigEnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
[api]
odesli_key = "file-key"

[default]
target = "spotify"
`)

	t.Setenv("FLOM_ODESLI_KEY", "env-key")
	t.Setenv("FLOM_DEFAULT_TARGET", "apple-music")
	t.Setenv("FLOM_USER_COUNTRY", "JP")
	t.Setenv("FLOM_OUTPUT_SIMPLE", "1")

	v, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper returned error: %v", err)
	}

	cfg := BuildConfig(v)

	if cfg.API.OdesliKey != "env-key" {
		t.Errorf("expected env API key to win, got %q", cfg.API.OdesliKey)
	}
	if cfg.Defaults.Target != "apple-music" {
		t.Errorf("expected env target to win, got %q", cfg.Defaults.Target)
	}
	if cfg.Defaults.UserCountry != "JP" {
		t.Errorf("expected env user country to win, got %q", cfg.Defaults.UserCountry)
	}
	if !cfg.Output.Simple {
		t.Error("expected FLOM_OUTPUT_SIMPLE=1 to enable simple output")
	}
}

func TestBuildConfigAbsentEnvLeavesFileValue(t *testing.T) {
	path := writeTempConfig(t, `
[default]
target = "tidal"
`)

	v, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper returned error: %v", err)
	}

	cfg := BuildConfig(v)

	if cfg.Defaults.Target != "tidal" {
		t.Errorf("expected file target to stay intact, got %q", cfg.Defaults.Target)
	}
}

func TestBuildConfigSimpleFalseLiteral(t *testing.T) {
	path := writeTempConfig(t, `
[output]
simple = true
`)

	t.Setenv("FLOM_OUTPUT_SIMPLE", "false")

	v, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper returned error: %v", err)
	}

	if cfg := BuildConfig(v); cfg.Output.Simple {
		t.Error("expected FLOM_OUTPUT_SIMPLE=false to override file value")
	}
}

func TestNewViperMalformedFile(t *testing.T) {
	path := writeTempConfig(t, "not [valid toml")

	if _, err := NewViper(path); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig for malformed file, got %v", err)
	}
}
