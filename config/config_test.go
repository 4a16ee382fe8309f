package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies the built-in settings
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.AssetDir != "" || cfg.ScoreURL != "" {
		t.Errorf("Expected procedural offline defaults, got %q %q", cfg.AssetDir, cfg.ScoreURL)
	}
	if cfg.ScoreTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.ScoreTimeout)
	}
	if cfg.Audio == nil || !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if filepath.Base(cfg.NameFile) != "name" {
		t.Errorf("Unexpected name file %q", cfg.NameFile)
	}
}

// TestLoadConfigFromEnv verifies environment overrides
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RACER_ASSET_DIR", "/srv/assets")
	t.Setenv("RACER_SCORE_URL", "http://localhost:8796")
	t.Setenv("RACER_SCORE_TIMEOUT", "750ms")
	t.Setenv("RACER_SEED", "42")
	t.Setenv("RACER_LISTEN", ":9000")
	t.Setenv("RACER_NAME_FILE", "/tmp/racer-name")
	t.Setenv("RACER_AUDIO_ENABLED", "false")

	cfg := LoadConfig()

	if cfg.AssetDir != "/srv/assets" {
		t.Errorf("AssetDir = %q", cfg.AssetDir)
	}
	if cfg.ScoreURL != "http://localhost:8796" {
		t.Errorf("ScoreURL = %q", cfg.ScoreURL)
	}
	if cfg.ScoreTimeout != 750*time.Millisecond {
		t.Errorf("ScoreTimeout = %v", cfg.ScoreTimeout)
	}
	if cfg.Seed != 42 || cfg.SeedOrNow() != 42 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.NameFile != "/tmp/racer-name" {
		t.Errorf("NameFile = %q", cfg.NameFile)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled from env")
	}
}

// TestLoadConfigInvalid verifies malformed values keep the defaults
func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("RACER_SCORE_TIMEOUT", "-3s")
	t.Setenv("RACER_SEED", "abc")

	cfg := LoadConfig()
	if cfg.ScoreTimeout != 5*time.Second {
		t.Errorf("Expected default timeout, got %v", cfg.ScoreTimeout)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
	if cfg.SeedOrNow() == 0 {
		t.Error("Expected a clock seed")
	}
}

// TestNameCacheRoundTrip verifies save and load with truncation
func TestNameCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "name")
	cache := NewNameCache(path)

	if got := cache.Load(); got != "" {
		t.Errorf("Expected empty name before save, got %q", got)
	}

	if err := cache.Save("  a-very-long-pilot-name "); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := cache.Load(); got != "a-very-long-" {
		t.Errorf("Expected truncated name, got %q", got)
	}

	if err := os.WriteFile(path, []byte("ace\nignored\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := cache.Load(); got != "ace" {
		t.Errorf("Expected first line only, got %q", got)
	}
}

// TestNameCacheUnwritable verifies save errors are reported
func TestNameCacheUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewNameCache(filepath.Join(blocker, "name"))
	if err := cache.Save("ace"); err == nil {
		t.Error("Expected an error when the parent is a file")
	}
}
