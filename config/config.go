// Package config gathers the runtime settings of the binaries from RACER_* environment variables
// and caches the player name between sessions.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lixenwraith/racer796/audio"
)

// Config holds the settings shared by the binaries
type Config struct {
	// AssetDir holds the sprite sheets; empty uses the procedural atlas
	AssetDir string

	// ScoreURL is the score table server; empty plays offline
	ScoreURL     string
	ScoreTimeout time.Duration

	// Seed fixes track generation; 0 seeds from the clock
	Seed uint64

	// ListenAddr is the score server address
	ListenAddr string

	// NameFile caches the last entered player name
	NameFile string

	Audio *audio.AudioConfig
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		ScoreTimeout: 5 * time.Second,
		ListenAddr:   ":8796",
		NameFile:     defaultNameFile(),
		Audio:        audio.DefaultAudioConfig(),
	}
}

// LoadConfig applies environment overrides to the defaults
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Audio = audio.LoadAudioConfig()

	if v := os.Getenv("RACER_ASSET_DIR"); v != "" {
		cfg.AssetDir = v
	}
	if v := os.Getenv("RACER_SCORE_URL"); v != "" {
		cfg.ScoreURL = v
	}
	if v := os.Getenv("RACER_SCORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ScoreTimeout = d
		}
	}
	if v := os.Getenv("RACER_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("RACER_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("RACER_NAME_FILE"); v != "" {
		cfg.NameFile = v
	}

	return cfg
}

// SeedOrNow returns the configured seed, or one drawn from the clock
func (c *Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func defaultNameFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "racer796", "name")
}
