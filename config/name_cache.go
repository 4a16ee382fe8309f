package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/racer796/score"
)

// NameCache remembers the last player name in a one-line file
type NameCache struct {
	path string
}

// NewNameCache creates a cache backed by path
func NewNameCache(path string) *NameCache {
	return &NameCache{path: path}
}

// Load returns the cached name, empty if none is stored or the file is unreadable
func (n *NameCache) Load() string {
	data, err := os.ReadFile(n.path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return score.CleanName(line)
}

// Save stores the name cut to the nickname length
func (n *NameCache) Save(name string) error {
	if err := os.MkdirAll(filepath.Dir(n.path), 0o755); err != nil {
		return fmt.Errorf("create name cache dir: %w", err)
	}
	if err := os.WriteFile(n.path, []byte(score.CleanName(name)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write name cache: %w", err)
	}
	return nil
}
