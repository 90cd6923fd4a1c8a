// Package board describes the geometry and palette of a physical display
// board and loads it from TOML configuration.
//
// Nothing in the layout engine hard-codes a board model. The column budget,
// the row count and every lookup table come from a [Config], which defaults to
// the 22×6 flagship board and can be retargeted with a config file:
//
//	[board]
//	columns = 15
//	rows = 3
//
//	[palette.colors]
//	teal = 72
//
//	[palette.symbols]
//	heart = "<3"
//
//	[services]
//	weather = "disabled"
//
//	[cache]
//	redis = "redis://localhost:6379/0"
//	ttl = "24h"
package board

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/flapboard/pkg/override"
	"github.com/matzehuels/flapboard/pkg/palette"
)

// Geometry of the flagship board.
const (
	DefaultColumns = 22
	DefaultRows    = 6
)

// DefaultCacheTTL is how long encoded boards stay cached.
const DefaultCacheTTL = 24 * time.Hour

// Config is the resolved, immutable configuration of one board.
type Config struct {
	Columns  int
	Rows     int
	Palette  *palette.Resolver
	Services override.Set
	Cache    CacheConfig
}

// CacheConfig selects the cache backend for encoded boards.
type CacheConfig struct {
	Redis string        // redis:// URL; empty means the local file cache
	TTL   time.Duration // zero disables expiry
}

// Default returns the configuration of the flagship board.
func Default() *Config {
	return &Config{
		Columns: DefaultColumns,
		Rows:    DefaultRows,
		Palette: palette.Default(),
		Cache:   CacheConfig{TTL: DefaultCacheTTL},
	}
}

// ServiceEnabled reports whether variables of the given plugin should be
// substituted. Plugins are enabled unless overridden.
func (c *Config) ServiceEnabled(pluginID string) bool {
	return c.Services.Enabled(pluginID, true)
}

// Fingerprint returns a stable string that changes whenever anything that
// affects encoding changes. Used to key caches.
func (c *Config) Fingerprint() string {
	data, _ := json.Marshal(struct {
		Columns  int
		Rows     int
		Tables   palette.Tables
		Services override.Set
	}{c.Columns, c.Rows, c.Palette.Tables(), c.Services})
	return string(data)
}

// DefaultPath returns $XDG_CONFIG_HOME/flapboard/config.toml, falling back to
// ~/.config/flapboard/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "flapboard", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flapboard", "config.toml"), nil
}

// Resolve loads path if given, else the default path if that file exists,
// else returns [Default].
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(def); err != nil {
		return Default(), nil
	}
	return LoadConfig(def)
}
