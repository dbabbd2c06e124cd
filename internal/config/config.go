package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultQuietPeriod         = 500 * time.Millisecond
	defaultVisibilityThreshold = 1.0
	defaultTileWidth           = 36
	minTileWidth               = 12
	defaultIcons               = "unicode"
)

type Config struct {
	QuietPeriod         time.Duration `koanf:"quiet_period"`         // idle time before autoplay (default: 500ms)
	VisibilityThreshold float64       `koanf:"visibility_threshold"` // fraction of a tile that must stay visible (default: 1.0)
	TileWidth           int           `koanf:"tile_width"`           // columns per tile (default: 36)
	AutoplayIndex       int           `koanf:"autoplay_index"`       // clip centered on first start (default: 0)
	RestorePosition     *bool         `koanf:"restore_position"`     // reopen on the last centered clip (default: true)
	Fullscreen          bool          `koanf:"fullscreen"`           // start in fullscreen mode
	MPRIS               *bool         `koanf:"mpris"`                // expose playback over D-Bus (default: true)
	Notifications       bool          `koanf:"notifications"`        // desktop notification when a clip starts
	Icons               string        `koanf:"icons"`                // "nerd", "unicode", or "none" (default: unicode)

	// Clip sources: explicit entries first, then audio files found in clips_dir
	ClipsDir string       `koanf:"clips_dir"`
	Clips    []ClipConfig `koanf:"clips"`

	Log LogConfig `koanf:"log"`
}

// ClipConfig describes one carousel entry.
type ClipConfig struct {
	Title    string        `koanf:"title"`
	Artist   string        `koanf:"artist"`
	Path     string        `koanf:"path"`     // audio file; empty plays silently
	Duration time.Duration `koanf:"duration"` // length of silent clips
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level"` // logrus level name (default: info)
	JSON    bool   `koanf:"json"`
}

// Load reads config files in priority order (last wins). An explicit path,
// when given, is read last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if explicit != "" {
		explicit = expandPath(explicit)
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in clips_dir and clip paths
	cfg.ClipsDir = expandPath(cfg.ClipsDir)
	for i := range cfg.Clips {
		cfg.Clips[i].Path = expandPath(cfg.Clips[i].Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/reel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetQuietPeriod returns the settle delay with the default applied.
func (c *Config) GetQuietPeriod() time.Duration {
	if c.QuietPeriod <= 0 {
		return defaultQuietPeriod
	}
	return c.QuietPeriod
}

// GetVisibilityThreshold returns the pause threshold with the default applied.
func (c *Config) GetVisibilityThreshold() float64 {
	if c.VisibilityThreshold <= 0 || c.VisibilityThreshold > 1 {
		return defaultVisibilityThreshold
	}
	return c.VisibilityThreshold
}

// GetTileWidth returns the tile width with the default applied.
func (c *Config) GetTileWidth() int {
	if c.TileWidth <= 0 {
		return defaultTileWidth
	}
	return max(c.TileWidth, minTileWidth)
}

// GetAutoplayIndex returns the first clip to center, never negative.
func (c *Config) GetAutoplayIndex() int {
	return max(c.AutoplayIndex, 0)
}

// ShouldRestorePosition reports whether the last centered clip is reopened.
func (c *Config) ShouldRestorePosition() bool {
	return c.RestorePosition == nil || *c.RestorePosition
}

// GetIcons returns the icon style with the default applied.
func (c *Config) GetIcons() string {
	if c.Icons == "" {
		return defaultIcons
	}
	return c.Icons
}

// HasMPRIS reports whether the D-Bus bridge is enabled.
func (c *Config) HasMPRIS() bool {
	return c.MPRIS == nil || *c.MPRIS
}
