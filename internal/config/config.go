package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultShuffleSeed is the seed used when none is configured.
	DefaultShuffleSeed = 2023
	// DefaultRenderWidth is the track entry width used when none is configured.
	DefaultRenderWidth = 60
)

type Config struct {
	Playlists []string `koanf:"playlists"`  // CSV files, one playlist per file, in library order
	StatePath string   `koanf:"state_path"` // SQLite file; empty uses the XDG data directory

	Log     LogConfig     `koanf:"log"`
	Shuffle ShuffleConfig `koanf:"shuffle"`
	Render  RenderConfig  `koanf:"render"`
	Play    PlayConfig    `koanf:"play"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error" (default: "info")
	Format string `koanf:"format"` // "json" or "text" (default: "json")
}

// ShuffleConfig holds shuffle settings.
type ShuffleConfig struct {
	Seed   *int64 `koanf:"seed"`    // random seed (default: 2023)
	OnLoad bool   `koanf:"on_load"` // shuffle every playlist after loading
}

// RenderConfig holds print settings.
type RenderConfig struct {
	Width *int `koanf:"width"` // max width of a track entry (10-200, 0 for no limit, default: 60)
}

// PlayConfig selects a playlist to walk through after loading.
type PlayConfig struct {
	Playlist *int `koanf:"playlist"` // 0-based library index; unset plays nothing
	Repeats  int  `koanf:"repeats"`  // number of passes (default: 1)
}

// Load reads the config files from their standard locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order; later files override earlier ones.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i, p := range cfg.Playlists {
		cfg.Playlists[i] = expandPath(p)
	}
	cfg.StatePath = expandPath(cfg.StatePath)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/playring/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "playring", "config.toml"))
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

// GetLogConfig returns the logging configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.Format != "text" {
		cfg.Format = "json"
	}
	return cfg
}

// ShuffleSeed returns the configured seed, or DefaultShuffleSeed.
func (c *Config) ShuffleSeed() uint64 {
	if c.Shuffle.Seed == nil {
		return DefaultShuffleSeed
	}
	return uint64(*c.Shuffle.Seed) //nolint:gosec // any bit pattern is a valid seed
}

// RenderWidth returns the entry width with defaults applied.
// An explicit 0 disables truncation.
func (c *Config) RenderWidth() int {
	if c.Render.Width == nil {
		return DefaultRenderWidth
	}
	w := *c.Render.Width
	if w != 0 && (w < 10 || w > 200) {
		return DefaultRenderWidth
	}
	return w
}

// PlayIndex returns the playlist to walk through, if one is configured.
func (c *Config) PlayIndex() (int, bool) {
	if c.Play.Playlist == nil || *c.Play.Playlist < 0 {
		return 0, false
	}
	return *c.Play.Playlist, true
}

// PlayRepeats returns the number of playback passes with defaults applied.
func (c *Config) PlayRepeats() int {
	return max(c.Play.Repeats, 1)
}
