// Package config resolves user preferences for the todolist TUI.
//
// Sources, lowest to highest precedence:
//  1. Defaults
//  2. TOML config file (--config, or <UserConfigDir>/todolist/config.toml)
//  3. Environment variables (TODOLIST_*)
//  4. CLI flags (applied by the caller through Override)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme     = "auto"
	DefaultGlyphs    = "unicode"
	DefaultProfile   = "default"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds all resolved preferences.
type Config struct {
	Theme   string `toml:"theme"`
	Glyphs  string `toml:"glyphs"`
	Profile string `toml:"profile"`

	Log LogConfig `toml:"log"`

	// Path is the config file that was read ("" when none was found).
	Path string `toml:"-"`
}

// LogConfig configures the debug log file.
type LogConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Overrides carries values from flags; empty strings leave the config value alone.
type Overrides struct {
	Theme     string
	Glyphs    string
	Profile   string
	LogFile   string
	LogLevel  string
	LogFormat string
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Glyphs = DefaultGlyphs
	cfg.Profile = DefaultProfile
	cfg.Log.Level = DefaultLogLevel
	cfg.Log.Format = DefaultLogFormat
}

// DefaultPath returns <UserConfigDir>/todolist/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todolist", "config.toml"), nil
}

// Load resolves defaults, the config file and the environment.
//
// An explicit path must exist. The default path is optional.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		path = expandPath(path)
		err := loadFile(cfg, path)
		switch {
		case err == nil:
			cfg.Path = path
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	cfg.Override(Overrides{})
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOLIST_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODOLIST_GLYPHS"); v != "" {
		cfg.Glyphs = v
	}
	if v := os.Getenv("TODOLIST_PROFILE"); v != "" {
		cfg.Profile = v
	}
	if v := os.Getenv("TODOLIST_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TODOLIST_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Override applies non-empty flag values and normalizes the result.
func (c *Config) Override(o Overrides) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.Theme, o.Theme)
	set(&c.Glyphs, o.Glyphs)
	set(&c.Profile, o.Profile)
	set(&c.Log.File, o.LogFile)
	set(&c.Log.Level, o.LogLevel)
	set(&c.Log.Format, o.LogFormat)

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	c.Profile = strings.ToLower(strings.TrimSpace(c.Profile))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Log.File = expandPath(strings.TrimSpace(c.Log.File))
}

// expandPath expands a leading ~ and environment variables.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	return p
}
