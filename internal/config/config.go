package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the config directory and local config file.
const AppName = "robofactory"

// Config holds every setting.
type Config struct {
	Input    InputConfig    `koanf:"input"`
	Bindings BindingsConfig `koanf:"bindings"`
	Log      LogConfig      `koanf:"log"`
}

// InputConfig controls the frame loop and the terminal key tracker.
type InputConfig struct {
	TickRate     int           `koanf:"tick_rate"`     // updates per second
	InitialDelay time.Duration `koanf:"initial_delay"` // first autorepeat must arrive within this
	RepeatGap    time.Duration `koanf:"repeat_gap"`    // later autorepeats must arrive within this
}

// BindingsConfig locates the default bindings list.
type BindingsConfig struct {
	File  string `koanf:"file"`  // empty means the built-in list
	Watch bool   `koanf:"watch"` // reload when File changes
}

// LogConfig controls logging. Logs go to a file because the terminal is
// owned by the game screen.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
	File  string `koanf:"file"`  // empty disables logging
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input: InputConfig{
			TickRate:     60,
			InitialDelay: 600 * time.Millisecond,
			RepeatGap:    120 * time.Millisecond,
		},
		Bindings: BindingsConfig{
			Watch: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the search-path config files, then each path in explicit,
// which must exist, then the ROBOFACTORY_* environment, on top of Default.
func Load(explicit ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	for _, path := range explicit {
		if path == "" {
			continue
		}
		path = expandPath(path)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Bindings.File = expandPath(cfg.Bindings.File)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Input.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.tick_rate must be positive, got %d", ErrValidationFailed, c.Input.TickRate))
	}
	if c.Input.InitialDelay <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.initial_delay must be positive", ErrValidationFailed))
	}
	if c.Input.RepeatGap <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.repeat_gap must be positive", ErrValidationFailed))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TickInterval returns the time between frame updates.
func (c *Config) TickInterval() time.Duration {
	if c.Input.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Input.TickRate)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: invalid log level %q (must be debug, info, warn, or error)", ErrValidationFailed, name)
}

// UserDir returns the per-user config directory.
func UserDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

func searchPaths() []string {
	return []string{
		filepath.Join(UserDir(), "config.toml"),
		AppName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
