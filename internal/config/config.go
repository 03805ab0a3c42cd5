package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/akrennmair/pico/internal/logging"
	"github.com/akrennmair/pico/pico2go"
)

// FileName is the name of the configuration file looked up next to the
// source files.
const FileName = "pico.toml"

type Config struct {
	// Path is the file the configuration was read from. It is empty if the
	// defaults are used.
	Path string `toml:"-"`

	Build BuildConfig `toml:"build"`
	Log   LogConfig   `toml:"log"`
}

type BuildConfig struct {
	// Runtime is the import path of the runtime package used by generated code.
	Runtime string `toml:"runtime"`

	// Header is the comment written at the top of generated files. An
	// empty header omits the comment.
	Header string `toml:"header"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Build: BuildConfig{
			Runtime: pico2go.DefaultRuntime,
			Header:  pico2go.DefaultHeader,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() (slog.Level, error) {
	return logging.ParseLevel(c.Log.Level)
}

// Find looks for FileName in startDir and its parent directories.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the configuration file at path. Settings missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("build", "runtime") && strings.TrimSpace(cfg.Build.Runtime) == "" {
		return Config{}, fmt.Errorf("%s: [build].runtime must not be empty", path)
	}

	if _, err := cfg.LogLevel(); err != nil {
		return Config{}, fmt.Errorf("%s: invalid [log].level: %w", path, err)
	}

	cfg.Path = path

	return cfg, nil
}

// Resolve loads the configuration file at path if path is non-empty.
// Otherwise, it looks for FileName starting at startDir and falls back to the
// defaults if there is none.
func Resolve(path, startDir string) (Config, error) {
	if path != "" {
		return Load(path)
	}

	found, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}

	return Load(found)
}
