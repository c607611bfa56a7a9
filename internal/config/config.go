// Package config loads textdiv settings from, in increasing priority:
// built-in defaults, an optional YAML file, and TEXTDIV_* environment
// variables. Command-line flags are applied on top by the CLI.
//
// File lookup: the explicit path, else $TEXTDIV_CONFIG, else the first of
// DefaultConfigPaths that exists.
//
// Environment mapping: the prefix is dropped, the rest lower-cased, and a
// leading "log_" becomes the "log." section:
//
//	TEXTDIV_METRIC=ncd_zstd       metric
//	TEXTDIV_EXTENSIONS=txt,md     extensions (comma-separated)
//	TEXTDIV_LOG_LEVEL=debug       log.level
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/textdiv"
	"github.com/katalvlaran/textdiv/codec"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TEXTDIV_"

// PathEnvVar overrides the config file location.
const PathEnvVar = EnvPrefix + "CONFIG"

// DefaultConfigPaths are probed in order when no path is given.
var DefaultConfigPaths = []string{"textdiv.yaml", "textdiv.yml"}

// ErrInvalid wraps load and validation failures.
var ErrInvalid = fmt.Errorf("config: invalid configuration: %w", textdiv.ErrConfiguration)

// Config is the full settings tree.
type Config struct {
	// Metric is the registry name, optionally "<modifier>:<base>".
	Metric string `koanf:"metric" validate:"required"`

	// Level is the compression level for ncd_* metrics; -1 selects the
	// codec default. Any other value is accepted and clamped by the codec.
	Level int `koanf:"level"`

	// Strategy is MaxiMin or MaxiMean (case-insensitive).
	Strategy string `koanf:"strategy" validate:"required,strategy"`

	// Workers bounds matrix-build goroutines; 0 means one per CPU.
	Workers int `koanf:"workers" validate:"gte=0"`

	// Precalc enables per-item precalculation where the metric supports it.
	Precalc bool `koanf:"precalc"`

	// Extensions filters directory walks; empty keeps every file.
	Extensions []string `koanf:"extensions"`

	// Format selects the report encoding.
	Format string `koanf:"format" validate:"oneof=csv json"`

	// Top is how many nearest/farthest rows a query prints; 0 prints all.
	Top int `koanf:"top" validate:"gte=0"`

	// Timeout bounds a whole run; 0 disables it.
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`

	Log LogConfig `koanf:"log"`
}

// LogConfig mirrors logging.Config for the serializable fields.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Metric:   "ncd_zlib",
		Level:    codec.DefaultLevel,
		Strategy: "MaxiMin",
		Workers:  0,
		Precalc:  true,
		Format:   "csv",
		Top:      10,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// sliceKeys arrive as comma-separated strings from the environment.
var sliceKeys = []string{"extensions"}

// Load layers defaults, the config file and the environment, then validates.
// path may be empty.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("%w: defaults: %w", ErrInvalid, err)
	}

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil && explicit {
			return nil, fmt.Errorf("%w: config file: %w", ErrInvalid, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: config file %s: %w", ErrInvalid, path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrInvalid, err)
	}
	if err := splitSlices(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// envKey maps TEXTDIV_LOG_LEVEL to log.level and TEXTDIV_METRIC to metric.
// The config path variable itself is not a setting and is dropped.
func envKey(key string) string {
	if key == PathEnvVar {
		return ""
	}
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}

	return key
}

func splitSlices(k *koanf.Koanf) error {
	for _, key := range sliceKeys {
		s, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(key, parts); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
		}
	}

	return nil
}
