// Package logging configures the zerolog logger used by the textdiv CLI.
//
// Library packages never log on their own; the CLI hands the configured
// logger to the components that accept one (distmat.WithLogger).
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Logger().Info().Str("metric", name).Msg("matrix written")
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, disabled.
	Level string

	// Format is console (human) or json.
	Format string

	// Timestamp adds a time field to every event.
	Timestamp bool

	// Output defaults to os.Stderr so stdout stays free for reports.
	Output io.Writer
}

// DefaultConfig returns the CLI defaults: info level, console format.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "console",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	log = zerolog.Nop()
	mu  sync.RWMutex
)

// Init builds a logger from cfg and installs it as the package logger.
// It is safe to call more than once.
func Init(cfg Config) zerolog.Logger {
	l := New(cfg)
	mu.Lock()
	log = l
	mu.Unlock()

	return l
}

// New builds a logger from cfg without touching the package logger.
// Empty fields fall back to DefaultConfig.
func New(cfg Config) zerolog.Logger {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.TimeOnly}
	}
	l := zerolog.New(output).Level(ParseLevel(cfg.Level))
	if cfg.Timestamp {
		l = l.With().Timestamp().Logger()
	}

	return l
}

// Logger returns the package logger (a no-op logger before Init).
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return log
}

// ParseLevel converts a level name to zerolog.Level; unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
