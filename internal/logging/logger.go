package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

// ConsoleTimeFormat is the short timestamp used by the console writer.
const ConsoleTimeFormat = "15:04:05.000"

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr, false)
}

// NewFile creates a logger writing to a size-rotated file at path. The
// returned cleanup closes the file. Console format is written without colors.
func NewFile(cfg Config, path string) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}
	w, err := NewRotator(path, DefaultRotateConfig())
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return newWithWriter(cfg, w, true), func() { _ = w.Close() }, nil
}

func newWithWriter(cfg Config, w io.Writer, noColor bool) zerolog.Logger {
	output := w
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    noColor,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level. Unknown values
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
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

// NewFromEnv creates a logger based on environment variables
// DUMBTIP_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DUMBTIP_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromValues(os.Getenv("DUMBTIP_LOG_LEVEL"), os.Getenv("DUMBTIP_LOG_FORMAT")))
}

// ConfigFromValues builds a Config from raw level/format strings, keeping
// defaults for empty or unknown values.
func ConfigFromValues(level, format string) Config {
	cfg := DefaultConfig()
	cfg.TimeFormat = ConsoleTimeFormat
	if level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}
