package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoOutputPath is returned when no output path was configured
var ErrNoOutputPath = errors.New("no output path configured (use --output, [output] path or RIZZDECK_OUTPUT)")

// Config represents the complete application configuration
type Config struct {
	Output   OutputConfig  `toml:"output"`
	Metadata Metadata      `toml:"metadata"`
	Logging  LoggingConfig `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// OutputConfig controls where the deck is written
type OutputConfig struct {
	Path string `toml:"path"`
}

// Validate validates output configuration. An empty path is allowed here
// and rejected by RequirePath when a deck is actually saved.
func (o OutputConfig) Validate() error {
	if o.Path == "" {
		return nil
	}

	if strings.HasSuffix(o.Path, string(filepath.Separator)) {
		return fmt.Errorf("output path is a directory: %s", o.Path)
	}

	if ext := strings.ToLower(filepath.Ext(o.Path)); ext != ".pptx" {
		return fmt.Errorf("output path must end in .pptx: %s", o.Path)
	}

	return nil
}

// RequirePath returns the configured output path or ErrNoOutputPath
func (o OutputConfig) RequirePath() (string, error) {
	if o.Path == "" {
		return "", ErrNoOutputPath
	}
	return o.Path, nil
}

// Metadata contains document property defaults
type Metadata struct {
	Title  string `toml:"title"`
	Author string `toml:"author"`
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	Verbose    bool   `toml:"verbose"`     // Enable verbose logging
	JSONFormat bool   `toml:"json_format"` // Output logs in JSON format
	File       string `toml:"file"`        // Also log to file (optional)
	Journal    bool   `toml:"journal"`     // Also log to the systemd journal
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// Valid levels
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}

	if l.File != "" {
		if !filepath.IsAbs(l.File) {
			return errors.New("log file path must be absolute")
		}

		dir := filepath.Dir(l.File)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("log file directory does not exist: %s", dir)
		}
	}

	return nil
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Level == "" {
		return LogLevelInfo
	}
	if l.Verbose && LogLevel(l.Level) == LogLevelInfo {
		return LogLevelDebug
	}
	return LogLevel(l.Level)
}
