package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// LocalFileName is the per-project config file looked up in the working directory
const LocalFileName = "rizzdeck.toml"

const defaultsHeader = `# rizzdeck configuration
#
# Settings here are overridden by ./rizzdeck.toml, RIZZDECK_* environment
# variables and command line flags, in that order.

`

// TOMLLoader reads rizzdeck configuration files.
//
// The global file under ~/.config/rizzdeck is best effort: if it cannot be
// created or read, LoadGlobal logs a warning and reports no config. Local
// and explicitly named files are strict.
type TOMLLoader struct {
	globalPath string
	localName  string
	logger     *slog.Logger
}

// LoaderOption configures a TOMLLoader
type LoaderOption func(*TOMLLoader)

// WithLoaderLogger sets the logger used for global config warnings
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *TOMLLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewTOMLLoader creates a loader rooted at the user's home directory
func NewTOMLLoader(opts ...LoaderOption) *TOMLLoader {
	l := &TOMLLoader{
		localName: LocalFileName,
		logger:    slog.New(slog.DiscardHandler),
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		l.globalPath = filepath.Join(home, ".config", "rizzdeck", "config.toml")
	}

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadGlobal returns the global config, writing the defaults there first
// when the file does not exist yet. It returns nil, nil when the file is
// unusable for reasons other than its content.
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	if l.globalPath == "" {
		l.logger.Warn("no home directory, skipping global config")
		return nil, nil
	}

	data, err := os.ReadFile(l.globalPath)
	switch {
	case err == nil:
		return decode(l.globalPath, data)
	case errors.Is(err, fs.ErrNotExist):
		if err := l.CreateDefaults(ctx, l.globalPath); err != nil {
			l.skipGlobal(err)
			return nil, nil
		}
		return GetDefaultConfig(), nil
	default:
		l.skipGlobal(err)
		return nil, nil
	}
}

func (l *TOMLLoader) skipGlobal(err error) {
	l.logger.Warn("global config unavailable, continuing without it",
		slog.String("path", l.globalPath),
		slog.String("error", err.Error()))
}

// LoadLocal loads the local config file from dir; a missing file yields nil
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	path := filepath.Join(dir, l.localName)

	data, err := os.ReadFile(path) // #nosec G304 - fixed name inside the working directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(path, data)
}

// LoadFile loads the configuration file at path, which must exist
func (l *TOMLLoader) LoadFile(ctx context.Context, path string) (*entities.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(path, data)
}

// CreateDefaults writes the built-in defaults to path, creating parent
// directories as needed
func (l *TOMLLoader) CreateDefaults(ctx context.Context, path string) error {
	var buf bytes.Buffer
	buf.WriteString(defaultsHeader)

	encoder := toml.NewEncoder(&buf)
	encoder.Indent = "  "
	if err := encoder.Encode(GetDefaultConfig()); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	l.logger.Debug("wrote default config", slog.String("path", path))
	return nil
}

func decode(path string, data []byte) (*entities.Config, error) {
	var config entities.Config
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return &config, nil
}

// Ensure TOMLLoader implements ports.ConfigLoader
var _ ports.ConfigLoader = (*TOMLLoader)(nil)
