package ports

import (
	"context"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

// ConfigLoader loads configuration files
type ConfigLoader interface {
	// LoadGlobal loads the per-user configuration file, creating it with
	// defaults when missing. A global file that cannot be created or read
	// yields nil without an error.
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal loads rizzdeck.toml from dir; a missing file yields nil
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)

	// LoadFile loads an explicitly named configuration file
	LoadFile(ctx context.Context, path string) (*entities.Config, error)

	// CreateDefaults writes a default configuration file at path
	CreateDefaults(ctx context.Context, path string) error
}

// ConfigMerger layers configurations
type ConfigMerger interface {
	// Merge merges configs with later ones taking precedence; with no
	// arguments it returns the defaults
	Merge(configs ...*entities.Config) *entities.Config

	// ApplyFlags applies CLI flag overrides
	ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config

	// ApplyEnvVars applies RIZZDECK_* environment overrides
	ApplyEnvVars(config *entities.Config) *entities.Config
}

// ConfigService loads the effective configuration
type ConfigService interface {
	// LoadConfig resolves defaults → global → local (or explicit file) → env → flags
	LoadConfig(ctx context.Context, workingDir, explicitPath string, flags map[string]interface{}) (*entities.Config, error)

	// ValidateConfig validates a configuration
	ValidateConfig(config *entities.Config) error
}
