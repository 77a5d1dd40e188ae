package config

import (
	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

// Default document properties
const (
	DefaultTitle  = "Understanding rizz.c"
	DefaultAuthor = "rizzdeck"
)

// GetDefaultConfig returns the built-in defaults. Environment overrides are
// applied later by ConfigMerger.ApplyEnvVars so they never end up in a
// generated config file. There is no default output path.
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Output: entities.OutputConfig{},
		Metadata: entities.Metadata{
			Title:  DefaultTitle,
			Author: DefaultAuthor,
		},
		Logging: entities.LoggingConfig{
			Level: string(entities.LogLevelInfo),
		},
	}
}
