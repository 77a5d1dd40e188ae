package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// ConfigService implements the configuration service business logic
type ConfigService struct {
	loader ports.ConfigLoader
	merger ports.ConfigMerger
}

// NewConfigService creates a new configuration service
func NewConfigService(loader ports.ConfigLoader, merger ports.ConfigMerger) *ConfigService {
	return &ConfigService{
		loader: loader,
		merger: merger,
	}
}

// LoadConfig loads the complete configuration with hierarchy and overrides.
// When explicitPath is set it replaces the global and local files.
func (s *ConfigService) LoadConfig(ctx context.Context, workingDir, explicitPath string, flags map[string]interface{}) (*entities.Config, error) {
	configs := []*entities.Config{s.merger.Merge()}

	if explicitPath != "" {
		fileConfig, err := s.loader.LoadFile(ctx, explicitPath)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		configs = append(configs, fileConfig)
	} else {
		globalConfig, err := s.loader.LoadGlobal(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
		if globalConfig != nil {
			configs = append(configs, globalConfig)
		}

		localConfig, err := s.loader.LoadLocal(ctx, workingDir)
		if err != nil {
			return nil, fmt.Errorf("loading local config: %w", err)
		}
		if localConfig != nil {
			configs = append(configs, localConfig)
		}
	}

	merged := s.merger.Merge(configs...)
	merged = s.merger.ApplyEnvVars(merged)
	final := s.merger.ApplyFlags(merged, flags)

	if err := s.ValidateConfig(final); err != nil {
		return nil, fmt.Errorf("final config validation: %w", err)
	}

	return final, nil
}

// ValidateConfig validates a configuration
func (s *ConfigService) ValidateConfig(config *entities.Config) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	return config.Validate()
}

// Ensure ConfigService implements ports.ConfigService
var _ ports.ConfigService = (*ConfigService)(nil)
