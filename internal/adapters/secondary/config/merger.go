package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := copyConfig(configs[0])
	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := copyConfig(config)

	if output, ok := flags["output"].(string); ok && output != "" {
		result.Output.Path = output
	}

	if title, ok := flags["title"].(string); ok && title != "" {
		result.Metadata.Title = title
	}

	if author, ok := flags["author"].(string); ok && author != "" {
		result.Metadata.Author = author
	}

	if level, ok := flags["log-level"].(string); ok && level != "" {
		result.Logging.Level = level
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Verbose = true
	}

	return result
}

// ApplyEnvVars applies environment variable overrides to a configuration
func (m *ConfigMerger) ApplyEnvVars(config *entities.Config) *entities.Config {
	result := copyConfig(config)

	if output := os.Getenv("RIZZDECK_OUTPUT"); output != "" {
		result.Output.Path = output
	}

	if title := os.Getenv("RIZZDECK_TITLE"); title != "" {
		result.Metadata.Title = title
	}

	if author := os.Getenv("RIZZDECK_AUTHOR"); author != "" {
		result.Metadata.Author = author
	}

	if level := os.Getenv("RIZZDECK_LOG_LEVEL"); level != "" {
		result.Logging.Level = level
	}

	if jsonStr := os.Getenv("RIZZDECK_LOG_JSON"); jsonStr != "" {
		if jsonFormat, err := strconv.ParseBool(jsonStr); err == nil {
			result.Logging.JSONFormat = jsonFormat
		}
	}

	if file := os.Getenv("RIZZDECK_LOG_FILE"); file != "" {
		result.Logging.File = file
	}

	if journalStr := os.Getenv("RIZZDECK_LOG_JOURNAL"); journalStr != "" {
		if journal, err := strconv.ParseBool(journalStr); err == nil {
			result.Logging.Journal = journal
		}
	}

	return result
}

// mergeInto merges source configuration into target configuration
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	if source.Output.Path != "" {
		target.Output.Path = source.Output.Path
	}

	if source.Metadata.Title != "" {
		target.Metadata.Title = source.Metadata.Title
	}
	if source.Metadata.Author != "" {
		target.Metadata.Author = source.Metadata.Author
	}

	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	if source.Logging.File != "" {
		target.Logging.File = source.Logging.File
	}
	// TOML cannot tell false from unset, so a later file can only turn these on
	if source.Logging.Verbose {
		target.Logging.Verbose = true
	}
	if source.Logging.JSONFormat {
		target.Logging.JSONFormat = true
	}
	if source.Logging.Journal {
		target.Logging.Journal = true
	}
}

// copyConfig returns a copy of src; every field is a value type
func copyConfig(src *entities.Config) *entities.Config {
	if src == nil {
		return GetDefaultConfig()
	}
	dst := *src
	return &dst
}

// Ensure ConfigMerger implements ports.ConfigMerger
var _ ports.ConfigMerger = (*ConfigMerger)(nil)
