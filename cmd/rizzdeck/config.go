package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/rizzdeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/rizzdeck/internal/adapters/secondary/logging"
	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/services"
)

// loadConfig resolves the effective configuration for cmd. Only flags the
// user actually changed override lower layers.
func loadConfig(cmd *cobra.Command) (*entities.Config, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	explicitPath, _ := cmd.Flags().GetString("config")

	flags := make(map[string]interface{})
	for _, name := range []string{"output", "title", "author", "log-level"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			flags[name] = f.Value.String()
		}
	}
	if cmd.Flags().Changed("verbose") {
		verbose, _ := cmd.Flags().GetBool("verbose")
		flags["verbose"] = verbose
	}

	// The configured logger does not exist yet; loader warnings go straight
	// to stderr
	bootstrap := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	loader := config.NewTOMLLoader(config.WithLoaderLogger(bootstrap))

	service := services.NewConfigService(loader, config.NewConfigMerger())
	cfg, err := service.LoadConfig(cmd.Context(), workingDir, explicitPath, flags)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return cfg, nil
}

// newLogger creates the command logger on the command's error stream
func newLogger(cmd *cobra.Command, cfg *entities.Config) (*logging.Logger, error) {
	logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}
