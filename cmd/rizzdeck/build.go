package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/rizzdeck/internal/adapters/secondary/pptx"
	"github.com/fredcamaral/rizzdeck/internal/domain/services"
	"github.com/fredcamaral/rizzdeck/internal/outline"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the rizz.c deck to a .pptx file",
		Long: `Build the eight rizz.c slides and save them as a PowerPoint file.
The output path has no default: pass --output, set [output] path in a
config file, or export RIZZDECK_OUTPUT. An existing file is replaced.

Example:
  rizzdeck build -o rizz_presentation.pptx`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	cmd.Flags().StringP("output", "o", "", "Output .pptx path (overrides config)")
	cmd.Flags().String("title", "", "Document title property (overrides config)")
	cmd.Flags().String("author", "", "Document author property (overrides config)")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outputPath, err := cfg.Output.RequirePath()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	builder := services.NewDeckBuilder(
		pptx.NewRenderer(),
		services.WithMetadata(cfg.Metadata),
		services.WithLogger(logger.Logger),
	)

	outline.Build(builder, outline.Rizz())

	if err := builder.Save(cmd.Context(), outputPath); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), outputPath)
	return err
}
