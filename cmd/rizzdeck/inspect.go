package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// deckSummary is the printable view of a deck
type deckSummary struct {
	Title  string         `json:"title,omitempty" yaml:"title,omitempty"`
	Author string         `json:"author,omitempty" yaml:"author,omitempty"`
	Slides []slideSummary `json:"slides" yaml:"slides"`
}

type slideSummary struct {
	Title   string   `json:"title" yaml:"title"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

func newInspectCmd(reader ports.DeckReader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the titles and bullets of a .pptx deck",
		Long: `Read a deck written by "rizzdeck build" and print its slides.

Example:
  rizzdeck inspect rizz_presentation.pptx
  rizzdeck inspect rizz_presentation.pptx --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, reader)
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text, yaml or json")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string, reader ports.DeckReader) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be text, yaml or json)", format)
	}

	deck, err := reader.ReadDeckFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return printDeck(cmd.OutOrStdout(), summarize(deck), format)
}

func summarize(deck *entities.Deck) deckSummary {
	summary := deckSummary{
		Title:  deck.Title,
		Author: deck.Author,
		Slides: make([]slideSummary, 0, deck.SlideCount()),
	}
	for i := range deck.Slides {
		bullets := deck.Slides[i].BulletTexts()
		summary.Slides = append(summary.Slides, slideSummary{
			Title:   deck.Slides[i].Title,
			Bullets: bullets,
		})
	}
	return summary
}

func printDeck(w io.Writer, summary deckSummary, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return encoder.Close()
	}

	var b strings.Builder
	for i, s := range summary.Slides {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Title)
		for _, bullet := range s.Bullets {
			fmt.Fprintf(&b, "   %s\n", bullet)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
