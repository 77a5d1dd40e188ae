package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// DeckBuilder owns an in-memory deck, appends styled slides to it and
// saves it through a renderer
type DeckBuilder struct {
	deck     *entities.Deck
	renderer ports.DeckRenderer
	logger   *slog.Logger
}

// DeckOption configures a DeckBuilder
type DeckOption func(*DeckBuilder)

// WithMetadata sets the document title and author
func WithMetadata(meta entities.Metadata) DeckOption {
	return func(b *DeckBuilder) {
		b.deck.Title = meta.Title
		b.deck.Author = meta.Author
	}
}

// WithLogger sets the logger used for slide and save events
func WithLogger(logger *slog.Logger) DeckOption {
	return func(b *DeckBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewDeckBuilder creates a builder holding an empty deck
func NewDeckBuilder(renderer ports.DeckRenderer, opts ...DeckOption) *DeckBuilder {
	b := &DeckBuilder{
		deck: &entities.Deck{
			ID:     uuid.NewString(),
			Slides: []entities.Slide{},
		},
		renderer: renderer,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddSlide appends a slide with the given title and one bullet per line of
// content. Empty title and content are allowed.
func (b *DeckBuilder) AddSlide(title, content string) {
	slide := entities.Slide{
		Background: entities.BackgroundColor,
		Title:      norm.NFC.String(title),
		TitleStyle: entities.TextStyle{
			SizePt: entities.TitleFontPt,
			Bold:   true,
			Color:  entities.TitleColor,
		},
		LeadStyle: entities.TextStyle{
			SizePt: entities.LeadFontPt,
			Color:  entities.LeadColor,
		},
		Frame:    entities.BodyGeometry,
		WordWrap: true,
	}

	bullets := entities.BulletLines(norm.NFC.String(content))
	slide.Body = make([]entities.Paragraph, 0, len(bullets))
	for _, text := range bullets {
		slide.Body = append(slide.Body, entities.Paragraph{
			Text: text,
			Style: entities.TextStyle{
				SizePt: entities.BulletFontPt,
				Color:  entities.BulletColor,
			},
		})
	}

	added := b.deck.AppendSlide(slide)
	b.logger.Debug("slide added",
		slog.Int("index", added.Index),
		slog.String("title", added.Title),
		slog.Int("bullets", len(added.Body)))
}

// Deck returns the deck built so far
func (b *DeckBuilder) Deck() *entities.Deck {
	return b.deck
}

// Save renders the deck and writes it to path, replacing any existing file.
// The parent directory must already exist.
func (b *DeckBuilder) Save(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("output path cannot be empty")
	}

	if ext := b.renderer.Extension(); !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("output path %s must have the %s extension", path, ext)
	}

	if err := b.deck.Validate(); err != nil {
		return fmt.Errorf("invalid deck: %w", err)
	}

	data, err := b.renderer.RenderDeck(ctx, b.deck)
	if err != nil {
		return fmt.Errorf("rendering deck: %w", err)
	}

	if err := writeFileReplace(path, data); err != nil {
		return err
	}

	b.logger.Info("deck saved",
		slog.String("path", path),
		slog.Int("slides", b.deck.SlideCount()),
		slog.Int("bytes", len(data)))
	return nil
}

// writeFileReplace writes data to a sibling temp file and renames it over path
func writeFileReplace(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+strings.TrimPrefix(filepath.Base(path), ".")+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing deck to %s: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
