package builders

import (
	"fmt"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

// DeckBuilder helps build Deck entities for testing
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a new deck builder with sensible defaults
func NewDeckBuilder() *DeckBuilder {
	return &DeckBuilder{
		deck: &entities.Deck{
			ID:     "test-deck",
			Title:  "Test Deck",
			Author: "Test Author",
			Slides: []entities.Slide{},
		},
	}
}

// WithTitle sets the deck title
func (b *DeckBuilder) WithTitle(title string) *DeckBuilder {
	b.deck.Title = title
	return b
}

// WithAuthor sets the deck author
func (b *DeckBuilder) WithAuthor(author string) *DeckBuilder {
	b.deck.Author = author
	return b
}

// WithSlide appends a slide, stamping its index
func (b *DeckBuilder) WithSlide(slide entities.Slide) *DeckBuilder {
	b.deck.AppendSlide(slide)
	return b
}

// WithSlideCount appends the specified number of default slides
func (b *DeckBuilder) WithSlideCount(count int) *DeckBuilder {
	for i := 0; i < count; i++ {
		slide := NewSlideBuilder().
			WithTitle(fmt.Sprintf("Slide %d", i+1)).
			WithBullets(fmt.Sprintf("• Point %d", i+1)).
			Build()
		b.deck.AppendSlide(slide)
	}
	return b
}

// Build creates the final Deck entity
func (b *DeckBuilder) Build() *entities.Deck {
	slides := make([]entities.Slide, len(b.deck.Slides))
	for i, s := range b.deck.Slides {
		s.Body = append([]entities.Paragraph(nil), s.Body...)
		slides[i] = s
	}

	return &entities.Deck{
		ID:     b.deck.ID,
		Title:  b.deck.Title,
		Author: b.deck.Author,
		Slides: slides,
	}
}

// SlideBuilder helps build Slide entities for testing. Slides start with
// the fixed deck styling so they match what the DeckBuilder service produces.
type SlideBuilder struct {
	slide *entities.Slide
}

// NewSlideBuilder creates a new slide builder with sensible defaults
func NewSlideBuilder() *SlideBuilder {
	return &SlideBuilder{
		slide: &entities.Slide{
			Background: entities.BackgroundColor,
			Title:      "Test Slide",
			TitleStyle: entities.TextStyle{SizePt: entities.TitleFontPt, Bold: true, Color: entities.TitleColor},
			LeadStyle:  entities.TextStyle{SizePt: entities.LeadFontPt, Color: entities.LeadColor},
			Frame:      entities.BodyGeometry,
			WordWrap:   true,
		},
	}
}

// WithTitle sets the slide title
func (b *SlideBuilder) WithTitle(title string) *SlideBuilder {
	b.slide.Title = title
	return b
}

// WithBullets appends body paragraphs with the bullet style; texts are
// used as given
func (b *SlideBuilder) WithBullets(texts ...string) *SlideBuilder {
	for _, text := range texts {
		b.slide.Body = append(b.slide.Body, entities.Paragraph{
			Text:  text,
			Style: entities.TextStyle{SizePt: entities.BulletFontPt, Color: entities.BulletColor},
		})
	}
	return b
}

// WithContent appends one bullet per line of content
func (b *SlideBuilder) WithContent(content string) *SlideBuilder {
	return b.WithBullets(entities.BulletLines(content)...)
}

// WithBackground overrides the background colour
func (b *SlideBuilder) WithBackground(c entities.Color) *SlideBuilder {
	b.slide.Background = c
	return b
}

// Build creates the final Slide entity
func (b *SlideBuilder) Build() entities.Slide {
	slide := *b.slide
	slide.Body = append([]entities.Paragraph(nil), b.slide.Body...)
	return slide
}

// Common deck shapes for testing

// MinimalDeck creates a one-slide deck for basic tests
func MinimalDeck() *entities.Deck {
	return NewDeckBuilder().
		WithTitle("Minimal").
		WithSlideCount(1).
		Build()
}

// LargeDeck creates a deck with many slides for round-trip and cancellation tests
func LargeDeck() *entities.Deck {
	return NewDeckBuilder().
		WithTitle("Large Deck").
		WithSlideCount(50).
		Build()
}
