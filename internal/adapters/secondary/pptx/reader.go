package pptx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// ErrNotPresentation is returned for input GoPPT cannot read as a PPTX package
var ErrNotPresentation = errors.New("not a PPTX presentation")

// Reader decodes PPTX documents written by Renderer back into decks.
//
// The title comes from the title placeholder, the body from the last text
// frame that is not a placeholder, and the background from the slide's
// solid background fill.
type Reader struct{}

// NewReader creates a new PPTX reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadDeckFile opens and decodes the document at path
func (r *Reader) ReadDeckFile(ctx context.Context, filename string) (*entities.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pres, err := ppt.Open(filename)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("opening %s: %w", filename, err)
		}
		return nil, fmt.Errorf("reading %s: %w: %v", filename, ErrNotPresentation, err)
	}

	deck, err := toDeck(ctx, pres)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return deck, nil
}

// ReadDeck decodes a PPTX document of the given size
func (r *Reader) ReadDeck(ctx context.Context, ra io.ReaderAt, size int64) (*entities.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pres, err := ppt.ReadFrom(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	return toDeck(ctx, pres)
}

func toDeck(ctx context.Context, pres *ppt.Presentation) (*entities.Deck, error) {
	props := pres.GetDocumentProperties()
	deck := &entities.Deck{
		Title:  props.Title,
		Author: props.Creator,
		Slides: make([]entities.Slide, 0, len(pres.Slides())),
	}

	for _, s := range pres.Slides() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		deck.AppendSlide(toSlide(s))
	}
	return deck, nil
}

func toSlide(s *ppt.Slide) entities.Slide {
	var slide entities.Slide

	if bg := s.GetBackground(); bg != nil && bg.Type == ppt.FillSolid {
		slide.Background = toColor(bg.Color)
	}

	if title := s.GetPlaceholder(ppt.PlaceholderTitle); title != nil {
		var lines []string
		for _, p := range title.GetParagraphs() {
			text, style, ok := paragraphText(p)
			if !ok {
				continue
			}
			if len(lines) == 0 {
				slide.TitleStyle = style
			}
			lines = append(lines, text)
		}
		slide.Title = strings.Join(lines, "\n")
	}

	body := bodyFrame(s)
	if body == nil {
		return slide
	}

	slide.Frame = entities.Geometry{
		Left:   body.GetOffsetX(),
		Top:    body.GetOffsetY(),
		Width:  body.GetWidth(),
		Height: body.GetHeight(),
	}
	slide.WordWrap = body.GetWordWrap()

	for _, p := range body.GetParagraphs() {
		// The leading blank paragraph carries no runs
		text, style, ok := paragraphText(p)
		if !ok {
			continue
		}
		slide.Body = append(slide.Body, entities.Paragraph{Text: text, Style: style})
	}

	return slide
}

// bodyFrame returns the last plain text frame on the slide
func bodyFrame(s *ppt.Slide) *ppt.RichTextShape {
	var body *ppt.RichTextShape
	for _, shape := range s.GetShapes() {
		if rt, ok := shape.(*ppt.RichTextShape); ok {
			body = rt
		}
	}
	return body
}

// paragraphText concatenates the runs of p and reports the style of the
// first one. ok is false for paragraphs without runs.
func paragraphText(p *ppt.Paragraph) (text string, style entities.TextStyle, ok bool) {
	var b strings.Builder
	for _, elem := range p.GetElements() {
		run, isRun := elem.(*ppt.TextRun)
		if !isRun {
			continue
		}
		if !ok {
			style = toStyle(run.GetFont())
			ok = true
		}
		b.WriteString(run.GetText())
	}
	return b.String(), style, ok
}

func toStyle(f *ppt.Font) entities.TextStyle {
	if f == nil {
		return entities.TextStyle{}
	}
	return entities.TextStyle{
		SizePt: f.Size,
		Bold:   f.Bold,
		Color:  toColor(f.Color),
	}
}

// toColor drops the alpha channel; runs without a colour read as black
func toColor(c ppt.Color) entities.Color {
	col, err := entities.ParseColor(c.ARGB)
	if err != nil {
		return entities.Color{}
	}
	return col
}

// Ensure Reader implements ports.DeckReader
var _ ports.DeckReader = (*Reader)(nil)
