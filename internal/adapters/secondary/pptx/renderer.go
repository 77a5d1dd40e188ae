package pptx

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
	"github.com/fredcamaral/rizzdeck/internal/domain/ports"
)

// Renderer encodes decks as PowerPoint 2007 (.pptx) documents using GoPPT
type Renderer struct{}

// NewRenderer creates a new PPTX renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Extension returns ".pptx"
func (r *Renderer) Extension() string {
	return ".pptx"
}

// RenderDeck builds a GoPPT presentation from the deck and serialises it.
//
// Each slide carries a solid background fill, a title placeholder and one
// text frame holding the body.
func (r *Renderer) RenderDeck(ctx context.Context, deck *entities.Deck) ([]byte, error) {
	if deck == nil {
		return nil, errors.New("deck cannot be nil")
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = deck.Title
	props.Creator = deck.Author

	for i := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// GoPPT starts with one empty slide
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		r.renderSlide(slide, &deck.Slides[i])
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPTX writer: %w", err)
	}

	writer, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return nil, fmt.Errorf("unexpected writer type %T", w)
	}

	var buf bytes.Buffer
	if err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPTX: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) renderSlide(slide *ppt.Slide, s *entities.Slide) {
	slide.SetBackground(solidFill(s.Background))

	title := slide.CreatePlaceholderShape(ppt.PlaceholderTitle)
	title.SetOffsetX(entities.TitleGeometry.Left).SetOffsetY(entities.TitleGeometry.Top)
	title.SetWidth(entities.TitleGeometry.Width).SetHeight(entities.TitleGeometry.Height)
	applyStyle(title.CreateTextRun(s.Title), s.TitleStyle)

	// The first paragraph of the body stays empty and left aligned (the
	// GoPPT default); bullets start on the next one
	body := slide.CreateRichTextShape()
	body.SetOffsetX(s.Frame.Left).SetOffsetY(s.Frame.Top)
	body.SetWidth(s.Frame.Width).SetHeight(s.Frame.Height)
	body.SetWordWrap(s.WordWrap)

	for _, para := range s.Body {
		body.CreateParagraph()
		applyStyle(body.CreateTextRun(para.Text), para.Style)
	}
}

func applyStyle(run *ppt.TextRun, style entities.TextStyle) {
	run.GetFont().SetSize(style.SizePt).SetBold(style.Bold).SetColor(ppt.NewColor(style.Color.ARGB()))
}

func solidFill(c entities.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}

// Ensure Renderer implements ports.DeckRenderer
var _ ports.DeckRenderer = (*Renderer)(nil)
