package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

// fixtureSlide fills a GoPPT slide the way a hand-made deck would: a dark
// background, a title placeholder and one bullet frame.
func fixtureSlide(slide *ppt.Slide, title string, bullets ...string) {
	slide.SetBackground(ppt.NewFill().SetSolid(ppt.NewColor("1E1E1E")))

	ph := slide.CreatePlaceholderShape(ppt.PlaceholderTitle)
	ph.CreateTextRun(title).GetFont().SetSize(58).SetBold(true).SetColor(ppt.NewColor("FFFFFF"))

	frame := slide.CreateRichTextShape()
	frame.SetOffsetX(914400).SetOffsetY(1371600)
	frame.SetWidth(7772400).SetHeight(4572000)
	for _, b := range bullets {
		frame.CreateParagraph()
		frame.CreateTextRun(b).GetFont().SetSize(29).SetColor(ppt.NewColor("DCDCDC"))
	}
}

func encode(t *testing.T, p *ppt.Presentation) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))
	return buf.Bytes()
}

func readBytes(t *testing.T, data []byte) (*entities.Deck, error) {
	t.Helper()
	return NewReader().ReadDeck(context.Background(), bytes.NewReader(data), int64(len(data)))
}

func TestReader_ReadDeck(t *testing.T) {
	t.Run("keeps slide order", func(t *testing.T) {
		p := ppt.New()
		fixtureSlide(p.GetActiveSlide(), "First", "• one")
		fixtureSlide(p.CreateSlide(), "Second")
		fixtureSlide(p.CreateSlide(), "Third", "• a", "• b")

		deck, err := readBytes(t, encode(t, p))
		require.NoError(t, err)

		assert.Equal(t, []string{"First", "Second", "Third"}, deck.Titles())
		assert.Equal(t, []string{"• a", "• b"}, deck.Slides[2].BulletTexts())
	})

	t.Run("decodes styles and geometry", func(t *testing.T) {
		p := ppt.New()
		fixtureSlide(p.GetActiveSlide(), "Overview", "• A", "• B")

		deck, err := readBytes(t, encode(t, p))
		require.NoError(t, err)
		require.Equal(t, 1, deck.SlideCount())

		slide := deck.Slides[0]
		assert.Equal(t, entities.BackgroundColor, slide.Background)
		assert.Equal(t, entities.TextStyle{SizePt: 58, Bold: true, Color: entities.TitleColor}, slide.TitleStyle)
		assert.Equal(t, entities.Geometry{Left: 914400, Top: 1371600, Width: 7772400, Height: 4572000}, slide.Frame)
		assert.True(t, slide.WordWrap)
		require.Len(t, slide.Body, 2)
		assert.Equal(t, entities.TextStyle{SizePt: 29, Color: entities.BulletColor}, slide.Body[0].Style)
	})

	t.Run("reads word wrap off", func(t *testing.T) {
		p := ppt.New()
		fixtureSlide(p.GetActiveSlide(), "Overview", "• A")
		for _, shape := range p.GetActiveSlide().GetShapes() {
			if rt, ok := shape.(*ppt.RichTextShape); ok {
				rt.SetWordWrap(false)
			}
		}

		deck, err := readBytes(t, encode(t, p))
		require.NoError(t, err)
		assert.False(t, deck.Slides[0].WordWrap)
	})

	t.Run("joins multi paragraph titles", func(t *testing.T) {
		p := ppt.New()
		ph := p.GetActiveSlide().CreatePlaceholderShape(ppt.PlaceholderTitle)
		ph.CreateTextRun("Line one")
		ph.CreateParagraph()
		ph.CreateTextRun("Line two")

		deck, err := readBytes(t, encode(t, p))
		require.NoError(t, err)
		assert.Equal(t, "Line one\nLine two", deck.Slides[0].Title)
	})

	t.Run("slide without shapes", func(t *testing.T) {
		deck, err := readBytes(t, encode(t, ppt.New()))
		require.NoError(t, err)

		require.Equal(t, 1, deck.SlideCount())
		assert.Equal(t, "", deck.Slides[0].Title)
		assert.Empty(t, deck.Slides[0].Body)
		assert.Equal(t, entities.Color{}, deck.Slides[0].Background)
	})

	t.Run("reads document properties", func(t *testing.T) {
		p := ppt.New()
		p.GetDocumentProperties().Title = "Understanding rizz.c"
		p.GetDocumentProperties().Creator = "rizzdeck"

		deck, err := readBytes(t, encode(t, p))
		require.NoError(t, err)
		assert.Equal(t, "Understanding rizz.c", deck.Title)
		assert.Equal(t, "rizzdeck", deck.Author)
	})

	t.Run("rejects zip without presentation", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("word/document.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte("<document/>"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = readBytes(t, buf.Bytes())
		assert.ErrorIs(t, err, ErrNotPresentation)
	})

	t.Run("rejects non zip input", func(t *testing.T) {
		_, err := readBytes(t, []byte("not a zip archive"))
		assert.ErrorIs(t, err, ErrNotPresentation)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		data := encode(t, ppt.New())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewReader().ReadDeck(ctx, bytes.NewReader(data), int64(len(data)))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReader_ReadDeckFile(t *testing.T) {
	t.Run("reads from disk", func(t *testing.T) {
		p := ppt.New()
		fixtureSlide(p.GetActiveSlide(), "Overview", "• A")

		path := filepath.Join(t.TempDir(), "deck.pptx")
		require.NoError(t, os.WriteFile(path, encode(t, p), 0600))

		deck, err := NewReader().ReadDeckFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Overview"}, deck.Titles())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewReader().ReadDeckFile(context.Background(), filepath.Join(t.TempDir(), "missing.pptx"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file that is not a presentation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.pptx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0600))

		_, err := NewReader().ReadDeckFile(context.Background(), path)
		assert.ErrorIs(t, err, ErrNotPresentation)
		assert.Contains(t, err.Error(), path)
	})
}
