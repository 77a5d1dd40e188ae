package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

type MockDeckRenderer struct {
	mock.Mock
}

func (m *MockDeckRenderer) RenderDeck(ctx context.Context, deck *entities.Deck) ([]byte, error) {
	args := m.Called(ctx, deck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDeckRenderer) Extension() string {
	return ".pptx"
}

func TestDeckBuilder_AddSlide(t *testing.T) {
	t.Run("splits content into bullets in order", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		builder.AddSlide("Overview", "A\nB\nC")

		deck := builder.Deck()
		require.Equal(t, 1, deck.SlideCount())

		slide := deck.Slides[0]
		assert.Equal(t, "Overview", slide.Title)
		assert.Equal(t, []string{"• A", "• B", "• C"}, slide.BulletTexts())
	})

	t.Run("applies the fixed style", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		builder.AddSlide("Title", "line")

		slide := builder.Deck().Slides[0]
		assert.Equal(t, entities.Color{R: 30, G: 30, B: 30}, slide.Background)
		assert.Equal(t, entities.TextStyle{SizePt: 58, Bold: true, Color: entities.Color{R: 255, G: 255, B: 255}}, slide.TitleStyle)
		assert.Equal(t, entities.TextStyle{SizePt: 36, Color: entities.Color{R: 200, G: 200, B: 200}}, slide.LeadStyle)
		assert.Equal(t, entities.BodyGeometry, slide.Frame)
		assert.True(t, slide.WordWrap)
		require.Len(t, slide.Body, 1)
		assert.Equal(t, entities.TextStyle{SizePt: 29, Color: entities.Color{R: 220, G: 220, B: 220}}, slide.Body[0].Style)
	})

	t.Run("keeps blank interior lines and trims whitespace", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		builder.AddSlide("Gaps", "  A  \n\n\tB")

		assert.Equal(t, []string{"• A", "• ", "• B"}, builder.Deck().Slides[0].BulletTexts())
	})

	t.Run("empty title and content", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		builder.AddSlide("", "")

		slide := builder.Deck().Slides[0]
		assert.Equal(t, "", slide.Title)
		assert.Empty(t, slide.Body)
	})

	t.Run("slides keep call order", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		for _, title := range []string{"one", "two", "three"} {
			builder.AddSlide(title, "x")
		}

		deck := builder.Deck()
		assert.Equal(t, []string{"one", "two", "three"}, deck.Titles())
		for i, s := range deck.Slides {
			assert.Equal(t, i, s.Index)
		}
	})

	t.Run("normalises text to NFC", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		builder.AddSlide("Cafe\u0301", "nai\u0308ve")

		slide := builder.Deck().Slides[0]
		assert.Equal(t, "Caf\u00e9", slide.Title)
		assert.Equal(t, []string{"• na\u00efve"}, slide.BulletTexts())
	})

	t.Run("metadata option", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer), WithMetadata(entities.Metadata{Title: "T", Author: "A"}))

		assert.Equal(t, "T", builder.Deck().Title)
		assert.Equal(t, "A", builder.Deck().Author)
		assert.NotEmpty(t, builder.Deck().ID)
	})
}

func TestDeckBuilder_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("writes rendered bytes", func(t *testing.T) {
		renderer := new(MockDeckRenderer)
		builder := NewDeckBuilder(renderer)
		builder.AddSlide("Overview", "A")
		renderer.On("RenderDeck", ctx, builder.Deck()).Return([]byte("deck-bytes"), nil)

		path := filepath.Join(t.TempDir(), "deck.pptx")
		require.NoError(t, builder.Save(ctx, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "deck-bytes", string(data))
		renderer.AssertExpectations(t)
	})

	t.Run("overwrites an existing file and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deck.pptx")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0600))

		renderer := new(MockDeckRenderer)
		builder := NewDeckBuilder(renderer)
		renderer.On("RenderDeck", ctx, builder.Deck()).Return([]byte("new"), nil)

		require.NoError(t, builder.Save(ctx, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing parent directory", func(t *testing.T) {
		renderer := new(MockDeckRenderer)
		builder := NewDeckBuilder(renderer)
		renderer.On("RenderDeck", ctx, builder.Deck()).Return([]byte("x"), nil)

		err := builder.Save(ctx, filepath.Join(t.TempDir(), "missing", "deck.pptx"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("renderer failure", func(t *testing.T) {
		renderer := new(MockDeckRenderer)
		builder := NewDeckBuilder(renderer)
		renderer.On("RenderDeck", ctx, builder.Deck()).Return(nil, errors.New("boom"))

		path := filepath.Join(t.TempDir(), "deck.pptx")
		err := builder.Save(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rendering deck")

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty path", func(t *testing.T) {
		builder := NewDeckBuilder(new(MockDeckRenderer))
		assert.Error(t, builder.Save(ctx, ""))
	})

	t.Run("path without the renderer extension", func(t *testing.T) {
		renderer := new(MockDeckRenderer)
		builder := NewDeckBuilder(renderer)

		path := filepath.Join(t.TempDir(), "deck.pdf")
		err := builder.Save(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".pptx")
		renderer.AssertNotCalled(t, "RenderDeck", mock.Anything, mock.Anything)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("extension match ignores case", func(t *testing.T) {
		renderer := new(MockDeckRenderer)
		builder := NewDeckBuilder(renderer)
		renderer.On("RenderDeck", ctx, builder.Deck()).Return([]byte("x"), nil)

		path := filepath.Join(t.TempDir(), "DECK.PPTX")
		require.NoError(t, builder.Save(ctx, path))
		renderer.AssertExpectations(t)
	})
}
