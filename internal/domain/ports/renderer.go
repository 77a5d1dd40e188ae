package ports

import (
	"context"
	"io"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

// DeckRenderer serialises a deck into a presentation document
type DeckRenderer interface {
	// RenderDeck returns the encoded document
	RenderDeck(ctx context.Context, deck *entities.Deck) ([]byte, error)

	// Extension returns the file extension of the encoded document, e.g. ".pptx"
	Extension() string
}

// DeckReader decodes a presentation document back into a deck
type DeckReader interface {
	// ReadDeck decodes a document of the given size
	ReadDeck(ctx context.Context, r io.ReaderAt, size int64) (*entities.Deck, error)

	// ReadDeckFile opens and decodes the document at path
	ReadDeckFile(ctx context.Context, path string) (*entities.Deck, error)
}
