package entities

import (
	"fmt"
)

// Deck represents a complete slide deck with metadata and slides
type Deck struct {
	// ID is a unique identifier for the deck
	ID string `json:"id,omitempty" yaml:"-"`

	// Title is stored in the document properties
	Title string `json:"title" yaml:"title"`

	// Author is stored as the document creator
	Author string `json:"author" yaml:"author"`

	// Slides contains all slides in append order
	Slides []Slide `json:"slides" yaml:"slides"`
}

// AppendSlide adds a slide at the end of the deck and stamps its index
func (d *Deck) AppendSlide(slide Slide) *Slide {
	slide.Index = len(d.Slides)
	d.Slides = append(d.Slides, slide)
	return &d.Slides[slide.Index]
}

// Validate ensures every slide is well formed and indexed in order
func (d *Deck) Validate() error {
	for i, slide := range d.Slides {
		if slide.Index != i {
			return fmt.Errorf("slide %d has index %d", i+1, slide.Index)
		}
		if err := slide.Validate(); err != nil {
			return fmt.Errorf("slide %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// SlideCount returns the total number of slides
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// Titles returns every slide title in order
func (d *Deck) Titles() []string {
	titles := make([]string, 0, len(d.Slides))
	for _, s := range d.Slides {
		titles = append(titles, s.Title)
	}
	return titles
}
