package entities

import (
	"errors"
	"strings"
)

// Paragraph is a single line of text in a slide body
type Paragraph struct {
	Text  string    `json:"text" yaml:"text"`
	Style TextStyle `json:"style" yaml:"style"`
}

// Slide represents a single slide in a deck
type Slide struct {
	// Index is the slide position in the deck (0-based)
	Index int `json:"index" yaml:"index"`

	// Background is the solid fill behind every shape
	Background Color `json:"background" yaml:"background"`

	// Title is the text of the title shape
	Title string `json:"title" yaml:"title"`

	// TitleStyle formats the title run
	TitleStyle TextStyle `json:"title_style" yaml:"title_style"`

	// LeadStyle formats the empty first paragraph of the body frame
	LeadStyle TextStyle `json:"lead_style" yaml:"lead_style"`

	// Frame is the body text frame geometry
	Frame Geometry `json:"frame" yaml:"frame"`

	// WordWrap enables wrapping inside the body frame
	WordWrap bool `json:"word_wrap" yaml:"word_wrap"`

	// Body holds the bullet paragraphs in input line order
	Body []Paragraph `json:"body" yaml:"body"`
}

// Validate ensures the slide is well formed
func (s *Slide) Validate() error {
	if s.Index < 0 {
		return errors.New("slide index must be non-negative")
	}

	for _, p := range s.Body {
		if strings.Contains(p.Text, "\n") {
			return errors.New("paragraph text cannot contain a newline")
		}
	}

	return nil
}

// BulletTexts returns the text of every body paragraph in order
func (s *Slide) BulletTexts() []string {
	texts := make([]string, 0, len(s.Body))
	for _, p := range s.Body {
		texts = append(texts, p.Text)
	}
	return texts
}

// BulletLines splits content into bullet paragraph texts.
//
// Each line is trimmed and prefixed with BulletPrefix. Blank interior lines
// keep their bullet; content with no visible characters yields no bullets.
func BulletLines(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		bullets = append(bullets, BulletPrefix+strings.TrimSpace(line))
	}
	return bullets
}
