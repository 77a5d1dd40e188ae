package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// EMUPerInch is the number of English Metric Units in one inch
const EMUPerInch = 914400

// Font sizes in points. The deck was first drawn with inch-based sizes;
// these are the point equivalents of 0.8in, 0.5in and 0.4in.
const (
	TitleFontPt  = 58
	LeadFontPt   = 36
	BulletFontPt = 29
)

// BulletPrefix is prepended to every body line
const BulletPrefix = "• "

// Fixed deck colours
var (
	BackgroundColor = Color{R: 30, G: 30, B: 30}
	TitleColor      = Color{R: 255, G: 255, B: 255}
	LeadColor       = Color{R: 200, G: 200, B: 200}
	BulletColor     = Color{R: 220, G: 220, B: 220}
)

// Color is an opaque 8-bit RGB colour
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// ARGB returns the colour as an opaque ARGB hex string, e.g. "FF1E1E1E"
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

// Hex returns the colour as an RGB hex string, e.g. "1E1E1E"
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses an RGB ("1E1E1E") or ARGB ("FF1E1E1E") hex string.
// The alpha channel is ignored.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// TextStyle describes the run formatting of a paragraph
type TextStyle struct {
	SizePt int   `json:"size_pt" yaml:"size_pt"`
	Bold   bool  `json:"bold,omitempty" yaml:"bold,omitempty"`
	Color  Color `json:"color" yaml:"color"`
}

// Geometry is a shape position and size in EMU
type Geometry struct {
	Left   int64 `json:"left" yaml:"left"`
	Top    int64 `json:"top" yaml:"top"`
	Width  int64 `json:"width" yaml:"width"`
	Height int64 `json:"height" yaml:"height"`
}

// Inches converts a length in inches to EMU
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}

// Standard geometries, in the 4:3 slide the deck is laid out for
var (
	SlideGeometry = Geometry{Width: Inches(10), Height: Inches(7.5)}
	TitleGeometry = Geometry{Left: Inches(0.5), Top: Inches(0.3), Width: Inches(9), Height: Inches(1.25)}
	BodyGeometry  = Geometry{Left: Inches(1), Top: Inches(1.5), Width: Inches(8.5), Height: Inches(5)}
)
