// Package core provides shared value types for the identifier coloring
// subsystem. This package breaks import cycles between the scanner, the
// palette, and the session layers.
package core

import "fmt"

// Color represents a true color (RGB) value.
type Color struct {
	R, G, B uint8
	// Default indicates this is the display's default color.
	Default bool
}

// ColorDefault represents the display's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Hex returns the hex representation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style represents the visual style applied to a run of text.
type Style struct {
	Foreground Color
	Background Color
}

// DefaultStyle returns the default display style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
	}
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background)
}

// Span is a half-open byte range [Start, End) into a document.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if the offset is within the span.
func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

// Overlaps returns true if two spans overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// StyleSpan is a styled range within a document.
type StyleSpan struct {
	Span
	Style Style
}
