// Package text defines the narrow annotated-text interface the scanner
// depends on, plus an in-memory document implementation. Any host text
// representation satisfying Annotated can be plugged in; tests and the
// viewer use Document.
package text

import "github.com/dshills/identicolor/internal/ident/face"

// Annotated is the view of a text buffer the scanner needs: content,
// face classification, and the colored marker left behind by rendering.
type Annotated interface {
	// Len returns the length of the text in bytes.
	Len() int

	// Slice returns the text in [start, end).
	Slice(start, end int) string

	// FaceAt returns the face classification at the given offset.
	FaceAt(off int) face.Face

	// NextChange returns the next offset after off, bounded by limit,
	// where the face classification or the colored marker changes.
	NextChange(off, limit int) int

	// Colored reports whether the offset carries the colored marker.
	Colored(off int) bool

	// MarkColored stamps the colored marker on [start, end).
	MarkColored(start, end int)
}

// Document is an in-memory annotated text buffer.
type Document struct {
	text    string
	faces   []face.Face
	colored []bool
}

// NewDocument creates a document with no face annotations.
func NewDocument(text string) *Document {
	return &Document{
		text:    text,
		faces:   make([]face.Face, len(text)),
		colored: make([]bool, len(text)),
	}
}

// Classify creates a document and stamps faces from the classifier.
func Classify(text string, c *face.Classifier) *Document {
	d := NewDocument(text)
	for _, span := range c.Classify(text) {
		d.SetFace(span.Start, span.End, span.Face)
	}
	return d
}

// Len returns the length of the text in bytes.
func (d *Document) Len() int {
	return len(d.text)
}

// Text returns the full text.
func (d *Document) Text() string {
	return d.text
}

// Slice returns the text in [start, end), clamped to the document.
func (d *Document) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if start >= end {
		return ""
	}
	return d.text[start:end]
}

// SetFace stamps a face on [start, end).
func (d *Document) SetFace(start, end int, f face.Face) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(d.faces); i++ {
		d.faces[i] = f
	}
}

// FaceAt returns the face at the given offset.
func (d *Document) FaceAt(off int) face.Face {
	if off < 0 || off >= len(d.faces) {
		return face.None
	}
	return d.faces[off]
}

// NextChange returns the next offset after off, bounded by limit, where
// the face or the colored marker changes. Returns limit if nothing
// changes before it.
func (d *Document) NextChange(off, limit int) int {
	if limit > len(d.text) {
		limit = len(d.text)
	}
	if off >= limit {
		return limit
	}
	f := d.FaceAt(off)
	m := d.Colored(off)
	for i := off + 1; i < limit; i++ {
		if d.faces[i] != f || d.colored[i] != m {
			return i
		}
	}
	return limit
}

// Colored reports whether the offset carries the colored marker.
func (d *Document) Colored(off int) bool {
	if off < 0 || off >= len(d.colored) {
		return false
	}
	return d.colored[off]
}

// MarkColored stamps the colored marker on [start, end). The marker
// survives reclassification: SetFace does not clear it.
func (d *Document) MarkColored(start, end int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(d.colored); i++ {
		d.colored[i] = true
	}
}
