// Package session ties the scanner, index, and palette together for one
// document. A Session replaces ambient state: the live color index and
// the document's language travel with it, and all refresh and render
// traffic is serialized through it.
package session

import (
	"sync"

	"github.com/dshills/identicolor/internal/ident/core"
	"github.com/dshills/identicolor/internal/ident/index"
	"github.com/dshills/identicolor/internal/ident/palette"
	"github.com/dshills/identicolor/internal/ident/profile"
	"github.com/dshills/identicolor/internal/ident/scan"
	"github.com/dshills/identicolor/internal/ident/text"
)

// DefaultPaletteSize is the number of distinct colors identifiers are
// assigned over before slots repeat.
const DefaultPaletteSize = 8

// Session owns the identifier coloring state for one document.
type Session struct {
	// mu is the single-scan-in-flight guard: at most one refresh or
	// render runs at a time, and the live index is only read or swapped
	// under it.
	mu sync.Mutex

	// doc is the document being colored.
	doc text.Annotated

	// registry resolves the document's language to a lexical profile.
	registry *profile.Registry

	// language is the document's language id. An unregistered language
	// makes every operation a no-op.
	language string

	// live is the index produced by the last completed refresh.
	// Nil until a refresh has completed.
	live *index.Index

	// paletteSize is the number of palette slots.
	paletteSize int
}

// Option configures a Session.
type Option func(*Session)

// WithPaletteSize sets the palette size.
func WithPaletteSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.paletteSize = n
		}
	}
}

// New creates a session for the given document and language.
func New(doc text.Annotated, registry *profile.Registry, language string, opts ...Option) *Session {
	s := &Session{
		doc:         doc,
		registry:    registry,
		language:    language,
		paletteSize: DefaultPaletteSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Language returns the session's language id.
func (s *Session) Language() string {
	return s.language
}

// PaletteSize returns the session's palette size.
func (s *Session) PaletteSize() int {
	return s.paletteSize
}

// Refresh rebuilds the color index from a full-document scan. The live
// index is replaced only when the scan runs to completion; a cancelled
// refresh leaves it untouched, so readers never observe a partial or
// empty table. Returns whether the refresh completed.
//
// cont may be nil. An unregistered language is a completed no-op.
func (s *Session) Refresh(cont func() bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.registry.Get(s.language)
	if !ok {
		return true
	}

	acc, completed := index.Build(s.doc, p, s.paletteSize, cont)
	if !completed {
		return false
	}
	s.live = acc
	return true
}

// Render scans [start, limit) and returns a styled span for every
// identifier present in the live index, stamping the colored marker on
// each. Identifiers the index has not seen yet are left unstyled; that
// is the expected outcome before the first refresh completes.
//
// fgLightness and bgLightness are the display's current Lab L* samples;
// they feed the palette on every render, so a theme change takes effect
// immediately without touching the index.
func (s *Session) Render(start, limit int, fgLightness, bgLightness float64, cont func() bool) []core.StyleSpan {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.registry.Get(s.language)
	if !ok || s.live == nil {
		return nil
	}

	var spans []core.StyleSpan
	scan.Region(s.doc, p, start, limit, cont, func(sp core.Span) {
		slot, ok := s.live.Lookup(s.doc.Slice(sp.Start, sp.End))
		if !ok {
			return
		}
		col := palette.Color(slot, s.paletteSize, fgLightness, bgLightness)
		spans = append(spans, core.StyleSpan{Span: sp, Style: core.NewStyle(col)})
		s.doc.MarkColored(sp.Start, sp.End)
	})
	return spans
}

// Slot returns the palette slot the live index assigns to an identifier.
func (s *Session) Slot(name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live == nil {
		return 0, false
	}
	return s.live.Lookup(name)
}

// Indexed returns the number of distinct identifiers in the live index.
func (s *Session) Indexed() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live == nil {
		return 0
	}
	return s.live.Len()
}

// Identifiers returns the live index's identifiers in first-seen order.
func (s *Session) Identifiers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live == nil {
		return nil
	}
	return s.live.Identifiers()
}
