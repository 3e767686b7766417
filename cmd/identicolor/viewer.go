package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/identicolor/internal/ident/core"
	"github.com/dshills/identicolor/internal/ident/session"
	"github.com/dshills/identicolor/internal/ident/text"
	"github.com/dshills/identicolor/internal/ident/theme"
)

// tabWidth is the number of columns a tab advances to a multiple of.
const tabWidth = 4

// viewer displays a colored document on a tcell screen.
type viewer struct {
	screen  tcell.Screen
	doc     *text.Document
	session *session.Session
	themes  *theme.Registry

	// lines holds the byte range of each line, newline excluded.
	lines []core.Span

	// top is the first visible line.
	top int
}

func newViewer(doc *text.Document, sess *session.Session, themes *theme.Registry) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &viewer{
		screen:  screen,
		doc:     doc,
		session: sess,
		themes:  themes,
		lines:   splitLines(doc.Text()),
	}, nil
}

// splitLines computes the byte span of every line in the text.
func splitLines(s string) []core.Span {
	lines := make([]core.Span, 0, 64)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, core.Span{Start: start, End: i})
			start = i + 1
		}
	}
	lines = append(lines, core.Span{Start: start, End: len(s)})
	return lines
}

func (v *viewer) run() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	defer v.screen.Fini()

	for {
		v.draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey processes a key event. Returns true to quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	_, height := v.screen.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scroll(-1)
	case tcell.KeyDown:
		v.scroll(1)
	case tcell.KeyPgUp:
		v.scroll(-height)
	case tcell.KeyPgDn:
		v.scroll(height)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 't':
			// A theme change only moves the lightness samples; the
			// index is untouched and the next draw recolors.
			v.themes.Cycle()
		case 'r':
			v.session.Refresh(nil)
		case 'k':
			v.scroll(-1)
		case 'j':
			v.scroll(1)
		}
	}
	return false
}

func (v *viewer) scroll(delta int) {
	v.top += delta
	if v.top > len(v.lines)-1 {
		v.top = len(v.lines) - 1
	}
	if v.top < 0 {
		v.top = 0
	}
}

// draw renders the visible region and paints it.
func (v *viewer) draw() {
	t := v.themes.Current()
	base := tcell.StyleDefault.
		Foreground(toTcell(t.Foreground)).
		Background(toTcell(t.Background))
	v.screen.SetStyle(base)
	v.screen.Clear()

	width, height := v.screen.Size()
	last := v.top + height
	if last > len(v.lines) {
		last = len(v.lines)
	}
	if v.top >= last {
		v.screen.Show()
		return
	}

	// One render per visible region, mirroring a host display pipeline.
	start := v.lines[v.top].Start
	limit := v.lines[last-1].End
	spans := v.session.Render(start, limit,
		t.ForegroundLightness(), t.BackgroundLightness(), nil)

	for row, line := 0, v.top; line < last; row, line = row+1, line+1 {
		v.drawLine(row, width, v.lines[line], spans, base)
	}
	v.screen.Show()
}

// drawLine paints one line, applying identifier colors where spans
// cover the text.
func (v *viewer) drawLine(row, width int, line core.Span, spans []core.StyleSpan, base tcell.Style) {
	lineText := v.doc.Slice(line.Start, line.End)
	x := 0
	g := uniseg.NewGraphemes(lineText)
	for g.Next() && x < width {
		off, _ := g.Positions()
		runes := g.Runes()

		if runes[0] == '\t' {
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next && x < width; x++ {
				v.screen.SetContent(x, row, ' ', nil, base)
			}
			continue
		}

		style := base
		if s, ok := styleAt(spans, line.Start+off); ok {
			style = style.Foreground(toTcell(s.Foreground))
		}
		v.screen.SetContent(x, row, runes[0], runes[1:], style)

		w := uniseg.StringWidth(g.Str())
		if w < 1 {
			w = 1
		}
		x += w
	}
}

// styleAt returns the rendered style covering the given offset, if any.
// Spans arrive ordered by start offset.
func styleAt(spans []core.StyleSpan, off int) (core.Style, bool) {
	for _, s := range spans {
		if s.Contains(off) {
			return s.Style, true
		}
		if s.Start > off {
			break
		}
	}
	return core.Style{}, false
}

func toTcell(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
