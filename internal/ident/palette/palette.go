// Package palette generates the per-slot identifier colors. Colors are
// produced in CIE Lab so their perceived brightness and saturation stay
// comparable across hues, then converted to sRGB for display.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/identicolor/internal/ident/core"
)

// Lightness and chroma bounds. Lightness follows the foreground so
// generated colors stay readable on the active theme; chroma follows the
// background so contrast scales with theme darkness.
const (
	MinLightness = 45
	MaxLightness = 80
	MinChroma    = 30
	MaxChroma    = 60
)

// Color returns the display color for a palette slot. It is pure and
// deterministic: identical arguments always produce the identical color.
//
// fgLightness and bgLightness are Lab L* values in [0, 100] sampled from
// the active theme's foreground and background.
//
// The hue angle spans only half the color wheel, [0, π). Widening it
// would change every generated color, so it stays put until a product
// decision says otherwise, at the cost of less distinguishable colors
// for large slot counts.
func Color(slot, n int, fgLightness, bgLightness float64) core.Color {
	if n < 1 {
		n = 1
	}

	l := clamp(fgLightness, MinLightness, MaxLightness)
	c := clamp(bgLightness, MinChroma, MaxChroma)
	hue := float64(slot) / float64(n) * math.Pi
	a := c * math.Cos(hue)
	b := c * math.Sin(hue)

	// go-colorful scales Lab down by 100 relative to the usual ranges.
	// Clamped pulls out-of-gamut channels back into range.
	col := colorful.Lab(l/100, a/100, b/100).Clamped()
	r, g, bb := col.RGB255()
	return core.ColorFromRGB(r, g, bb)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
