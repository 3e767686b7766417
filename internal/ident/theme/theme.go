// Package theme provides the display themes the viewer runs under and
// the lightness samples the palette generator needs. Only foreground and
// background matter here; identifier colors are generated, not themed.
package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/identicolor/internal/ident/core"
)

// Theme holds a display's foreground and background colors.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Foreground is the default text color.
	Foreground core.Color

	// Background is the display background color.
	Background core.Color
}

// ForegroundLightness returns the Lab L* (0-100) of the foreground.
func (t *Theme) ForegroundLightness() float64 {
	return Lightness(t.Foreground)
}

// BackgroundLightness returns the Lab L* (0-100) of the background.
func (t *Theme) BackgroundLightness() float64 {
	return Lightness(t.Background)
}

// Lightness returns the Lab L* (0-100) of a color.
func Lightness(c core.Color) float64 {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	l, _, _ := col.Lab()
	return l * 100
}

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	return &Theme{
		Name:       "Default Dark",
		Foreground: core.ColorFromRGB(212, 212, 212),
		Background: core.ColorFromRGB(30, 30, 30),
	}
}

// Light returns a light theme.
func Light() *Theme {
	return &Theme{
		Name:       "Light",
		Foreground: core.ColorFromRGB(0, 0, 0),
		Background: core.ColorFromRGB(255, 255, 255),
	}
}

// SolarizedDark returns a Solarized Dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Name:       "Solarized Dark",
		Foreground: core.ColorFromRGB(131, 148, 150),
		Background: core.ColorFromRGB(0, 43, 54),
	}
}

// Monokai returns a Monokai-inspired theme.
func Monokai() *Theme {
	return &Theme{
		Name:       "Monokai",
		Foreground: core.ColorFromRGB(248, 248, 242),
		Background: core.ColorFromRGB(39, 40, 34),
	}
}

// Registry holds available themes in registration order so the viewer
// can cycle through them.
type Registry struct {
	themes  []*Theme
	current int
}

// NewRegistry creates a registry with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(DefaultDark())
	r.Register(Monokai())
	r.Register(SolarizedDark())
	r.Register(Light())
	return r
}

// Register adds a theme.
func (r *Registry) Register(t *Theme) {
	r.themes = append(r.themes, t)
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	for _, t := range r.themes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Current returns the current theme.
func (r *Registry) Current() *Theme {
	return r.themes[r.current]
}

// SetCurrent sets the current theme by name.
func (r *Registry) SetCurrent(name string) bool {
	for i, t := range r.themes {
		if t.Name == name {
			r.current = i
			return true
		}
	}
	return false
}

// Cycle advances to the next theme and returns it.
func (r *Registry) Cycle() *Theme {
	r.current = (r.current + 1) % len(r.themes)
	return r.themes[r.current]
}

// Names returns all registered theme names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for _, t := range r.themes {
		names = append(names, t.Name)
	}
	return names
}
