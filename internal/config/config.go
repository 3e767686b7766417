// Package config loads and saves the identicolor settings file. The
// settings are simple tunables; everything hard lives in the ident
// packages and takes its inputs explicitly.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/identicolor/internal/ident/session"
)

// Settings holds the user-tunable configuration.
type Settings struct {
	// PaletteSize is the number of distinct identifier colors.
	PaletteSize int

	// IdleDelay is the quiescence period before an automatic refresh.
	IdleDelay time.Duration

	// Theme is the display theme name.
	Theme string
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		PaletteSize: session.DefaultPaletteSize,
		IdleDelay:   session.DefaultIdleDelay,
		Theme:       "Default Dark",
	}
}

// Load reads settings from a JSON file. Missing keys keep their
// defaults; a missing file is reported via ErrFileNotFound so callers
// can fall back to Default.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, fmt.Errorf("config %q: %w", path, ErrFileNotFound)
		}
		return s, fmt.Errorf("config %q: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return s, fmt.Errorf("config %q: %w", path, ErrInvalidConfig)
	}

	if v := gjson.GetBytes(data, "palette.size"); v.Exists() {
		n := int(v.Int())
		if n < 1 {
			return s, fmt.Errorf("config %q: palette.size %d: %w", path, n, ErrInvalidValue)
		}
		s.PaletteSize = n
	}
	if v := gjson.GetBytes(data, "refresh.idle_delay_ms"); v.Exists() {
		ms := v.Int()
		if ms < 0 {
			return s, fmt.Errorf("config %q: refresh.idle_delay_ms %d: %w", path, ms, ErrInvalidValue)
		}
		s.IdleDelay = time.Duration(ms) * time.Millisecond
	}
	if v := gjson.GetBytes(data, "theme"); v.Exists() {
		s.Theme = v.String()
	}

	return s, nil
}

// Save writes settings to a JSON file.
func Save(path string, s Settings) error {
	out := "{}"
	var err error

	if out, err = sjson.Set(out, "palette.size", s.PaletteSize); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	if out, err = sjson.Set(out, "refresh.idle_delay_ms", s.IdleDelay.Milliseconds()); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	if out, err = sjson.Set(out, "theme", s.Theme); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	return nil
}
