// Package main is the entry point for the identicolor viewer: it opens
// a source file and displays it with every distinct identifier in its
// own stable color.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/identicolor/internal/config"
	"github.com/dshills/identicolor/internal/ident/face"
	"github.com/dshills/identicolor/internal/ident/profile"
	"github.com/dshills/identicolor/internal/ident/session"
	"github.com/dshills/identicolor/internal/ident/text"
	"github.com/dshills/identicolor/internal/ident/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var themeName string
	var paletteSize int
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&themeName, "theme", "", "Theme name (overrides configuration)")
	flag.IntVar(&paletteSize, "n", 0, "Palette size (overrides configuration)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "identicolor - view source with per-identifier colors\n\n")
		fmt.Fprintf(os.Stderr, "Usage: identicolor [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: q/Esc quit, t cycle theme, r refresh, arrows/PgUp/PgDn scroll\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("identicolor %s (%s)\n", version, commit)
		return 0
	}
	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	settings := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil && !errors.Is(err, config.ErrFileNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings = loaded
	}
	if themeName != "" {
		settings.Theme = themeName
	}
	if paletteSize > 0 {
		settings.PaletteSize = paletteSize
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	themes := theme.NewRegistry()
	if !themes.SetCurrent(settings.Theme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q (have: %v)\n", settings.Theme, themes.Names())
		return 1
	}

	registry := profile.DefaultRegistry()
	ext := filepath.Ext(path)

	doc := text.NewDocument(string(content))
	language := ""
	if p, ok := registry.GetByExtension(ext); ok {
		language = p.Language()
	}
	if c, ok := face.ClassifierForExtension(ext); ok {
		doc = text.Classify(string(content), c)
	}

	sess := session.New(doc, registry, language,
		session.WithPaletteSize(settings.PaletteSize))
	sess.Refresh(nil)

	v, err := newViewer(doc, sess, themes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := v.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
