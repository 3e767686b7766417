// Package profile defines per-language lexical profiles and their
// registry. A profile tells the scanner what an identifier looks like in
// a given language and which face classes may carry one.
package profile

import (
	"fmt"
	"regexp"

	"github.com/dshills/identicolor/internal/ident/face"
)

// Spec describes a lexical profile before compilation.
type Spec struct {
	// Language is the language id the profile is registered under.
	Language string

	// Extensions are the file extensions handled by this language.
	Extensions []string

	// Context is an optional pattern the text immediately preceding an
	// identifier must match. Empty means no context requirement.
	Context string

	// Identifier is the pattern locating identifiers. It must contain
	// exactly one capture group delimiting the identifier itself.
	Identifier string

	// Faces are the face classes that may carry an identifier. Including
	// face.None means unclassified text also qualifies.
	Faces face.Set
}

// Profile is a compiled, immutable lexical profile.
type Profile struct {
	language string
	faces    face.Set

	// context matches at the end of the text preceding a candidate
	// position. Nil when the spec has no context requirement.
	context *regexp.Regexp

	// identAt matches the identifier pattern anchored at a position.
	identAt *regexp.Regexp

	// identSearch finds the identifier pattern's next occurrence.
	identSearch *regexp.Regexp
}

// Compile compiles a profile spec. A malformed pattern yields an error
// scoped to this one profile.
func Compile(spec Spec) (*Profile, error) {
	if spec.Language == "" {
		return nil, fmt.Errorf("profile: %w", ErrNoLanguage)
	}
	if spec.Identifier == "" {
		return nil, fmt.Errorf("profile %q: %w", spec.Language, ErrNoIdentifierPattern)
	}

	identSearch, err := regexp.Compile(spec.Identifier)
	if err != nil {
		return nil, fmt.Errorf("profile %q: identifier pattern: %w", spec.Language, err)
	}
	if identSearch.NumSubexp() != 1 {
		return nil, fmt.Errorf("profile %q: %w (got %d)",
			spec.Language, ErrCaptureCount, identSearch.NumSubexp())
	}
	identAt, err := regexp.Compile(`\A(?:` + spec.Identifier + `)`)
	if err != nil {
		return nil, fmt.Errorf("profile %q: identifier pattern: %w", spec.Language, err)
	}

	var context *regexp.Regexp
	if spec.Context != "" {
		context, err = regexp.Compile(`(?:` + spec.Context + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("profile %q: context pattern: %w", spec.Language, err)
		}
	}

	return &Profile{
		language:    spec.Language,
		faces:       spec.Faces,
		context:     context,
		identAt:     identAt,
		identSearch: identSearch,
	}, nil
}

// Language returns the language id.
func (p *Profile) Language() string {
	return p.language
}

// Eligible reports whether a position with the given face may carry an
// identifier under this profile.
func (p *Profile) Eligible(f face.Face) bool {
	return p.faces.Has(f)
}

// contextWindow bounds the lookbehind applied when checking the context
// pattern. Context patterns describe at most a few preceding characters.
const contextWindow = 64

// ContextMatches reports whether the text immediately preceding the
// position satisfies the context pattern. A profile without a context
// pattern always matches.
func (p *Profile) ContextMatches(preceding string) bool {
	if p.context == nil {
		return true
	}
	if len(preceding) > contextWindow {
		preceding = preceding[len(preceding)-contextWindow:]
	}
	return p.context.MatchString(preceding)
}

// MatchAt attempts an anchored identifier match at the start of rest.
// It returns the capture group bounds relative to rest, and the end of
// the whole match.
func (p *Profile) MatchAt(rest string) (capStart, capEnd, matchEnd int, ok bool) {
	m := p.identAt.FindStringSubmatchIndex(rest)
	if m == nil || m[2] < 0 || m[3] <= m[2] {
		return 0, 0, 0, false
	}
	return m[2], m[3], m[1], true
}

// Search finds the next occurrence of the identifier pattern in rest,
// returning the occurrence's start relative to rest.
func (p *Profile) Search(rest string) (start int, ok bool) {
	loc := p.identSearch.FindStringIndex(rest)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}
