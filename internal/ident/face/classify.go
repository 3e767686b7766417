package face

import (
	"regexp"
	"sort"
	"unicode"
)

// Rule defines a classification rule.
type Rule struct {
	// Pattern is the regex pattern to match.
	Pattern *regexp.Regexp

	// Face is the face to assign to matches.
	Face Face

	// Submatch is the submatch index to use (0 for the whole match).
	Submatch int
}

// Span is a classified range of text.
type Span struct {
	Start int
	End   int
	Face  Face
}

// Classifier is a simple regex and keyword based face classifier.
// It stands in for the host syntax highlighter: it decides which runs of
// text are comments, strings, keywords, or plain identifiers.
type Classifier struct {
	language   string
	extensions []string
	rules      []Rule
	keywords   map[string]Face
	identFace  Face
}

// NewClassifier creates a classifier for the given language.
func NewClassifier(language string, extensions []string) *Classifier {
	return &Classifier{
		language:   language,
		extensions: extensions,
		keywords:   make(map[string]Face),
		identFace:  Variable,
	}
}

// AddRule adds a classification rule. The pattern is matched over the
// whole text, so multi-line constructs work with the (?s) flag.
func (c *Classifier) AddRule(pattern string, f Face) *Classifier {
	c.rules = append(c.rules, Rule{
		Pattern: regexp.MustCompile(pattern),
		Face:    f,
	})
	return c
}

// AddKeywords adds keywords classified with a specific face.
func (c *Classifier) AddKeywords(f Face, keywords ...string) *Classifier {
	for _, kw := range keywords {
		c.keywords[kw] = f
	}
	return c
}

// SetIdentifierFace sets the face assigned to non-keyword identifiers.
func (c *Classifier) SetIdentifierFace(f Face) *Classifier {
	c.identFace = f
	return c
}

// Language returns the language name.
func (c *Classifier) Language() string {
	return c.language
}

// FileExtensions returns the supported file extensions.
func (c *Classifier) FileExtensions() []string {
	return c.extensions
}

// Classify classifies the whole text and returns spans sorted by start.
// Earlier rules win: a region claimed by one rule is not reclassified.
func (c *Classifier) Classify(text string) []Span {
	spans := make([]Span, 0)
	covered := make([]bool, len(text))

	for _, rule := range c.rules {
		matches := rule.Pattern.FindAllStringSubmatchIndex(text, -1)
		for _, match := range matches {
			start, end := match[0], match[1]
			if rule.Submatch > 0 && len(match) > rule.Submatch*2+1 {
				start = match[rule.Submatch*2]
				end = match[rule.Submatch*2+1]
			}
			if start < 0 || end <= start || isCovered(covered, start, end) {
				continue
			}
			spans = append(spans, Span{Start: start, End: end, Face: rule.Face})
			markCovered(covered, start, end)
		}
	}

	spans = append(spans, c.classifyWords(text, covered)...)

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return spans
}

// classifyWords walks uncovered text and classifies identifier-shaped
// words as keywords or plain identifiers.
func (c *Classifier) classifyWords(text string, covered []bool) []Span {
	spans := make([]Span, 0)

	i := 0
	for i < len(text) {
		if covered[i] {
			i++
			continue
		}
		r := rune(text[i])
		if !unicode.IsLetter(r) && r != '_' {
			i++
			continue
		}
		start := i
		for i < len(text) {
			r = rune(text[i])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			i++
		}
		end := i
		if isCovered(covered, start, end) {
			continue
		}
		f := c.identFace
		if kf, ok := c.keywords[text[start:end]]; ok {
			f = kf
		}
		spans = append(spans, Span{Start: start, End: end, Face: f})
		markCovered(covered, start, end)
	}

	return spans
}

func isCovered(covered []bool, start, end int) bool {
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered []bool, start, end int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
