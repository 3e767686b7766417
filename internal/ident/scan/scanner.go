// Package scan locates identifier spans within a region of annotated
// text. Scanning is incremental in practice: runs of text whose face
// cannot carry an identifier are skipped in one jump per run instead of
// being pattern-matched position by position.
package scan

import (
	"github.com/dshills/identicolor/internal/ident/core"
	"github.com/dshills/identicolor/internal/ident/profile"
	"github.com/dshills/identicolor/internal/ident/text"
)

// Visitor receives each identifier span as it is found.
type Visitor func(span core.Span)

// Region scans [start, limit) of doc and calls visit for each identifier
// span, in order. Each call starts fresh from start; a scan is not
// restartable mid-sequence.
//
// cont, when non-nil, is polled before every iteration; a false result
// ends the scan immediately. That is normal termination, as is reaching
// limit or exhausting the forward search. The return value reports
// whether the scan ran to completion rather than being cancelled.
//
// Finding nothing is an empty but valid result, never an error.
func Region(doc text.Annotated, p *profile.Profile, start, limit int, cont func() bool, visit Visitor) (completed bool) {
	if limit > doc.Len() {
		limit = doc.Len()
	}
	pos := start
	if pos < 0 {
		pos = 0
	}

	for {
		if cont != nil && !cont() {
			return false
		}
		if pos >= limit {
			return true
		}

		// Text whose face cannot carry an identifier is skipped in one
		// jump, unless a previous render already colored it: the colored
		// marker keeps such spans recognizable even after the host
		// reclassifies them.
		if !p.Eligible(doc.FaceAt(pos)) && !doc.Colored(pos) {
			pos = doc.NextChange(pos, limit)
			continue
		}

		// Anchored attempt: context behind the position, identifier at it.
		if p.ContextMatches(doc.Slice(0, pos)) {
			if capStart, capEnd, _, ok := p.MatchAt(doc.Slice(pos, limit)); ok {
				visit(core.Span{Start: pos + capStart, End: pos + capEnd})
				pos += capEnd
				continue
			}
		}

		// False start. Resynchronize on the identifier pattern's next
		// occurrence without re-scanning what was already skipped.
		next, ok := p.Search(doc.Slice(pos+1, limit))
		if !ok {
			return true
		}
		pos += 1 + next
	}
}

// All scans the whole document.
func All(doc text.Annotated, p *profile.Profile, cont func() bool, visit Visitor) (completed bool) {
	return Region(doc, p, 0, doc.Len(), cont, visit)
}
