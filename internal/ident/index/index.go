// Package index owns the identifier-to-slot mapping for one document
// state. The mapping is rebuilt wholesale by each refresh pass, never
// merged, and slots carry no information about the identifier's content:
// they are assigned in strict first-seen order, round-robin over the
// palette.
package index

import (
	"github.com/dshills/identicolor/internal/ident/core"
	"github.com/dshills/identicolor/internal/ident/profile"
	"github.com/dshills/identicolor/internal/ident/scan"
	"github.com/dshills/identicolor/internal/ident/text"
)

// Index maps identifier strings (exact, case-sensitive) to palette slots.
type Index struct {
	slots map[string]int
	order []string
	size  int
}

// New creates an empty index over a palette of the given size.
func New(size int) *Index {
	if size < 1 {
		size = 1
	}
	return &Index{
		slots: make(map[string]int),
		size:  size,
	}
}

// Lookup returns the slot assigned to an identifier. A miss means the
// identifier was not seen by the pass that built this index.
func (x *Index) Lookup(name string) (int, bool) {
	slot, ok := x.slots[name]
	return slot, ok
}

// Add records an identifier. The first sighting of a distinct string
// claims the next slot, wrapping once every slot has been claimed;
// repeat sightings are no-ops.
func (x *Index) Add(name string) {
	if _, ok := x.slots[name]; ok {
		return
	}
	x.slots[name] = len(x.order) % x.size
	x.order = append(x.order, name)
}

// Len returns the number of distinct identifiers indexed.
func (x *Index) Len() int {
	return len(x.order)
}

// Size returns the palette size the index assigns slots over.
func (x *Index) Size() int {
	return x.size
}

// Identifiers returns the indexed identifiers in first-seen order.
func (x *Index) Identifiers() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// Build runs a full-document scan into a fresh index. If the scan is
// cancelled partway the partial index is discarded and Build returns
// nil: callers swap in the result only on completion, so a cancelled
// pass never regresses a working index.
func Build(doc text.Annotated, p *profile.Profile, size int, cont func() bool) (*Index, bool) {
	acc := New(size)
	completed := scan.All(doc, p, cont, func(span core.Span) {
		acc.Add(doc.Slice(span.Start, span.End))
	})
	if !completed {
		return nil, false
	}
	return acc, true
}
