// Package face provides text face classes and a regex-based classifier
// that stamps them onto a document. Face classes play the role of the host
// highlighter's annotations: they hint at where identifiers may appear.
package face

// Face represents the classification of a run of text.
type Face uint8

// Face classes.
const (
	// None means the text carries no classification at all.
	None Face = iota

	Comment
	String
	Number
	Keyword
	Operator
	Variable
	Parameter
	Function
	Type
	Constant

	// Sentinel for iteration.
	faceCount
)

// faceNames maps faces to their string names.
var faceNames = []string{
	None:      "none",
	Comment:   "comment",
	String:    "string",
	Number:    "number",
	Keyword:   "keyword",
	Operator:  "operator",
	Variable:  "variable",
	Parameter: "parameter",
	Function:  "function",
	Type:      "type",
	Constant:  "constant",
}

// String returns the string representation of a face.
func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "unknown"
}

// Set is a set of faces. Including None means unclassified text also
// qualifies wherever the set is used as an eligibility filter.
type Set uint32

// NewSet creates a set containing the given faces.
func NewSet(faces ...Face) Set {
	var s Set
	for _, f := range faces {
		s = s.With(f)
	}
	return s
}

// Has returns true if the set contains the given face.
func (s Set) Has(f Face) bool {
	return s&(1<<f) != 0
}

// With returns a new set with the given face added.
func (s Set) With(f Face) Set {
	return s | (1 << f)
}

// Without returns a new set with the given face removed.
func (s Set) Without(f Face) Set {
	return s &^ (1 << f)
}

// IsEmpty returns true if the set contains no faces.
func (s Set) IsEmpty() bool {
	return s == 0
}
