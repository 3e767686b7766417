package profile

import (
	"fmt"
	"sync"

	"github.com/dshills/identicolor/internal/ident/face"
)

// Registry manages available lexical profiles.
type Registry struct {
	mu sync.RWMutex

	// byLanguage maps language ids to profiles
	byLanguage map[string]*Profile

	// byExtension maps file extensions to profiles
	byExtension map[string]*Profile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]*Profile),
		byExtension: make(map[string]*Profile),
	}
}

// Register compiles and adds a profile. A compilation failure is scoped
// to this one profile; previously registered profiles are unaffected.
func (r *Registry) Register(spec Spec) error {
	p, err := Compile(spec)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLanguage[spec.Language]; ok {
		return fmt.Errorf("profile %q: %w", spec.Language, ErrAlreadyRegistered)
	}
	r.byLanguage[spec.Language] = p
	for _, ext := range spec.Extensions {
		if ext != "" && ext[0] != '.' {
			ext = "." + ext
		}
		r.byExtension[ext] = p
	}
	return nil
}

// Get returns the profile for the given language id.
func (r *Registry) Get(language string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byLanguage[language]
	return p, ok
}

// GetByExtension returns the profile handling the given file extension.
func (r *Registry) GetByExtension(ext string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ext == "" {
		return nil, false
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	p, ok := r.byExtension[ext]
	return p, ok
}

// Languages returns all registered language ids.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	return langs
}

// wordIdentifier is the identifier pattern shared by the builtin
// profiles: a word that does not start with a digit.
const wordIdentifier = `([A-Za-z_][A-Za-z0-9_]*)`

// RegisterBuiltins registers profiles for the built-in languages.
// Identifiers are recognized on variable-like faces. The context pattern
// requires a word start that is not a member access: the anchored match
// cannot see text behind its position, so the word boundary lives here
// rather than in the identifier pattern.
func RegisterBuiltins(r *Registry) error {
	specs := []Spec{
		{
			Language:   "go",
			Extensions: []string{".go"},
			Context:    `^|[^.\w]`,
			Identifier: wordIdentifier,
			Faces:      face.NewSet(face.Variable, face.Parameter),
		},
		{
			Language:   "python",
			Extensions: []string{".py", ".pyw", ".pyi"},
			Context:    `^|[^.\w]`,
			Identifier: wordIdentifier,
			Faces:      face.NewSet(face.Variable, face.Parameter),
		},
		{
			Language:   "javascript",
			Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"},
			Context:    `^|[^.\w]`,
			Identifier: wordIdentifier,
			Faces:      face.NewSet(face.Variable, face.Parameter),
		},
		{
			Language:   "rust",
			Extensions: []string{".rs"},
			Context:    `^|[^.\w]`,
			Identifier: wordIdentifier,
			Faces:      face.NewSet(face.Variable, face.Parameter),
		},
	}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRegistry returns a registry with the built-in profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		// Builtin specs are constants; a failure here is a programming error.
		panic(err)
	}
	return r
}
