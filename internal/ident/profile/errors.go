package profile

import "errors"

// Errors returned by profile compilation and registration.
var (
	// ErrNoLanguage indicates a spec without a language id.
	ErrNoLanguage = errors.New("missing language id")

	// ErrNoIdentifierPattern indicates a spec without an identifier pattern.
	ErrNoIdentifierPattern = errors.New("missing identifier pattern")

	// ErrCaptureCount indicates an identifier pattern whose capture group
	// count is not exactly one.
	ErrCaptureCount = errors.New("identifier pattern must have exactly one capture group")

	// ErrAlreadyRegistered indicates a duplicate language registration.
	ErrAlreadyRegistered = errors.New("language already registered")
)
