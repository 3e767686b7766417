package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the file is not valid JSON.
	ErrInvalidConfig = errors.New("config file is not valid JSON")

	// ErrInvalidValue indicates a setting value is out of range.
	ErrInvalidValue = errors.New("invalid setting value")
)
