package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Transcoder errors
	ErrMsgEmptyConfig = "empty configuration"
	ErrMsgParse       = "cannot parse configuration"
	ErrMsgGenerate    = "error generating configuration"

	// Document errors
	ErrMsgDocumentNotFound = "document not found"

	// Catalog errors
	ErrMsgVersionUnknown = "unknown game version"

	// Validation errors
	ErrMsgInvalidArgument = "invalid argument name"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrEmptyConfig is returned when the input text is empty or parses to
	// a null document.
	ErrEmptyConfig = errors.New(ErrMsgEmptyConfig)

	// ErrParse wraps YAML grammar failures. The input is not recoverable;
	// the underlying parser message is surfaced to the user verbatim.
	ErrParse = errors.New(ErrMsgParse)

	// ErrGenerate is the generic marker for unexpected serializer
	// failures. The serializer is total over valid settings, so seeing
	// this indicates a bug rather than bad user input.
	ErrGenerate = errors.New(ErrMsgGenerate)

	// Document errors
	ErrDocumentNotFound = errors.New(ErrMsgDocumentNotFound)

	// Catalog errors
	ErrVersionUnknown = errors.New(ErrMsgVersionUnknown)

	// Validation errors
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
