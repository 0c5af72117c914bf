package usecase

import (
	"errors"
	"fmt"
)

// ErrorKind classifies export failures. Every failure crossing the export
// boundary is one of these; callers either get a complete byte buffer or an
// error carrying a kind, never partial output.
type ErrorKind string

const (
	// KindInput: the model is structurally invalid. Recoverable — the
	// resolver falls back to defaults instead of failing the export.
	KindInput ErrorKind = "input"
	// KindRender: the external rendering process failed to launch, load or
	// print. Surfaced to the user as a retryable export failure.
	KindRender ErrorKind = "render"
	// KindSerialization: document-tree-to-bytes conversion failed. A
	// programming-error class given validated construction.
	KindSerialization ErrorKind = "serialization"
	// KindSnapshot: the visual surface to rasterize is missing or empty.
	KindSnapshot ErrorKind = "snapshot"
)

// ExportError carries a kind, a human-readable message and an optional cause.
type ExportError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ExportError) Unwrap() error { return e.Cause }

// NewError builds an ExportError.
func NewError(kind ErrorKind, message string, cause error) *ExportError {
	return &ExportError{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is an ExportError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ee *ExportError
	if errors.As(err, &ee) {
		return ee.Kind == kind
	}
	return false
}
