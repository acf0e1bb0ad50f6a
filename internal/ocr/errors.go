package ocr

import (
	"errors"
	"fmt"
)

// Common pipeline errors. Every failure surfaced by this package wraps exactly
// one of these sentinels so callers can classify it with errors.Is.
var (
	// ErrInvalidInput is returned for missing, empty, or truncated uploads.
	ErrInvalidInput = errors.New("invalid input: missing or truncated file")

	// ErrUnsupportedFormat is returned when neither the declared content type
	// nor the filename extension resolves to a supported format.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrOversizedInput is returned when the upload exceeds the configured
	// byte limit or a structural limit (page count, page/pixel dimensions).
	ErrOversizedInput = errors.New("input exceeds processing limits")

	// ErrCorruptStructure is returned for signature mismatches, failed
	// structural parses, and failed image decodes.
	ErrCorruptStructure = errors.New("corrupt or malformed file structure")

	// ErrProcessingFailed is returned when the recognition or rasterization
	// engine fails on an otherwise valid input. It indicates an engine or
	// environment problem rather than a bad upload.
	ErrProcessingFailed = errors.New("text recognition processing failed")
)

// PipelineError wraps errors with additional context about the failure.
type PipelineError struct {
	// Op is the operation that failed (e.g., "Validate", "Extract").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *PipelineError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewPipelineError creates a new PipelineError with the specified operation and underlying error.
func NewPipelineError(op string, err error, details string) *PipelineError {
	return &PipelineError{
		Op:      op,
		Err:     err,
		Details: details,
	}
}

// WrapError wraps an error as a PipelineError if it isn't already one.
func WrapError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var perr *PipelineError
	if errors.As(err, &perr) {
		return err // Already wrapped
	}

	return NewPipelineError(op, err, details)
}
