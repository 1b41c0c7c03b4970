package handler

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a handler is registered on a
	// dispatcher that has not been initialized.
	ErrNotInitialized = errors.New("handler: dispatcher not initialized")

	// ErrClosed is returned when writing to a handler after Close.
	ErrClosed = errors.New("handler: handler is closed")

	// ErrEmptyFilename is wrapped in an OpenError for file handlers
	// constructed without a filename.
	ErrEmptyFilename = errors.New("handler: filename is required")
)

// OpenError reports that a file-backed handler could not open its
// target file. No handler is registered when it is returned.
type OpenError struct {
	Op   string // "open" or "stat"
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("handler: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *OpenError) Unwrap() error {
	return e.Err
}

// IsOpenError reports whether err is or wraps an *OpenError.
func IsOpenError(err error) bool {
	var oe *OpenError
	return errors.As(err, &oe)
}
