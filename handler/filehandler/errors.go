package filehandler

import "errors"

var (
	// ErrInvalidRetainCount RetainCount must not be negative
	ErrInvalidRetainCount = errors.New("filehandler: invalid RetainCount")
)
