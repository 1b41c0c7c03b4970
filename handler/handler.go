package handler

import (
	"github.com/philipp01105/tinylog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle consumes a formatted record. Handlers must not retain the
	// entry after returning.
	Handle(entry *core.Entry) error
	// Close releases the resources the handler owns. Handlers that
	// borrow their output (a caller-supplied writer) leave it open.
	Close() error
}

// Flusher is implemented by handlers that may buffer output.
type Flusher interface {
	Flush() error
}

// StatsProvider is implemented by handlers that track write statistics.
type StatsProvider interface {
	Stats() Snapshot
}
