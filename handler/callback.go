package handler

import (
	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
)

// CallbackFunc receives the formatted record "{timestamp}: {message}"
// and the argument supplied when the handler was created.
type CallbackFunc func(msg string, arg any)

// CallbackHandler hands every record to an application callback.
// It owns nothing; Close is a no-op.
type CallbackHandler struct {
	fn        CallbackFunc
	arg       any
	formatter *formatter.TextFormatter
	stats     *Stats
}

// NewCallbackHandler creates a callback handler. A nil fn makes Handle
// a no-op.
func NewCallbackHandler(fn CallbackFunc, arg any) *CallbackHandler {
	return &CallbackHandler{
		fn:        fn,
		arg:       arg,
		formatter: formatter.NewTextFormatter(formatter.Config{}),
		stats:     NewStats(),
	}
}

// Handle formats the record without a trailing newline and invokes the
// callback. Panics raised by the callback propagate to the caller.
func (h *CallbackHandler) Handle(entry *core.Entry) error {
	if h.fn == nil {
		return nil
	}
	h.fn(h.formatter.FormatString(entry), h.arg)
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *CallbackHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close releases nothing
func (h *CallbackHandler) Close() error {
	return nil
}
