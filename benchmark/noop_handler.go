package benchmark

import (
	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler"
)

// noopHandler measures dispatch cost without formatting or I/O. The
// dispatcher owns the entry and returns it to the pool.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
