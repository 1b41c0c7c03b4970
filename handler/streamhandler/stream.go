package streamhandler

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
	"github.com/philipp01105/tinylog/handler"
)

// StreamConfig holds configuration for a handler over a borrowed writer
type StreamConfig struct {
	// Writer to write to (default: os.Stderr). It is never closed.
	Writer io.Writer
	// Formatter to use (default: formatter.NewLineFormatter())
	Formatter formatter.Formatter
	// BufferSize enables a bufio.Writer of this size (0 = unbuffered)
	BufferSize int
}

// applyStreamDefaults fills in zero-value fields with defaults.
func applyStreamDefaults(cfg *StreamConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter()
	}
	if cfg.BufferSize < 0 {
		cfg.BufferSize = 0
	}
}

// StreamHandler writes formatted records to a stream
type StreamHandler struct {
	mu              sync.Mutex
	out             io.Writer     // buf when buffered, otherwise the raw writer
	buf             *bufio.Writer // nil when unbuffered
	closer          io.Closer     // nil when the writer is borrowed
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	syncBuf         bytes.Buffer
	stats           *handler.Stats
	closed          bool
}

// NewStreamHandler creates a handler over a writer the caller keeps
// ownership of. It never fails.
func NewStreamHandler(cfg StreamConfig) *StreamHandler {
	applyStreamDefaults(&cfg)
	return newStreamHandler(cfg.Writer, nil, cfg.Formatter, cfg.BufferSize)
}

func newStreamHandler(w io.Writer, closer io.Closer, f formatter.Formatter, bufferSize int) *StreamHandler {
	h := &StreamHandler{
		out:       w,
		closer:    closer,
		formatter: f,
		stats:     handler.NewStats(),
	}
	if bufferSize > 0 {
		h.buf = bufio.NewWriterSize(w, bufferSize)
		h.out = h.buf
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = f.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}
	return h
}

// Handle writes one record. A failed or partial write is counted and
// returned; nothing is retried.
func (h *StreamHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}

	var data []byte
	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		data = h.syncBuf.Bytes()
	} else {
		var err error
		if data, err = h.formatter.Format(entry); err != nil {
			return errors.Wrap(err, "streamhandler: format")
		}
	}

	n, err := h.out.Write(data)
	h.stats.AddBytes(n)
	if err != nil {
		h.stats.IncrementWriteErrors()
		return errors.Wrap(err, "streamhandler: write")
	}
	h.stats.IncrementProcessed()
	return nil
}

// Flush pushes buffered output to the writer. It is a no-op for
// unbuffered handlers.
func (h *StreamHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flushLocked()
}

func (h *StreamHandler) flushLocked() error {
	if h.buf == nil || h.closed {
		return nil
	}
	if err := h.buf.Flush(); err != nil {
		h.stats.IncrementWriteErrors()
		return errors.Wrap(err, "streamhandler: flush")
	}
	return nil
}

// Owned reports whether Close closes the underlying stream
func (h *StreamHandler) Owned() bool {
	return h.closer != nil
}

// Stats returns a snapshot of the current statistics
func (h *StreamHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes pending output and closes the stream if the handler
// opened it. Calling Close twice is a no-op.
func (h *StreamHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	flushErr := h.flushLocked()
	h.closed = true

	if h.closer == nil {
		return flushErr
	}
	if err := h.closer.Close(); err != nil {
		return errors.Wrap(err, "streamhandler: close")
	}
	return flushErr
}
