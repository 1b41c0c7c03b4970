package filehandler

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
	"github.com/philipp01105/tinylog/handler"
)

// RotatingConfig holds configuration for the rotating file handler
type RotatingConfig struct {
	// Filename is the path to the active log file
	Filename string
	// MaxSize is the byte count that triggers rotation once exceeded
	// (0 or negative = never rotate)
	MaxSize int64
	// RetainCount is the number of numbered backups shifted on rotation
	RetainCount int
	// Formatter to use (default: formatter.NewLineFormatter())
	Formatter formatter.Formatter
	// BufferSize enables a bufio.Writer of this size (0 = unbuffered).
	// Buffered bytes count towards MaxSize as soon as they are accepted.
	BufferSize int
	// FileMode is used when files are created (default: 0644)
	FileMode os.FileMode
}

// applyRotatingDefaults fills in zero-value fields with defaults.
func applyRotatingDefaults(cfg *RotatingConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter()
	}
	if cfg.BufferSize < 0 {
		cfg.BufferSize = 0
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}
}

// RotatingFileHandler writes records to a file and rotates it once it
// grows past MaxSize.
type RotatingFileHandler struct {
	mu              sync.Mutex
	filename        string
	file            *os.File      // nil after a failed reopen
	bufWriter       *bufio.Writer // nil when unbuffered
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	syncBuf         bytes.Buffer
	maxSize         int64
	retainCount     int
	fileMode        os.FileMode
	bufferSize      int
	currentSize     int64
	stats           *handler.Stats
	closed          bool
}

// NewRotatingFileHandler opens cfg.Filename in append mode and seeds the
// size counter from the file on disk. Open or stat failures return a
// *handler.OpenError and leave nothing open.
func NewRotatingFileHandler(cfg RotatingConfig) (*RotatingFileHandler, error) {
	if cfg.Filename == "" {
		return nil, &handler.OpenError{Op: "open", Err: handler.ErrEmptyFilename}
	}
	if cfg.RetainCount < 0 {
		return nil, ErrInvalidRetainCount
	}
	applyRotatingDefaults(&cfg)

	h := &RotatingFileHandler{
		filename:    cfg.Filename,
		formatter:   cfg.Formatter,
		maxSize:     cfg.MaxSize,
		retainCount: cfg.RetainCount,
		fileMode:    cfg.FileMode,
		bufferSize:  cfg.BufferSize,
		stats:       handler.NewStats(),
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}

	if err := h.openAppend(); err != nil {
		return nil, err
	}
	return h, nil
}

// openAppend opens the base file for appending and seeds currentSize
// with its size on disk.
func (h *RotatingFileHandler) openAppend() error {
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.fileMode)
	if err != nil {
		return &handler.OpenError{Op: "open", Path: h.filename, Err: err}
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return &handler.OpenError{Op: "stat", Path: h.filename, Err: err}
	}

	h.setFile(file)
	h.currentSize = info.Size()
	return nil
}

// setFile points the write path at file
func (h *RotatingFileHandler) setFile(file *os.File) {
	h.file = file
	if h.bufferSize > 0 {
		if h.bufWriter == nil {
			h.bufWriter = bufio.NewWriterSize(file, h.bufferSize)
		} else {
			h.bufWriter.Reset(file)
		}
	}
}

// Handle writes one record and rotates if the file has grown past
// MaxSize. A record is never split across files.
func (h *RotatingFileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}

	if h.file == nil {
		// A previous rotation could not reopen the base file
		if err := h.openAppend(); err != nil {
			h.stats.IncrementWriteErrors()
			return errors.Wrap(err, "filehandler: reopen")
		}
	}

	var data []byte
	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		data = h.syncBuf.Bytes()
	} else {
		var err error
		if data, err = h.formatter.Format(entry); err != nil {
			return errors.Wrap(err, "filehandler: format")
		}
	}

	var n int
	var err error
	if h.bufWriter != nil {
		n, err = h.bufWriter.Write(data)
	} else {
		n, err = h.file.Write(data)
	}
	h.currentSize += int64(n)
	h.stats.AddBytes(n)
	if err != nil {
		h.stats.IncrementWriteErrors()
		err = errors.Wrapf(err, "filehandler: write %s", h.filename)
	} else {
		h.stats.IncrementProcessed()
	}

	if h.maxSize > 0 && h.currentSize > h.maxSize {
		err = multierr.Append(err, h.rotate())
	}
	return err
}

// Rotate forces a rotation regardless of the current size.
func (h *RotatingFileHandler) Rotate() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}
	return h.rotate()
}

// rotate closes the active file, shifts the numbered backups up by one
// and reopens the base file truncated. Must be called with mu held.
func (h *RotatingFileHandler) rotate() error {
	if h.file != nil {
		if h.bufWriter != nil {
			if err := h.bufWriter.Flush(); err != nil {
				h.stats.IncrementWriteErrors()
			}
		}
		err := h.file.Close()
		h.file = nil
		if err != nil {
			h.stats.IncrementRotationErrors()
			return errors.Wrapf(err, "filehandler: close %s", h.filename)
		}
	}

	// Oldest first so no generation is overwritten before it moves
	for i := h.retainCount; i > 0; i-- {
		oldPath := BackupName(h.filename, i)
		newPath := BackupName(h.filename, i+1)
		if err := os.Rename(oldPath, newPath); err != nil && !os.IsNotExist(err) {
			h.stats.IncrementRotationErrors()
			return errors.Wrapf(err, "filehandler: rename %s", oldPath)
		}
	}

	if err := os.Rename(h.filename, BackupName(h.filename, 1)); err != nil && !os.IsNotExist(err) {
		h.stats.IncrementRotationErrors()
		return errors.Wrapf(err, "filehandler: rename %s", h.filename)
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, h.fileMode)
	if err != nil {
		h.stats.IncrementRotationErrors()
		return errors.Wrapf(err, "filehandler: reopen %s", h.filename)
	}

	h.setFile(file)
	h.currentSize = 0
	h.stats.IncrementRotations()
	return nil
}

// BackupName returns the path of backup generation n of filename.
func BackupName(filename string, n int) string {
	return filename + "." + strconv.Itoa(n)
}

// Flush pushes buffered output to the file
func (h *RotatingFileHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.bufWriter == nil || h.file == nil || h.closed {
		return nil
	}
	return errors.Wrap(h.bufWriter.Flush(), "filehandler: flush")
}

// Size returns the byte count accumulated since the last rotation or open
func (h *RotatingFileHandler) Size() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentSize
}

// Filename returns the path of the active file
func (h *RotatingFileHandler) Filename() string {
	return h.filename
}

// Stats returns a snapshot of the current statistics
func (h *RotatingFileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes and closes the active file. Calling Close twice is a
// no-op.
func (h *RotatingFileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.file == nil {
		return nil
	}
	var flushErr error
	if h.bufWriter != nil {
		flushErr = h.bufWriter.Flush()
	}
	closeErr := h.file.Close()
	h.file = nil
	if flushErr != nil {
		return errors.Wrap(flushErr, "filehandler: flush")
	}
	return errors.Wrap(closeErr, "filehandler: close")
}
