package streamhandler

import (
	"os"

	"github.com/philipp01105/tinylog/formatter"
	"github.com/philipp01105/tinylog/handler"
)

// StreamFileConfig holds configuration for a handler that owns a file
type StreamFileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Append keeps existing content; otherwise the file is truncated
	Append bool
	// Formatter to use (default: formatter.NewLineFormatter())
	Formatter formatter.Formatter
	// BufferSize enables a bufio.Writer of this size (0 = unbuffered)
	BufferSize int
	// FileMode is used when the file is created (default: 0644)
	FileMode os.FileMode
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *StreamFileConfig) {
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

// NewFileHandler opens cfg.Filename and returns a handler that owns the
// file. If the open fails, a *handler.OpenError is returned.
func NewFileHandler(cfg StreamFileConfig) (*StreamHandler, error) {
	if cfg.Filename == "" {
		return nil, &handler.OpenError{Op: "open", Err: handler.ErrEmptyFilename}
	}
	applyFileDefaults(&cfg)

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(cfg.Filename, flags, cfg.FileMode)
	if err != nil {
		return nil, &handler.OpenError{Op: "open", Path: cfg.Filename, Err: err}
	}

	return newStreamHandler(file, file, cfg.Formatter, cfg.BufferSize), nil
}
