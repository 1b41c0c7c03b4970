package logger

import (
	"io"
	"sync"

	"github.com/philipp01105/tinylog/handler"
	"github.com/philipp01105/tinylog/handler/filehandler"
	"github.com/philipp01105/tinylog/handler/streamhandler"
)

var (
	defaultDispatcher = New()
	defaultMu         sync.RWMutex
)

// Default returns the process default dispatcher. It starts
// uninitialized, so nothing is logged until Init is called.
func Default() *Dispatcher {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultDispatcher
}

// SetDefault sets the default dispatcher
func SetDefault(d *Dispatcher) {
	if d == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDispatcher = d
}

// Package-level convenience functions using the default dispatcher

// Init initializes the default dispatcher with the given threshold
func Init(level Level) {
	Default().Init(level)
}

// AddCallbackHandler registers a callback handler on the default dispatcher
func AddCallbackHandler(fn handler.CallbackFunc, arg any) (*handler.CallbackHandler, error) {
	return Default().AddCallbackHandler(fn, arg)
}

// AddStreamHandler registers a stream handler on the default dispatcher
func AddStreamHandler(w io.Writer) (*streamhandler.StreamHandler, error) {
	return Default().AddStreamHandler(w)
}

// AddFileHandler registers a file handler on the default dispatcher
func AddFileHandler(filename string, append bool) (*streamhandler.StreamHandler, error) {
	return Default().AddFileHandler(filename, append)
}

// AddRotatingFileHandler registers a rotating file handler on the default dispatcher
func AddRotatingFileHandler(filename string, maxSize int64, retainCount int) (*filehandler.RotatingFileHandler, error) {
	return Default().AddRotatingFileHandler(filename, maxSize, retainCount)
}

// Remove removes and closes a handler registered on the default dispatcher
func Remove(h handler.Handler) error {
	return Default().Remove(h)
}

// Reset removes and closes every handler on the default dispatcher
func Reset() error {
	return Default().Reset()
}

// Logf logs at the given level using the default dispatcher
func Logf(level Level, format string, args ...interface{}) {
	Default().Logf(level, format, args...)
}

// Infof logs an info message using the default dispatcher
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Debugf logs a debug message using the default dispatcher
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}
