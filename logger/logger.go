package logger

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler"
	"github.com/philipp01105/tinylog/handler/filehandler"
	"github.com/philipp01105/tinylog/handler/streamhandler"
)

// Dispatcher holds the severity threshold and the ordered handler
// collection, and fans every accepted message out to the handlers.
//
// A Dispatcher starts uninitialized: messages are dropped and handlers
// cannot be registered until Init is called. One mutex guards the
// threshold and the collection and is held while handlers run, so
// handlers, callbacks and error hooks must not call back into the same
// Dispatcher.
type Dispatcher struct {
	mu          sync.Mutex
	initialized bool
	level       core.Level
	handlers    *handler.Chain
	clock       core.Clock
	onError     handler.ErrorHandler
	debugAtInfo bool
	stats       *handler.Stats
}

// Builder provides a fluent API for building Dispatcher instances
type Builder struct {
	clock       core.Clock
	onError     handler.ErrorHandler
	debugAtInfo bool
	level       *core.Level
}

// NewBuilder creates a new dispatcher builder
func NewBuilder() *Builder {
	return &Builder{
		clock:   core.SystemClock,
		onError: handler.SilentErrorHandler,
	}
}

// WithLevel initializes the built dispatcher with the given threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = &level
	return b
}

// WithClock sets the clock used to stamp records
func (b *Builder) WithClock(clock core.Clock) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// WithErrorHandler sets the hook that receives handler errors
func (b *Builder) WithErrorHandler(fn handler.ErrorHandler) *Builder {
	if fn != nil {
		b.onError = fn
	}
	return b
}

// WithDebugAtInfo makes Debugf dispatch at InfoLevel, so debug messages
// pass an info threshold. Off by default.
func (b *Builder) WithDebugAtInfo(enabled bool) *Builder {
	b.debugAtInfo = enabled
	return b
}

// Build creates the Dispatcher instance
func (b *Builder) Build() *Dispatcher {
	d := &Dispatcher{
		handlers:    handler.NewChain(),
		clock:       b.clock,
		onError:     b.onError,
		debugAtInfo: b.debugAtInfo,
		stats:       handler.NewStats(),
	}
	if b.level != nil {
		d.Init(*b.level)
	}
	return d
}

// New creates an uninitialized Dispatcher with default options
func New() *Dispatcher {
	return NewBuilder().Build()
}

// Init prepares the dispatcher on the first call and sets the severity
// threshold on every call. It never fails.
func (d *Dispatcher) Init(level core.Level) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialized = true
	d.level = level
}

// Initialized reports whether Init has been called
func (d *Dispatcher) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// Level returns the current severity threshold
func (d *Dispatcher) Level() core.Level {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.level
}

// Register appends h to the handler collection. Registering the same
// handler twice produces two entries.
func (d *Dispatcher) Register(h handler.Handler) error {
	if h == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return handler.ErrNotInitialized
	}
	d.handlers.Add(h)
	return nil
}

// checkInitialized lets constructors fail before opening any file
func (d *Dispatcher) checkInitialized() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return handler.ErrNotInitialized
	}
	return nil
}

// AddCallbackHandler registers a handler that calls fn with every
// formatted record and arg.
func (d *Dispatcher) AddCallbackHandler(fn handler.CallbackFunc, arg any) (*handler.CallbackHandler, error) {
	h := handler.NewCallbackHandler(fn, arg)
	if err := d.Register(h); err != nil {
		return nil, err
	}
	return h, nil
}

// AddStreamHandler registers a handler writing to w. The dispatcher
// never closes w.
func (d *Dispatcher) AddStreamHandler(w io.Writer) (*streamhandler.StreamHandler, error) {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: w})
	if err := d.Register(h); err != nil {
		return nil, err
	}
	return h, nil
}

// AddFileHandler opens filename, appending or truncating, and registers
// a handler that owns the file. Open failures return a
// *handler.OpenError.
func (d *Dispatcher) AddFileHandler(filename string, append bool) (*streamhandler.StreamHandler, error) {
	return addOwned(d, func() (*streamhandler.StreamHandler, error) {
		return streamhandler.NewFileHandler(streamhandler.StreamFileConfig{
			Filename: filename,
			Append:   append,
		})
	})
}

// AddRotatingFileHandler opens filename in append mode and registers a
// handler that rotates it once it grows past maxSize bytes, keeping
// retainCount numbered backups in the rename chain.
func (d *Dispatcher) AddRotatingFileHandler(filename string, maxSize int64, retainCount int) (*filehandler.RotatingFileHandler, error) {
	return addOwned(d, func() (*filehandler.RotatingFileHandler, error) {
		return filehandler.NewRotatingFileHandler(filehandler.RotatingConfig{
			Filename:    filename,
			MaxSize:     maxSize,
			RetainCount: retainCount,
		})
	})
}

// addOwned constructs a resource-owning handler and registers it,
// closing it again if registration fails.
func addOwned[H handler.Handler](d *Dispatcher, open func() (H, error)) (H, error) {
	var zero H
	if err := d.checkInitialized(); err != nil {
		return zero, err
	}
	h, err := open()
	if err != nil {
		return zero, err
	}
	if err := d.Register(h); err != nil {
		return zero, multierr.Append(err, h.Close())
	}
	return h, nil
}

// Remove takes h out of the collection, matching by identity, and then
// closes it. The close happens even when the dispatcher is not
// initialized or h was never registered, so owned files are never
// leaked.
func (d *Dispatcher) Remove(h handler.Handler) error {
	if h == nil {
		return nil
	}
	d.mu.Lock()
	if d.initialized {
		d.handlers.Remove(h)
	}
	d.mu.Unlock()

	return h.Close()
}

// Reset removes and closes every registered handler. The dispatcher
// stays initialized with its current threshold.
func (d *Dispatcher) Reset() error {
	d.mu.Lock()
	drained := d.handlers.Drain()
	d.mu.Unlock()

	var err error
	for _, h := range drained {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// Handlers returns the registered handlers in dispatch order
func (d *Dispatcher) Handlers() []handler.Handler {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handlers.Handlers()
}

// Stats returns dispatcher-level counters: records dispatched and
// handler errors reported.
func (d *Dispatcher) Stats() handler.Snapshot {
	return d.stats.GetSnapshot()
}

// Logf dispatches a message at the given level. Nothing is formatted
// when the dispatcher is not initialized or level is below the
// threshold. Handler errors are reported to the error hook and never
// returned.
func (d *Dispatcher) Logf(level core.Level, format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Level check optimization - exit early BEFORE any allocations
	if !d.initialized || !level.Enabled(d.level) {
		return
	}
	if d.handlers.Len() == 0 {
		return
	}

	entry := core.NewEntry(d.clock(), level, fmt.Sprintf(format, args...))
	if err := d.handlers.Handle(entry); err != nil {
		for _, e := range multierr.Errors(err) {
			d.stats.IncrementWriteErrors()
			d.onError(e)
		}
	}
	d.stats.IncrementProcessed()
	core.PutEntry(entry)
}

// Infof logs an info message with formatting
func (d *Dispatcher) Infof(format string, args ...interface{}) {
	d.Logf(core.InfoLevel, format, args...)
}

// Debugf logs a debug message with formatting
func (d *Dispatcher) Debugf(format string, args ...interface{}) {
	level := core.DebugLevel
	if d.debugAtInfo {
		level = core.InfoLevel
	}
	d.Logf(level, format, args...)
}
