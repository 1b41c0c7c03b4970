package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/tinylog/core"
)

// Chain is an ordered collection of handlers that fans each entry out
// in insertion order. Handlers are matched by identity, so they should
// be pointer types. Chain does no locking; the owner serializes access.
type Chain struct {
	handlers []Handler
}

// NewChain creates a chain holding handlers in the given order
func NewChain(handlers ...Handler) *Chain {
	c := &Chain{}
	for _, h := range handlers {
		c.Add(h)
	}
	return c
}

// Add appends h. Adding the same handler twice yields two entries.
func (c *Chain) Add(h Handler) {
	if h == nil {
		return
	}
	c.handlers = append(c.handlers, h)
}

// Remove drops the first entry identical to h and reports whether one
// was found. The handler is not closed.
func (c *Chain) Remove(h Handler) bool {
	for i, existing := range c.handlers {
		if existing == h {
			copy(c.handlers[i:], c.handlers[i+1:])
			c.handlers[len(c.handlers)-1] = nil
			c.handlers = c.handlers[:len(c.handlers)-1]
			return true
		}
	}
	return false
}

// Len returns the number of registered entries
func (c *Chain) Len() int {
	return len(c.handlers)
}

// Handlers returns a copy of the registered handlers in order
func (c *Chain) Handlers() []Handler {
	out := make([]Handler, len(c.handlers))
	copy(out, c.handlers)
	return out
}

// Handle passes the entry to every handler in order. A failing handler
// does not stop the others; all errors are combined.
func (c *Chain) Handle(entry *core.Entry) error {
	var err error
	for _, h := range c.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Drain empties the chain and returns its former contents in order
func (c *Chain) Drain() []Handler {
	out := c.handlers
	c.handlers = nil
	return out
}

// Close drains the chain and closes every handler, combining errors
func (c *Chain) Close() error {
	var err error
	for _, h := range c.Drain() {
		err = multierr.Append(err, h.Close())
	}
	return err
}
