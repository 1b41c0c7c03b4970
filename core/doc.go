// Package core defines the shared types used across tinylog.
//
// It provides the Level type for the global severity gate, the Entry
// type that carries a single record from the dispatcher to every
// handler, and the Clock used to stamp records.
//
// An Entry is built once per dispatched message: the timestamp string
// and the message text are formatted before any handler runs, and every
// handler receives the same Entry. Entry objects are pooled via
// sync.Pool; callers get one with GetEntry and return it with PutEntry
// once all handlers have consumed it. Handlers must not retain an Entry
// after Handle returns.
//
// Timestamps use the layout "2006-01-02 15:04:05,000" in local time,
// which is the record wire format shared by all handlers.
package core
