package core

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// NoneLevel lets every message through when used as a threshold
	NoneLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "NONE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether a message at level l passes the threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return NoneLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	default:
		return NoneLevel, fmt.Errorf("core: unknown level %q", s)
	}
}

// Entry represents a log record as handed to handlers
type Entry struct {
	Time time.Time
	// Timestamp is Time already rendered with TimestampLayout.
	Timestamp string
	Level     Level
	Message   string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}

// NewEntry returns a pooled Entry stamped with t.
func NewEntry(t time.Time, level Level, msg string) *Entry {
	e := GetEntry()
	e.Time = t
	e.Timestamp = FormatTimestamp(t)
	e.Level = level
	e.Message = msg
	return e
}
