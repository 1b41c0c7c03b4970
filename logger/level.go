package logger

import (
	"github.com/philipp01105/tinylog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel  = core.NoneLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
)

// ParseLevel converts a string ("none", "debug", "info") to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
