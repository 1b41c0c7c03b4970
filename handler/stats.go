package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts records fully written
	ProcessedTotal uint64
	// BytesTotal counts bytes accepted by the underlying writer
	BytesTotal uint64
	// WriteErrors counts failed or partial writes
	WriteErrors uint64
	// Rotations counts completed file rotations
	Rotations uint64
	// RotationErrors counts rotations that failed part way
	RotationErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// AddBytes atomically adds n to the byte counter
func (s *Stats) AddBytes(n int) {
	if n > 0 {
		atomic.AddUint64(&s.BytesTotal, uint64(n))
	}
}

// IncrementWriteErrors atomically increments the write error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrors, 1)
}

// IncrementRotations atomically increments the rotation counter
func (s *Stats) IncrementRotations() {
	atomic.AddUint64(&s.Rotations, 1)
}

// IncrementRotationErrors atomically increments the rotation error counter
func (s *Stats) IncrementRotationErrors() {
	atomic.AddUint64(&s.RotationErrors, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetWriteErrors returns the write error count
func (s *Stats) GetWriteErrors() uint64 {
	return atomic.LoadUint64(&s.WriteErrors)
}

// GetRotations returns the rotation count
func (s *Stats) GetRotations() uint64 {
	return atomic.LoadUint64(&s.Rotations)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
	atomic.StoreUint64(&s.WriteErrors, 0)
	atomic.StoreUint64(&s.Rotations, 0)
	atomic.StoreUint64(&s.RotationErrors, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	ProcessedTotal uint64
	BytesTotal     uint64
	WriteErrors    uint64
	Rotations      uint64
	RotationErrors uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
		BytesTotal:     atomic.LoadUint64(&s.BytesTotal),
		WriteErrors:    atomic.LoadUint64(&s.WriteErrors),
		Rotations:      atomic.LoadUint64(&s.Rotations),
		RotationErrors: atomic.LoadUint64(&s.RotationErrors),
	}
}
