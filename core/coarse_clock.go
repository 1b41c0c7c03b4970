package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the current time used to stamp entries.
type Clock func() time.Time

// SystemClock reads time.Now on every call.
var SystemClock Clock = time.Now

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *coarseNow.Load()
}

// CoarseClock starts the coarse clock and returns a Clock reading it.
// Its resolution is well below the millisecond precision of
// TimestampLayout.
func CoarseClock() Clock {
	StartCoarseClock()
	return CoarseNow
}

// FixedClock always returns t. Useful for deterministic output.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
