package timer

import (
	"sync/atomic"
	"time"
)

// clock holds the unix-time in milliseconds, refreshed every Resolution.
var clock = new(atomic.Int64)

// Resolution is how often the clock is refreshed. I/O deadlines are counted in seconds,
// so half a second of error is fine for them.
const Resolution = 500 * time.Millisecond

func init() {
	// the goroutine may not be scheduled right away, so store the first value here.
	// Otherwise early callers would get the zero time
	clock.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			clock.Store(time.Now().UnixMilli())
		}
	}()
}

// Now returns the current time with Resolution precision. It's much cheaper than
// time.Now(), which matters as it's called before every single read.
func Now() time.Time {
	return time.UnixMilli(clock.Load())
}

// Deadline returns the moment timeout from now.
func Deadline(timeout time.Duration) time.Time {
	return Now().Add(timeout)
}
