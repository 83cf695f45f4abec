/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package clock provides the monotone millisecond timestamp source that the
// scheduler measures launch instants, duration hints and wake-up times
// against. Nothing in this package depends on the scheduler; it exists so
// that tests can inject a fake clock without touching wall time.
package clock

import "time"

// A Clock returns a timestamp, in milliseconds, that is strictly
// non-decreasing across calls made from a single goroutine. No other
// guarantee (resolution, epoch, wall-clock correspondence) is made.
type Clock interface {
	Now() float64
}

// Func adapts an ordinary function to a Clock, mirroring the WakerFunc /
// LoggerFunc adapter idiom used throughout this codebase.
type Func func() float64

// Now implements Clock. It calls f().
func (f Func) Now() float64 {
	return f()
}

// Monotonic returns a Clock backed by the Go runtime's monotonic reading
// (time.Since reads the monotonic component of time.Time, not wall time),
// rebased so that the first call returns a timestamp close to zero.
func Monotonic() Clock {
	return &monotonicClock{start: time.Now()}
}

type monotonicClock struct {
	start time.Time
}

// Now implements Clock.
func (c *monotonicClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}
