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

package future

// RAMCell is the single shared counter of free RAM, in the host's fractional-GB unit, that every
// Process Future registered with an Executor debits on launch and credits back on completion or
// abandonment. Because the whole scheduler runs cooperatively on one goroutine, a plain struct is
// enough: there is never a concurrent mutation to race against, only a discipline to uphold (debit
// exactly once per launch, credit exactly once per debit).
type RAMCell struct {
	available float64
	max       float64
}

// NewRAMCell returns a cell seeded with max RAM available.
func NewRAMCell(max float64) *RAMCell {
	if max < 0 {
		panic("future: RAM budget must not be negative")
	}
	return &RAMCell{available: max, max: max}
}

// Available returns the RAM currently free to debit.
func (c *RAMCell) Available() float64 {
	return c.available
}

// CanLaunch reports whether hint RAM can be debited without driving the cell negative.
func (c *RAMCell) CanLaunch(hint float64) bool {
	return hint <= c.available
}

// Use debits hint RAM from the cell. It panics if hint exceeds what is available; callers must
// check CanLaunch first.
func (c *RAMCell) Use(hint float64) {
	if hint > c.available {
		panic("future: RAM cell debited past zero")
	}
	c.available -= hint
}

// Release credits hint RAM back to the cell. It panics if doing so would exceed the cell's
// configured maximum, which would indicate a double credit somewhere.
func (c *RAMCell) Release(hint float64) {
	c.available += hint
	if c.available > c.max {
		panic("future: RAM cell credited past its configured maximum")
	}
}
