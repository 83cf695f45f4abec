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

import "sync"

// Queue is an unbounded, non-blocking FIFO. Send may be called from any goroutine that holds a
// reference to the Queue; Drain is meant to be called by the single goroutine that owns the
// receiving end, mirroring the Sender/Receiver split of the source's simple_channel wrapper
// around mpsc::channel, minus the blocking receive this scheduler never needs.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send appends v to the back of the queue. It never blocks.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
}

// Drain removes and returns every item queued so far, oldest first, leaving the queue empty.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()
	return items
}

// Empty reports whether the queue currently holds no items.
func (q *Queue[T]) Empty() bool {
	q.mu.Lock()
	empty := len(q.items) == 0
	q.mu.Unlock()
	return empty
}
