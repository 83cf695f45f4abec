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

// Droppable is implemented by a Future that needs best-effort cleanup when the executor stops
// driving it before it reaches a terminal value, for example because a sibling task failed and
// aborted the run loop. It plays the role the source's Drop impl on BitburnerProcess played: kill
// whatever is outstanding and release any RAM still held.
type Droppable interface {
	Drop()
}

// Task is a Future together with the exclusivity guard that makes it safe to hand a reference to
// it around: the executor owns exactly one Task per registered Future, and polls it through
// exactly one goroutine at a time.
type Task struct {
	mu     sync.Mutex
	future Future
	done   bool
}

// NewTask wraps a Future for scheduling.
func NewTask(f Future) *Task {
	return &Task{future: f}
}

// poll exclusively locks the task for the duration of one Poll call. A failure to acquire the
// lock means some caller broke the executor's one-task-in-flight-at-a-time guarantee, which is a
// programming error, not a condition to recover from.
func (t *Task) poll(waker Waker) (PollResult, error) {
	if !t.mu.TryLock() {
		panic("future: task polled while already being polled (re-entrant or concurrent use)")
	}
	defer t.mu.Unlock()
	return t.future.Poll(waker)
}

// drop invokes Drop on the underlying Future if it implements Droppable, and is a no-op if the
// task already reached a terminal state.
func (t *Task) drop() {
	if t.done {
		return
	}
	t.done = true
	if d, ok := t.future.(Droppable); ok {
		d.Drop()
	}
}
