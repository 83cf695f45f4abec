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

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// A Waker is a handle to "wake up" a Future that was previously polled to a pending. Practically,
// it notifies executor to place the Future back on the queue of ready tasks.
type Waker interface {
	// Wake indicates the associated task is ready to make progress and should be polled again.
	//
	// Executors generally maintain a queue of "ready" tasks; and Wake should place the associated
	// task onto this queue.
	Wake() error
}

// The WakerFunc type is an adapter to allow the use of ordinary functions as Waker.
type WakerFunc func() error

// Wake implements Waker which calls f().
func (f WakerFunc) Wake() error {
	return f()
}

// Type for NopWaker
type nopWaker int

func (nopWaker) Wake() error {
	return nil
}

// NopWaker is a Waker that does nothing. It is useful to be used as an initial value for Waker.
const NopWaker nopWaker = 0

// taskWaker is the Waker handed to a Task's Future on every poll. It carries the task back to the
// executor's woken queue and enforces that a single Waker is only ever used from the goroutine
// that obtained it: the scheduler is single-threaded cooperative, so any other caller is a
// programming error rather than a race to be made safe.
type taskWaker struct {
	task  *Task
	woken *Queue[*Task]
	owner int64
}

func newTaskWaker(task *Task, woken *Queue[*Task]) Waker {
	return &taskWaker{
		task:  task,
		woken: woken,
		owner: goroutineID(),
	}
}

// Wake implements Waker. It panics if invoked from a goroutine other than the one that created it.
func (w *taskWaker) Wake() error {
	if id := goroutineID(); id != w.owner {
		panic(fmt.Sprintf("future: waker for task %p woken from goroutine %d, created on goroutine %d", w.task, id, w.owner))
	}
	w.woken.Send(w.task)
	return nil
}

// Equivalent reports whether two Wakers refer to the same task. Two Wakers obtained from distinct
// calls to Poll of the same Future are equivalent, whether or not either was ever woken.
func Equivalent(a, b Waker) bool {
	wa, oka := a.(*taskWaker)
	wb, okb := b.(*taskWaker)
	return oka && okb && wa.task == wb.task
}

// goroutineID extracts the numeric id that runtime.Stack embeds in the "goroutine N [state]:"
// header of its own output. Go deliberately exposes no supported API for this; it exists here
// purely to back the thread-affinity assertion above, not for anything performance sensitive.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("future: could not parse goroutine id out of runtime.Stack output: " + err.Error())
	}
	return id
}
