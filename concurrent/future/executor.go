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
	"errors"

	"github.com/hackrunner/bbrunner/clock"
)

// ErrDeadlockOnRAM is returned by Run when every remaining parked task is waiting on a RAM
// release and none is time-keyed: nothing can ever credit RAM back to the cell, so no task can
// ever be woken again.
var ErrDeadlockOnRAM = errors.New("future: all remaining tasks are parked waiting on a RAM release that will never come")

// YieldMillis is the floor on how long Run sleeps between iterations, even when a time-keyed
// waker is already due. It keeps the run loop from busy-spinning when a task reschedules itself
// for a time at or before now.
const YieldMillis = 1.0

// SleepFunc suspends the calling goroutine for approximately ms milliseconds. Executor has no
// default: New and NewWithRetryBackoff use the SleepFunc they are given, which must not be nil.
// Tests typically supply one that advances a fake Clock instead of actually sleeping.
type SleepFunc func(ms float64)

// Executor drives a flat set of registered Futures to completion, single-threaded and
// cooperative: one goroutine calls Run, which loops sleeping, waking due Wakers and polling
// whatever that woke, until every registered Future has reached a terminal value or one of them
// fails.
type Executor struct {
	ram     *RAMCell
	reactor *Reactor
	woken   *Queue[*Task]
	clock   clock.Clock
	sleep   SleepFunc

	tasks []*Task
}

// New returns an Executor with maxRAM of budget, using clk for timestamps and sleep to suspend
// between iterations. The retry backoff is DefaultRetryBackoffMillis; use NewWithRetryBackoff to
// override it.
func New(maxRAM float64, clk clock.Clock, sleep SleepFunc) *Executor {
	return NewWithRetryBackoff(maxRAM, clk, sleep, DefaultRetryBackoffMillis)
}

// NewWithRetryBackoff is New with an explicit retry backoff, so tests can shrink it far below the
// default 25ms.
func NewWithRetryBackoff(maxRAM float64, clk clock.Clock, sleep SleepFunc, retryBackoffMillis float64) *Executor {
	return &Executor{
		ram:     NewRAMCell(maxRAM),
		reactor: NewReactor(clk, retryBackoffMillis),
		woken:   NewQueue[*Task](),
		clock:   clk,
		sleep:   sleep,
	}
}

// RAMCell returns the shared RAM budget that registered Futures debit and credit.
func (e *Executor) RAMCell() *RAMCell {
	return e.ram
}

// Reactor returns the reactor backing this executor, so a registered Future can park its own
// Waker with a specific Policy.
func (e *Executor) Reactor() *Reactor {
	return e.reactor
}

// Register adds f to the executor's task set and schedules it to be polled on the next run loop
// iteration.
func (e *Executor) Register(f Future) *Task {
	task := NewTask(f)
	e.tasks = append(e.tasks, task)
	e.reactor.Schedule(Immediate(), newTaskWaker(task, e.woken))
	return task
}

// Run drives every registered task to completion. It returns nil once every task has finished
// successfully, the first error returned by any task's Poll (after best-effort cleanup of every
// other still-outstanding task), or ErrDeadlockOnRAM if progress becomes impossible.
func (e *Executor) Run() error {
	for {
		sleepFor := YieldMillis
		if at, ok := e.reactor.NextWake(); ok {
			if remaining := at - e.clock.Now(); remaining > sleepFor {
				sleepFor = remaining
			}
		} else if e.reactor.IsEmpty() {
			return nil
		}
		e.sleep(sleepFor)

		e.reactor.WakeRunning()
		e.reactor.WakeOnRAMRelease()

		if err := e.poll(); err != nil {
			e.dropAll()
			return err
		}

		if e.reactor.IsEmpty() {
			return nil
		}

		if _, hasTimeKeyed := e.reactor.NextWake(); !hasTimeKeyed {
			e.dropAll()
			return ErrDeadlockOnRAM
		}
	}
}

// poll re-polls every task that was woken since the last call, crediting RAM back to the cell's
// waiters whenever a task finishes successfully.
func (e *Executor) poll() error {
	for _, task := range e.woken.Drain() {
		if e.ram.Available() < 0 {
			panic("future: RAM cell went negative")
		}
		waker := newTaskWaker(task, e.woken)
		result, err := task.poll(waker)
		if err != nil {
			task.done = true
			return err
		}
		if result != PollResultPending {
			task.done = true
			e.reactor.WakeOnRAMRelease()
		}
	}
	return nil
}

// dropAll calls Drop on every task that has not yet reached a terminal state, mirroring the
// automatic cleanup Rust gets from dropping the executor's owned futures.
func (e *Executor) dropAll() {
	for _, task := range e.tasks {
		task.drop()
	}
}
