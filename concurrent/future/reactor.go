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
	"container/heap"
	"math"

	"github.com/hackrunner/bbrunner/clock"
)

// DefaultRetryBackoffMillis is the delay a Retry wake policy adds to the current time. It is a
// field on Reactor rather than a package constant so tests can shrink it.
const DefaultRetryBackoffMillis = 25.0

// PolicyKind enumerates the ways a Waker can ask to be woken again.
type PolicyKind uint8

const (
	// PolicyImmediate wakes the task back up on the very next run loop iteration.
	PolicyImmediate PolicyKind = iota
	// PolicyRetry wakes the task after the reactor's configured retry backoff.
	PolicyRetry
	// PolicyWakeAt wakes the task once the clock reaches Policy.At.
	PolicyWakeAt
	// PolicyAfterNextRAMRelease wakes the task the next time any task credits RAM back to the cell,
	// regardless of when that happens.
	PolicyAfterNextRAMRelease
)

// Policy describes when a parked Waker should be woken again.
type Policy struct {
	Kind PolicyKind
	At   float64
}

// Immediate returns a Policy that fires on the next run loop iteration.
func Immediate() Policy { return Policy{Kind: PolicyImmediate} }

// Retry returns a Policy that fires after the reactor's retry backoff elapses.
func Retry() Policy { return Policy{Kind: PolicyRetry} }

// WakeAt returns a Policy that fires once the clock reaches t.
func WakeAt(t float64) Policy { return Policy{Kind: PolicyWakeAt, At: t} }

// AfterNextRAMRelease returns a Policy that fires the next time RAM is released to the shared
// cell, however long that takes.
func AfterNextRAMRelease() Policy { return Policy{Kind: PolicyAfterNextRAMRelease} }

// scheduleRequest is what a Schedule call enqueues before the reactor has had a chance to
// classify it into either the time-keyed heap or the RAM-release queue.
type scheduleRequest struct {
	policy Policy
	waker  Waker
}

// compareTime totals the order over float64, placing NaN last and deterministically after every
// other value, including +Inf. Two NaNs compare equal to each other.
func compareTime(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// wakerHeapItem is one entry of the reactor's time-keyed waker heap. seq breaks ties between
// wakers scheduled for the same instant in the order they were scheduled, since multiple wakers
// legitimately share one wake-up time.
type wakerHeapItem struct {
	at    float64
	seq   uint64
	waker Waker
}

type wakerHeap []wakerHeapItem

func (h wakerHeap) Len() int { return len(h) }

func (h wakerHeap) Less(i, j int) bool {
	if c := compareTime(h[i].at, h[j].at); c != 0 {
		return c < 0
	}
	return h[i].seq < h[j].seq
}

func (h wakerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *wakerHeap) Push(x interface{}) {
	*h = append(*h, x.(wakerHeapItem))
}

func (h *wakerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Reactor holds every Waker parked by a Poll call that returned pending, classified by when it
// should next be woken: a time-keyed heap for Immediate/Retry/WakeAt wakers, and an insertion-
// ordered FIFO for wakers parked until RAM is released. Every public method drains the inbox of
// Schedule requests before inspecting state, so callers never observe a request that has not yet
// been classified.
type Reactor struct {
	clock   clock.Clock
	backoff float64

	inbox   *Queue[scheduleRequest]
	running wakerHeap
	waiting *Queue[Waker]
	seq     uint64
}

// NewReactor returns an empty Reactor using clk for its notion of "now" and backoffMillis as the
// delay a Retry policy adds to the current time.
func NewReactor(clk clock.Clock, backoffMillis float64) *Reactor {
	return &Reactor{
		clock:   clk,
		backoff: backoffMillis,
		inbox:   NewQueue[scheduleRequest](),
		waiting: NewQueue[Waker](),
	}
}

// Schedule parks waker according to policy. It never blocks; classification happens lazily, the
// next time any public method drains the inbox.
func (r *Reactor) Schedule(policy Policy, waker Waker) {
	r.inbox.Send(scheduleRequest{policy: policy, waker: waker})
}

// drainQueue classifies every request sent since the last drain into either the time-keyed heap
// or the RAM-release queue, per the algorithm in the reactor's design: Immediate parks at now,
// Retry parks at now plus the configured backoff, WakeAt parks at the given instant, and
// AfterNextRamRelease appends to the RAM-release FIFO.
func (r *Reactor) drainQueue() {
	requests := r.inbox.Drain()
	if len(requests) == 0 {
		return
	}
	now := r.clock.Now()
	for _, req := range requests {
		switch req.policy.Kind {
		case PolicyImmediate:
			r.parkAt(now, req.waker)
		case PolicyRetry:
			r.parkAt(now+r.backoff, req.waker)
		case PolicyWakeAt:
			r.parkAt(req.policy.At, req.waker)
		case PolicyAfterNextRAMRelease:
			r.waiting.Send(req.waker)
		}
	}
}

func (r *Reactor) parkAt(at float64, waker Waker) {
	heap.Push(&r.running, wakerHeapItem{at: at, seq: r.seq, waker: waker})
	r.seq++
}

// NextWake returns the earliest instant at which a time-keyed waker is due, and true, or
// (0, false) if no time-keyed waker is parked.
func (r *Reactor) NextWake() (float64, bool) {
	r.drainQueue()
	if len(r.running) == 0 {
		return 0, false
	}
	return r.running[0].at, true
}

// WakeRunning wakes every time-keyed waker whose instant has arrived and removes it from the
// reactor, returning how many were woken.
func (r *Reactor) WakeRunning() int {
	r.drainQueue()
	now := r.clock.Now()
	woken := 0
	for len(r.running) > 0 && compareTime(r.running[0].at, now) <= 0 {
		item := heap.Pop(&r.running).(wakerHeapItem)
		callWake(item.waker)
		woken++
	}
	return woken
}

// WakeOnRAMRelease wakes every waker parked until the next RAM release and removes them all from
// the reactor, returning how many were woken. Executor.Run calls it once every run loop
// iteration, and again after each task that finishes successfully within that iteration.
func (r *Reactor) WakeOnRAMRelease() int {
	r.drainQueue()
	wakers := r.waiting.Drain()
	for _, w := range wakers {
		callWake(w)
	}
	return len(wakers)
}

// IsEmpty reports whether the reactor is holding no wakers at all: nothing time-keyed, nothing
// waiting on RAM, and nothing still sitting in the inbox.
func (r *Reactor) IsEmpty() bool {
	r.drainQueue()
	return len(r.running) == 0 && r.waiting.Empty()
}

func callWake(w Waker) {
	if err := w.Wake(); err != nil {
		panic("future: waker returned an error from Wake: " + err.Error())
	}
}
