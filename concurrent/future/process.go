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
	"github.com/hackrunner/bbrunner/hostapi"
)

// processResult is the terminal value a ProcessFuture resolves to on success. Its only purpose is
// to be any value other than PollResultPending.
type processResult struct{}

var processDone PollResult = processResult{}

// ProcessFuture drives one external worker script through its whole lifecycle: wait for enough
// free RAM, launch it, poll it for completion, and credit its RAM back exactly once, whether it
// finishes normally, is killed, or is abandoned by a failing sibling task.
//
// A ProcessFuture is meant to be registered with exactly one Executor and never touched outside
// of that Executor's Poll/Drop calls.
type ProcessFuture struct {
	exec *Executor
	ns   hostapi.NS

	target          string
	script          string
	threadOrOptions hostapi.ThreadOrOptions
	args            []hostapi.Arg
	durationHint    float64
	ramHint         float64

	pid          uint64
	startInstant *float64
	lastPolled   *float64
	released     bool
}

// NewProcessFuture returns a ProcessFuture that, once registered with exec, launches script
// against target with threadOrOptions and args as soon as ramHintPerThread times the requested
// thread count is available, expecting it to run for about durationHint milliseconds.
func NewProcessFuture(
	exec *Executor,
	ns hostapi.NS,
	target string,
	script string,
	threadOrOptions hostapi.ThreadOrOptions,
	args []hostapi.Arg,
	durationHint float64,
	ramHintPerThread float64,
) *ProcessFuture {
	return &ProcessFuture{
		exec:            exec,
		ns:              ns,
		target:          target,
		script:          script,
		threadOrOptions: threadOrOptions,
		args:            args,
		durationHint:    durationHint,
		ramHint:         ramHintPerThread * float64(threadOrOptions.ThreadCount()),
	}
}

// PID returns the process id this future launched, once launched.
func (p *ProcessFuture) PID() uint64 { return p.pid }

func (p *ProcessFuture) isLaunched() bool {
	return p.startInstant != nil
}

func (p *ProcessFuture) isFinished() bool {
	if !p.isLaunched() {
		return false
	}
	running, err := p.ns.IsRunning(hostapi.ByPID(p.pid))
	if err != nil {
		return false
	}
	return !running
}

func (p *ProcessFuture) isRunning() bool {
	return p.isLaunched() && !p.isFinished()
}

// release credits this process's RAM hint back to the executor's shared cell, exactly once,
// however it finishes.
func (p *ProcessFuture) release() {
	if p.released || !p.isFinished() {
		return
	}
	p.released = true
	p.exec.ram.Release(p.ramHint)
}

// kill terminates the process, if running, and releases its RAM on success.
func (p *ProcessFuture) kill() error {
	if !p.isRunning() {
		return nil
	}
	_, err := p.ns.Kill(hostapi.ByPID(p.pid))
	if err != nil {
		return err
	}
	p.release()
	return nil
}

// Drop implements Droppable: it kills the process if still running, so an abandoned ProcessFuture
// never leaks RAM or a worker the caller no longer intends to wait on.
func (p *ProcessFuture) Drop() {
	_ = p.kill()
}

// Poll implements Future.
func (p *ProcessFuture) Poll(waker Waker) (PollResult, error) {
	now := p.exec.clock.Now()

	if !p.isLaunched() {
		if p.exec.ram.CanLaunch(p.ramHint) {
			pid, err := p.ns.Run(p.script, p.threadOrOptions, p.args...)
			if err != nil {
				return nil, hostapi.NewError(hostapi.Op("Run"), hostapi.KindLaunchFailed, p.target, err)
			}
			p.pid = pid
			p.exec.ram.Use(p.ramHint)
			start := now
			p.startInstant = &start
			last := now
			p.lastPolled = &last
		}
		p.scheduleWake(waker, now)
		return PollResultPending, nil
	}

	last := now
	p.lastPolled = &last

	if p.isFinished() {
		p.release()
		return processDone, nil
	}

	p.scheduleWake(waker, now)
	return PollResultPending, nil
}

// scheduleWake parks waker with the policy described in the scheduler's design: unlaunched tasks
// wait for RAM, a task polled after it was expected to finish is retried at a short backoff, and
// one polled before its expected finish is woken exactly at that instant (or immediately, if it is
// polled exactly at that instant).
func (p *ProcessFuture) scheduleWake(waker Waker, now float64) {
	var policy Policy
	switch {
	case p.startInstant == nil:
		policy = AfterNextRAMRelease()
	default:
		expectedFinish := *p.startInstant + p.durationHint
		if p.lastPolled != nil && *p.lastPolled > expectedFinish {
			policy = Retry()
		} else if now >= expectedFinish {
			policy = Immediate()
		} else {
			policy = WakeAt(expectedFinish)
		}
	}
	p.exec.reactor.Schedule(policy, waker)
}
