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

package future_test

import (
	"github.com/hackrunner/bbrunner/concurrent/future"
	"github.com/hackrunner/bbrunner/hostapi"
	"github.com/hackrunner/bbrunner/hostapitest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Executor", func() {
	var (
		now   float64
		slept []float64
	)

	newExec := func(maxRAM float64) *future.Executor {
		return future.New(maxRAM, fakeClock(&now), func(ms float64) {
			slept = append(slept, ms)
			now += ms
		})
	}

	BeforeEach(func() {
		now = 0
		slept = nil
	})

	// S1 — a single task comfortably under budget runs to completion and the RAM cell is
	// restored once it finishes.
	It("launches a task under budget and returns its RAM on completion", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:         "home",
			HasRootAccess:    true,
			WeakenTimeMillis: 500,
		})
		exec := newExec(15.0)
		proc := future.NewProcessFuture(exec, ns, "home", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("home")}, 500, 1.75)
		exec.Register(proc)

		Expect(exec.Run()).To(Succeed())
		Expect(now).To(BeNumerically("<=", 600))
		Expect(exec.RAMCell().Available()).To(Equal(15.0))
	})

	// S2 — the host refuses to run the script; the task fails on its very first poll and the
	// RAM it would have used is never debited.
	It("fails a task on its first poll when the host refuses to launch it", func() {
		ns := hostapitest.New("home", &now)
		exec := newExec(15.0)
		proc := future.NewProcessFuture(exec, ns, "nowhere", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("nowhere")}, 500, 1.75)
		exec.Register(proc)

		Expect(exec.Run()).To(HaveOccurred())
		Expect(exec.RAMCell().Available()).To(Equal(15.0))
	})

	// S3 — three tasks each demanding 2.0 against a 3.0 budget can never run more than one at a
	// time; the RAM cell must never go negative and the run must take three waves.
	It("serializes tasks that together exceed the RAM budget", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:         "home",
			HasRootAccess:    true,
			WeakenTimeMillis: 100,
		})
		exec := newExec(3.0)
		for i := 0; i < 3; i++ {
			proc := future.NewProcessFuture(exec, ns, "home", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("home")}, 100, 2.0)
			exec.Register(proc)
		}

		Expect(exec.RAMCell().Available()).To(BeNumerically(">=", 0))
		Expect(exec.Run()).To(Succeed())
		Expect(exec.RAMCell().Available()).To(Equal(3.0))
		Expect(now).To(BeNumerically(">=", 300))
	})

	// S4 — a single task demanding more RAM than the executor will ever have deadlocks; the
	// task is dropped and the RAM cell is left untouched.
	It("reports deadlock when a task demands more RAM than the executor has", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:         "home",
			HasRootAccess:    true,
			WeakenTimeMillis: 500,
		})
		exec := newExec(1.0)
		proc := future.NewProcessFuture(exec, ns, "home", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("home")}, 500, 2.0)
		exec.Register(proc)

		Expect(exec.Run()).To(MatchError(future.ErrDeadlockOnRAM))
		Expect(exec.RAMCell().Available()).To(Equal(1.0))
	})

	// S5 — the host takes longer to finish than the duration hint promised; the process future
	// must re-poll on a Retry backoff rather than spinning, and still report success once the
	// host actually reports done.
	It("retries on a backoff when the host overruns the duration hint", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:         "home",
			HasRootAccess:    true,
			WeakenTimeMillis: 200,
		})
		exec := newExec(15.0)
		proc := future.NewProcessFuture(exec, ns, "home", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("home")}, 100, 1.75)
		exec.Register(proc)

		Expect(exec.Run()).To(Succeed())
		Expect(now).To(BeNumerically(">=", 200))
		Expect(exec.RAMCell().Available()).To(Equal(15.0))
	})
})
