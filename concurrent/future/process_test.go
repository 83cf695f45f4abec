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
	"errors"

	"github.com/hackrunner/bbrunner/concurrent/future"
	"github.com/hackrunner/bbrunner/hostapi"
	"github.com/hackrunner/bbrunner/hostapitest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProcessFuture", func() {
	var (
		now     float64
		ns      *hostapitest.NS
		exec    *future.Executor
		slept   []float64
	)

	BeforeEach(func() {
		now = 0
		slept = nil
		ns = hostapitest.New("home", &now, hostapitest.Server{
			Hostname:         "n00dles",
			HasRootAccess:    true,
			WeakenTimeMillis: 100,
		})
		exec = future.New(1000, fakeClock(&now), func(ms float64) {
			slept = append(slept, ms)
			now += ms
		})
	})

	It("reports deadlock when a task can never acquire enough RAM", func() {
		exec.RAMCell().Use(995)
		proc := future.NewProcessFuture(exec, ns, "n00dles", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("n00dles")}, 100, 10)
		exec.Register(proc)

		Expect(exec.Run()).To(MatchError(future.ErrDeadlockOnRAM))
		Expect(proc.PID()).To(Equal(uint64(0)))
	})

	It("launches once RAM is available and finishes after its duration hint", func() {
		proc := future.NewProcessFuture(exec, ns, "n00dles", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("n00dles")}, 100, 10)
		exec.Register(proc)

		Expect(exec.Run()).To(Succeed())
		Expect(proc.PID()).NotTo(Equal(uint64(0)))
		Expect(now).To(BeNumerically(">=", 100))
		Expect(exec.RAMCell().Available()).To(Equal(1000.0))
	})

	It("never debits RAM twice nor credits it twice", func() {
		proc := future.NewProcessFuture(exec, ns, "n00dles", "weaken.js", hostapi.Threads(2), []hostapi.Arg{hostapi.StringArg("n00dles")}, 100, 10)
		before := exec.RAMCell().Available()
		exec.Register(proc)
		Expect(exec.Run()).To(Succeed())
		Expect(exec.RAMCell().Available()).To(Equal(before))
	})

	It("returns LaunchFailed as a hostapi.Error when the host refuses to run the script", func() {
		proc := future.NewProcessFuture(exec, ns, "does-not-exist", "weaken.js", hostapi.Threads(1), []hostapi.Arg{hostapi.StringArg("does-not-exist")}, 100, 10)
		exec.Register(proc)

		err := exec.Run()
		Expect(err).To(HaveOccurred())

		var hostErr *hostapi.Error
		Expect(errors.As(err, &hostErr)).To(BeTrue())
		Expect(hostErr.Kind).To(Equal(hostapi.KindLaunchFailed))
	})
})
