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
	"math"

	"github.com/hackrunner/bbrunner/clock"
	"github.com/hackrunner/bbrunner/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func fakeClock(now *float64) clock.Clock {
	return clock.Func(func() float64 { return *now })
}

type recordingWaker struct {
	count *int
}

func (w recordingWaker) Wake() error {
	*w.count++
	return nil
}

var _ = Describe("Reactor", func() {
	var now float64

	BeforeEach(func() {
		now = 0
	})

	It("reports empty with nothing scheduled", func() {
		r := future.NewReactor(fakeClock(&now), 25)
		Expect(r.IsEmpty()).To(BeTrue())
		_, ok := r.NextWake()
		Expect(ok).To(BeFalse())
	})

	It("parks an Immediate waker at the current time", func() {
		r := future.NewReactor(fakeClock(&now), 25)
		count := 0
		r.Schedule(future.Immediate(), recordingWaker{&count})

		at, ok := r.NextWake()
		Expect(ok).To(BeTrue())
		Expect(at).To(Equal(0.0))

		Expect(r.WakeRunning()).To(Equal(1))
		Expect(count).To(Equal(1))
		Expect(r.IsEmpty()).To(BeTrue())
	})

	It("parks a Retry waker at now plus the configured backoff", func() {
		r := future.NewReactor(fakeClock(&now), 25)
		count := 0
		r.Schedule(future.Retry(), recordingWaker{&count})

		at, ok := r.NextWake()
		Expect(ok).To(BeTrue())
		Expect(at).To(Equal(25.0))

		Expect(r.WakeRunning()).To(Equal(0))
		now = 25
		Expect(r.WakeRunning()).To(Equal(1))
	})

	It("wakes co-scheduled wakers in the order they were scheduled", func() {
		r := future.NewReactor(fakeClock(&now), 25)
		var order []int
		for i := 0; i < 3; i++ {
			i := i
			r.Schedule(future.WakeAt(10), future.WakerFunc(func() error {
				order = append(order, i)
				return nil
			}))
		}
		now = 10
		Expect(r.WakeRunning()).To(Equal(3))
		Expect(order).To(Equal([]int{0, 1, 2}))
	})

	It("never wakes a waker parked at a NaN instant", func() {
		r := future.NewReactor(fakeClock(&now), 25)
		count := 0
		r.Schedule(future.WakeAt(math.NaN()), recordingWaker{&count})

		now = 1e18
		Expect(r.WakeRunning()).To(Equal(0))
		Expect(count).To(Equal(0))
		Expect(r.IsEmpty()).To(BeFalse())
	})

	It("wakes RAM-release wakers only through WakeOnRAMRelease", func() {
		r := future.NewReactor(fakeClock(&now), 25)
		count := 0
		r.Schedule(future.AfterNextRAMRelease(), recordingWaker{&count})

		Expect(r.WakeRunning()).To(Equal(0))
		Expect(count).To(Equal(0))

		Expect(r.WakeOnRAMRelease()).To(Equal(1))
		Expect(count).To(Equal(1))
		Expect(r.IsEmpty()).To(BeTrue())
	})
})
