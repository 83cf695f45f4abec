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

package weakenall_test

import (
	"github.com/hackrunner/bbrunner/hostapitest"
	"github.com/hackrunner/bbrunner/weakenall"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("CalculateBatchThreads", func() {
	var now float64

	It("sizes all four legs of a batch against a well-formed target", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:       "n00dles",
			MoneyAvailable: 1_000_000,
			MoneyMax:       1_000_000,
			HackFraction:   0.02,
		})
		ns.WeakenPerThread = 0.05

		threads, err := weakenall.CalculateBatchThreads(ns, 400_000, "n00dles", 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(threads.Hack).To(BeNumerically(">", 0))
		Expect(threads.HackWeaken).To(BeNumerically(">", 0))
		Expect(threads.Grow).To(BeNumerically(">", 0))
		Expect(threads.GrowWeaken).To(BeNumerically(">", 0))
	})

	It("defaults to hacking half the available money when hackAmount is out of range", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:       "n00dles",
			MoneyAvailable: 1_000_000,
			MoneyMax:       1_000_000,
			HackFraction:   0.02,
		})
		ns.WeakenPerThread = 0.05

		threads, err := weakenall.CalculateBatchThreads(ns, 0, "n00dles", 1)
		Expect(err).NotTo(HaveOccurred())
		// Half of 1,000,000 is 500,000; at 2% of the balance per thread that is 25 hack threads.
		Expect(threads.Hack).To(Equal(25))
	})

	It("returns zero threads when the target cannot be hacked at all", func() {
		ns := hostapitest.New("home", &now, hostapitest.Server{
			Hostname:       "n00dles",
			MoneyAvailable: 1_000_000,
			MoneyMax:       1_000_000,
			HackFraction:   0,
		})

		threads, err := weakenall.CalculateBatchThreads(ns, 400_000, "n00dles", 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(threads).To(Equal(weakenall.BatchThreads{}))
	})
})
