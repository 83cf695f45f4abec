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
	"github.com/hackrunner/bbrunner/clock"
	"github.com/hackrunner/bbrunner/hostapi"
	"github.com/hackrunner/bbrunner/hostapitest"
	"github.com/hackrunner/bbrunner/weakenall"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// launchSpy wraps a *hostapitest.NS, recording the order and simulated time of every Run call so
// a test can assert on launch order without reaching into the fake's private process table.
type launchSpy struct {
	*hostapitest.NS
	now     *float64
	targets []string
	times   []float64
}

func (s *launchSpy) Run(script string, threadOrOptions hostapi.ThreadOrOptions, args ...hostapi.Arg) (uint64, error) {
	pid, err := s.NS.Run(script, threadOrOptions, args...)
	if err != nil {
		return pid, err
	}
	var target string
	for _, a := range args {
		if v, ok := a.String(); ok {
			target = v
			break
		}
	}
	s.targets = append(s.targets, target)
	s.times = append(s.times, *s.now)
	return pid, nil
}

var _ = Describe("Run", func() {
	// S6 — two hackable targets, free RAM enough for only one weaken launch at a time. The
	// higher-max_money_rate target must launch first, and the second only after the first
	// finishes.
	It("launches the higher money-rate target first when RAM allows only one at a time", func() {
		var now float64

		base := hostapitest.New("home", &now,
			hostapitest.Server{
				Hostname: "home",
				MaxRAM:   14.0,
				UsedRAM:  0,
				Neighbors: []string{
					"rich-target", "poor-target",
				},
			},
			hostapitest.Server{
				Hostname:         "rich-target",
				HasRootAccess:    true,
				SecurityLevel:    1.2,
				MinSecurityLevel: 1.0,
				MoneyMax:         1_000_000,
				HackChance:       1.0,
				HackTimeMillis:   1000,
				WeakenTimeMillis: 50,
			},
			hostapitest.Server{
				Hostname:         "poor-target",
				HasRootAccess:    true,
				SecurityLevel:    1.4,
				MinSecurityLevel: 1.0,
				MoneyMax:         10_000,
				HackChance:       1.0,
				HackTimeMillis:   1000,
				WeakenTimeMillis: 50,
			},
		)
		base.WeakenPerThread = 0.05
		ns := &launchSpy{NS: base, now: &now}

		cfg := weakenall.DefaultConfig()
		var logs []string
		logger := weakenall.LoggerFunc(func(format string, args ...interface{}) {
			logs = append(logs, format)
			_ = args
		})

		sleep := func(ms float64) { now += ms }

		clk := clock.Func(func() float64 { return now })
		err := weakenall.Run(ns, cfg, clk, sleep, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(ns.targets).To(Equal([]string{"rich-target", "poor-target"}))
		Expect(ns.times[0]).To(BeNumerically("<", ns.times[1]))
		Expect(logs).NotTo(BeEmpty())
	})
})
