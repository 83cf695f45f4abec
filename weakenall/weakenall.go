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

// Package weakenall ports the original script_lib's top-level weaken-all application: it finds
// every hackable, under-secured server reachable from home, launches one weaken Process Future
// per target sized to bring it down to its minimum security level, and runs them all to
// completion under a single resource-constrained Executor.
package weakenall

import (
	"github.com/hackrunner/bbrunner/clock"
	"github.com/hackrunner/bbrunner/concurrent/future"
	"github.com/hackrunner/bbrunner/hostapi"
)

// Run executes the weaken-all application against ns, using cfg for RAM/backoff/core overrides,
// clk and sleep to drive the underlying Executor, and logger (NopLogger if nil) to narrate its
// target selection.
func Run(ns hostapi.NS, cfg Config, clk clock.Clock, sleep future.SleepFunc, logger Logger) error {
	if logger == nil {
		logger = NopLogger
	}

	maxRAM, err := freeRAM(ns, cfg)
	if err != nil {
		return err
	}

	exec := future.NewWithRetryBackoff(maxRAM, clk, sleep, cfg.RetryBackoffMillis)

	ns.DisableLog("ALL")

	targets, err := FindHackableServers(ns)
	if err != nil {
		return err
	}

	registered := 0
	for _, target := range targets {
		threads, err := GetThreadsForFullWeaken(ns, target.Hostname, cfg.Cores)
		if err != nil {
			return err
		}
		if threads == 0 {
			logger.Logf("%s already at minimum security, skipping", target.Hostname)
			continue
		}

		proc, err := WeakenProcess(exec, ns, target.Hostname, threads)
		if err != nil {
			return err
		}
		exec.Register(proc)
		registered++
		logger.Logf("weakening %s with %d threads", target.Hostname, threads)
	}

	ns.EnableLog("ALL")

	if registered == 0 {
		logger.Logf("nothing to weaken")
		return nil
	}

	return exec.Run()
}

// freeRAM returns the RAM budget weaken-all should hand its Executor: cfg's override if set,
// otherwise the current host's max RAM minus what is already in use.
func freeRAM(ns hostapi.NS, cfg Config) (float64, error) {
	if cfg.MaxRAMOverride != nil {
		return *cfg.MaxRAMOverride, nil
	}

	hostname, err := ns.GetHostname()
	if err != nil {
		return 0, err
	}
	max, err := ns.GetServerMaxRAM(hostname)
	if err != nil {
		return 0, err
	}
	used, err := ns.GetServerUsedRAM(hostname)
	if err != nil {
		return 0, err
	}
	return max - used, nil
}
