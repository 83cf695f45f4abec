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

package weakenall

import (
	"github.com/hackrunner/bbrunner/concurrent/future"
	"github.com/hackrunner/bbrunner/hostapi"
)

// Script names and per-thread RAM costs the host charges for each of the three worker scripts
// this package knows how to launch.
const (
	hackScript   = "hack.js"
	growScript   = "grow.js"
	weakenScript = "weaken.js"

	hackRAMPerThread   = 1.70
	growRAMPerThread   = 1.75
	weakenRAMPerThread = 1.75
)

// HackProcess builds a ProcessFuture that hacks target with the given thread count once
// registered with exec. extraArgs are appended after the target hostname, which every worker
// script expects as its first argument.
func HackProcess(exec *future.Executor, ns hostapi.NS, target string, threads int, extraArgs ...hostapi.Arg) (*future.ProcessFuture, error) {
	duration, err := ns.GetHackTime(target)
	if err != nil {
		return nil, err
	}
	return future.NewProcessFuture(exec, ns, target, hackScript, hostapi.Threads(uint32(threads)), scriptArgs(target, extraArgs), duration, hackRAMPerThread), nil
}

// GrowProcess builds a ProcessFuture that grows target with the given thread count once
// registered with exec. extraArgs are appended after the target hostname.
func GrowProcess(exec *future.Executor, ns hostapi.NS, target string, threads int, extraArgs ...hostapi.Arg) (*future.ProcessFuture, error) {
	duration, err := ns.GetGrowTime(target)
	if err != nil {
		return nil, err
	}
	return future.NewProcessFuture(exec, ns, target, growScript, hostapi.Threads(uint32(threads)), scriptArgs(target, extraArgs), duration, growRAMPerThread), nil
}

// WeakenProcess builds a ProcessFuture that weakens target with the given thread count once
// registered with exec. extraArgs are appended after the target hostname.
func WeakenProcess(exec *future.Executor, ns hostapi.NS, target string, threads int, extraArgs ...hostapi.Arg) (*future.ProcessFuture, error) {
	duration, err := ns.GetWeakenTime(target)
	if err != nil {
		return nil, err
	}
	return future.NewProcessFuture(exec, ns, target, weakenScript, hostapi.Threads(uint32(threads)), scriptArgs(target, extraArgs), duration, weakenRAMPerThread), nil
}

// scriptArgs prepends target to extraArgs: every worker script this package launches expects its
// target hostname as its first argument.
func scriptArgs(target string, extraArgs []hostapi.Arg) []hostapi.Arg {
	args := make([]hostapi.Arg, 0, len(extraArgs)+1)
	args = append(args, hostapi.StringArg(target))
	args = append(args, extraArgs...)
	return args
}
