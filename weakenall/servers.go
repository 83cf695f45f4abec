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
	"sort"

	"github.com/hackrunner/bbrunner/hostapi"
)

// FindAllServerNames walks the host graph depth-first from "home" via Scan, returning every
// reachable hostname. home itself is included only if withHome is true, though it is always
// traversed through to reach everything else. A host whose Scan fails is skipped rather than
// aborting the whole walk, so one unreachable or erroring host doesn't take down discovery for
// the rest of the topology.
func FindAllServerNames(ns hostapi.NS, withHome bool) []string {
	seen := map[string]bool{"home": true}
	stack := []string{"home"}
	var names []string

	for len(stack) > 0 {
		host := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if host != "home" || withHome {
			names = append(names, host)
		}

		neighbors, err := ns.Scan(host)
		if err != nil {
			continue
		}
		for _, n := range neighbors {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return names
}

// HackableServer is one server the current player can run the hacking API against, with its
// computed hacking money rate.
type HackableServer struct {
	Hostname  string
	MoneyRate float64
}

// FindHackableServers returns every server with root access and a hacking level requirement the
// player meets, sorted by MaxMoneyRate descending.
func FindHackableServers(ns hostapi.NS) ([]HackableServer, error) {
	names := FindAllServerNames(ns, false)

	level, err := ns.GetHackingLevel()
	if err != nil {
		return nil, err
	}

	var out []HackableServer
	for _, name := range names {
		server, err := ns.GetServer(name)
		if err != nil {
			return nil, err
		}
		if !server.HasRootAccess || level < server.RequiredHackingLevel {
			continue
		}

		rate, err := MaxMoneyRate(ns, server)
		if err != nil {
			return nil, err
		}
		out = append(out, HackableServer{Hostname: name, MoneyRate: rate})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].MoneyRate > out[j].MoneyRate })
	return out, nil
}

// MaxMoneyRate estimates the money-per-millisecond a fully-hacked host yields: its max money,
// times the chance a hack against it succeeds, divided by how long one hack takes.
func MaxMoneyRate(ns hostapi.NS, server hostapi.Server) (float64, error) {
	chance, err := ns.HackAnalyzeChance(server.Hostname)
	if err != nil {
		return 0, err
	}
	hackTime, err := ns.GetHackTime(server.Hostname)
	if err != nil {
		return 0, err
	}
	if hackTime <= 0 {
		return 0, nil
	}
	return server.MoneyMax * chance / hackTime, nil
}
