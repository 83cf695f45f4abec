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

// Package hostapitest provides an in-memory hostapi.NS double driven by an injected clock, for
// tests that need to exercise the scheduler or weaken-all without a real game host.
package hostapitest

import (
	"fmt"
	"sync"

	"github.com/hackrunner/bbrunner/hostapi"
)

// Server is one server the fake host knows about.
type Server struct {
	Hostname             string
	Neighbors            []string
	HasRootAccess        bool
	RequiredHackingLevel float64
	SecurityLevel        float64
	MinSecurityLevel     float64
	BaseSecurityLevel    float64
	MoneyAvailable       float64
	MoneyMax             float64
	Growth               float64
	MaxRAM               float64
	UsedRAM              float64
	NumPortsRequired     float64

	HackFraction     float64
	HackChance       float64
	HackTimeMillis   float64
	GrowTimeMillis   float64
	WeakenTimeMillis float64
}

type process struct {
	pid      uint64
	script   string
	target   string
	threads  uint32
	finishAt float64
	killed   bool
}

// NS is an in-memory hostapi.NS. Processes launched through Run finish on their own once the
// fake clock reaches their computed finish time (duration taken from the relevant server's *
// TimeMillis field); tests advance time by calling the fake Sleep function wired to the same
// clock.
type NS struct {
	mu sync.Mutex

	now       *float64
	hostname  string
	servers   map[string]*Server
	processes map[uint64]*process
	nextPID   uint64

	hackingLevel float64

	// WeakenPerThread is how much one weaken thread reduces security by. It is host-level, not
	// per-server, the same way ns.weakenAnalyze is in the real game.
	WeakenPerThread float64
}

// New returns an NS seeded with servers, using now as the shared time cell that both the NS and
// its caller's Clock/SleepFunc advance.
func New(hostname string, now *float64, servers ...Server) *NS {
	m := make(map[string]*Server, len(servers))
	for i := range servers {
		s := servers[i]
		m[s.Hostname] = &s
	}
	return &NS{
		now:             now,
		hostname:        hostname,
		servers:         m,
		processes:       make(map[uint64]*process),
		WeakenPerThread: 0.05,
	}
}

// SetHackingLevel sets the player's current hacking level, used by GetHackingLevel.
func (n *NS) SetHackingLevel(level float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hackingLevel = level
}

func (n *NS) server(host string) (*Server, error) {
	s, ok := n.servers[host]
	if !ok {
		return nil, fmt.Errorf("hostapitest: unknown server %q", host)
	}
	return s, nil
}

// Run implements hostapi.NS.
func (n *NS) Run(script string, threadOrOptions hostapi.ThreadOrOptions, args ...hostapi.Arg) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var target string
	for _, a := range args {
		if s, ok := a.String(); ok {
			target = s
			break
		}
	}
	server, err := n.server(target)
	if err != nil {
		return 0, err
	}

	threads := threadOrOptions.ThreadCount()
	var duration float64
	switch script {
	case "hack.js":
		duration = server.HackTimeMillis
	case "grow.js":
		duration = server.GrowTimeMillis
	case "weaken.js":
		duration = server.WeakenTimeMillis
	default:
		return 0, fmt.Errorf("hostapitest: unknown script %q", script)
	}

	n.nextPID++
	pid := n.nextPID
	n.processes[pid] = &process{
		pid:      pid,
		script:   script,
		target:   target,
		threads:  threads,
		finishAt: *n.now + duration,
	}
	return pid, nil
}

// IsRunning implements hostapi.NS.
func (n *NS) IsRunning(id hostapi.FilenameOrPID) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p, ok := n.processes[id.PID]
	if !ok {
		return false, nil
	}
	if p.killed {
		return false, nil
	}
	return *n.now < p.finishAt, nil
}

// Kill implements hostapi.NS.
func (n *NS) Kill(id hostapi.FilenameOrPID) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p, ok := n.processes[id.PID]
	if !ok || p.killed || *n.now >= p.finishAt {
		return false, nil
	}
	p.killed = true
	return true, nil
}

func (n *NS) GetHackTime(target string) (float64, error) {
	s, err := n.server(target)
	if err != nil {
		return 0, err
	}
	return s.HackTimeMillis, nil
}

func (n *NS) GetGrowTime(target string) (float64, error) {
	s, err := n.server(target)
	if err != nil {
		return 0, err
	}
	return s.GrowTimeMillis, nil
}

func (n *NS) GetWeakenTime(target string) (float64, error) {
	s, err := n.server(target)
	if err != nil {
		return 0, err
	}
	return s.WeakenTimeMillis, nil
}

func (n *NS) GetServerMaxRAM(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.MaxRAM, nil
}

func (n *NS) GetServerUsedRAM(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.UsedRAM, nil
}

func (n *NS) GetServerSecurityLevel(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.SecurityLevel, nil
}

func (n *NS) GetServerMinSecurityLevel(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.MinSecurityLevel, nil
}

func (n *NS) GetServerBaseSecurityLevel(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.BaseSecurityLevel, nil
}

func (n *NS) GetServerMoneyAvailable(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.MoneyAvailable, nil
}

func (n *NS) GetServerMaxMoney(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.MoneyMax, nil
}

func (n *NS) GetServerRequiredHackingLevel(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.RequiredHackingLevel, nil
}

func (n *NS) GetServerGrowth(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.Growth, nil
}

func (n *NS) GetServerNumPortsRequired(host string) (float64, error) {
	s, err := n.server(host)
	if err != nil {
		return 0, err
	}
	return s.NumPortsRequired, nil
}

func (n *NS) GetServer(host string) (hostapi.Server, error) {
	s, err := n.server(host)
	if err != nil {
		return hostapi.Server{}, err
	}
	return hostapi.Server{
		Hostname:             s.Hostname,
		HasRootAccess:        s.HasRootAccess,
		RequiredHackingLevel: s.RequiredHackingLevel,
		MoneyAvailable:       s.MoneyAvailable,
		MoneyMax:             s.MoneyMax,
		Growth:               s.Growth,
		SecurityLevel:        s.SecurityLevel,
		MinSecurityLevel:     s.MinSecurityLevel,
		BaseSecurityLevel:    s.BaseSecurityLevel,
		MaxRAM:               s.MaxRAM,
		UsedRAM:              s.UsedRAM,
		NumPortsRequired:     s.NumPortsRequired,
	}, nil
}

func (n *NS) GetHackingLevel() (float64, error) {
	return n.hackingLevel, nil
}

func (n *NS) GetHostname() (string, error) {
	return n.hostname, nil
}

func (n *NS) HasRootAccess(host string) (bool, error) {
	s, err := n.server(host)
	if err != nil {
		return false, err
	}
	return s.HasRootAccess, nil
}

func (n *NS) ServerExists(host string) (bool, error) {
	_, ok := n.servers[host]
	return ok, nil
}

func (n *NS) Scan(host string) ([]string, error) {
	s, err := n.server(host)
	if err != nil {
		return nil, err
	}
	return s.Neighbors, nil
}

func (n *NS) HackAnalyze(target string) (float64, error) {
	s, err := n.server(target)
	if err != nil {
		return 0, err
	}
	return s.HackFraction, nil
}

func (n *NS) HackAnalyzeChance(target string) (float64, error) {
	s, err := n.server(target)
	if err != nil {
		return 0, err
	}
	return s.HackChance, nil
}

func (n *NS) HackAnalyzeSecurity(threads int) (float64, error) {
	return float64(threads) * 0.002, nil
}

func (n *NS) GrowthAnalyze(target string, growthAmount float64, cores int) (float64, error) {
	if growthAmount <= 1 {
		return 0, nil
	}
	// A deliberately simple monotone approximation: each thread grows the balance by 3%.
	threads := 0.0
	balance := 1.0
	for balance < growthAmount {
		balance *= 1.03
		threads++
	}
	return threads, nil
}

func (n *NS) GrowthAnalyzeSecurity(threads int) (float64, error) {
	return float64(threads) * 0.004, nil
}

func (n *NS) WeakenAnalyze(threads int, cores int) (float64, error) {
	return float64(threads) * n.WeakenPerThread, nil
}

func (n *NS) Print(string)      {}
func (n *NS) TPrint(string)     {}
func (n *NS) ClearLog()         {}
func (n *NS) DisableLog(string) {}
func (n *NS) EnableLog(string)  {}
func (n *NS) Tail()             {}

var _ hostapi.NS = (*NS)(nil)
