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

package hostapi

// Server is a snapshot of the handful of fields the scheduler and weaken-all application read off
// a discovered host, returned in one call by GetServer so callers that need several of a server's
// properties don't pay for several round trips to the host.
type Server struct {
	Hostname             string
	HasRootAccess        bool
	RequiredHackingLevel float64
	MoneyAvailable       float64
	MoneyMax             float64
	Growth               float64
	SecurityLevel        float64
	MinSecurityLevel     float64
	BaseSecurityLevel    float64
	MaxRAM               float64
	UsedRAM              float64
	NumPortsRequired     float64
}

// NS is the synchronous subset of the host's `ns` object the scheduler and weaken-all application
// call. Every method is a plain synchronous call: nothing here is itself asynchronous, which is
// what lets a Process Future poll IsRunning instead of awaiting a promise.
type NS interface {
	// Run launches script with the given thread count/options and args, returning its PID. It
	// returns (0, err) with a non-nil err if the host refuses to launch it; ProcessFuture wraps
	// that err in an *Error with Kind KindLaunchFailed.
	Run(script string, threadOrOptions ThreadOrOptions, args ...Arg) (pid uint64, err error)

	// IsRunning reports whether the identified script is still running.
	IsRunning(id FilenameOrPID) (bool, error)

	// Kill terminates the identified script, reporting whether anything was actually killed.
	Kill(id FilenameOrPID) (bool, error)

	// GetHackTime, GetGrowTime and GetWeakenTime return how long (in milliseconds) a hack/grow/
	// weaken call against target would take right now, for one thread.
	GetHackTime(target string) (float64, error)
	GetGrowTime(target string) (float64, error)
	GetWeakenTime(target string) (float64, error)

	// GetServerMaxRAM and GetServerUsedRAM report the given host's total and used RAM.
	GetServerMaxRAM(host string) (float64, error)
	GetServerUsedRAM(host string) (float64, error)

	// GetServerSecurityLevel, GetServerMinSecurityLevel, GetServerBaseSecurityLevel,
	// GetServerMoneyAvailable and GetServerMaxMoney read the corresponding numeric property of a
	// server.
	GetServerSecurityLevel(host string) (float64, error)
	GetServerMinSecurityLevel(host string) (float64, error)
	GetServerBaseSecurityLevel(host string) (float64, error)
	GetServerMoneyAvailable(host string) (float64, error)
	GetServerMaxMoney(host string) (float64, error)
	GetServerRequiredHackingLevel(host string) (float64, error)

	// GetServerGrowth reads a server's growth parameter, the input to GrowthAnalyze's percentage
	// math. GetServerNumPortsRequired reads how many ports must be opened before nuke succeeds.
	GetServerGrowth(host string) (float64, error)
	GetServerNumPortsRequired(host string) (float64, error)

	GetHackingLevel() (float64, error)
	GetHostname() (string, error)
	HasRootAccess(host string) (bool, error)
	ServerExists(host string) (bool, error)

	// GetServer aggregates the GetServer* family above into one snapshot, for callers that want
	// several of a server's properties at once.
	GetServer(host string) (Server, error)

	// Scan returns every host directly connected to host, or an error if host does not exist.
	Scan(host string) ([]string, error)

	// HackAnalyze, HackAnalyzeChance, GrowthAnalyze, GrowthAnalyzeSecurity, WeakenAnalyze and
	// HackAnalyzeSecurity answer the monotone-in-threads questions the thread search and batch
	// calculator are built on.
	HackAnalyze(target string) (float64, error)
	HackAnalyzeChance(target string) (float64, error)
	HackAnalyzeSecurity(threads int) (float64, error)
	GrowthAnalyze(target string, growthAmount float64, cores int) (float64, error)
	GrowthAnalyzeSecurity(threads int) (float64, error)
	WeakenAnalyze(threads int, cores int) (float64, error)

	// Print writes to the script's own log; TPrint writes to the terminal. ClearLog empties the
	// script's own log. DisableLog/EnableLog toggle the host's automatic per-call logging for one
	// ns function name. Tail opens the script's log window.
	Print(msg string)
	TPrint(msg string)
	ClearLog()
	DisableLog(function string)
	EnableLog(function string)
	Tail()
}
