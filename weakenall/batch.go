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
	"math"

	"github.com/hackrunner/bbrunner/hostapi"
)

// BatchThreads is the thread count for each of the four scripts a hack-grow-weaken batch against
// one target launches: a hack, a weaken to cancel the hack's security growth, a grow to replace
// the stolen money, and a weaken to cancel the grow's security growth.
type BatchThreads struct {
	Hack       int
	HackWeaken int
	Grow       int
	GrowWeaken int
}

// CalculateBatchThreads sizes a batch that steals hackAmount money from target, then fully
// restores both its money and its security level. cores is the core count of the host the batch
// runs from, which affects the grow leg and the two weaken legs.
func CalculateBatchThreads(ns hostapi.NS, hackAmount float64, target string, cores int) (BatchThreads, error) {
	moneyAvailable, err := ns.GetServerMoneyAvailable(target)
	if err != nil {
		return BatchThreads{}, err
	}
	if hackAmount <= 0 || hackAmount >= moneyAvailable {
		hackAmount = moneyAvailable * 0.5
	}

	hackFraction, err := ns.HackAnalyze(target)
	if err != nil {
		return BatchThreads{}, err
	}
	if hackFraction <= 0 {
		return BatchThreads{}, nil
	}
	hack := int(math.Ceil(hackAmount / (moneyAvailable * hackFraction)))
	if hack < 1 {
		hack = 1
	}

	hackSecurity, err := ns.HackAnalyzeSecurity(hack)
	if err != nil {
		return BatchThreads{}, err
	}
	hackWeaken, err := WeakenAnalyzeThreads(ns, hackSecurity, cores)
	if err != nil {
		return BatchThreads{}, err
	}

	moneyAfterHack := moneyAvailable - hackAmount
	growthMultiplier := moneyAvailable / math.Max(moneyAfterHack, 1)
	growthThreads, err := ns.GrowthAnalyze(target, growthMultiplier, cores)
	if err != nil {
		return BatchThreads{}, err
	}
	grow := int(math.Ceil(growthThreads))
	if grow < 1 {
		grow = 1
	}

	growSecurity, err := ns.GrowthAnalyzeSecurity(grow)
	if err != nil {
		return BatchThreads{}, err
	}
	growWeaken, err := WeakenAnalyzeThreads(ns, growSecurity, cores)
	if err != nil {
		return BatchThreads{}, err
	}

	return BatchThreads{
		Hack:       hack,
		HackWeaken: hackWeaken,
		Grow:       grow,
		GrowWeaken: growWeaken,
	}, nil
}
