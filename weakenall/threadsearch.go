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
	"github.com/hackrunner/bbrunner/hostapi"
)

// BinarySearch returns the smallest int in [lowerBound, upperBound] for which pred holds,
// assuming pred is monotone over that range (false, false, ..., false, true, true, ..., true). It
// panics if pred never holds at upperBound, since that means the caller picked too small a bound.
func BinarySearch(lowerBound, upperBound int, pred func(int) bool) int {
	if !pred(upperBound) {
		panic("weakenall: binary search predicate never true within [lowerBound, upperBound]")
	}
	for lowerBound < upperBound {
		mid := lowerBound + (upperBound-lowerBound)/2
		if pred(mid) {
			upperBound = mid
		} else {
			lowerBound = mid + 1
		}
	}
	return lowerBound
}

// WeakenAnalyzeThreads returns the smallest thread count whose WeakenAnalyze reduction is at
// least reduceBy, for the given core count. It doubles an upper bound until the predicate holds,
// then narrows it with BinarySearch, avoiding a linear scan from zero for servers that need a
// great many threads to weaken.
func WeakenAnalyzeThreads(ns hostapi.NS, reduceBy float64, cores int) (int, error) {
	if reduceBy <= 0 {
		return 0, nil
	}

	var firstErr error
	reduces := func(threads int) bool {
		reduction, err := ns.WeakenAnalyze(threads, cores)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return false
		}
		return reduction >= reduceBy
	}

	upper := 1
	for !reduces(upper) {
		if firstErr != nil {
			return 0, firstErr
		}
		upper *= 2
	}
	lower := upper / 2

	threads := BinarySearch(lower, upper, reduces)
	if firstErr != nil {
		return 0, firstErr
	}
	return threads, nil
}

// GetThreadsForFullWeaken returns the thread count needed to weaken target down to its minimum
// security level, or 0 if it is already there.
func GetThreadsForFullWeaken(ns hostapi.NS, target string, cores int) (int, error) {
	server, err := ns.GetServer(target)
	if err != nil {
		return 0, err
	}
	if server.SecurityLevel <= server.MinSecurityLevel {
		return 0, nil
	}
	return WeakenAnalyzeThreads(ns, server.SecurityLevel-server.MinSecurityLevel, cores)
}
