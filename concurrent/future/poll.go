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

package future

// A PollResult carries whatever value a Future resolves to, or the sentinel PollResultPending if
// it hasn't resolved yet.
type PollResult interface{}

// pollPendingResult backs the PollResultPending sentinel.
type pollPendingResult int

// IsReady reports that a pending result is, definitionally, not ready.
func (pollPendingResult) IsReady() bool {
	return false
}

func (pollPendingResult) pollResult() {}

// PollResultPending is the PollResult a Future.Poll returns in place of a value when it has not
// finished yet.
const PollResultPending = pollPendingResult(0)
