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

// A Future represents a computation that may not have produced a value yet: a Process Future, for
// instance, stands in for a script that is still running on the host.
//
// Futures are inert on their own. Nothing drives a Future forward except the executor calling
// Poll, and a Future that is not ready yet is responsible for arranging its own wakeup: it hands
// its Waker to whatever it is waiting on (here, always the host) and the executor leaves it alone
// until that Waker fires.
//
// Poll is not meant to be spun in a tight loop. The executor only calls it again once the stored
// Waker has been woken, the same way an epoll-style readiness notification replaces polling every
// file descriptor on every iteration.
//
// Poll must return promptly and must never block the calling goroutine. Anything that genuinely
// takes a while belongs behind a separate goroutine (or similar), with Poll only checking whether
// that work has finished.
type Future interface {
	// Poll drives the future one step: either it resolves to a final value or error, or it is
	// still pending and waker is recorded to be woken once progress is possible.
	//
	// The return is one of three shapes:
	//
	//	* (anything, non-nil error): the future is finished, and it failed.
	//	* (PollResultPending, nil): the future is not ready yet; waker has been stored for later.
	//	* (a value other than PollResultPending, nil): the future finished successfully.
	//
	// Callers must not poll a future again once it has returned a non-pending result.
	//
	// Only the Waker from the most recent call to Poll is live; an earlier call's Waker is
	// superseded and should not be expected to fire.
	Poll(waker Waker) (PollResult, error)
}
