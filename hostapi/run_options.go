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

// RunOptions is the host's structured second argument to Run, mirroring its `RunOptions`
// dictionary field for field. Using a struct instead of a map[string]interface{} means an unknown
// option name is rejected by the compiler instead of being silently ignored by the host.
type RunOptions struct {
	Threads           *uint32
	Temporary         *bool
	RAMOverride       *float64
	PreventDuplicates *bool
}

// ThreadOrOptions is the host's second argument to Run: either a bare thread count, or a full
// RunOptions value.
type ThreadOrOptions struct {
	threads *uint32
	options *RunOptions
}

// Threads wraps a bare thread count.
func Threads(n uint32) ThreadOrOptions {
	return ThreadOrOptions{threads: &n}
}

// Options wraps a full RunOptions value.
func Options(o RunOptions) ThreadOrOptions {
	return ThreadOrOptions{options: &o}
}

// ThreadCount returns the number of threads this value requests: either the bare count, or
// RunOptions.Threads if set, or 1 if neither was specified (the host's own default).
func (t ThreadOrOptions) ThreadCount() uint32 {
	if t.threads != nil {
		return *t.threads
	}
	if t.options != nil && t.options.Threads != nil {
		return *t.options.Threads
	}
	return 1
}

// BasicHGWOptions configures a hack/grow/weaken call, mirroring the host's `BasicHGWOptions`
// dictionary.
type BasicHGWOptions struct {
	Threads        *uint32
	Stock          *bool
	AdditionalMsec *float64
}
