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

import "fmt"

// Logger receives the application's own progress narration (targets chosen, launch and skip
// decisions) separately from the host's print/tprint channel, so tests can capture it without a
// fake NS.
type Logger interface {
	Logf(format string, args ...interface{})
}

// LoggerFunc is an adapter to allow the use of ordinary functions as Logger.
type LoggerFunc func(format string, args ...interface{})

// Logf implements Logger by calling f(format, args...).
func (f LoggerFunc) Logf(format string, args ...interface{}) {
	f(format, args...)
}

// nopLogger discards everything logged to it.
type nopLogger int

func (nopLogger) Logf(string, ...interface{}) {}

// NopLogger is a Logger that discards everything. It is the default when no Logger is configured.
const NopLogger nopLogger = 0

// hostLogger adapts an hostapi.NS's Print method into a Logger, for callers that want the
// narration to land in the script's own in-game log.
type hostLogger struct {
	print func(string)
}

// NewHostLogger returns a Logger that forwards to print (typically hostapi.NS.Print).
func NewHostLogger(print func(string)) Logger {
	return &hostLogger{print: print}
}

// Logf implements Logger.
func (l *hostLogger) Logf(format string, args ...interface{}) {
	l.print(fmt.Sprintf(format, args...))
}
