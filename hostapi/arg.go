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

// Package hostapi describes the external host interface the scheduler launches work through: a
// synchronous, single-threaded surface modeled after a Bitburner `ns` object. Nothing here is
// asynchronous; every call either returns immediately or is assumed cheap enough that the
// scheduler's cooperative model never needs to suspend on it.
package hostapi

// Arg is one script argument. The host accepts exactly these three JavaScript-compatible
// primitive shapes; a discriminated Go type catches a caller trying to pass anything else at
// compile time rather than at the host boundary.
type Arg struct {
	kind  argKind
	b     bool
	f     float64
	s     string
}

type argKind uint8

const (
	argBool argKind = iota
	argFloat
	argString
)

// BoolArg wraps a bool script argument.
func BoolArg(v bool) Arg { return Arg{kind: argBool, b: v} }

// FloatArg wraps a numeric script argument.
func FloatArg(v float64) Arg { return Arg{kind: argFloat, f: v} }

// StringArg wraps a string script argument.
func StringArg(v string) Arg { return Arg{kind: argString, s: v} }

// Bool returns the wrapped value and true if this Arg holds a bool.
func (a Arg) Bool() (bool, bool) { return a.b, a.kind == argBool }

// Float returns the wrapped value and true if this Arg holds a float64.
func (a Arg) Float() (float64, bool) { return a.f, a.kind == argFloat }

// String returns the wrapped value and true if this Arg holds a string.
func (a Arg) String() (string, bool) { return a.s, a.kind == argString }

// Value unwraps the Arg to its dynamic Go type (bool, float64 or string), for code that wants to
// switch over it with a type switch instead of the three accessor methods.
func (a Arg) Value() interface{} {
	switch a.kind {
	case argBool:
		return a.b
	case argFloat:
		return a.f
	default:
		return a.s
	}
}

// FilenameOrPID identifies a running or to-be-killed script either by its PID or by its filename
// plus launch arguments.
type FilenameOrPID struct {
	PID      uint64
	Filename string
	Args     []Arg
	usePID   bool
}

// ByPID identifies a script by its process id.
func ByPID(pid uint64) FilenameOrPID {
	return FilenameOrPID{PID: pid, usePID: true}
}

// ByFilename identifies a script by filename and the arguments it was launched with.
func ByFilename(filename string, args ...Arg) FilenameOrPID {
	return FilenameOrPID{Filename: filename, Args: args}
}

// IsPID reports whether this value identifies a script by PID rather than by filename.
func (f FilenameOrPID) IsPID() bool { return f.usePID }
