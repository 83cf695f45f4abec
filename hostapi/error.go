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

import (
	"fmt"
	"runtime"

	jsoniter "github.com/json-iterator/go"
)

// Op names the host call an Error came from, usually just the method name such as "Run" or
// "GetServerMaxRAM".
type Op string

// Kind classifies an Error so callers can branch on it without string matching.
type Kind uint8

// Enumeration of Kind.
const (
	KindOther        Kind = iota // Unclassified error.
	KindLaunchFailed             // The host refused to launch a script (insufficient RAM, missing root, bad filename, ...).
	KindHostError                // A host call other than Run failed or returned an unexpected shape.
)

func (k Kind) String() string {
	switch k {
	case KindLaunchFailed:
		return "launch failed"
	case KindHostError:
		return "host error"
	default:
		return "other error"
	}
}

// Extensions carries vendor-specific data alongside an Error, such as the RAM shortfall that
// caused a launch to fail. It is exported as a plain map so it marshals with jsoniter the same way
// any other value in this module does.
type Extensions map[string]interface{}

// Error is the host-facing error type: it names which operation failed, against which server (if
// any), with what underlying cause. Modeled on the Op/Kind tagged-error shape used elsewhere in
// this codebase, in the style of upspin.io/errors.
type Error struct {
	Op         Op
	Kind       Kind
	Server     string
	Extensions Extensions
	Err        error
}

var _ error = (*Error)(nil)

// NewError builds an Error from its arguments. Inspired by the design of upspin.io/errors: pass
// whatever pieces apply and NewError sorts them by type.
func NewError(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg
		case Kind:
			e.Kind = arg
		case Extensions:
			e.Extensions = arg
		case error:
			e.Err = arg
		case string:
			e.Server = arg
		default:
			_, file, line, _ := runtime.Caller(1)
			panic(fmt.Sprintf("hostapi.NewError: bad call from %s:%d: unsupported arg type %T", file, line, arg))
		}
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b []byte
	if e.Op != "" {
		b = append(b, string(e.Op)...)
		b = append(b, ": "...)
	}
	if e.Server != "" {
		b = append(b, e.Server...)
		b = append(b, ": "...)
	}
	if e.Kind != KindOther {
		b = append(b, e.Kind.String()...)
	}
	if e.Err != nil {
		if len(b) > 0 {
			b = append(b, ": "...)
		}
		b = append(b, e.Err.Error()...)
	}
	if len(b) == 0 {
		return "hostapi: unspecified error"
	}
	return string(b)
}

// Unwrap allows errors.Is / errors.As to see through to the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON renders the error's Extensions alongside its message using jsoniter, matching how
// the host surfaces structured failure detail to the CLI's progress log.
func (e *Error) MarshalJSON() ([]byte, error) {
	type wire struct {
		Message    string     `json:"message"`
		Op         Op         `json:"op,omitempty"`
		Kind       string     `json:"kind,omitempty"`
		Server     string     `json:"server,omitempty"`
		Extensions Extensions `json:"extensions,omitempty"`
	}
	return jsoniter.Marshal(wire{
		Message:    e.Error(),
		Op:         e.Op,
		Kind:       e.Kind.String(),
		Server:     e.Server,
		Extensions: e.Extensions,
	})
}
