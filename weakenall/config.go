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
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/hackrunner/bbrunner/concurrent/future"
)

// Config holds the knobs weaken-all's CLI entry point loads from a JSON file before building an
// Executor: how much RAM to assume is free (overriding what the host reports, useful for holding
// some back for other scripts), the reactor's retry backoff, and the core count the thread search
// assumes the current host has.
type Config struct {
	// MaxRAMOverride, when non-nil, is used instead of the host-reported free RAM.
	MaxRAMOverride *float64 `json:"maxRamOverride,omitempty"`

	// RetryBackoffMillis is how long a Process Future polled past its expected finish waits before
	// being retried.
	RetryBackoffMillis float64 `json:"retryBackoffMillis"`

	// Cores is the core count the thread search functions assume the current host has.
	Cores int `json:"cores"`
}

// DefaultConfig returns the configuration weaken-all uses when no config file is given.
func DefaultConfig() Config {
	return Config{
		RetryBackoffMillis: future.DefaultRetryBackoffMillis,
		Cores:              1,
	}
}

// LoadConfig decodes a Config from r, starting from DefaultConfig so an omitted field keeps its
// default rather than zeroing out.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := jsoniter.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}
