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

// Command weakenall loads a weakenall.Config (from -config, or the defaults) and then exits with
// status 1 without running the weaken-all application. It does not implement a hostapi.NS itself
// — there is no Bitburner runtime to connect to outside the game — so main exits with a message
// pointing at this gap rather than pretending to be a full CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hackrunner/bbrunner/weakenall"
)

func main() {
	configPath := flag.String("config", "", "path to a weakenall.Config JSON file")
	flag.Parse()

	cfg := weakenall.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "weakenall:", err)
			os.Exit(1)
		}
		defer f.Close()

		cfg, err = weakenall.LoadConfig(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "weakenall:", err)
			os.Exit(1)
		}
	}

	_ = cfg

	fmt.Fprintln(os.Stderr, "weakenall: no hostapi.NS implementation is wired up outside the game itself; pass one in from an embedding program instead of running this binary directly")
	os.Exit(1)
}
