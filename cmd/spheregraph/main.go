// SPDX-License-Identifier: MIT
//
// Command spheregraph builds HEALPix sphere graphs, reports their shape and
// optionally renders them and saves them to SQLite.
//
//	spheregraph -nside 8 -ring -html -spy -out plots
//	spheregraph -nside 4 -db graphs.db
//	spheregraph -job nightly.hcl
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// exitError carries a process exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			stop()
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "spheregraph:", err)
		stop()
		os.Exit(1)
	}
}

// usage prints the help text.
func usage(w io.Writer, printDefaults func()) {
	fmt.Fprint(w, `spheregraph - k-nearest-neighbour graphs on the HEALPix sphere.

Usage:
  spheregraph [options]
  spheregraph -job FILE.hcl

Supported resolutions: 1, 2, 4, 8, 16, 32.

Options:
`)
	printDefaults()
}
