// Package cli implements the command-line interface for downtown-busy.
//
// Running downtown-busy with no arguments loads the venue list, probes every
// venue page, writes public/data/status.json and prints a one-line summary. The
// show subcommand prints the last written snapshot the way the site words it.
// Per-venue failures are logged to stderr and never change the exit code; only a
// bad venue config or a failed snapshot write exits non-zero.
package cli
