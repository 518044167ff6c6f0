// Package raph holds build-wide metadata for the raph CLI.
package raph

// Version is the current raph release. Overridden at build time via
// -ldflags "-X github.com/simonhull/firebird-suite/raph.Version=...".
var Version = "0.1.0"
