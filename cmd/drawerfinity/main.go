// Drawerfinity — Gridfinity drawer planner
//
// A CLI tool that partitions drawer interiors into 42 mm Gridfinity units,
// validates bin placements, plans printable baseplate sections, and exports
// layout reports, QR labels, and spreadsheets.
//
// Build:
//
//	go build -o drawerfinity ./cmd/drawerfinity
package main

import (
	"os"

	"github.com/rmaxseiner/drawerfinity/internal/cli"
)

// Version information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
