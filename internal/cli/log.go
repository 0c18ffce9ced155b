// Package cli implements the caliper command-line interface.
//
// Every command takes a scene file, builds it through pkg/scene, and then
// reports on the resulting constraints. Rendering to SVG goes through the
// artifact cache unless --no-cache is given.
//
// # Commands
//
//   - check: build a scene and list its active constraints
//   - export: write constraints as JSON, DOT or SVG
//   - inspect: browse elements and their constraints interactively
//   - cache: manage the rendered-SVG cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which traces
// every make, remake and engine batch.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when done is called.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered login (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
