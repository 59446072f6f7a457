// Package cliutil wires the driver-layer concerns that stay out of the
// analysis core: structured progress logging and a terminal spinner during
// discovery.
package cliutil

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
)

// NewLogger returns a console-writer zerolog.Logger for the CLI driver.
// Rule diagnostics never go through this logger — they flow through the
// analyzer.Sink and are rendered by internal/report; this is strictly for
// the driver's own progress/error narration.
func NewLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// Spinner returns a stopped spinner for the caller to Start/Stop around the
// discovery phase.
func Spinner(prefix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = prefix
	return s
}
