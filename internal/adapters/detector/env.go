// Package detector chooses between the interactive chart and plain text output.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a plot is presented.
type OutputMode int

const (
	// ModeAuto picks TUI on an interactive terminal and Linear otherwise.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive chart.
	ModeTUI
	// ModeLinear forces a single text frame written to stdout.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Detector inspects the process environment.
type Detector struct {
	isTerminal func(fd int) bool
	getenv     func(key string) string
	fd         int
}

// New returns a Detector probing stdout and the real environment.
func New() *Detector {
	return &Detector{
		isTerminal: term.IsTerminal,
		getenv:     os.Getenv,
		fd:         int(os.Stdout.Fd()), //nolint:gosec // file descriptors fit in int
	}
}

// NewWithProbes returns a Detector using the given probes.
func NewWithProbes(isTerminal func(fd int) bool, getenv func(key string) string) *Detector {
	return &Detector{isTerminal: isTerminal, getenv: getenv, fd: 1}
}

// Detect returns ModeLinear when stdout is not a TTY, when CI is set, or when
// TERM is "dumb". It returns ModeTUI otherwise.
func (d *Detector) Detect() OutputMode {
	if !d.isTerminal(d.fd) {
		return ModeLinear
	}
	ci := d.getenv("CI")
	if ci == "true" || ci == "1" {
		return ModeLinear
	}
	if d.getenv("TERM") == "dumb" {
		return ModeLinear
	}
	return ModeTUI
}

// Resolve applies the --output-mode flag to the detected mode. Unknown flag
// values fall back to detection.
func (d *Detector) Resolve(userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci", "text":
		return ModeLinear
	default:
		return d.Detect()
	}
}
