// Package engine runs the extcopy pipeline.
//
// The engine is the orchestration layer between the CLI and the lower-level
// packages. A run scans the source tree, filters it by extension, builds the
// full copy plan, makes sure the destination exists and then executes each
// task in plan order.
//
// Only setup failures abort a run. Per-file problems become Outcomes that are
// handed to the Reporter, and the run carries on with the next task.
package engine

import (
	"github.com/danieljhkim/extcopy/internal/clock"
	"github.com/danieljhkim/extcopy/internal/fsops"
)

// Engine orchestrates a copy run.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	clock    clock.Clock
	reporter Reporter
}

// New creates a new Engine with the given dependencies.
// A nil reporter discards outcomes.
func New(fs fsops.FS, clk clock.Clock, reporter Reporter) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Engine{
		fs:       fs,
		clock:    clk,
		reporter: reporter,
	}
}
