package engine

import (
	"time"

	"github.com/danieljhkim/extcopy/internal/config"
	"github.com/danieljhkim/extcopy/internal/planner"
)

// RunRequest represents a request to run the copy pipeline.
type RunRequest struct {
	// Config is the resolved run configuration
	Config *config.Config

	// DryRun builds the plan without touching the destination
	DryRun bool
}

// OutcomeKind classifies the result of a single copy task.
type OutcomeKind string

// Outcome kinds
const (
	OutcomeCopied  OutcomeKind = "copied"
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeFailed  OutcomeKind = "failed"
)

// ReasonAlreadyExists is the skip reason for a destination that is already present.
const ReasonAlreadyExists = "already exists"

// Outcome is the result of executing one CopyTask.
type Outcome struct {
	// Kind is copied, skipped or failed
	Kind OutcomeKind

	// Task is the task that was executed
	Task planner.CopyTask

	// Bytes is the number of bytes written (copied only)
	Bytes int64

	// Reason explains a skip
	Reason string

	// Err is the copy error (failed only)
	Err error
}

// Reporter receives outcomes as they happen, in plan order.
type Reporter interface {
	Report(outcome Outcome)
}

// NopReporter discards every outcome.
type NopReporter struct{}

// Report does nothing.
func (NopReporter) Report(Outcome) {}

// RunResult represents the result of a run.
type RunResult struct {
	// Plan is the generated plan
	Plan *planner.CopyPlan

	// Outcomes holds one entry per executed task (empty if DryRun)
	Outcomes []Outcome

	// DryRun is true if nothing was copied on purpose
	DryRun bool

	Copied  int
	Skipped int
	Failed  int

	// Bytes is the total number of bytes copied
	Bytes int64

	// Elapsed is the wall time of the whole run
	Elapsed time.Duration
}

func (r *RunResult) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Kind {
	case OutcomeCopied:
		r.Copied++
		r.Bytes += o.Bytes
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}
