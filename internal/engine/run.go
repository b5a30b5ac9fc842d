package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/extcopy/internal/clock"
	"github.com/danieljhkim/extcopy/internal/config"
	"github.com/danieljhkim/extcopy/internal/planner"
	"github.com/danieljhkim/extcopy/internal/plog"
	"github.com/danieljhkim/extcopy/internal/scan"
)

// Plan scans the source tree and builds the copy plan for cfg.
// The whole plan is built before anything is copied, so files written into a
// destination nested inside the source are never picked up by the scan.
func (e *Engine) Plan(cfg *config.Config) (*planner.CopyPlan, error) {
	files := scan.Filter(scan.Walk(cfg.Source), cfg.Extension)

	plan, err := planner.New(cfg).Build(files)
	if err != nil {
		return nil, fmt.Errorf("failed to plan copy: %w", err)
	}

	plog.Debug("plan built",
		"mode", plan.Mode,
		"tasks", len(plan.Tasks),
		"collisions", len(plan.Collisions))
	return plan, nil
}

// Run executes the copy pipeline described by req.
//
// Errors are returned only for setup failures (planning, destination) and
// context cancellation; in those cases the partial result is still returned
// when one exists.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	cfg := req.Config
	start := e.clock.Now()

	plan, err := e.Plan(cfg)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Plan:     plan,
		Outcomes: []Outcome{},
		DryRun:   req.DryRun,
	}

	if req.DryRun {
		result.Elapsed = clock.Since(e.clock, start)
		return result, nil
	}

	if err := e.ensureDestination(cfg.Destination); err != nil {
		return result, err
	}

	for _, task := range plan.Tasks {
		if err := ctx.Err(); err != nil {
			result.Elapsed = clock.Since(e.clock, start)
			return result, err
		}

		outcome := e.execute(plan.Mode, task)
		result.record(outcome)
		e.reporter.Report(outcome)
	}

	result.Elapsed = clock.Since(e.clock, start)
	return result, nil
}

// ensureDestination creates the destination root if it is missing.
// Only the last path element is created; a missing parent is a setup error.
func (e *Engine) ensureDestination(dest string) error {
	info, err := e.fs.Stat(dest)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrDestinationNotDir, dest)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat destination %s: %w", dest, err)
	}

	if err := e.fs.Mkdir(dest, 0755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDestinationCreate, dest, err)
	}
	plog.Debug("created destination directory", "path", dest)
	return nil
}

// execute runs a single task and turns every failure into an Outcome.
func (e *Engine) execute(mode planner.Mode, task planner.CopyTask) Outcome {
	exists, err := e.fs.Exists(task.DestPath)
	if err != nil {
		return failed(task, fmt.Errorf("failed to check destination: %w", err))
	}
	if exists {
		return Outcome{Kind: OutcomeSkipped, Task: task, Reason: ReasonAlreadyExists}
	}

	if mode == planner.ModePreserve {
		if err := e.fs.MkdirAll(filepath.Dir(task.DestPath), 0755); err != nil {
			return failed(task, fmt.Errorf("failed to create parent directory: %w", err))
		}
	}

	n, err := e.fs.CopyFile(task.SourcePath, task.DestPath)
	if err != nil {
		return failed(task, err)
	}
	return Outcome{Kind: OutcomeCopied, Task: task, Bytes: n}
}

func failed(task planner.CopyTask, err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Task: task, Err: err}
}
