package cli

import (
	"encoding/json"
	"io"

	"github.com/danieljhkim/extcopy/internal/clock"
	"github.com/danieljhkim/extcopy/internal/config"
	"github.com/danieljhkim/extcopy/internal/engine"
	"github.com/danieljhkim/extcopy/internal/fsops"
	"github.com/danieljhkim/extcopy/internal/humanize"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(reporter engine.Reporter) *engine.Engine {
	return engine.New(fsops.NewRealFS(), clock.RealClock{}, reporter)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runReport is the JSON shape of a run. It opens with the resolved
// configuration, which stands in for the echo line of the text output.
type runReport struct {
	Config      string       `json:"config"`
	Source      string       `json:"source"`
	Destination string       `json:"destination"`
	Extension   string       `json:"extension"`
	Flatten     bool         `json:"flatten"`
	Mode        string       `json:"mode"`
	DryRun      bool         `json:"dryRun"`
	Copied      int          `json:"copied"`
	Skipped     int          `json:"skipped"`
	Failed      int          `json:"failed"`
	Bytes       int64        `json:"bytes"`
	Size        string       `json:"size"`
	ElapsedMS   int64        `json:"elapsedMs"`
	Files       []fileReport `json:"files"`
}

type fileReport struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	Bytes       int64  `json:"bytes,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Error       string `json:"error,omitempty"`
}

// newRunReport flattens a run result for JSON output. In a dry run every
// planned task is listed with the status "planned".
func newRunReport(cfg *config.Config, result *engine.RunResult) *runReport {
	report := &runReport{
		Config:      cfg.String(),
		Source:      cfg.Source,
		Destination: cfg.Destination,
		Extension:   cfg.Extension,
		Flatten:     cfg.Flatten,
		Mode:        string(result.Plan.Mode),
		DryRun:      result.DryRun,
		Copied:      result.Copied,
		Skipped:     result.Skipped,
		Failed:      result.Failed,
		Bytes:       result.Bytes,
		Size:        humanize.Bytes(uint64(result.Bytes)),
		ElapsedMS:   result.Elapsed.Milliseconds(),
		Files:       []fileReport{},
	}

	if result.DryRun {
		for _, task := range result.Plan.Tasks {
			report.Files = append(report.Files, fileReport{
				Source:      task.SourcePath,
				Destination: task.DestPath,
				Status:      "planned",
			})
		}
		return report
	}

	for _, o := range result.Outcomes {
		f := fileReport{
			Source:      o.Task.SourcePath,
			Destination: o.Task.DestPath,
			Status:      string(o.Kind),
			Bytes:       o.Bytes,
			Reason:      o.Reason,
		}
		if o.Err != nil {
			f.Error = o.Err.Error()
		}
		report.Files = append(report.Files, f)
	}
	return report
}
