package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/danieljhkim/extcopy/internal/config"
	"github.com/danieljhkim/extcopy/internal/engine"
	"github.com/danieljhkim/extcopy/internal/planner"
)

func TestConsoleReporter(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	task := planner.CopyTask{SourcePath: "src/a.txt", DestPath: "dst/a.txt", RelPath: "a.txt"}

	tests := []struct {
		name    string
		outcome engine.Outcome
		wantOut string
		wantErr string
	}{
		{
			name:    "copied",
			outcome: engine.Outcome{Kind: engine.OutcomeCopied, Task: task, Bytes: 1536},
			wantOut: "Copied dst/a.txt (1.5 KB)\n",
		},
		{
			name:    "skipped",
			outcome: engine.Outcome{Kind: engine.OutcomeSkipped, Task: task, Reason: engine.ReasonAlreadyExists},
			wantOut: "Skipping dst/a.txt - already exists\n",
		},
		{
			name:    "failed",
			outcome: engine.Outcome{Kind: engine.OutcomeFailed, Task: task, Err: errors.New("permission denied")},
			wantErr: "Failed to copy src/a.txt: permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			newConsoleReporter(newPrinter(&out, &errOut)).Report(tt.outcome)

			if out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			if errOut.String() != tt.wantErr {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestNewRunReport(t *testing.T) {
	cfg := &config.Config{Source: "src", Destination: "dst", Extension: "txt"}
	task := planner.CopyTask{SourcePath: "src/a.txt", DestPath: "dst/a.txt", RelPath: "a.txt"}
	plan := planner.NewCopyPlan(planner.ModePreserve)
	plan.AddTask(task)

	t.Run("dry run lists planned tasks", func(t *testing.T) {
		report := newRunReport(cfg, &engine.RunResult{Plan: plan, DryRun: true})

		if !report.DryRun || len(report.Files) != 1 || report.Files[0].Status != "planned" {
			t.Errorf("unexpected dry-run report: %+v", report)
		}
	})

	t.Run("outcomes carry errors", func(t *testing.T) {
		report := newRunReport(cfg, &engine.RunResult{
			Plan: plan,
			Outcomes: []engine.Outcome{
				{Kind: engine.OutcomeFailed, Task: task, Err: errors.New("boom")},
			},
			Failed:  1,
			Elapsed: 1500 * time.Millisecond,
		})

		if report.Failed != 1 || report.ElapsedMS != 1500 || report.Size != "0 B" {
			t.Errorf("unexpected counters: %+v", report)
		}
		if len(report.Files) != 1 || report.Files[0].Error != "boom" || report.Files[0].Status != "failed" {
			t.Errorf("unexpected files: %+v", report.Files)
		}
	})
}

func TestCount(t *testing.T) {
	if got := Count(1, "file", "files"); got != "1 file" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(3, "file", "files"); !strings.HasPrefix(got, "3 files") {
		t.Errorf("Count(3) = %q", got)
	}
}
