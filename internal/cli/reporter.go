package cli

import (
	"fmt"

	"github.com/danieljhkim/extcopy/internal/engine"
	"github.com/danieljhkim/extcopy/internal/humanize"
)

// consoleReporter prints one line per outcome as the engine produces them.
// Copies and skips go to stdout, failures to stderr.
type consoleReporter struct {
	p *printer
}

func newConsoleReporter(p *printer) *consoleReporter {
	return &consoleReporter{p: p}
}

// Report implements engine.Reporter.
func (r *consoleReporter) Report(o engine.Outcome) {
	switch o.Kind {
	case engine.OutcomeCopied:
		r.p.Success(fmt.Sprintf("Copied %s (%s)", o.Task.DestPath, humanize.Bytes(uint64(o.Bytes))))
	case engine.OutcomeSkipped:
		r.p.Warning(fmt.Sprintf("Skipping %s - %s", o.Task.DestPath, o.Reason))
	case engine.OutcomeFailed:
		r.p.Error(fmt.Sprintf("Failed to copy %s: %v", o.Task.SourcePath, o.Err))
	}
}
