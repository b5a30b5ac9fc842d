package planner

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/extcopy/internal/config"
	"github.com/danieljhkim/extcopy/internal/scan"
)

// ErrOutsideRoot indicates a scanned path does not sit under the source root.
// The scanner is always rooted at the source, so this is a bug, not user error.
var ErrOutsideRoot = errors.New("path is outside the source root")

// Mode selects how destination paths are laid out.
type Mode string

// Mode constants
const (
	ModePreserve Mode = "preserve"
	ModeFlatten  Mode = "flatten"
)

// ModeOf returns the layout mode configured in cfg.
func ModeOf(cfg *config.Config) Mode {
	if cfg.Flatten {
		return ModeFlatten
	}
	return ModePreserve
}

// CopyTask is a single file copy to execute.
type CopyTask struct {
	// SourcePath is the file to copy, as yielded by the scanner
	SourcePath string

	// DestPath is where the file is written, always under the destination root
	DestPath string

	// RelPath is DestPath relative to the destination root
	RelPath string
}

// Collision records a destination claimed by more than one source file.
// Only the first source is copied; later ones are skipped at execution time.
type Collision struct {
	// DestPath is the contested destination
	DestPath string

	// First is the source that claimed DestPath first
	First string

	// Later is the source that will be skipped
	Later string
}

// CopyPlan is the ordered set of copies for a run.
type CopyPlan struct {
	// Mode is the layout mode the plan was built with
	Mode Mode

	// Tasks is the ordered list of copies, in traversal order
	Tasks []CopyTask

	// Collisions lists destinations claimed more than once
	Collisions []Collision
}

// NewCopyPlan creates a new empty CopyPlan.
func NewCopyPlan(mode Mode) *CopyPlan {
	return &CopyPlan{
		Mode:       mode,
		Tasks:      []CopyTask{},
		Collisions: []Collision{},
	}
}

// AddTask appends a task to the plan.
func (p *CopyPlan) AddTask(task CopyTask) {
	p.Tasks = append(p.Tasks, task)
}

// HasCollisions returns true if any destination is claimed more than once.
func (p *CopyPlan) HasCollisions() bool {
	return len(p.Collisions) > 0
}

// Planner maps scanned files to destination paths for one configuration.
type Planner struct {
	cfg *config.Config
}

// New creates a Planner for cfg.
func New(cfg *config.Config) *Planner {
	return &Planner{cfg: cfg}
}

// Plan computes the CopyTask for a single scanned file.
func (p *Planner) Plan(entry scan.Entry) (CopyTask, error) {
	rel, err := p.relPath(entry.Path)
	if err != nil {
		return CopyTask{}, err
	}

	return CopyTask{
		SourcePath: entry.Path,
		DestPath:   filepath.Join(p.cfg.Destination, rel),
		RelPath:    rel,
	}, nil
}

// relPath returns the destination-relative path for a source file.
func (p *Planner) relPath(path string) (string, error) {
	if p.cfg.Flatten {
		return filepath.Base(path), nil
	}

	rel, err := filepath.Rel(p.cfg.Source, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutsideRoot, path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}
	// The source root is itself the file.
	if rel == "." {
		return filepath.Base(path), nil
	}
	return rel, nil
}

// Build plans every entry of seq in order.
// It stops at the first entry that cannot be planned.
func (p *Planner) Build(seq iter.Seq[scan.Entry]) (*CopyPlan, error) {
	plan := NewCopyPlan(ModeOf(p.cfg))

	// Track which source claimed each destination first
	owners := make(map[string]string)

	for entry := range seq {
		task, err := p.Plan(entry)
		if err != nil {
			return nil, err
		}

		if first, claimed := owners[task.DestPath]; claimed {
			plan.Collisions = append(plan.Collisions, Collision{
				DestPath: task.DestPath,
				First:    first,
				Later:    task.SourcePath,
			})
		} else {
			owners[task.DestPath] = task.SourcePath
		}

		plan.AddTask(task)
	}

	return plan, nil
}
