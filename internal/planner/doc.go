// Package planner computes where each matched file is copied to.
//
// The planner turns the filtered scan into a CopyPlan: an ordered list of
// CopyTasks, one per matched file, in traversal order. Planning never touches
// the filesystem. Whether a destination already exists is decided by the
// engine at execution time, so a plan is the same on every run.
//
// Key responsibilities:
//   - Map source paths to destination paths in flatten or preserve mode
//   - Keep every destination rooted under the destination directory
//   - Record destinations claimed by more than one source (flatten collisions)
package planner
