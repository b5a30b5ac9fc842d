// Package scan walks a source tree and selects the files to copy.
//
// Walk produces a lazy depth-first sequence of regular files. Filter narrows
// that sequence to a single extension. Neither one fails: entries that cannot
// be read are skipped so one bad directory never stops the rest of the walk.
package scan

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/danieljhkim/extcopy/internal/plog"
)

// Entry is a file discovered during a walk.
type Entry struct {
	// Path is the file path, rooted at the walk root as given
	Path string

	// Type is the type bits of the entry (always regular for yielded entries)
	Type fs.FileMode
}

// Name returns the base name of the entry.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Walk returns the regular files under root in lexical depth-first order.
//
// Each call to the returned sequence starts a fresh walk. A root that is a
// symlink to a directory is followed; links below the root are not, so the
// walk always terminates. An unreadable or missing root is logged as a
// warning, other unreadable entries at debug level, and both are skipped.
func Walk(root string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		_ = filepath.WalkDir(walkRoot(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d == nil || filepath.Clean(path) == filepath.Clean(root) {
					plog.Warn("cannot read source", "path", root, "error", err)
					return nil
				}
				plog.Debug("skipping unreadable entry", "path", path, "error", err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(Entry{Path: path, Type: d.Type()}) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// walkRoot returns the path to hand to WalkDir. WalkDir uses Lstat on its
// root, so a symlinked directory gets a trailing separator to be resolved.
// Child paths are built with filepath.Join, which drops the separator again.
func walkRoot(root string) string {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root
	}
	if target, err := os.Stat(root); err != nil || !target.IsDir() {
		return root
	}
	if os.IsPathSeparator(root[len(root)-1]) {
		return root
	}
	return root + string(filepath.Separator)
}
