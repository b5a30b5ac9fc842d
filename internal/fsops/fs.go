// Package fsops provides the filesystem operations used by the copy engine.
//
// Every filesystem mutation in extcopy goes through the FS interface so the
// engine can be exercised against failing filesystems in tests.
//
// Key properties:
//   - Copies never overwrite: the destination is created exclusively
//   - Existence checks do not follow symlinks
//   - One source/destination handle pair per copy, closed before returning
package fsops

import (
	"fmt"
	"io"
	"os"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Exists checks if a path exists without following symlinks.
	Exists(path string) (bool, error)

	// Mkdir creates a single directory. The parent must exist.
	Mkdir(path string, perm os.FileMode) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CopyFile copies the contents of src to a new file dst and returns the
	// number of bytes written.
	CopyFile(src, dst string) (int64, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a path exists without following symlinks.
// A dangling symlink exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Mkdir creates a single directory.
func (fs *RealFS) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies a regular file from src to dst with the source's permission
// bits. dst must not exist and its parent directory must. A failed copy may
// leave a partially written dst behind.
func (fs *RealFS) CopyFile(src, dst string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat source: %w", err)
	}
	if srcInfo.IsDir() {
		return 0, fmt.Errorf("failed to copy %q: is a directory", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create destination: %w", err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	n, err := io.Copy(dstFile, srcFile)
	if err != nil {
		return n, fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return n, fmt.Errorf("failed to sync destination: %w", err)
	}
	return n, nil
}
