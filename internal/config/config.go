// Package config holds the resolved run configuration for extcopy.
//
// A Config is built once from command-line input by New and is never mutated
// afterwards. Every component receives it by pointer; nothing reads it from
// package-level state.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSource is the source directory used when none is given.
const DefaultSource = "."

var (
	// ErrNoDestination indicates the destination directory was not provided.
	ErrNoDestination = errors.New("destination directory is required")

	// ErrNoExtension indicates the extension was empty after normalization.
	ErrNoExtension = errors.New("extension is required")
)

// Config contains everything the copy pipeline needs to know about a run.
type Config struct {
	// Source is the root of the tree to scan (default: current directory)
	Source string

	// Destination is the directory files are copied into
	Destination string

	// Extension is the file extension to match, without a leading dot
	Extension string

	// Flatten copies every file directly into Destination using its base name
	Flatten bool
}

// New validates and normalizes command-line input into a Config.
// The source directory is not checked for existence; a missing source
// simply yields an empty scan.
func New(source, destination, extension string, flatten bool) (*Config, error) {
	if source == "" {
		source = DefaultSource
	}
	if destination == "" {
		return nil, ErrNoDestination
	}

	ext := NormalizeExtension(extension)
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension characters", ErrNoExtension, extension)
	}

	return &Config{
		Source:      filepath.Clean(source),
		Destination: filepath.Clean(destination),
		Extension:   ext,
		Flatten:     flatten,
	}, nil
}

// NormalizeExtension strips leading dots so ".txt" and "txt" are equivalent.
// Case is preserved; matching is case-sensitive.
func NormalizeExtension(ext string) string {
	return strings.TrimLeft(ext, ".")
}

// String renders the configuration for echoing before a run.
func (c *Config) String() string {
	return fmt.Sprintf("Config { source: %q, destination: %q, extension: %q, flatten: %t }",
		c.Source, c.Destination, c.Extension, c.Flatten)
}
