package engine

import "errors"

var (
	// ErrDestinationNotDir indicates the destination exists but is not a directory.
	ErrDestinationNotDir = errors.New("destination is not a directory")

	// ErrDestinationCreate indicates the destination directory could not be created.
	ErrDestinationCreate = errors.New("failed to create destination directory")
)
