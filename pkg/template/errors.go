package template

import "errors"

var (
	// ErrTemplateNotFound is returned when the requested template name is
	// not present in the repository catalog.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrDestinationConflict is returned when the destination directory
	// exists, is non-empty, and overwrite was not requested. No files are
	// touched in that case.
	ErrDestinationConflict = errors.New("destination directory already exists and is not empty")
)
