package mirror

import "errors"

var (
	// ErrNotADirectory indicates a path that had to be a directory but
	// is missing or is a regular file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAlreadyExists indicates a container info file already present
	// at the target path while overwriting is disabled.
	ErrAlreadyExists = errors.New("container record already exists")
)
