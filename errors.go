package conllu

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrDirNotFound indicates the input directory does not exist or is
	// not a directory.
	ErrDirNotFound = errors.New("conllu: directory not found")
)
