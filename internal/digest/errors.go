package digest

import "errors"

// Terminal failure classes for the top-level hashing operations. Callers
// discriminate with errors.Is; a returned digest string is always a digest,
// never an error marker.
//
// Per-file read errors and unreadable subtrees are recovered during directory
// hashing (logged and skipped) and never surface through these.
var (
	// ErrNotFound is returned when the requested path does not exist.
	ErrNotFound = errors.New("path does not exist")

	// ErrUnsupportedAlgorithm is returned when the requested algorithm is
	// not in the supported set. It is reported before any file is opened.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrUnsupportedPathKind is returned when the path exists but is
	// neither a regular file nor a directory.
	ErrUnsupportedPathKind = errors.New("path is neither a regular file nor a directory")
)
