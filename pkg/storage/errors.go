package storage

import "errors"

// Sentinel errors classifying storage failures.
// Callers distinguish them with errors.Is.
var (
	// ErrNotAccessible indicates the path is missing or could not be
	// reached at existence/stat time.
	ErrNotAccessible = errors.New("not accessible")

	// ErrNotADirectory indicates a directory-only operation was attempted
	// on a file, or a write's parent directory is missing.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotAFile indicates a file-only operation was attempted on a
	// directory.
	ErrNotAFile = errors.New("not a file")
)

// OpError reports a failed storage operation. It carries the operation
// name and the path for diagnosability, and unwraps to both its sentinel
// classification and the underlying cause.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

var _ error = (*OpError)(nil)

func (e *OpError) Error() string {
	msg := e.Op + " " + e.Path + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func opError(op, path string, kind, cause error) error {
	return &OpError{Op: op, Path: path, Kind: kind, Err: cause}
}
