package storage

import (
	"context"
	"time"
)

// Info describes a single filesystem entry.
type Info struct {
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// IsFile reports whether the entry is a regular file rather than a
// directory.
func (i Info) IsFile() bool {
	return !i.IsDir
}

// Storage is the primitive filesystem capability consumed by the tree
// resolver and the CLI. Implementations must be safe for concurrent use
// by multiple goroutines: the resolver issues sibling calls in parallel.
type Storage interface {
	// Exists reports whether path exists at all.
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns metadata for path. Fails with ErrNotAccessible when
	// the path does not exist.
	Stat(ctx context.Context, path string) (Info, error)

	// List returns the ordered leaf names of path's immediate children.
	// Fails with ErrNotADirectory when invoked on a file.
	List(ctx context.Context, path string) ([]string, error)

	// ReadFile returns the full content of the file at path. Fails with
	// ErrNotAFile when invoked on a directory.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the content of the file at path. Fails with
	// ErrNotADirectory when the parent directory is missing; missing
	// parents are never created implicitly.
	WriteFile(ctx context.Context, path string, data []byte) error

	// AppendFile appends data to the file at path, creating the file if
	// needed. Same parent-directory rule as WriteFile.
	AppendFile(ctx context.Context, path string, data []byte) error

	// MakeDirAll creates the directory at path along with any missing
	// parents. Succeeds if path already exists as a directory.
	MakeDirAll(ctx context.Context, path string) error
}
