// Package storage defines the primitive filesystem capability the rest of
// the module builds on, plus two implementations.
//
// The Storage interface is deliberately thin: existence, stat, listing,
// read, write, append, and recursive directory creation. No retry, no
// locking, no buffering — higher layers own those decisions.
//
// Implementations:
//   - OS: production implementation over the local filesystem
//   - Memory: in-memory implementation for tests, with fault injection
//
// Every failure is reported as an *OpError naming the operation and the
// path, wrapping one of the sentinel errors (ErrNotAccessible,
// ErrNotADirectory, ErrNotAFile) so callers can classify with errors.Is.
package storage
