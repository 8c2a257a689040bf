// Package fspath provides an immutable, normalized filesystem path value.
//
// A Path wraps a single cleaned path string using platform-native
// separators. Every composition operation (Join, Prepend, Pop, Replace)
// returns a new Path, so values can be shared freely across goroutines
// without aliasing concerns.
//
// Derived forms (absolute, relative, dirname, basename, extension) are
// computed on demand; Bundle captures all of them in one snapshot struct.
package fspath
