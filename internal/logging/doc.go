// Package logging provides concrete implementations of the fstree.Logger
// interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to a writer (stderr by default)
//   - fstree.NopLogger: discards all messages (lives with the interface)
//
// All logger implementations are safe for concurrent use by multiple
// goroutines.
package logging
