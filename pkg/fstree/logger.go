package fstree

// Logger provides a pluggable logging interface for tree resolution.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

// NopLogger discards all messages. It is the default for resolvers built
// without an explicit logger.
type NopLogger struct{}

func (NopLogger) Verbose(format string, args ...interface{}) {}
func (NopLogger) Info(format string, args ...interface{})    {}
func (NopLogger) Error(format string, args ...interface{})   {}

var _ Logger = NopLogger{}
