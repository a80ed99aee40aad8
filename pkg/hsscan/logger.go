package hsscan

// Logger defines the logging interface used by the scanner and the CLI.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when debug mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of debug mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of debug mode.
	Error(format string, args ...interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Verbose(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})    {}
func (NopLogger) Error(string, ...interface{})   {}
