// Package logging provides concrete implementations of the hsscan.Logger interface.
//
// ConsoleLogger writes formatted messages to the diagnostic stream and is safe
// for concurrent use by multiple goroutines. Code that wants no diagnostics
// uses hsscan.NopLogger.
package logging
