package hsscan

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	if _, err := catalog.Extend(base, ext); errors.Is(err, hsscan.ErrInvalidPattern) {
//	    // report the offending carrier or block rule
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPattern indicates a catalog rule could not be compiled or
	// references a capture group the pattern does not have.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUndecodable indicates file content is not valid UTF-8 text.
	ErrUndecodable = errors.New("content is not valid UTF-8")

	// ErrNoUsage indicates a scan detected nothing and the caller asked for
	// that to be treated as a failure.
	ErrNoUsage = errors.New("no usage detected")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidPattern):
		return ExitConfigError
	case errors.Is(err, ErrNoUsage):
		return ExitNoUsage
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, marker := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"required flag",
		"invalid argument",
		"missing required argument",
	} {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
