package hsscan

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Scan completed
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or catalog extension
	ExitNoUsage      = 15 // --fail-empty was set and nothing was detected
)

const (
	// DefaultCacheSize is the number of distinct file contents whose usage is
	// kept in memory between scans.
	DefaultCacheSize = 1024

	// MaxWorkers bounds the worker pool size accepted in configuration.
	MaxWorkers = 1024
)

// DefaultIncludeExtensions lists the markup and template extensions scanned
// when no extensions are configured.
func DefaultIncludeExtensions() []string {
	return []string{".html", ".htm", ".txt", ".xml", ".jinja", ".jinja2"}
}

// DefaultExcludePatterns lists the path substrings skipped when no exclusions
// are configured.
func DefaultExcludePatterns() []string {
	return []string{"__pycache__", ".git", "node_modules", ".venv", "venv", "site-packages"}
}
