package hsscan

import "context"

// UsageScanner finds embedded hyperscript in template files and classifies
// the features it uses.
//
// None of the methods report per-file problems: unreadable files contribute
// an empty usage and missing roots contribute nothing. Directory scans only
// return an error when ctx is cancelled, alongside the partial result gathered
// so far (always a valid subset of the full result).
type UsageScanner interface {
	// ShouldScan reports whether path is eligible under the scanner's configuration.
	ShouldScan(path string) bool

	// ScanFile reads and classifies a single file. Eligibility is not checked.
	ScanFile(path string) FileUsage

	// ScanContent classifies in-memory content. label is used for diagnostics only.
	ScanContent(content, label string) FileUsage

	// ScanDirectory recursively scans every eligible file under root.
	ScanDirectory(ctx context.Context, root string) (map[string]FileUsage, error)

	// ScanDirectories scans each root in order. A path reached from more than
	// one root keeps the entry from the last root.
	ScanDirectories(ctx context.Context, roots []string) (map[string]FileUsage, error)
}
