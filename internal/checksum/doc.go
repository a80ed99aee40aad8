// Package checksum provides content hashing used to key memoized scan results.
//
// Two files with identical bytes always classify identically, so the raw
// SHA-256 of a file's content identifies its usage regardless of path.
//
// # Example Usage
//
//	calculator := checksum.New()
//	key := calculator.Sum(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
