// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The scanner reads templates through these interfaces so the same walk and
// classification code runs against the OS filesystem or an in-memory tree in
// tests.
//
// Key interfaces:
//   - FileSystemProvider: opens directories and reads files
//   - Directory: a directory tree that can be walked
//   - File: a walked entry with metadata and a content accessor
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing, with failure injection
//
// A missing directory or file is reported with an error matching fs.ErrNotExist.
package filesystem
