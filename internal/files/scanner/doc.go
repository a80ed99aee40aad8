// Package scanner finds embedded hyperscript in template files and reports
// which commands, block kinds and positional expressions each file uses.
//
// A Scanner runs the extract-then-classify pipeline over a single file, an
// in-memory string, or every eligible file under one or more directory trees.
// Tree scans fan out over a bounded worker pool; a single collector owns the
// result map, so the only synchronization is the channel between them.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling both production use with the OS filesystem and testing with
// in-memory filesystems.
package scanner
