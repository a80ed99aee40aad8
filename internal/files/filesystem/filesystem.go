package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual walked entry.
type File interface {
	// Path returns the path the entry was reached by, rooted at the walked
	// directory's path as the caller supplied it.
	Path() string

	// IsDir reports whether the entry is a directory.
	IsDir() bool

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the directory path as opened.
	Path() string

	// Walk traverses the directory tree, calling fn for each file and directory.
	// When an entry cannot be read fn receives a nil File and the error; if fn
	// returns nil the walk continues past it. Any other error returned by fn
	// stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
