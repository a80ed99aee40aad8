package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File interface for OS filesystem
type osFile struct {
	path  string
	isDir bool
}

func (f *osFile) Path() string { return f.path }
func (f *osFile) IsDir() bool  { return f.isDir }

func (f *osFile) ReadContent() ([]byte, error) {
	return os.ReadFile(f.path)
}

// osDirectory implements Directory interface for OS filesystem
type osDirectory struct {
	path string
}

func (d *osDirectory) Path() string { return d.path }

func (d *osDirectory) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(d.path, func(path string, entry fs.DirEntry, walkErr error) error {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
				}
			}()

			if walkErr != nil {
				callbackErr = fn(nil, fmt.Errorf("%s: %w", path, walkErr))
				return
			}

			callbackErr = fn(&osFile{path: path, isDir: entry.IsDir()}, nil)
		}()

		return callbackErr
	})
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open verifies path is a directory. Walked paths keep path as their prefix,
// so a relative root yields relative file paths.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}
	return &osDirectory{path: path}, nil
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}
