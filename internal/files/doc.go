// Package files groups the file-facing sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS, io/fs and in-memory)
//   - scanner: File eligibility, per-file classification and parallel tree scans
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/hsscan/internal/files/filesystem"
//	    "github.com/vvka-141/hsscan/internal/files/scanner"
//	)
//
//	s, err := scanner.NewScanner(hsscan.ScannerConfig{},
//	    scanner.WithFileSystem(filesystem.NewOSFileSystem()))
//	usages, err := s.ScanDirectory(ctx, "./templates")
package files
