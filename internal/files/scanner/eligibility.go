package scanner

import (
	"path/filepath"
	"strings"

	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// ShouldScan reports whether path is eligible under cfg: its extension is one
// of the include extensions (case-insensitive) and no exclude pattern occurs
// anywhere in the path string. Empty lists in cfg mean the defaults.
func ShouldScan(path string, cfg hsscan.ScannerConfig) bool {
	includes := cfg.IncludeExtensions
	if len(includes) == 0 {
		includes = hsscan.DefaultIncludeExtensions()
	}
	excludes := cfg.ExcludePatterns
	if len(excludes) == 0 {
		excludes = hsscan.DefaultExcludePatterns()
	}
	return hasExtension(path, includes) && !excluded(path, excludes)
}

// hasExtension reads the extension from the final path element. A name made
// of a dot and the extension alone, such as ".html", has no extension.
func hasExtension(path string, includes []string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || len(ext) == len(base) {
		return false
	}
	for _, candidate := range includes {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
