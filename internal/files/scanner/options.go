package scanner

import (
	"github.com/vvka-141/hsscan/internal/cache"
	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/internal/files/filesystem"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// Option is a functional option for configuring a Scanner.
type Option func(*Scanner)

// WithFileSystem sets the filesystem the scanner reads from. Defaults to the OS filesystem.
func WithFileSystem(fsProvider filesystem.FileSystemProvider) Option {
	return func(s *Scanner) {
		s.fsProvider = fsProvider
	}
}

// WithCatalog sets the pattern catalog. Defaults to catalog.Default().
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Scanner) {
		s.catalog = c
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger hsscan.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithCache shares an existing usage cache, overriding ScannerConfig.CacheSize.
// A nil cache disables caching.
func WithCache(c *cache.UsageCache) Option {
	return func(s *Scanner) {
		s.cache = c
		s.cacheSet = true
	}
}
