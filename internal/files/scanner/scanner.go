package scanner

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/hsscan/internal/cache"
	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/internal/checksum"
	"github.com/vvka-141/hsscan/internal/classify"
	"github.com/vvka-141/hsscan/internal/extract"
	"github.com/vvka-141/hsscan/internal/files/filesystem"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// Scanner discovers template files and classifies the hyperscript they embed.
// Scanner is safe for concurrent use by multiple goroutines as long as the
// provided filesystem and logger are also thread-safe.
type Scanner struct {
	cfg        hsscan.ScannerConfig
	fsProvider filesystem.FileSystemProvider
	catalog    *catalog.Catalog
	extractor  *extract.Extractor
	classifier *classify.Classifier
	calculator checksum.Calculator
	cache      *cache.UsageCache
	cacheSet   bool
	logger     hsscan.Logger
}

var _ hsscan.UsageScanner = (*Scanner)(nil)

// NewScanner creates a scanner for cfg. Empty config fields take their
// defaults; the config is copied and never changes afterwards.
// Returns an error wrapping hsscan.ErrInvalidConfig when cfg fails validation.
func NewScanner(cfg hsscan.ScannerConfig, opts ...Option) (*Scanner, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scanner{cfg: cfg, calculator: checksum.New()}
	for _, opt := range opts {
		opt(s)
	}

	if s.fsProvider == nil {
		s.fsProvider = filesystem.NewOSFileSystem()
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.logger == nil {
		s.logger = hsscan.NopLogger{}
	}
	if !s.cacheSet && cfg.CacheSize > 0 {
		c, err := cache.New(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create usage cache: %w", err)
		}
		s.cache = c
	}

	s.extractor = extract.New(s.catalog)
	s.classifier = classify.New(s.catalog)
	return s, nil
}

// Config returns a copy of the effective configuration.
func (s *Scanner) Config() hsscan.ScannerConfig {
	out := s.cfg
	out.IncludeExtensions = append([]string(nil), s.cfg.IncludeExtensions...)
	out.ExcludePatterns = append([]string(nil), s.cfg.ExcludePatterns...)
	return out
}

// Catalog returns the pattern catalog in use.
func (s *Scanner) Catalog() *catalog.Catalog { return s.catalog }

// ShouldScan reports whether path is eligible under the scanner's configuration.
func (s *Scanner) ShouldScan(path string) bool {
	return ShouldScan(path, s.cfg)
}

// ScanFile reads path and classifies its snippets. Read failures, including
// content that is not valid UTF-8, yield an empty usage. Eligibility is not checked.
func (s *Scanner) ScanFile(path string) hsscan.FileUsage {
	data, err := s.fsProvider.ReadFile(path)
	return s.scanRead(path, data, err)
}

// ScanContent classifies content without touching the filesystem.
// label only appears in diagnostics.
func (s *Scanner) ScanContent(content, label string) hsscan.FileUsage {
	usage := s.classifyContent([]byte(content))
	s.logScanned(label, usage)
	return usage
}

func (s *Scanner) scanRead(path string, data []byte, err error) hsscan.FileUsage {
	if err == nil && !utf8.Valid(data) {
		err = hsscan.ErrUndecodable
	}
	if err != nil {
		if s.cfg.Debug {
			s.logger.Verbose("Error reading %s: %v", path, err)
		}
		return hsscan.NewFileUsage(nil, nil, false)
	}

	usage := s.classifyContent(data)
	s.logScanned(path, usage)
	return usage
}

func (s *Scanner) classifyContent(data []byte) hsscan.FileUsage {
	if s.cache == nil {
		return s.classifier.ClassifyAll(s.extractor.Extract(string(data)))
	}

	// A cache may be shared between scanners with different catalogs.
	key := s.catalog.Fingerprint() + ":" + s.calculator.Sum(data)
	if usage, ok := s.cache.Get(key); ok {
		return usage
	}
	usage := s.classifier.ClassifyAll(s.extractor.Extract(string(data)))
	s.cache.Add(key, usage)
	return usage
}

func (s *Scanner) logScanned(label string, usage hsscan.FileUsage) {
	if !s.cfg.Debug || usage.IsEmpty() {
		return
	}
	s.logger.Verbose("Scanned %s: commands=%v, blocks=%v, positional=%t",
		label, usage.SortedCommands(), usage.SortedBlocks(), usage.Positional)
}

// ScanPath scans path as a single file when it names a regular file and as a
// directory tree otherwise. A file that is not eligible yields an empty map.
func (s *Scanner) ScanPath(ctx context.Context, path string) (map[string]hsscan.FileUsage, error) {
	info, err := s.fsProvider.Stat(path)
	if err != nil || info.IsDir() {
		return s.ScanDirectory(ctx, path)
	}

	result := make(map[string]hsscan.FileUsage)
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if !s.ShouldScan(path) {
		return result, nil
	}
	if usage := s.ScanFile(path); !usage.IsEmpty() {
		result[path] = usage
	}
	return result, nil
}

type scannedFile struct {
	path  string
	usage hsscan.FileUsage
}

// ScanDirectory scans every eligible file under root and returns the
// non-empty usages keyed by path. A root that does not exist or is not a
// directory yields an empty map. When ctx is cancelled the files finished so
// far are returned together with ctx's error.
func (s *Scanner) ScanDirectory(ctx context.Context, root string) (map[string]hsscan.FileUsage, error) {
	result := make(map[string]hsscan.FileUsage)

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		if s.cfg.Debug {
			s.logger.Verbose("Skipping root %s: %v", root, err)
		}
		return result, nil
	}

	resultsCh := make(chan scannedFile, s.cfg.Workers)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range resultsCh {
			result[r.path] = r.usage
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	walkErr := dir.Walk(func(file filesystem.File, err error) error {
		if ctxErr := gctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if s.cfg.Debug {
				s.logger.Verbose("Error walking %s: %v", root, err)
			}
			return nil
		}
		if file.IsDir() || !s.ShouldScan(file.Path()) {
			return nil
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			data, readErr := file.ReadContent()
			usage := s.scanRead(file.Path(), data, readErr)
			if !usage.IsEmpty() {
				resultsCh <- scannedFile{path: file.Path(), usage: usage}
			}
			return nil
		})
		return nil
	})

	_ = g.Wait()
	close(resultsCh)
	<-collected

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	if walkErr != nil {
		s.logger.Error("walk of %s stopped early: %v", root, walkErr)
	}
	return result, nil
}

// ScanDirectories scans each root in order and combines the results. A path
// reached from more than one root keeps the entry from the last root.
func (s *Scanner) ScanDirectories(ctx context.Context, roots []string) (map[string]hsscan.FileUsage, error) {
	result := make(map[string]hsscan.FileUsage)
	for _, root := range roots {
		partial, err := s.ScanDirectory(ctx, root)
		for path, usage := range partial {
			result[path] = usage
		}
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// Aggregate scans roots and folds the per-file results into one summary.
func (s *Scanner) Aggregate(ctx context.Context, roots []string) (*hsscan.AggregatedUsage, error) {
	files, err := s.ScanDirectories(ctx, roots)
	return hsscan.Aggregate(files), err
}
