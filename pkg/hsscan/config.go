package hsscan

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ScannerConfig controls which files a scanner visits and how it reports.
// A scanner copies its configuration at construction; later changes to the
// caller's value have no effect.
type ScannerConfig struct {
	// IncludeExtensions lists eligible file extensions including the leading
	// dot. Comparison is case-insensitive. Empty means DefaultIncludeExtensions.
	IncludeExtensions []string `validate:"dive,startswith=.,min=2"`

	// ExcludePatterns lists path substrings; a path containing any of them is
	// skipped regardless of extension. Empty means DefaultExcludePatterns.
	ExcludePatterns []string `validate:"dive,required"`

	// Debug enables diagnostic logging. It never changes results.
	Debug bool

	// Workers is the number of files scanned concurrently, at most MaxWorkers.
	// Zero means one per CPU; negative values are rejected.
	Workers int `validate:"gte=0"`

	// CacheSize is the number of file contents whose usage is memoized.
	// Zero disables the cache.
	CacheSize int `validate:"gte=0"`
}

// DefaultScannerConfig returns the configuration used when nothing is set.
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		IncludeExtensions: DefaultIncludeExtensions(),
		ExcludePatterns:   DefaultExcludePatterns(),
		Workers:           runtime.NumCPU(),
		CacheSize:         DefaultCacheSize,
	}
}

// WithDefaults returns a copy of c with empty fields replaced by defaults
// and extensions lower-cased.
func (c ScannerConfig) WithDefaults() ScannerConfig {
	out := c
	if len(out.IncludeExtensions) == 0 {
		out.IncludeExtensions = DefaultIncludeExtensions()
	} else {
		exts := make([]string, len(out.IncludeExtensions))
		for i, ext := range out.IncludeExtensions {
			exts[i] = strings.ToLower(ext)
		}
		out.IncludeExtensions = exts
	}
	if len(out.ExcludePatterns) == 0 {
		out.ExcludePatterns = DefaultExcludePatterns()
	} else {
		out.ExcludePatterns = append([]string(nil), out.ExcludePatterns...)
	}
	if out.Workers == 0 {
		out.Workers = runtime.NumCPU()
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. It returns a multi-error wrapping
// ErrInvalidConfig when one or more fields are invalid.
func (c ScannerConfig) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: value %v fails %q: %w", fe.Namespace(), fe.Value(), fe.ActualTag(), ErrInvalidConfig))
		}
	}
	if c.Workers > MaxWorkers {
		errs = append(errs, fmt.Errorf("ScannerConfig.Workers: value %d exceeds %d: %w", c.Workers, MaxWorkers, ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
