// Package config loads the hsscan.yaml project file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "hsscan.yaml"

// Environment variables consulted by ApplyEnv.
const (
	EnvDebug   = "HSSCAN_DEBUG"
	EnvWorkers = "HSSCAN_WORKERS"
)

type ProjectConfig struct {
	Roots             []string          `yaml:"roots,omitempty"`
	IncludeExtensions []string          `yaml:"include_extensions,omitempty"`
	ExcludePatterns   []string          `yaml:"exclude_patterns,omitempty"`
	Debug             bool              `yaml:"debug,omitempty"`
	Workers           int               `yaml:"workers,omitempty"`
	CacheSize         *int              `yaml:"cache_size,omitempty"`
	Catalog           catalog.Extension `yaml:"catalog,omitempty"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", path, err, hsscan.ErrInvalidConfig)
	}

	// Relative roots are resolved against the config file's directory.
	base := filepath.Dir(path)
	for i, root := range cfg.Roots {
		if !filepath.IsAbs(root) {
			cfg.Roots[i] = filepath.Join(base, root)
		}
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from HSSCAN_DEBUG and HSSCAN_WORKERS when set.
func (c *ProjectConfig) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDebug)); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDebug, v, hsscan.ErrInvalidConfig)
		}
		c.Debug = debug
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, hsscan.ErrInvalidConfig)
		}
		c.Workers = workers
	}
	return nil
}

// ScannerConfig converts the project settings into a scanner configuration.
// A nil receiver yields the defaults.
func (c *ProjectConfig) ScannerConfig() hsscan.ScannerConfig {
	out := hsscan.DefaultScannerConfig()
	if c == nil {
		return out
	}
	if len(c.IncludeExtensions) > 0 {
		out.IncludeExtensions = append([]string(nil), c.IncludeExtensions...)
	}
	if len(c.ExcludePatterns) > 0 {
		out.ExcludePatterns = append([]string(nil), c.ExcludePatterns...)
	}
	out.Debug = c.Debug
	if c.Workers != 0 {
		out.Workers = c.Workers
	}
	if c.CacheSize != nil {
		out.CacheSize = *c.CacheSize
	}
	return out
}
