package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/internal/config"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// commonFlags holds the flags shared by every command that builds a scanner.
type commonFlags struct {
	configPath  string
	catalogPath string
	format      string
}

func addCommonFlags(cmd *cobra.Command, flags *commonFlags, defaultFormat string) {
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a project config file (default: ./"+config.ConfigFileName+" if present)")
	cmd.Flags().StringVar(&flags.catalogPath, "catalog", "", "YAML catalog extension adding carriers, commands, blocks or positional keywords")
	cmd.Flags().StringVarP(&flags.format, "format", "f", defaultFormat, "Output format: json, yaml or text")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("catalog", completeYAMLFiles)
	_ = cmd.RegisterFlagCompletionFunc("config", completeYAMLFiles)
}

// loadProjectConfig loads godotenv and project configuration, then applies
// environment overrides. A missing hsscan.yaml in the working directory is
// not an error; a missing file named by --config is.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		projectCfg *config.ProjectConfig
		err        error
	)
	if configPath != "" {
		projectCfg, err = config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", configPath, hsscan.ErrInvalidConfig)
		}
	} else {
		projectCfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			projectCfg, err = &config.ProjectConfig{}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	if err := projectCfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return projectCfg, nil
}

// resolveCatalog layers the project's inline catalog and then the --catalog
// file on top of the default catalog.
func resolveCatalog(projectCfg *config.ProjectConfig, catalogPath string, logger hsscan.Logger) (*catalog.Catalog, error) {
	c := catalog.Default()

	if projectCfg != nil && !projectCfg.Catalog.IsZero() {
		extended, err := extendCatalog(c, projectCfg.Catalog, config.ConfigFileName, logger)
		if err != nil {
			return nil, fmt.Errorf("catalog in %s: %w", config.ConfigFileName, err)
		}
		c = extended
	}

	if catalogPath != "" {
		ext, err := catalog.LoadExtensionFile(catalogPath)
		if err != nil {
			if errors.Is(err, hsscan.ErrInvalidPattern) {
				return nil, err
			}
			return nil, fmt.Errorf("%v: %w", err, hsscan.ErrInvalidConfig)
		}
		extended, err := extendCatalog(c, ext, catalogPath, logger)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", catalogPath, err)
		}
		c = extended
	}

	return c, nil
}

// extendCatalog notes extension entries that overlap base before applying ext.
func extendCatalog(base *catalog.Catalog, ext catalog.Extension, source string, logger hsscan.Logger) (*catalog.Catalog, error) {
	for _, cmd := range ext.Commands {
		if base.KnownCommand(cmd) {
			logger.Verbose("%s: command %q is already in the catalog", source, cmd)
		}
	}
	for _, spec := range ext.Blocks {
		kind := strings.ToLower(strings.TrimSpace(spec.Kind))
		if base.KnownBlock(kind) {
			logger.Verbose("%s: pattern %q adds an alternative for block %q", source, spec.Pattern, kind)
		}
	}
	return catalog.Extend(base, ext)
}
