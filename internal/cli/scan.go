package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hsscan/internal/config"
	"github.com/vvka-141/hsscan/internal/files/scanner"
	"github.com/vvka-141/hsscan/internal/logging"
	"github.com/vvka-141/hsscan/internal/report"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

type scanFlagValues struct {
	commonFlags
	extensions []string
	excludes   []string
	workers    int
	cacheSize  int
	perFile    bool
	timeout    time.Duration
	failEmpty  bool
	output     string
}

var scanFlags scanFlagValues

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan template trees and report hyperscript usage",
	Long: `Scan recursively visits every eligible file under each path and reports
the union of commands, block kinds and positional expressions found, plus the
number of files that use hyperscript.

Paths default to the roots listed in hsscan.yaml, then to the current
directory. A path that names a file is scanned directly if its extension is
eligible. Paths that do not exist contribute nothing.

Settings are resolved in order: flags, environment (HSSCAN_DEBUG,
HSSCAN_WORKERS, also read from .env), hsscan.yaml, built-in defaults.`,
	Example: `  hsscan scan ./templates
  hsscan scan --format text --per-file app/templates components
  hsscan scan --ext .svelte --ext .vue --exclude dist src
  hsscan scan --catalog extra-commands.yaml --fail-empty -o usage.json`,
	Args:              RequireNonEmptyPaths,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	bindScanFlags(scanCmd)
}

func bindScanFlags(cmd *cobra.Command) {
	addCommonFlags(cmd, &scanFlags.commonFlags, string(report.FormatJSON))
	cmd.Flags().StringSliceVar(&scanFlags.extensions, "ext", nil, "Eligible file extensions (repeatable; replaces the defaults)")
	cmd.Flags().StringSliceVar(&scanFlags.excludes, "exclude", nil, "Skip paths containing this substring (repeatable; replaces the defaults)")
	cmd.Flags().IntVarP(&scanFlags.workers, "workers", "j", 0, "Files scanned concurrently (default: one per CPU)")
	cmd.Flags().IntVar(&scanFlags.cacheSize, "cache-size", hsscan.DefaultCacheSize, "Distinct file contents to memoize (0 disables)")
	cmd.Flags().BoolVar(&scanFlags.perFile, "per-file", false, "Include each file's usage in the report")
	cmd.Flags().DurationVar(&scanFlags.timeout, "timeout", 0, "Abort the scan after this duration and report partial results (0 = no limit)")
	cmd.Flags().BoolVar(&scanFlags.failEmpty, "fail-empty", false, "Exit with code 15 when no hyperscript is found")
	cmd.Flags().StringVarP(&scanFlags.output, "output", "o", "", "Write the report to a file instead of stdout")

	_ = cmd.RegisterFlagCompletionFunc("ext", completeExtensions)
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	format, err := report.ParseFormat(scanFlags.format)
	if err != nil {
		return err
	}

	projectCfg, err := loadProjectConfig(scanFlags.configPath)
	if err != nil {
		return err
	}

	cfg := resolveScannerConfig(cmd, projectCfg, verbose)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cfg.Debug)
	cat, err := resolveCatalog(projectCfg, scanFlags.catalogPath, logger)
	if err != nil {
		return err
	}

	s, err := scanner.NewScanner(cfg, scanner.WithCatalog(cat), scanner.WithLogger(logger))
	if err != nil {
		return err
	}

	paths := resolveScanPaths(args, projectCfg)
	logger.Verbose("Scanning %v with %d workers", paths, s.Config().Workers)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if scanFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, scanFlags.timeout)
		defer cancel()
	}

	files, scanErr := scanPaths(ctx, s, paths)
	agg := hsscan.Aggregate(files)

	if err := writeReport(cmd.OutOrStdout(), scanFlags.output, format, agg, scanFlags.perFile); err != nil {
		return err
	}

	if scanErr != nil {
		return fmt.Errorf("scan interrupted after %d file(s): %w", agg.FileCount(), scanErr)
	}
	if scanFlags.failEmpty && agg.FileCount() == 0 {
		return fmt.Errorf("scanned %v: %w", paths, hsscan.ErrNoUsage)
	}
	return nil
}

// resolveScannerConfig applies flags that were explicitly set on top of the
// project configuration.
func resolveScannerConfig(cmd *cobra.Command, projectCfg *config.ProjectConfig, verbose bool) hsscan.ScannerConfig {
	cfg := projectCfg.ScannerConfig()

	if cmd.Flags().Changed("ext") {
		cfg.IncludeExtensions = normalizeExtensions(scanFlags.extensions)
	}
	if cmd.Flags().Changed("exclude") {
		cfg.ExcludePatterns = append([]string(nil), scanFlags.excludes...)
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = scanFlags.workers
	}
	if cmd.Flags().Changed("cache-size") {
		cfg.CacheSize = scanFlags.cacheSize
	}
	if verbose {
		cfg.Debug = true
	}
	return cfg
}

func resolveScanPaths(args []string, projectCfg *config.ProjectConfig) []string {
	if len(args) > 0 {
		return args
	}
	if projectCfg != nil && len(projectCfg.Roots) > 0 {
		return projectCfg.Roots
	}
	return []string{"."}
}

// scanPaths scans each path in order. Later paths overwrite earlier entries
// for the same file.
func scanPaths(ctx context.Context, s *scanner.Scanner, paths []string) (map[string]hsscan.FileUsage, error) {
	result := make(map[string]hsscan.FileUsage)

	for _, path := range paths {
		partial, err := s.ScanPath(ctx, path)
		for p, usage := range partial {
			result[p] = usage
		}
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func writeReport(stdout io.Writer, outputPath string, format report.Format, agg *hsscan.AggregatedUsage, perFile bool) error {
	if outputPath == "" {
		return report.Render(stdout, format, agg, report.Options{
			PerFile: perFile,
			Color:   report.ColorEnabled(stdout),
		})
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.Render(f, format, agg, report.Options{PerFile: perFile}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
