package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hsscan/internal/files/scanner"
	"github.com/vvka-141/hsscan/internal/logging"
	"github.com/vvka-141/hsscan/internal/report"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

type contentFlagValues struct {
	commonFlags
	label     string
	failEmpty bool
}

var contentFlags contentFlagValues

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Classify template text read from stdin",
	Long: `Content reads template text from stdin and reports the hyperscript usage
it contains, without touching the filesystem. Useful for editor integrations
and for checking a single snippet.`,
	Example: `  echo '<button _="on click toggle .open">' | hsscan content
  hsscan content --label page.html --format text < page.html`,
	Args: RequireNoArgs,
	RunE: runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
	bindContentFlags(contentCmd)
}

func bindContentFlags(cmd *cobra.Command) {
	addCommonFlags(cmd, &contentFlags.commonFlags, string(report.FormatJSON))
	cmd.Flags().StringVar(&contentFlags.label, "label", "<stdin>", "Name used for the input in diagnostics and text output")
	cmd.Flags().BoolVar(&contentFlags.failEmpty, "fail-empty", false, "Exit with code 15 when no hyperscript is found")
}

func runContent(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	format, err := report.ParseFormat(contentFlags.format)
	if err != nil {
		return err
	}

	projectCfg, err := loadProjectConfig(contentFlags.configPath)
	if err != nil {
		return err
	}
	cfg := projectCfg.ScannerConfig()
	if verbose {
		cfg.Debug = true
	}
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cfg.Debug)
	cat, err := resolveCatalog(projectCfg, contentFlags.catalogPath, logger)
	if err != nil {
		return err
	}

	s, err := scanner.NewScanner(cfg,
		scanner.WithCatalog(cat),
		scanner.WithLogger(logger),
		scanner.WithCache(nil),
	)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	usage := s.ScanContent(string(data), contentFlags.label)

	out := cmd.OutOrStdout()
	if err := report.RenderUsage(out, format, contentFlags.label, usage, report.Options{Color: report.ColorEnabled(out)}); err != nil {
		return err
	}

	if contentFlags.failEmpty && usage.IsEmpty() {
		return fmt.Errorf("%s: %w", contentFlags.label, hsscan.ErrNoUsage)
	}
	return nil
}
