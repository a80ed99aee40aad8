package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/hsscan/internal/logging"
	"github.com/vvka-141/hsscan/internal/report"
)

var patternsFlags commonFlags

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the effective pattern catalog",
	Long: `Patterns prints the snippet carriers, command vocabulary, block rules and
positional keywords the scanner uses after applying the catalog in
hsscan.yaml and any --catalog extension.`,
	Args: RequireNoArgs,
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	addCommonFlags(patternsCmd, &patternsFlags, string(report.FormatText))
}

func runPatterns(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(patternsFlags.format)
	if err != nil {
		return err
	}

	projectCfg, err := loadProjectConfig(patternsFlags.configPath)
	if err != nil {
		return err
	}
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd) || projectCfg.Debug)
	cat, err := resolveCatalog(projectCfg, patternsFlags.catalogPath, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return report.RenderCatalog(out, format, cat, report.Options{Color: report.ColorEnabled(out)})
}
