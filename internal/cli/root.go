package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hsscan",
	Short: "Find the hyperscript features your templates use",
	Long: `hsscan walks template trees, extracts embedded hyperscript snippets and
reports which commands, block kinds and positional expressions they use.

Bundlers use the report to ship only the parts of the runtime a site needs.

Snippets are recognized in _="...", data-hs="...", JSX-style _={...}
attributes, {% hs %}...{% endhs %} blocks, hs_attr/hs_script tags and
<script type="text/hyperscript"> elements.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or catalog pattern
  15 - No usage found (with --fail-empty)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for hsscan")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable diagnostic output on stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
