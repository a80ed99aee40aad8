package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RequireNoArgs rejects positional arguments with a usage hint.
func RequireNoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf(`accepts 0 arg(s), received %d

Usage: %s`, len(args), cmd.UseLine())
	}
	return nil
}

// RequireNonEmptyPaths rejects blank path arguments. No arguments is fine;
// the command falls back to configured roots.
func RequireNonEmptyPaths(cmd *cobra.Command, args []string) error {
	for i, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf(`invalid argument %d: path must not be empty

Usage: %s

Example:
  %s ./templates ./components`, i+1, cmd.UseLine(), cmd.CommandPath())
		}
	}
	return nil
}

// normalizeExtensions lower-cases extensions and adds a missing leading dot,
// so --ext html and --ext .HTML mean the same thing.
func normalizeExtensions(exts []string) []string {
	var out []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
