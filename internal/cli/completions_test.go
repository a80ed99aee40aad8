package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteFormats(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns all formats for empty input", func(t *testing.T) {
		completions, directive := completeFormats(cmd, nil, "")
		if len(completions) != 3 {
			t.Errorf("expected 3 completions, got %d", len(completions))
		}
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeFormats(cmd, nil, "y")
		if len(completions) != 1 || completions[0] != "yaml" {
			t.Errorf("expected [yaml], got %v", completions)
		}
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeFormats(cmd, nil, "xyz")
		if len(completions) != 0 {
			t.Errorf("expected 0 completions, got %d", len(completions))
		}
	})
}

func TestCompleteExtensions(t *testing.T) {
	completions, _ := completeExtensions(&cobra.Command{}, nil, ".ji")
	if len(completions) != 2 {
		t.Errorf("expected .jinja and .jinja2, got %v", completions)
	}
}

func TestCompleteDirectories(t *testing.T) {
	_, directive := completeDirectories(&cobra.Command{}, nil, "")
	if directive != cobra.ShellCompDirectiveFilterDirs {
		t.Errorf("expected ShellCompDirectiveFilterDirs, got %v", directive)
	}
}

func TestCompleteYAMLFiles(t *testing.T) {
	exts, directive := completeYAMLFiles(&cobra.Command{}, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("expected ShellCompDirectiveFilterFileExt, got %v", directive)
	}
	if len(exts) != 2 {
		t.Errorf("expected yaml and yml, got %v", exts)
	}
}
