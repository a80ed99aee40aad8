package report

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether text written to w should be styled.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - HSSCAN_NO_COLOR=1 is set
//   - w is not a terminal (files, pipes, buffers)
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("HSSCAN_NO_COLOR") == "1" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
