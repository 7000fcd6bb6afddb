package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/spectrabench/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// browseCmd opens the interactive browser over a results directory.
var browseCmd = &cobra.Command{
	Use:   "browse <results_dir>",
	Short: "Browse benchmark results interactively",
	Long: `Load a results directory and open an interactive table of rules:
occurrence counts, how many repos each rule hit, and which ones.

Keys:
  /      search rules
  s      cycle sort column
  esc    clear search
  q      quit

Example:
  spectrabench browse ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires a terminal (stdout is not a tty)")
	}

	summary, err := summarise(args[0])
	if err != nil {
		logError("Failed to summarise %s: %v", args[0], err)
		return err
	}

	return tui.Run(summary)
}
