// internal/commands/eval.go
package cgbench

import (
	"fmt"
	"io"
	"os"

	"github.com/mwiater/cgbench/internal/sweep"
	"github.com/mwiater/cgbench/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// evalCmd represents the 'eval' command group for running evaluation sweeps.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Group commands for running evaluation sweeps",
	Long:  `The 'eval' command groups subcommands that run the speed and quality evaluation sweeps against the subject CLI.`,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// isTerminal reports whether a writer is an interactive terminal. A function
// variable so tests can force either branch.
var isTerminal = func(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// sweepOutputs selects the progress surface for a sweep: the live dashboard
// when enabled and stdout is a terminal, plain progress lines otherwise.
// The returned cleanup blocks until a live dashboard has shut down.
func sweepOutputs(cmd *cobra.Command) (io.Writer, sweep.Observer, func()) {
	cfg := GetConfig()
	if cfg != nil && cfg.Live {
		if isTerminal(os.Stdout) {
			controller := tui.Start(os.Stdout)
			return io.Discard, controller, func() {
				controller.Close()
				controller.Wait()
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Live view requested but stdout is not a terminal; falling back to plain output.")
	}
	return cmd.OutOrStdout(), sweep.Nop{}, func() {}
}
