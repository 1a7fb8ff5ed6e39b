// internal/commands/eval_speed.go
package cgbench

import (
	"github.com/mwiater/cgbench/internal/speed"
	"github.com/spf13/cobra"
)

// evalSpeedCmd implements 'eval speed', which measures summarization latency
// across the configured synthetic input sizes.
var evalSpeedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Measure summarization latency across synthetic input sizes",
	Long:  `The 'speed' subcommand feeds synthetic inputs of increasing size through the subject CLI and records wall-clock execution times as one CSV row per (model, config, size factor) combination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, obs, cleanup := sweepOutputs(cmd)
		defer cleanup()
		return speed.Run(GetConfig(), out, obs)
	},
}

func init() {
	evalCmd.AddCommand(evalSpeedCmd)
}
