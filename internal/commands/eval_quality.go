// internal/commands/eval_quality.go
package cgbench

import (
	"github.com/mwiater/cgbench/internal/quality"
	"github.com/spf13/cobra"
)

// evalQualityCmd implements 'eval quality', which scores subject summaries
// against the challenge suite.
var evalQualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Score summaries against the challenge suite",
	Long:  `The 'quality' subcommand runs every challenge through the subject CLI, scores the produced summary against the expected findings and key phrases, and records one CSV row per (model, config, challenge) combination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, obs, cleanup := sweepOutputs(cmd)
		defer cleanup()
		return quality.Run(GetConfig(), out, obs)
	},
}

func init() {
	evalCmd.AddCommand(evalQualityCmd)
}
