// internal/commands/report.go
package cgbench

import (
	"github.com/mwiater/cgbench/internal/metrics"
	"github.com/spf13/cobra"
)

var (
	reportFile string
	reportKind string
)

// reportCmd implements 'report', which aggregates result CSV files into
// per-model terminal tables.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize result CSV files as per-model tables",
	Long:  `The 'report' command reads previously written result CSV files and renders per-model aggregates: min/avg/max latency and timeout counts for speed runs, pass rates and average scores for quality runs. Without --file the latest result file of each kind is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := metrics.ReportOptions{
			ResultsDir: GetConfig().ResultsDirPath(),
			File:       reportFile,
			Kind:       reportKind,
			Debug:      DebugEnabled(),
		}
		return metrics.Report(opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFile, "file", "", "report a specific result CSV instead of the latest")
	reportCmd.Flags().StringVar(&reportKind, "kind", metrics.KindAll, "which results to report: speed, quality, or all")
}
