// internal/commands/show.go
package cgbench

import "github.com/spf13/cobra"

// showCmd represents the 'show' command group for displaying information.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for showing information",
	Long:  `The 'show' command groups subcommands that display information related to cgbench.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
