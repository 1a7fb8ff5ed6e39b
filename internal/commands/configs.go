// internal/commands/configs.go
package cgbench

import "github.com/spf13/cobra"

// configsCmd represents the 'configs' command group for managing subject
// config files.
var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "Group commands for managing subject config files",
	Long:  `The 'configs' command groups subcommands that generate, validate, and list the per-model TOML config files consumed by the subject CLI.`,
}

func init() {
	rootCmd.AddCommand(configsCmd)
}
