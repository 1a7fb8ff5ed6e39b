// internal/commands/configs_list.go
package cgbench

import (
	"github.com/mwiater/cgbench/internal/subjectconfig"
	"github.com/spf13/cobra"
)

// configsListCmd implements 'configs list', which lists the generated
// subject config files.
var configsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated subject config files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return subjectconfig.ListConfigs(cmd.OutOrStdout(), GetConfig().ConfigsDirPath())
	},
}

func init() {
	configsCmd.AddCommand(configsListCmd)
}
