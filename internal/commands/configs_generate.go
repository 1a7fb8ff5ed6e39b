// internal/commands/configs_generate.go
package cgbench

import (
	"github.com/mwiater/cgbench/internal/subjectconfig"
	"github.com/spf13/cobra"
)

// configsGenerateCmd implements 'configs generate', which renders one subject
// config per model in the models manifest.
var configsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate per-model subject config files from the models manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		return subjectconfig.GenerateAll(cmd.OutOrStdout(), cfg.ModelsFilePath(), cfg.ConfigsDirPath())
	},
}

func init() {
	configsCmd.AddCommand(configsGenerateCmd)
}
