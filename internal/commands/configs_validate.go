// internal/commands/configs_validate.go
package cgbench

import (
	"fmt"

	"github.com/mwiater/cgbench/internal/subjectconfig"
	"github.com/spf13/cobra"
)

// configsValidateCmd implements 'configs validate', which asserts a subject
// config file exists and is structurally usable by the subject CLI.
var configsValidateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a generated subject config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := subjectconfig.Validate(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config file is valid: %s\n", args[0])
		return nil
	},
}

func init() {
	configsCmd.AddCommand(configsValidateCmd)
}
