// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Live View:      %v\n", cfg.Live)
	fmt.Fprintf(out, "  Subject CLI:    %s\n", cfg.SubjectCommand())
	fmt.Fprintf(out, "  Timeout:        %s\n", cfg.InvocationTimeout())
	fmt.Fprintf(out, "  Work Dir:       %s\n", cfg.WorkDirPath())
	fmt.Fprintf(out, "  Eval Config:    %s\n", cfg.EvalConfigPath())
	fmt.Fprintf(out, "  Models File:    %s\n", cfg.ModelsFilePath())
	fmt.Fprintf(out, "  Configs Dir:    %s\n", cfg.ConfigsDirPath())
	fmt.Fprintf(out, "  Challenges Dir: %s\n", cfg.ChallengesDirPath())
	fmt.Fprintf(out, "  Results Dir:    %s\n", cfg.ResultsDirPath())
	fmt.Fprintf(out, "  Log File:       %s\n", cfg.LogFilePath())
}
