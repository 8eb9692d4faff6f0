package cli

import (
	"github.com/duersjefen/multi-tenant-platform/internal/config"
	"github.com/duersjefen/multi-tenant-platform/internal/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the generated config directory",
	Long: `Run the post-generation checks over platform/nginx/conf.d without
regenerating anything.

Checks:
  - exactly one config line requests the reuseport QUIC listener
  - every config advertises a QUIC listener (HTTP/3 capability)

The scan covers every .conf file in the directory, including leftovers
from earlier runs.

Examples:
  nginx-gen validate
  nginx-gen validate --json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := validate.Directory(config.OutputDir(platformRoot))
	if err != nil {
		return err
	}
	return displayReport(report)
}
