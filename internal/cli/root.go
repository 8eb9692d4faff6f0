package cli

import (
	"os"

	"github.com/duersjefen/multi-tenant-platform/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput   bool
	verbose      bool
	platformRoot string
	version      = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nginx-gen",
	Short: "Nginx configuration generator for the multi-tenant platform",
	Long: `nginx-gen renders per-project nginx server blocks from the central
project registry (config/projects.yml), eliminating manual config drift.

It generates one .conf file per project into platform/nginx/conf.d and
validates global invariants over the whole output set afterwards.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&platformRoot, "root", ".", "Platform root directory")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
