package cli

import (
	"github.com/duersjefen/multi-tenant-platform/internal/config"
	"github.com/duersjefen/multi-tenant-platform/internal/errors"
	"github.com/duersjefen/multi-tenant-platform/internal/generator"
	"github.com/duersjefen/multi-tenant-platform/internal/output"
	"github.com/duersjefen/multi-tenant-platform/internal/validate"
	"github.com/spf13/cobra"
)

var (
	dryRun      bool
	onlyProject string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate nginx configs from the project registry",
	Long: `Generate nginx server blocks for every project in the registry.

Each project yields one .conf file named after its primary production
domain (or the project name if it has no production environment). After
a full write, the whole output directory is validated: the reuseport
listener option must appear exactly once and every config must carry a
QUIC listener.

Examples:
  nginx-gen generate                       # Generate all configs
  nginx-gen generate --dry-run             # Preview without writing
  nginx-gen generate --project filter-ical # One project only`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing files")
	generateCmd.Flags().StringVar(&onlyProject, "project", "", "Generate config for a single project only")

	rootCmd.AddCommand(generateCmd)
}

// generatedFile is the JSON shape for one written config
type generatedFile struct {
	Project string `json:"project"`
	Path    string `json:"path"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	names := registry.Names()
	if onlyProject != "" {
		if _, ok := registry.Get(onlyProject); !ok {
			return errors.NotFound(onlyProject)
		}
		names = []string{onlyProject}
	}

	if !jsonOutput {
		output.Header("NGINX CONFIGURATION GENERATOR")
		output.Print("Projects to generate: %d", len(names))
		if dryRun {
			output.Warn("DRY RUN MODE - No files will be written")
		}
		output.Print("")
	}

	gen := generator.New(config.OutputDir(platformRoot))
	written := make([]generatedFile, 0, len(names))

	for _, name := range names {
		project, _ := registry.Get(name)

		if !jsonOutput {
			output.Print("Generating config for: %s", name)
		}

		res, err := gen.Generate(name, project)
		if err != nil {
			return err
		}

		if dryRun {
			if !jsonOutput {
				output.Print("  Would write to: %s", res.Path)
				output.Print("  Config preview (first %d lines):", generator.PreviewLines)
				for _, line := range res.Preview(generator.PreviewLines) {
					output.Print("    %s", line)
				}
				output.Print("  ...")
			}
			written = append(written, generatedFile{Project: name, Path: res.Path})
			continue
		}

		if err := gen.WriteFile(res); err != nil {
			return err
		}
		written = append(written, generatedFile{Project: name, Path: res.Path})

		if !jsonOutput {
			output.Success("Generated: %s", res.Path)
		}
	}

	if !jsonOutput {
		output.Print("")
		output.Header("Configuration generation complete")
	}

	if dryRun {
		if jsonOutput {
			return output.JSON(map[string]interface{}{
				"dry_run": true,
				"files":   written,
			})
		}
		return nil
	}

	// Directory-wide validation over everything in conf.d, including
	// files from earlier runs.
	report, err := validate.Directory(config.OutputDir(platformRoot))
	if err != nil {
		return err
	}

	if jsonOutput {
		return displayReportJSON(written, report)
	}

	validationErr := displayReport(report)

	output.Print("")
	output.Print("Next steps:")
	output.Print("1. Review generated configs")
	output.Print("2. Test: docker exec platform-nginx nginx -t")
	output.Print("3. Deploy: ./lib/deploy-platform.sh nginx")

	return validationErr
}

// displayReportJSON emits one JSON document covering files and checks
func displayReportJSON(written []generatedFile, report *validate.Report) error {
	if err := output.JSON(map[string]interface{}{
		"files":      written,
		"validation": report,
	}); err != nil {
		return err
	}
	if !report.Passed() {
		return errors.ErrValidationFailed
	}
	return nil
}
