package cli

import (
	"strconv"
	"strings"

	"github.com/duersjefen/multi-tenant-platform/internal/generator"
	"github.com/duersjefen/multi-tenant-platform/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects in the registry",
	Long: `List every project in the registry with its environments,
domains, and container endpoints.

Examples:
  nginx-gen list
  nginx-gen ls
  nginx-gen list --json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type projectListItem struct {
	Project    string   `json:"project"`
	Name       string   `json:"name"`
	Production []string `json:"production,omitempty"`
	Staging    []string `json:"staging,omitempty"`
	Containers int      `json:"containers"`
	OutputFile string   `json:"output_file"`
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	// Registry order, not alphabetical: it is the generation order and
	// decides which project claims the reuseport listener.
	items := make([]projectListItem, 0, registry.Len())
	for _, name := range registry.Names() {
		project, _ := registry.Get(name)

		item := projectListItem{
			Project:    name,
			Name:       project.Name,
			Production: project.Domains.Production,
			Containers: len(project.Containers),
			OutputFile: generator.FileName(name, project),
		}
		if project.Domains.HasStaging() {
			item.Staging = project.Domains.Staging.Domains
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		if jsonOutput {
			return output.JSON([]projectListItem{})
		}
		output.Info("No projects in registry")
		return nil
	}

	if jsonOutput {
		return output.JSON(items)
	}

	headers := []string{"PROJECT", "PRODUCTION", "STAGING", "CONTAINERS", "OUTPUT"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Project,
			strings.Join(item.Production, " "),
			strings.Join(item.Staging, " "),
			strconv.Itoa(item.Containers),
			item.OutputFile,
		})
	}

	output.Table(headers, rows)
	return nil
}
