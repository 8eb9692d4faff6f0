package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/duersjefen/multi-tenant-platform/internal/config"
	"github.com/duersjefen/multi-tenant-platform/internal/errors"
	"github.com/duersjefen/multi-tenant-platform/internal/logger"
)

// PreviewLines is how many lines of a rendered config a dry run shows
const PreviewLines = 10

// Generator renders project configs into an output directory. It carries
// the one piece of cross-project state: whether the reuseport listener
// option is still unclaimed. Not safe for concurrent use; a run renders
// projects strictly in registry order.
type Generator struct {
	outputDir string

	// firstServerBlock is true until the first HTTPS block of the run
	// claims the reuseport option. Never reset mid-run.
	firstServerBlock bool
}

// New creates a Generator writing into outputDir
func New(outputDir string) *Generator {
	return &Generator{
		outputDir:        outputDir,
		firstServerBlock: true,
	}
}

// Result is the rendered config for one project
type Result struct {
	Project string
	Path    string
	Content string
}

// Preview returns up to n leading lines of the rendered content
func (r *Result) Preview(n int) []string {
	lines := strings.Split(r.Content, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// FileName derives the output file name for a project: the production
// primary domain with a leading "www." stripped, or the project name
// when no production domain exists.
func FileName(name string, project *config.Project) string {
	if project.Domains.HasProduction() {
		return strings.TrimPrefix(project.Domains.Production.Primary(), "www.") + ".conf"
	}
	return name + ".conf"
}

// Generate renders the full config for one project without touching the
// filesystem. Rendering errors abort the run; there is no per-project
// skip.
func (g *Generator) Generate(name string, project *config.Project) (*Result, error) {
	content, err := g.ProjectConfig(name, project)
	if err != nil {
		return nil, errors.Render(name, err)
	}

	return &Result{
		Project: name,
		Path:    filepath.Join(g.outputDir, FileName(name, project)),
		Content: content,
	}, nil
}

// WriteFile writes a rendered config, creating the output directory if
// needed and overwriting any previous file. Generated files are
// regenerable artifacts, so no backup is kept.
func (g *Generator) WriteFile(res *Result) error {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to create output directory", err)
	}

	if err := os.WriteFile(res.Path, []byte(res.Content), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write "+res.Path, err)
	}

	logger.Debug("wrote %s (%d bytes)", res.Path, len(res.Content))
	return nil
}
