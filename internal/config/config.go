package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Fixed locations relative to the platform root
const (
	registryFile = "config/projects.yml"
	outputDir    = "platform/nginx/conf.d"
)

// RegistryPath returns the project registry path under the platform root
func RegistryPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(registryFile))
}

// OutputDir returns the generated-config directory under the platform root
func OutputDir(root string) string {
	return filepath.Join(root, filepath.FromSlash(outputDir))
}

// Load reads and parses the project registry.
// A missing or malformed file is fatal: the generator cannot proceed
// without the registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var doc struct {
		Projects Registry `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	registry := &doc.Projects
	if registry.Projects == nil {
		registry.Projects = make(map[string]*Project)
	}

	return registry, nil
}
