package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project represents one hosted application in the registry
type Project struct {
	Name       string               `yaml:"name"`
	Domains    Domains              `yaml:"domains"`
	Containers map[string]Container `yaml:"containers"`
	Nginx      Options              `yaml:"nginx"`
}

// Domains holds the per-environment domain lists.
// Production is a flat list; staging nests its list one level deeper.
type Domains struct {
	Production StringList `yaml:"production"`
	Staging    *Staging   `yaml:"staging"`
}

// Staging holds the staging environment domain list
type Staging struct {
	Domains StringList `yaml:"domains"`
}

// HasProduction reports whether a production environment is configured
func (d Domains) HasProduction() bool {
	return len(d.Production) > 0
}

// HasStaging reports whether a staging environment is configured
func (d Domains) HasStaging() bool {
	return d.Staging != nil && len(d.Staging.Domains) > 0
}

// Container is a named container endpoint
type Container struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

// Options holds the per-project nginx directive settings
type Options struct {
	APILocations        []string  `yaml:"api_locations"`
	RateLimit           RateLimit `yaml:"rate_limit"`
	ProxyTimeout        string    `yaml:"proxy_timeout"`
	ProxyConnectTimeout string    `yaml:"proxy_connect_timeout"`
}

// RateLimit configures the limit_req directives.
// Burst is a pointer so an explicit 0 is distinguishable from unset.
type RateLimit struct {
	Zone  string `yaml:"zone"`
	Burst *int   `yaml:"burst"`
}

// StringList accepts either a single YAML scalar or a sequence of strings
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", value.Line)
	}
}

// Primary returns the first entry, used for certificate paths and
// output file naming. Empty if the list is empty.
func (s StringList) Primary() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// ServerNames returns all entries joined for a server_name directive
func (s StringList) ServerNames() string {
	return strings.Join(s, " ")
}

// Registry maps project names to their definitions, preserving the
// document order of the source mapping. Iteration order matters: the
// first HTTPS block rendered across a run claims the reuseport option.
type Registry struct {
	Projects map[string]*Project

	names []string
}

// UnmarshalYAML implements yaml.Unmarshaler, recording key order
func (r *Registry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: projects must be a mapping", value.Line)
	}

	r.Projects = make(map[string]*Project, len(value.Content)/2)
	r.names = make([]string, 0, len(value.Content)/2)

	for i := 0; i < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return err
		}

		project := &Project{}
		if err := valNode.Decode(project); err != nil {
			return fmt.Errorf("project %s: %w", name, err)
		}

		r.Projects[name] = project
		r.names = append(r.names, name)
	}

	return nil
}

// Names returns project names in document order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Get returns a project by name
func (r *Registry) Get(name string) (*Project, bool) {
	project, exists := r.Projects[name]
	return project, exists
}

// Len returns the number of projects in the registry
func (r *Registry) Len() int {
	return len(r.names)
}
