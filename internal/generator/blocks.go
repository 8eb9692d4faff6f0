package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/duersjefen/multi-tenant-platform/internal/config"
	"github.com/duersjefen/multi-tenant-platform/internal/logger"
	"github.com/duersjefen/multi-tenant-platform/internal/template"
)

// Environments a project can define
const (
	EnvProduction = "production"
	EnvStaging    = "staging"
)

// Default nginx directive values applied when the registry leaves them
// unset.
const (
	defaultAPIBurst      = 20
	defaultFrontendBurst = 50
	defaultRateZone      = "general"
	defaultProxyTimeout  = "60s"
)

// classifyContainers resolves the backend and frontend endpoints for an
// environment. A container key containing "backend" is the backend; a
// key containing "frontend" or "web" is the frontend. Later matches
// overwrite earlier ones; keys are visited in sorted order so "later"
// is deterministic. Staging container names get a "-staging" suffix.
func classifyContainers(project *config.Project, env string) (backend, frontend *template.Endpoint) {
	keys := make([]string, 0, len(project.Containers))
	for key := range project.Containers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		container := project.Containers[key]
		name := container.Name
		if env == EnvStaging {
			name += "-staging"
		}

		lower := strings.ToLower(key)
		switch {
		case strings.Contains(lower, "backend"):
			backend = &template.Endpoint{Name: name, Port: container.Port}
		case strings.Contains(lower, "frontend"), strings.Contains(lower, "web"):
			frontend = &template.Endpoint{Name: name, Port: container.Port}
		}
	}

	return backend, frontend
}

// environmentDomains returns the domain list for an environment
func environmentDomains(project *config.Project, env string) config.StringList {
	if env == EnvStaging {
		if project.Domains.Staging == nil {
			return nil
		}
		return project.Domains.Staging.Domains
	}
	return project.Domains.Production
}

// ServerBlock renders the HTTPS server block for one environment of a
// project. The first block rendered across the run claims the
// reuseport listener option; every later block uses the plain QUIC
// listener.
func (g *Generator) ServerBlock(name string, project *config.Project, env string) (string, error) {
	domains := environmentDomains(project, env)
	if len(domains) == 0 {
		return "", fmt.Errorf("no %s domains configured", env)
	}

	backend, frontend := classifyContainers(project, env)
	opts := project.Nginx

	data := template.ServerBlockData{
		ProjectName:   name,
		DisplayName:   project.Name,
		Environment:   env,
		ServerNames:   domains.ServerNames(),
		PrimaryDomain: domains.Primary(),
		Reuseport:     g.firstServerBlock,
		Backend:       backend,
		Frontend:      frontend,
	}
	g.firstServerBlock = false

	// Backend routes appear only with both a recognized backend
	// container and configured API locations.
	if backend != nil && len(opts.APILocations) > 0 {
		data.APIPattern = strings.Join(opts.APILocations, "|")
		data.APIBurst = defaultAPIBurst
		if opts.RateLimit.Burst != nil {
			data.APIBurst = *opts.RateLimit.Burst
		}
	}

	if frontend != nil {
		data.RateZone = opts.RateLimit.Zone
		if data.RateZone == "" {
			data.RateZone = defaultRateZone
		}

		// With a backend present the configured burst belongs to the
		// API section; the frontend burst is pinned to 50.
		data.FrontendBurst = defaultFrontendBurst
		if backend == nil && opts.RateLimit.Burst != nil {
			data.FrontendBurst = *opts.RateLimit.Burst
		}
	}

	data.ConnectTimeout = opts.ProxyConnectTimeout
	if data.ConnectTimeout == "" {
		data.ConnectTimeout = defaultProxyTimeout
	}
	data.SendTimeout = opts.ProxyTimeout
	if data.SendTimeout == "" {
		data.SendTimeout = defaultProxyTimeout
	}
	data.ReadTimeout = data.SendTimeout

	logger.DebugFields("rendering server block", map[string]interface{}{
		"project":   name,
		"env":       env,
		"backend":   backend != nil,
		"frontend":  frontend != nil,
		"reuseport": data.Reuseport,
	})

	return template.RenderServer(data)
}

// RedirectBlock renders the plaintext listener that serves the ACME
// challenge path and redirects everything else to HTTPS. Pure function
// of the domain list.
func RedirectBlock(domains config.StringList) (string, error) {
	return template.RenderRedirect(template.RedirectData{
		ServerNames: domains.ServerNames(),
	})
}

// ProjectConfig assembles the full file content for a project: header
// comment, then redirect + HTTPS block per environment present,
// production before staging. A project with neither environment yields
// just the header.
func (g *Generator) ProjectConfig(name string, project *config.Project) (string, error) {
	var b strings.Builder

	header, err := template.RenderHeader(template.HeaderData{DisplayName: project.Name})
	if err != nil {
		return "", err
	}
	b.WriteString(header)

	if project.Domains.HasProduction() {
		redirect, err := RedirectBlock(project.Domains.Production)
		if err != nil {
			return "", err
		}
		server, err := g.ServerBlock(name, project, EnvProduction)
		if err != nil {
			return "", err
		}
		b.WriteString(redirect)
		b.WriteString(server)
		b.WriteString("\n")
	}

	if project.Domains.HasStaging() {
		redirect, err := RedirectBlock(project.Domains.Staging.Domains)
		if err != nil {
			return "", err
		}
		server, err := g.ServerBlock(name, project, EnvStaging)
		if err != nil {
			return "", err
		}
		b.WriteString(redirect)
		b.WriteString(server)
	}

	return b.String(), nil
}
