// Package config loads the declarative project registry that drives
// nginx config generation.
//
// The registry lives at config/projects.yml under the platform root and
// maps project names to their domains, container endpoints, and nginx
// directive options. It is loaded once per run and read-only afterward.
//
// Mapping order is significant: projects are processed in document
// order, and the first HTTPS server block rendered across a run claims
// the exclusive reuseport listener option. Registry therefore preserves
// key order instead of relying on Go map iteration.
package config
