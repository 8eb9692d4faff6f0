// Package generator turns project definitions into per-project nginx
// config files: it derives domains, container endpoints, and directive
// values, assembles redirect and HTTPS blocks per environment, and
// writes one .conf file per project.
package generator
