package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Endpoint is a resolved container endpoint referenced by a server block
type Endpoint struct {
	Name string
	Port int
}

// ServerBlockData contains data for rendering an HTTPS server block
type ServerBlockData struct {
	ProjectName   string
	DisplayName   string
	Environment   string // "production" or "staging"
	ServerNames   string
	PrimaryDomain string

	// Reuseport marks the single block per run that claims the
	// exclusive QUIC listener option.
	Reuseport bool

	Backend  *Endpoint
	Frontend *Endpoint

	// APIPattern is the joined alternation of api_locations. Empty
	// suppresses the backend routes section.
	APIPattern string
	APIBurst   int

	RateZone      string
	FrontendBurst int

	ConnectTimeout string
	SendTimeout    string
	ReadTimeout    string
}

// RedirectData contains data for rendering an HTTP redirect block
type RedirectData struct {
	ServerNames string
}

// HeaderData contains data for rendering the per-project file header
type HeaderData struct {
	DisplayName string
}

var funcMap = template.FuncMap{
	"upper": strings.ToUpper,
}

var templates = template.Must(
	template.New("nginx").Funcs(funcMap).ParseFS(nginxTemplates, "nginx/*.tmpl"),
)

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderServer renders an HTTPS server block
func RenderServer(data ServerBlockData) (string, error) {
	return render("server.tmpl", data)
}

// RenderRedirect renders an HTTP to HTTPS redirect block
func RenderRedirect(data RedirectData) (string, error) {
	return render("redirect.tmpl", data)
}

// RenderHeader renders the AUTO-GENERATED file header
func RenderHeader(data HeaderData) (string, error) {
	return render("header.tmpl", data)
}
