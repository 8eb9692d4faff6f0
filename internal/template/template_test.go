package template

import (
	"strings"
	"testing"
)

func sampleServerData() ServerBlockData {
	return ServerBlockData{
		ProjectName:    "filter-ical",
		DisplayName:    "Filter iCal",
		Environment:    "production",
		ServerNames:    "www.filter-ical.de filter-ical.de",
		PrimaryDomain:  "www.filter-ical.de",
		Reuseport:      true,
		Backend:        &Endpoint{Name: "filter-ical-backend", Port: 8000},
		Frontend:       &Endpoint{Name: "filter-ical-frontend", Port: 3000},
		APIPattern:     "api|docs|openapi.json",
		APIBurst:       20,
		RateZone:       "general",
		FrontendBurst:  50,
		ConnectTimeout: "60s",
		SendTimeout:    "60s",
		ReadTimeout:    "60s",
	}
}

func TestRenderServer(t *testing.T) {
	out, err := RenderServer(sampleServerData())
	if err != nil {
		t.Fatalf("RenderServer failed: %v", err)
	}

	wantLines := []string{
		"# Filter iCal - PRODUCTION",
		"    listen 443 ssl;",
		"    listen 443 quic reuseport;  # HTTP/3 support (reuseport only on first block)",
		"    http2 on;",
		"    server_name www.filter-ical.de filter-ical.de;",
		"    ssl_certificate /etc/letsencrypt/live/www.filter-ical.de/fullchain.pem;",
		"    ssl_certificate_key /etc/letsencrypt/live/www.filter-ical.de/privkey.pem;",
		"    access_log /var/log/nginx/filter-ical-production.access.log detailed;",
		"    error_log /var/log/nginx/filter-ical-production.error.log warn;",
		"    location ~ ^/(api|docs|openapi.json) {",
		"        limit_req zone=api burst=20 nodelay;",
		"        set $backend_host \"filter-ical-backend\";",
		"        set $backend_port \"8000\";",
		"        proxy_connect_timeout 60s;",
		"        limit_req zone=general burst=50 nodelay;",
		"        set $frontend_host \"filter-ical-frontend\";",
		"        set $frontend_port \"3000\";",
		"        error_page 404 = @frontend_fallback;",
		"    location @frontend_fallback {",
		"        proxy_pass http://$frontend_host:$frontend_port/index.html;",
		"    location ~* \\.(js|css|png|jpg|jpeg|gif|ico|svg|woff|woff2|ttf|eot)$ {",
		"        add_header Cache-Control \"public, max-age=604800, immutable\";",
	}

	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("rendered block missing line %q", line)
		}
	}

	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("block should end with closing brace, got %q", out[len(out)-10:])
	}
}

func TestRenderServerNoReuseport(t *testing.T) {
	data := sampleServerData()
	data.Reuseport = false

	out, err := RenderServer(data)
	if err != nil {
		t.Fatalf("RenderServer failed: %v", err)
	}

	if strings.Contains(out, "listen 443 quic reuseport") {
		t.Error("non-first block must not request reuseport")
	}
	if !strings.Contains(out, "    listen 443 quic;  # HTTP/3 support\n") {
		t.Error("non-first block should still advertise a QUIC listener")
	}
}

func TestRenderServerSectionOmission(t *testing.T) {
	t.Run("no api pattern", func(t *testing.T) {
		data := sampleServerData()
		data.APIPattern = ""

		out, err := RenderServer(data)
		if err != nil {
			t.Fatalf("RenderServer failed: %v", err)
		}
		if strings.Contains(out, "BACKEND ROUTES") {
			t.Error("backend section should be omitted without an API pattern")
		}
		if !strings.Contains(out, "FRONTEND ROUTES") {
			t.Error("frontend section should still be present")
		}
	})

	t.Run("no frontend", func(t *testing.T) {
		data := sampleServerData()
		data.Frontend = nil

		out, err := RenderServer(data)
		if err != nil {
			t.Fatalf("RenderServer failed: %v", err)
		}
		if strings.Contains(out, "FRONTEND ROUTES") {
			t.Error("frontend section should be omitted without a frontend container")
		}
		if strings.Contains(out, "STATIC ASSETS") {
			t.Error("static assets section belongs to the frontend section")
		}
	})

	t.Run("neither", func(t *testing.T) {
		data := sampleServerData()
		data.APIPattern = ""
		data.Frontend = nil

		out, err := RenderServer(data)
		if err != nil {
			t.Fatalf("RenderServer failed: %v", err)
		}
		if !strings.HasSuffix(out, "error.log warn;\n}\n") {
			t.Errorf("bare block should close right after the log directives, got tail %q", out[len(out)-40:])
		}
	})
}

func TestRenderServerStagingLabels(t *testing.T) {
	data := sampleServerData()
	data.Environment = "staging"
	data.Backend = &Endpoint{Name: "filter-ical-backend-staging", Port: 8000}

	out, err := RenderServer(data)
	if err != nil {
		t.Fatalf("RenderServer failed: %v", err)
	}

	if !strings.Contains(out, "# Filter iCal - STAGING") {
		t.Error("banner should carry the uppercased environment")
	}
	if !strings.Contains(out, "/var/log/nginx/filter-ical-staging.access.log") {
		t.Error("log path should carry the staging environment")
	}
	if !strings.Contains(out, "\"filter-ical-backend-staging\"") {
		t.Error("staging container name should appear verbatim")
	}
}

func TestRenderRedirect(t *testing.T) {
	out, err := RenderRedirect(RedirectData{ServerNames: "www.example.com example.com"})
	if err != nil {
		t.Fatalf("RenderRedirect failed: %v", err)
	}

	wantLines := []string{
		"# HTTP → HTTPS REDIRECT",
		"    listen 80;",
		"    server_name www.example.com example.com;",
		"    location /.well-known/acme-challenge/ {",
		"        root /var/www/certbot;",
		"        return 301 https://$host$request_uri;",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("redirect block missing line %q", line)
		}
	}

	if !strings.HasSuffix(out, "}\n\n") {
		t.Error("redirect block should end with a trailing blank line")
	}
}

func TestRenderHeader(t *testing.T) {
	out, err := RenderHeader(HeaderData{DisplayName: "Filter iCal"})
	if err != nil {
		t.Fatalf("RenderHeader failed: %v", err)
	}

	if !strings.Contains(out, "# Filter iCal - Nginx Configuration\n") {
		t.Error("header should name the project")
	}
	if !strings.Contains(out, "# AUTO-GENERATED from config/projects.yml\n") {
		t.Error("header should carry the AUTO-GENERATED warning")
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Error("header should end with a blank line")
	}
}
