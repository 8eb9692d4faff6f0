package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stdout)
	fn()
	return buf.String()
}

func TestJSON(t *testing.T) {
	out := capture(t, func() {
		if err := JSON(map[string]interface{}{"success": true, "project": "filter-ical"}); err != nil {
			t.Fatalf("JSON failed: %v", err)
		}
	})

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["project"] != "filter-ical" {
		t.Errorf("project = %v, want filter-ical", decoded["project"])
	}
}

func TestTable(t *testing.T) {
	out := capture(t, func() {
		Table(
			[]string{"PROJECT", "DOMAINS"},
			[][]string{
				{"filter-ical", "filter-ical.de"},
				{"dashboard", "dash.example.com"},
			},
		)
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "PROJECT") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "filter-ical.de") {
		t.Errorf("row line = %q", lines[2])
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	out := capture(t, func() {
		Table(nil, [][]string{{"ignored"}})
	})
	if out != "" {
		t.Errorf("expected no output for empty headers, got %q", out)
	}
}

func TestMessagePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		fn     func()
		prefix string
	}{
		{"success", func() { Success("generated %s", "example.com.conf") }, "✓"},
		{"error", func() { Error("reuseport check failed") }, "✗"},
		{"warn", func() { Warn("some validations failed") }, "!"},
		{"info", func() { Info("dry run mode") }, "→"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, tt.fn)
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("output %q should start with %q", out, tt.prefix)
			}
		})
	}
}

func TestHeaderAndRules(t *testing.T) {
	out := capture(t, func() {
		Header("NGINX CONFIGURATION GENERATOR")
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != strings.Repeat("=", 80) || lines[2] != strings.Repeat("=", 80) {
		t.Error("header should be framed by 80-char dividers")
	}
	if !strings.Contains(lines[1], "NGINX CONFIGURATION GENERATOR") {
		t.Errorf("header text missing, got %q", lines[1])
	}

	out = capture(t, Rule)
	if strings.TrimRight(out, "\n") != strings.Repeat("-", 80) {
		t.Errorf("Rule output = %q", out)
	}
}
