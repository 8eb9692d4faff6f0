// Package validate checks global invariants over the generated config
// directory. The checks are directory-wide, not run-scoped: stale files
// from earlier runs are scanned too, because nginx loads the whole
// conf.d directory.
//
// Two independent checks run:
//   - exactly one line across all files carries the reuseport QUIC
//     listener (the kernel rejects a second reuseport on the same
//     address from a different socket group);
//   - every file advertises a QUIC listener, so every project keeps
//     HTTP/3 capability.
//
// Failures are advisory: generated files stay in place, the process
// exits non-zero.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/duersjefen/multi-tenant-platform/internal/errors"
	"github.com/duersjefen/multi-tenant-platform/internal/logger"
)

// Listener marker texts scanned for. These must match the template
// output exactly.
const (
	ReuseportMarker = "listen 443 quic reuseport"
	QUICMarker      = "listen 443 quic"
)

// CheckResult is the outcome of a single validation check
type CheckResult struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Report accumulates all check results for one validation pass
type Report struct {
	Directory string        `json:"directory"`
	Files     int           `json:"files"`
	Checks    []CheckResult `json:"checks"`
}

// Passed reports whether every check succeeded
func (r *Report) Passed() bool {
	for _, check := range r.Checks {
		if !check.Passed {
			return false
		}
	}
	return true
}

// Directory scans every .conf file in dir and runs all checks. The
// error return covers I/O problems only; check failures land in the
// report.
func Directory(dir string) (*Report, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, "cannot read output directory", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.conf"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, "cannot scan output directory", err)
	}

	report := &Report{Directory: dir, Files: len(files)}

	reuseportLocations := []string{}
	missingQUIC := []string{}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, "cannot read "+file, err)
		}

		content := string(data)
		for i, line := range strings.Split(content, "\n") {
			if strings.Contains(line, ReuseportMarker) {
				reuseportLocations = append(reuseportLocations,
					fmt.Sprintf("%s:%d", filepath.Base(file), i+1))
			}
		}
		if !strings.Contains(content, QUICMarker) {
			missingQUIC = append(missingQUIC, filepath.Base(file))
		}
	}

	logger.DebugFields("scanned output directory", map[string]interface{}{
		"dir":       dir,
		"files":     len(files),
		"reuseport": len(reuseportLocations),
	})

	report.Checks = append(report.Checks,
		reuseportCheck(reuseportLocations),
		quicCheck(missingQUIC),
	)
	return report, nil
}

// reuseportCheck verifies the exclusive listener option appears exactly
// once across the whole directory.
func reuseportCheck(locations []string) CheckResult {
	if len(locations) == 1 {
		return CheckResult{
			Name:    "reuseport",
			Passed:  true,
			Message: "Found exactly 1 occurrence",
			Details: locations,
		}
	}
	return CheckResult{
		Name:    "reuseport",
		Passed:  false,
		Message: fmt.Sprintf("Found %d occurrences (expected 1)", len(locations)),
		Details: locations,
	}
}

// quicCheck verifies every config advertises a QUIC listener.
func quicCheck(missing []string) CheckResult {
	if len(missing) == 0 {
		return CheckResult{
			Name:    "http3",
			Passed:  true,
			Message: "All configs have QUIC listeners",
		}
	}
	return CheckResult{
		Name:    "http3",
		Passed:  false,
		Message: "Missing QUIC listeners",
		Details: missing,
	}
}
