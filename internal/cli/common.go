package cli

import (
	"github.com/duersjefen/multi-tenant-platform/internal/config"
	"github.com/duersjefen/multi-tenant-platform/internal/errors"
	"github.com/duersjefen/multi-tenant-platform/internal/logger"
	"github.com/duersjefen/multi-tenant-platform/internal/output"
	"github.com/duersjefen/multi-tenant-platform/internal/validate"
)

// loadRegistry loads the project registry from under the platform root
func loadRegistry() (*config.Registry, error) {
	path := config.RegistryPath(platformRoot)
	logger.Debug("loading registry from %s", path)

	registry, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to load project registry", err)
	}

	logger.DebugFields("registry loaded", map[string]interface{}{
		"path":     path,
		"projects": registry.Len(),
	})
	return registry, nil
}

// displayReport prints a validation report and converts failures into
// an error so the process exits non-zero. Files are left in place
// either way.
func displayReport(report *validate.Report) error {
	if jsonOutput {
		if err := output.JSON(report); err != nil {
			return err
		}
	} else {
		output.Print("")
		output.Info("Validating generated configs in %s", report.Directory)
		output.Rule()
		for _, check := range report.Checks {
			if check.Passed {
				output.Success("%s check: %s", check.Name, check.Message)
				for _, detail := range check.Details {
					output.Print("   Location: %s", detail)
				}
			} else {
				output.Error("%s check: %s", check.Name, check.Message)
				for _, detail := range check.Details {
					output.Print("   - %s", detail)
				}
			}
		}
		output.Rule()
		if report.Passed() {
			output.Success("All validations passed")
		} else {
			output.Warn("Some validations failed")
		}
	}

	if !report.Passed() {
		return errors.ErrValidationFailed
	}
	return nil
}
