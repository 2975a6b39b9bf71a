// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateStrategy checks if the strategy selector names a known model.
func ValidateStrategy(strategy int) error {
	if strategy < constants.StrategyITER89 || strategy > constants.StrategySakai {
		return fmt.Errorf("expected strategy between %d and %d, got %d",
			constants.StrategyITER89, constants.StrategySakai, strategy)
	}
	return nil
}

// ValidateGridResolution checks that the radial grid has enough points to
// form at least one integration step.
func ValidateGridResolution(resolution int) error {
	if resolution < 2 {
		return fmt.Errorf("grid resolution must be at least 2, got %d", resolution)
	}
	return nil
}
