package validation

import (
	"testing"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{constants.OutputFormatPretty, constants.OutputFormatCSV} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v, want nil", format, err)
		}
	}
	for _, format := range []string{"", "json", "table"} {
		if err := ValidateOutputFormat(format); err == nil {
			t.Errorf("ValidateOutputFormat(%q) = nil, want error", format)
		}
	}
}

func TestValidateStrategy(t *testing.T) {
	for strategy := constants.StrategyITER89; strategy <= constants.StrategySakai; strategy++ {
		if err := ValidateStrategy(strategy); err != nil {
			t.Errorf("ValidateStrategy(%d) = %v, want nil", strategy, err)
		}
	}
	for _, strategy := range []int{0, 6, -3} {
		if err := ValidateStrategy(strategy); err == nil {
			t.Errorf("ValidateStrategy(%d) = nil, want error", strategy)
		}
	}
}

func TestValidateGridResolution(t *testing.T) {
	for _, resolution := range []int{2, 50, 200} {
		if err := ValidateGridResolution(resolution); err != nil {
			t.Errorf("ValidateGridResolution(%d) = %v, want nil", resolution, err)
		}
	}
	for _, resolution := range []int{-1, 0, 1} {
		if err := ValidateGridResolution(resolution); err == nil {
			t.Errorf("ValidateGridResolution(%d) = nil, want error", resolution)
		}
	}
}
