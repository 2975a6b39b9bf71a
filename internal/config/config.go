// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// Configuration holds all configuration for plasma-bootstrap.
type Configuration struct {
	Engine    EngineSettings `yaml:"engine"`
	Scenarios []Scenario     `yaml:"scenarios"`
	Sweep     *SweepConfig   `yaml:"sweep,omitempty"`
	Logging   LoggingConfig  `yaml:"logging,omitempty"`
	Output    OutputConfig   `yaml:"output,omitempty"`
}

// EngineSettings holds the bootstrap fraction policy shared by all scenarios.
type EngineSettings struct {
	Strategy       int     `yaml:"strategy"`
	GridResolution int     `yaml:"gridResolution,omitempty"`
	MaxFraction    float64 `yaml:"maxFraction,omitempty"`
}

// Scenario pairs a named machine operating point with an active flag.
type Scenario struct {
	Name     string          `yaml:"name"`
	Active   bool            `yaml:"active"`
	Snapshot plasma.Snapshot `yaml:"snapshot"`
}

// SweepConfig defines a single-parameter sweep over one snapshot field.
type SweepConfig struct {
	Scenario string  `yaml:"scenario"`
	Field    string  `yaml:"field"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Steps    int     `yaml:"steps"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromBytes parses a YAML-formatted configuration held in
// memory, for callers that receive the configuration over the wire.
func LoadConfigurationFromBytes(data []byte) (*Configuration, error) {
	var configuration Configuration
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset engine fields with their defaults. A zero
// MaxFraction means unset; the fixed-fraction mode uses negative values and
// cannot collide with this.
func (c *Configuration) ApplyDefaults() {
	if c.Engine.GridResolution == 0 {
		c.Engine.GridResolution = constants.DefaultGridResolution
	}
	if c.Engine.MaxFraction == 0 {
		c.Engine.MaxFraction = constants.DefaultMaxFraction
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings flag estimates likely to be degraded; they never
// block evaluation.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Engine.Strategy == constants.StrategySauter &&
		c.Engine.GridResolution < constants.RecommendedMinGridResolution {
		warnings = append(warnings, fmt.Sprintf(
			"Grid resolution %d is below the recommended minimum of %d; the radial quadrature will be coarse",
			c.Engine.GridResolution, constants.RecommendedMinGridResolution))
	}

	if c.Engine.Strategy == constants.StrategySakai {
		warnings = append(warnings,
			"The Sakai correlation expects betaPoloidal to exclude the diamagnetic contribution")
	}

	active := 0
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		active++

		if c.Engine.Strategy == constants.StrategyITER89 && scenario.Snapshot.Q0 > 0 {
			ratio := scenario.Snapshot.Q95 / scenario.Snapshot.Q0
			if ratio > constants.ITER89FitRangeMax {
				warnings = append(warnings, fmt.Sprintf(
					"Scenario '%s' has q95/q0 = %.1f, outside the ITER89 fit range; the correlation is extrapolating",
					scenario.Name, ratio))
			}
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios are configured; nothing will be evaluated")
	}

	return warnings
}
