// Package constants provides shared constants for the plasma-bootstrap application.
package constants

import "math"

// Strategy selector values understood by the engine.
const (
	StrategyITER89 = 1
	StrategyNevins = 2
	StrategyWilson = 3
	StrategySauter = 4
	StrategySakai  = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Radial grid defaults and floors for the Sauter profile path.
const (
	// DefaultGridResolution is the grid resolution used when the config does
	// not specify one.
	DefaultGridResolution = 200

	// RecommendedMinGridResolution is the resolution below which the
	// running-difference quadrature gets noticeably coarse.
	RecommendedMinGridResolution = 50

	// EpsilonFloor keeps the local inverse aspect ratio away from the rho=0
	// singularity.
	EpsilonFloor = 1e-6

	// ProfileShapeFloor is the minimum value of the parabolic shape factor
	// (1 - rho^2), so edge densities and temperatures stay finite and their
	// logarithms stay bounded on the grid.
	ProfileShapeFloor = 1e-2

	// InverseQOffset is added to 1/q where it appears in a denominator.
	InverseQOffset = 1e-4
)

// Calibrated collisionality prefactors. Their upstream derivation is
// undocumented; they are fit constants, not physical constants.
const (
	ElectronCollisionPrefactor      = 670.0
	ElectronCollisionalityPrefactor = 1.4
	ElectronCollisionalityNorm      = 1.875e7
	IonCollisionPrefactor           = 320.0
	IonCollisionalityPrefactor      = 3.2e-6
)

// Poloidal-beta correction prefactors for the neoclassical coefficient
// kernel. The boundary value is four times the interior value because the
// boundary form carries only the previous point's density and temperature.
const (
	BetaCorrectionInterior = 1.6e-4 * math.Pi
	BetaCorrectionBoundary = 6.4e-4 * math.Pi
)

// Physical constants and unit conversions.
const (
	// Mu0 is the vacuum permeability in SI units.
	Mu0 = 4e-7 * math.Pi

	// KiloElectronVolt is one keV in joules.
	KiloElectronVolt = 1.6022e-16

	// GridDensityUnit is the density carried on radial grid points,
	// in particles/m^3. Snapshot densities are SI; the grid builder
	// divides by this once so the coefficient fits see their native units.
	GridDensityUnit = 1e19
)

// Engine policy constants
const (
	// DefaultMaxFraction caps the bootstrap fraction when the config does not
	// specify a control value.
	DefaultMaxFraction = 1.0

	// ITER89FitRangeMax is the q95/q0 ratio beyond which the ITER89
	// correlation is extrapolating outside its fit database.
	ITER89FitRangeMax = 10.0

	// CapNotice is the user-visible diagnostic emitted when the maximum
	// bootstrap fraction is enforced.
	CapNotice = "Bootstrap fraction upper limit enforced"
)
