package sweep

import (
	"math"
	"testing"

	"github.com/fusionforge/plasma-bootstrap/internal/config"
	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

func testSnapshot() plasma.Snapshot {
	return plasma.Snapshot{
		MajorRadius:           6.2,
		InverseAspectRatio:    0.3,
		ToroidalField:         5.3,
		PlasmaCurrent:         1.5e7,
		PlasmaVolume:          837.0,
		Q0:                    1.0,
		Q95:                   4.5,
		ElectronDensityAvg:    1.0e20,
		ElectronDensityCentre: 1.2e20,
		IonDensityAvg:         0.9e20,
		IonDensityCentre:      1.05e20,
		ElectronTempAvg:       12.0,
		ElectronTempCentre:    25.0,
		IonTempAvg:            11.5,
		IonTempCentre:         24.0,
		Zeff:                  2.5,
		IonMassNumber:         2.5,
		AlphaN:                0.5,
		AlphaT:                1.0,
		AlphaJ:                1.0,
		InternalInductance:    0.9,
		BetaTotal:             0.042,
		BetaPoloidal:          1.2,
		BetaPoloidalThermal:   1.2,
	}
}

func testConfiguration(sweepConfig *config.SweepConfig) *config.Configuration {
	return &config.Configuration{
		Engine: config.EngineSettings{
			Strategy:       constants.StrategySakai,
			GridResolution: constants.DefaultGridResolution,
			MaxFraction:    1.0,
		},
		Scenarios: []config.Scenario{
			{Name: "baseline", Active: true, Snapshot: testSnapshot()},
		},
		Sweep: sweepConfig,
	}
}

func TestNewRunnerRejectsNilConfiguration(t *testing.T) {
	if _, err := NewRunner(nil, nil); err == nil {
		t.Errorf("NewRunner(nil config) = nil error, want error")
	}
}

func TestRunWithoutSweepSection(t *testing.T) {
	runner, err := NewRunner(nil, testConfiguration(nil))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	points, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if points != nil {
		t.Errorf("Run() = %v, want nil without a sweep section", points)
	}
}

func TestRunSweepsPoloidalBeta(t *testing.T) {
	runner, err := NewRunner(nil, testConfiguration(&config.SweepConfig{
		Scenario: "baseline",
		Field:    "betaPoloidal",
		Min:      0.8,
		Max:      1.6,
		Steps:    5,
	}))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	points, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("len(points) = %d, want 5", len(points))
	}

	if math.Abs(points[0].Value-0.8) > 1e-12 || math.Abs(points[4].Value-1.6) > 1e-12 {
		t.Errorf("sweep endpoints = %v, %v, want 0.8, 1.6", points[0].Value, points[4].Value)
	}

	// The Sakai correlation rises with poloidal beta, so the sweep must too.
	for i := 1; i < len(points); i++ {
		if points[i].Err != nil {
			t.Fatalf("point %d error = %v", i, points[i].Err)
		}
		if points[i].Result.Fraction <= points[i-1].Result.Fraction {
			t.Errorf("fraction did not rise from %v to %v across beta step",
				points[i-1].Result.Fraction, points[i].Result.Fraction)
		}
	}
}

func TestRunDefaultsToFirstActiveScenario(t *testing.T) {
	conf := testConfiguration(&config.SweepConfig{
		Field: "betaPoloidal",
		Min:   1.0,
		Max:   1.2,
		Steps: 2,
	})
	conf.Scenarios = append([]config.Scenario{
		{Name: "shelved", Active: false, Snapshot: testSnapshot()},
	}, conf.Scenarios...)

	runner, err := NewRunner(nil, conf)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	points, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(points) != 2 {
		t.Errorf("len(points) = %d, want 2", len(points))
	}
}

func TestRunIsolatesFailedSamples(t *testing.T) {
	// Sweeping zeff down through 1 makes the low samples fail validation
	// while the rest still evaluate.
	runner, err := NewRunner(nil, testConfiguration(&config.SweepConfig{
		Scenario: "baseline",
		Field:    "zeff",
		Min:      0.5,
		Max:      2.0,
		Steps:    4,
	}))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	points, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if points[0].Err == nil {
		t.Errorf("points[0] (zeff=0.5) error = nil, want validation error")
	}
	if points[3].Err != nil {
		t.Errorf("points[3] (zeff=2.0) error = %v, want nil", points[3].Err)
	}
}

func TestRunSweepValidation(t *testing.T) {
	tests := []struct {
		name  string
		sweep *config.SweepConfig
	}{
		{"too few steps", &config.SweepConfig{Field: "q95", Min: 3, Max: 5, Steps: 1}},
		{"inverted range", &config.SweepConfig{Field: "q95", Min: 5, Max: 3, Steps: 10}},
		{"unknown field", &config.SweepConfig{Field: "elongation", Min: 1, Max: 2, Steps: 10}},
		{"unknown scenario", &config.SweepConfig{Scenario: "absent", Field: "q95", Min: 3, Max: 5, Steps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, err := NewRunner(nil, testConfiguration(tt.sweep))
			if err != nil {
				t.Fatalf("NewRunner() error = %v", err)
			}
			if _, err := runner.Run(); err == nil {
				t.Errorf("Run() = nil error, want error")
			}
		})
	}
}

func TestRunDoesNotMutateBaseSnapshot(t *testing.T) {
	conf := testConfiguration(&config.SweepConfig{
		Scenario: "baseline",
		Field:    "q95",
		Min:      3.0,
		Max:      5.0,
		Steps:    3,
	})
	original := conf.Scenarios[0].Snapshot

	runner, err := NewRunner(nil, conf)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	if _, err := runner.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if conf.Scenarios[0].Snapshot != original {
		t.Errorf("sweep mutated the base snapshot")
	}
}
