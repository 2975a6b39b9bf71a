// Package sweep evaluates the bootstrap fraction engine across a range of one
// snapshot field, for scanning how a design point responds to a parameter.
package sweep

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/fusionforge/plasma-bootstrap/internal/config"
	"github.com/fusionforge/plasma-bootstrap/internal/engine"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// Runner executes the sweep directive of a configuration.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
}

// Point is one sweep sample: the swept field value and its evaluation result.
// Err is set when that sample failed validation or evaluation; other samples
// are unaffected.
type Point struct {
	Value  float64
	Result engine.Result
	Err    error
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, conf: conf}, nil
}

// Run executes the sweep and returns one Point per sample, ordered by the
// swept value. Each sample gets its own snapshot copy, so samples can run
// concurrently.
func (r *Runner) Run() ([]Point, error) {
	sw := r.conf.Sweep
	if sw == nil {
		return nil, nil
	}
	if sw.Steps < 2 {
		return nil, fmt.Errorf("sweep requires at least 2 steps, got %d", sw.Steps)
	}
	if sw.Max <= sw.Min {
		return nil, fmt.Errorf("sweep max %g must exceed min %g", sw.Max, sw.Min)
	}

	base, err := r.findScenario(sw.Scenario)
	if err != nil {
		return nil, err
	}

	setter, err := fieldSetter(sw.Field)
	if err != nil {
		return nil, err
	}

	cfg := engine.Config{
		Strategy:       engine.Strategy(r.conf.Engine.Strategy),
		GridResolution: r.conf.Engine.GridResolution,
		MaxFraction:    r.conf.Engine.MaxFraction,
	}

	points := make([]Point, sw.Steps)
	step := (sw.Max - sw.Min) / float64(sw.Steps-1)

	var wg sync.WaitGroup
	for i := range points {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := sw.Min + float64(i)*step
			snap := *base
			setter(&snap, value)
			result, evalErr := engine.Evaluate(r.logger, &snap, cfg)
			points[i] = Point{Value: value, Result: result, Err: evalErr}
		}(i)
	}
	wg.Wait()

	r.logger.Debug(fmt.Sprintf("swept %s over [%g, %g] in %d steps", sw.Field, sw.Min, sw.Max, sw.Steps),
		zap.String("op", "sweep.Run"),
	)
	return points, nil
}

func (r *Runner) findScenario(name string) (*plasma.Snapshot, error) {
	if name == "" {
		for i := range r.conf.Scenarios {
			if r.conf.Scenarios[i].Active {
				return &r.conf.Scenarios[i].Snapshot, nil
			}
		}
		return nil, fmt.Errorf("sweep found no active scenario to use as a base")
	}
	for i := range r.conf.Scenarios {
		if r.conf.Scenarios[i].Name == name {
			return &r.conf.Scenarios[i].Snapshot, nil
		}
	}
	return nil, fmt.Errorf("sweep scenario %q not found", name)
}

// fieldSetter maps a sweepable field name to a snapshot mutator.
func fieldSetter(field string) (func(*plasma.Snapshot, float64), error) {
	switch field {
	case "q0":
		return func(s *plasma.Snapshot, v float64) { s.Q0 = v }, nil
	case "q95":
		return func(s *plasma.Snapshot, v float64) { s.Q95 = v }, nil
	case "majorRadius":
		return func(s *plasma.Snapshot, v float64) { s.MajorRadius = v }, nil
	case "inverseAspectRatio":
		return func(s *plasma.Snapshot, v float64) { s.InverseAspectRatio = v }, nil
	case "toroidalField":
		return func(s *plasma.Snapshot, v float64) { s.ToroidalField = v }, nil
	case "plasmaCurrent":
		return func(s *plasma.Snapshot, v float64) { s.PlasmaCurrent = v }, nil
	case "zeff":
		return func(s *plasma.Snapshot, v float64) { s.Zeff = v }, nil
	case "betaTotal":
		return func(s *plasma.Snapshot, v float64) { s.BetaTotal = v }, nil
	case "betaPoloidal":
		return func(s *plasma.Snapshot, v float64) { s.BetaPoloidal = v }, nil
	case "betaPoloidalThermal":
		return func(s *plasma.Snapshot, v float64) { s.BetaPoloidalThermal = v }, nil
	case "electronDensityAvg":
		return func(s *plasma.Snapshot, v float64) { s.ElectronDensityAvg = v }, nil
	case "electronDensityCentre":
		return func(s *plasma.Snapshot, v float64) { s.ElectronDensityCentre = v }, nil
	case "electronTempAvg":
		return func(s *plasma.Snapshot, v float64) { s.ElectronTempAvg = v }, nil
	case "electronTempCentre":
		return func(s *plasma.Snapshot, v float64) { s.ElectronTempCentre = v }, nil
	}
	return nil, fmt.Errorf("sweep field %q is not supported", field)
}
