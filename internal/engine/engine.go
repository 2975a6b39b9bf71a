// Package engine selects and runs a bootstrap current fraction estimate for a
// plasma snapshot, applying the fixed-fraction and upper-limit policies.
package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/fusionforge/plasma-bootstrap/internal/config"
	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/mathutil"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
	"github.com/fusionforge/plasma-bootstrap/pkg/sauter"
	"github.com/fusionforge/plasma-bootstrap/pkg/scalings"
	"github.com/fusionforge/plasma-bootstrap/pkg/validation"
)

// Strategy identifies one of the bootstrap fraction models.
type Strategy int

// Strategy values accepted in configuration files.
const (
	StrategyITER89 Strategy = constants.StrategyITER89
	StrategyNevins Strategy = constants.StrategyNevins
	StrategyWilson Strategy = constants.StrategyWilson
	StrategySauter Strategy = constants.StrategySauter
	StrategySakai  Strategy = constants.StrategySakai
)

// String returns the model name for a strategy value.
func (s Strategy) String() string {
	switch s {
	case StrategyITER89:
		return "iter89"
	case StrategyNevins:
		return "nevins"
	case StrategyWilson:
		return "wilson"
	case StrategySauter:
		return "sauter"
	case StrategySakai:
		return "sakai"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Config holds the engine policy settings for one evaluation.
type Config struct {
	Strategy       Strategy
	GridResolution int
	MaxFraction    float64
}

// Result is the outcome of one bootstrap fraction evaluation.
type Result struct {
	Fraction float64
	Strategy Strategy
	Capped   bool
	Fixed    bool
}

// Evaluation pairs a named scenario with its result and any notices raised
// while producing it.
type Evaluation struct {
	Name   string
	Result Result
	Notes  []string
}

// Evaluate computes the bootstrap current fraction for one snapshot.
//
// A negative MaxFraction switches the engine to fixed mode: the fraction is
// |MaxFraction| and the snapshot is not validated or evaluated at all. A
// non-negative MaxFraction is an upper limit; results above it are clamped
// and the result is marked capped.
func Evaluate(logger *zap.Logger, snap *plasma.Snapshot, cfg Config) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.MaxFraction < 0 {
		return Result{
			Fraction: math.Abs(cfg.MaxFraction),
			Strategy: cfg.Strategy,
			Fixed:    true,
		}, nil
	}

	if err := validation.ValidateStrategy(int(cfg.Strategy)); err != nil {
		return Result{}, err
	}

	if err := snap.Validate(); err != nil {
		return Result{}, err
	}

	raw, err := estimate(snap, cfg)
	if err != nil {
		return Result{}, err
	}

	result := Result{Fraction: raw, Strategy: cfg.Strategy}
	if raw > cfg.MaxFraction {
		logger.Warn(constants.CapNotice,
			zap.String("op", "engine.Evaluate"),
			zap.String("strategy", cfg.Strategy.String()),
			zap.Float64("raw", raw),
			zap.Float64("max", cfg.MaxFraction),
		)
		result.Fraction = mathutil.Clamp(raw, 0, cfg.MaxFraction)
		result.Capped = true
	}

	return result, nil
}

func estimate(snap *plasma.Snapshot, cfg Config) (float64, error) {
	switch cfg.Strategy {
	case StrategyITER89:
		return scalings.ITER89(snap)
	case StrategyNevins:
		return scalings.Nevins(snap)
	case StrategyWilson:
		return scalings.Wilson(snap)
	case StrategySauter:
		resolution := cfg.GridResolution
		if resolution == 0 {
			resolution = constants.DefaultGridResolution
		}
		if err := validation.ValidateGridResolution(resolution); err != nil {
			return 0, err
		}
		return sauter.Fraction(snap, resolution)
	case StrategySakai:
		return scalings.Sakai(snap)
	}
	return 0, fmt.Errorf("unknown bootstrap strategy %d", int(cfg.Strategy))
}

// Run evaluates all active scenarios in the configuration.
func Run(logger *zap.Logger, conf *config.Configuration) ([]Evaluation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Evaluation
	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "engine.Run"),
			)
			continue
		}

		cfg := Config{
			Strategy:       Strategy(conf.Engine.Strategy),
			GridResolution: conf.Engine.GridResolution,
			MaxFraction:    conf.Engine.MaxFraction,
		}
		result, err := Evaluate(logger, &scenario.Snapshot, cfg)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		evaluation := Evaluation{Name: scenario.Name, Result: result}
		if result.Capped {
			evaluation.Notes = append(evaluation.Notes, constants.CapNotice)
		}
		logger.Debug(fmt.Sprintf("scenario %s: bootstrap fraction %.4f", scenario.Name, result.Fraction),
			zap.String("op", "engine.Run"),
			zap.String("strategy", result.Strategy.String()),
		)
		results = append(results, evaluation)
	}

	return results, nil
}
