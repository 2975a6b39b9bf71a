// Package scalings implements the closed-form empirical bootstrap fraction
// correlations. Each function reads scalar snapshot fields only; none of
// them touches the radial grid used by the neoclassical path.
package scalings

import (
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// ITER89 evaluates the ITER-89 bootstrap fraction correlation,
// C_BS*(sqrt(eps)*beta_pa)^1.3, where C_BS is quadratic in q95/q0 and
// beta_pa rescales the total beta to the poloidal-field estimate
// B_pa = I_MA/(5*<a>), <a> = sqrt(V/(2*pi^2*R)).
func ITER89(snap *plasma.Snapshot) (float64, error) {
	if snap.PlasmaVolume <= 0 {
		return 0, &plasma.DomainError{Field: "plasmaVolume", Value: snap.PlasmaVolume, Reason: "must be positive"}
	}

	x := snap.Q95 / snap.Q0
	cbs := 1.32 - 0.235*x + 0.0185*x*x

	avgMinorRadius := math.Sqrt(snap.PlasmaVolume / (2 * math.Pi * math.Pi * snap.MajorRadius))
	bpa := snap.PlasmaCurrent / 1e6 / (5 * avgMinorRadius)
	betaPa := snap.BetaTotal * (snap.ToroidalField / bpa) * (snap.ToroidalField / bpa)

	return cbs * math.Pow(math.Sqrt(snap.InverseAspectRatio)*betaPa, 1.3), nil
}
