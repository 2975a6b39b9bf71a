package scalings

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// nevinsQuadNodes is the Gauss-Legendre node count for the Nevins integral.
// The integrand is smooth on (0,1) apart from an integrable edge term, and
// 50 nodes hold the quadrature error well below the fit accuracy.
const nevinsQuadNodes = 50

// Nevins evaluates the Nevins et al bootstrap fraction correlation. It runs
// its own normalized-radius quadrature from 0 to 1 with a self-contained
// coefficient set; it shares nothing with the neoclassical grid path.
func Nevins(snap *plasma.Snapshot) (float64, error) {
	if snap.BetaTotal <= 0 {
		return 0, &plasma.DomainError{Field: "betaTotal", Value: snap.BetaTotal, Reason: "must be positive"}
	}

	bt := snap.ToroidalField
	fieldPressure := bt * bt / (2 * constants.Mu0)

	betaE0 := snap.ElectronDensityCentre * snap.ElectronTempCentre * constants.KiloElectronVolt / fieldPressure
	betaE := snap.ElectronDensityAvg * snap.ElectronTempAvg * constants.KiloElectronVolt / fieldPressure
	pressureRatio := (snap.BetaTotal - betaE) / betaE

	alphaSum := snap.AlphaN + snap.AlphaT
	minorRadius := snap.MinorRadius()

	integrand := func(y float64) float64 {
		del := minorRadius * math.Sqrt(y) / snap.MajorRadius
		x := (1.46*math.Sqrt(del) + 2.4*del) / math.Pow(1-del, 1.5)

		z := snap.Zeff
		d := 1.414*z + z*z + x*(0.754+2.657*z+2*z*z) + x*x*(0.348+1.243*z+z*z)
		lambda1 := x * (0.754 + 2.21*z + z*z + x*(0.348+1.243*z+z*z)) / d
		lambda2 := -x * (0.884 + 2.074*z) / d

		gradient := math.Pow(1-y, alphaSum-1)
		a1 := alphaSum * gradient
		a2 := snap.AlphaT * gradient
		alphaI := -1.172 / (1 + 0.462*x)

		q := snap.Q0 + (snap.Q95-snap.Q0)*(y+y*y+y*y*y)/3

		return (q / snap.Q95) * (lambda1*(a1+pressureRatio*(a1+alphaI*a2)) + lambda2*a2)
	}

	integral := quad.Fixed(integrand, 0, 1, nevinsQuadNodes, nil, 0)

	return 1e6 * 2.5 * betaE0 * snap.MajorRadius * bt * snap.Q95 * integral / snap.PlasmaCurrent, nil
}
