package scalings

import (
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// Wilson evaluates the Wilson bootstrap fraction correlation: a twelve-term
// polynomial in remapped pressure and temperature peaking exponents, scaled
// by sqrt(eps0)*beta_p,th. The pressure exponent is taken as alphaN+alphaT,
// and eps0 is built from the outboard/inboard extremes R+a and R-a.
func Wilson(snap *plasma.Snapshot) (float64, error) {
	alphaP := snap.AlphaN + snap.AlphaT
	checks := []struct {
		field  string
		value  float64
		bad    bool
		reason string
	}{
		{"alphaJ", snap.AlphaJ, snap.AlphaJ <= 0, "must be positive"},
		{"alphaT", snap.AlphaT, snap.AlphaT <= 0, "must be positive"},
		{"alphaN+alphaT", alphaP, alphaP <= 0, "must be positive"},
		{"q95", snap.Q95, snap.Q95 <= snap.Q0, "must exceed q0"},
	}
	for _, c := range checks {
		if c.bad {
			return 0, &plasma.DomainError{Field: c.field, Value: c.value, Reason: c.reason}
		}
	}

	alphaPnw := remapExponent(alphaP, snap.Q0, snap.Q95)
	alphaTnw := remapExponent(snap.AlphaT, snap.Q0, snap.Q95)

	minorRadius := snap.MinorRadius()
	rMax := snap.MajorRadius + minorRadius
	rMin := snap.MajorRadius - minorRadius
	eps0 := (rMax - rMin) / (rMax + rMin)
	sqrtEps0 := math.Sqrt(eps0)

	aj := snap.AlphaJ
	saj := math.Sqrt(aj)
	z := snap.Zeff

	a := [12]float64{
		1.41 * (1 - 0.28*saj) * (1 + 0.12/z),
		0.36 * (1 - 0.59*saj) * (1 + 0.8/z),
		-0.27 * (1 - 0.47*saj) * (1 + 3.0/z),
		0.0053 * (1 + 5.0/z),
		-0.93 * (1 - 0.34*saj) * (1 + 0.15/z),
		-0.26 * (1 - 0.57*saj) * (1 - 0.27*z),
		0.064 * (1 - 0.6*aj + 0.15*aj*aj) * (1 + 7.6/z),
		-0.0011 * (1 + 9.0/z),
		-0.33 * (1 - aj + 0.33*aj*aj),
		-0.26 * (1 - 0.87/saj - 0.16*aj),
		-0.14 * (1 - 1.14/saj - 0.45*saj),
		-0.0069,
	}
	b := [12]float64{
		1,
		alphaPnw,
		alphaTnw,
		alphaPnw * alphaTnw,
		sqrtEps0,
		alphaPnw * sqrtEps0,
		alphaTnw * sqrtEps0,
		alphaPnw * alphaTnw * sqrtEps0,
		eps0,
		alphaPnw * eps0,
		alphaTnw * eps0,
		alphaPnw * alphaTnw * eps0,
	}

	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sqrtEps0 * snap.BetaPoloidalThermal * sum, nil
}

// remapExponent maps a profile peaking exponent onto the correlation's
// safety-factor-weighted form: the exponent of the q profile position where
// the parabolic profile falls to half its central value.
func remapExponent(alpha, q0, q95 float64) float64 {
	halfRadius := 1 - math.Pow(0.5, 1/alpha)
	qHalf := q0 + (q95-q0)*halfRadius
	return math.Log(0.5) / math.Log(math.Log(qHalf/q95)/math.Log(q0/q95))
}
