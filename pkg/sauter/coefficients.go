package sauter

import (
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/profile"
)

// Terms are the three gradient coefficients of the bootstrap integrand at one
// grid point, each already weighted by its poloidal-beta correction. L31
// multiplies the density gradient, L31L32 the electron temperature gradient
// and L34Alpha the ion temperature gradient.
type Terms struct {
	L31      float64
	L31L32   float64
	L34Alpha float64
}

// Effective trapped fractions: the trapped fraction is eroded by collisions,
// with a different erosion fit for each transport coefficient.

func effectiveTrapped31(ft, nuStarE, zeff float64) float64 {
	return ft / (1 + (1-0.1*ft)*math.Sqrt(nuStarE) + 0.5*(1-ft)*nuStarE/zeff)
}

func effectiveTrapped32EE(ft, nuStarE, zeff float64) float64 {
	return ft / (1 + 0.26*(1-ft)*math.Sqrt(nuStarE) + 0.18*(1-0.37*ft)*nuStarE/math.Sqrt(zeff))
}

func effectiveTrapped32EI(ft, nuStarE, zeff float64) float64 {
	return ft / (1 + (1+0.6*ft)*math.Sqrt(nuStarE) + 0.85*(1-0.37*ft)*nuStarE*(1+zeff))
}

func effectiveTrapped34(ft, nuStarE, zeff float64) float64 {
	return ft / (1 + (1-0.1*ft)*math.Sqrt(nuStarE) + 0.5*(1-0.5*ft)*nuStarE/zeff)
}

// Quartic response functions with Zeff-dependent coefficients.

func responseF31(x, zeff float64) float64 {
	x2 := x * x
	return (1+1.4/(zeff+1))*x - 1.9/(zeff+1)*x2 + 0.3/(zeff+1)*x2*x + 0.2/(zeff+1)*x2*x2
}

func responseF32EE(x, zeff float64) float64 {
	x2 := x * x
	x3 := x2 * x
	x4 := x2 * x2
	return (0.05+0.62*zeff)/(zeff*(1+0.44*zeff))*(x-x4) +
		1/(1+0.22*zeff)*(x2-x4-1.2*(x3-x4)) +
		1.2/(1+0.5*zeff)*x4
}

func responseF32EI(y, zeff float64) float64 {
	y2 := y * y
	y3 := y2 * y
	y4 := y2 * y2
	return -(0.56+1.93*zeff)/(zeff*(1+0.44*zeff))*(y-y4) +
		4.95/(1+2.48*zeff)*(y2-y4-0.55*(y3-y4)) -
		1.2/(1+0.5*zeff)*y4
}

// alphaViscosity is the ion viscosity coefficient entering the ion
// temperature gradient term. The high-collisionality term carries the
// erratum sign: +0.315*nuStarI^2*ft^6, not the original publication's
// negative sign.
func alphaViscosity(ft, nuStarI float64) float64 {
	alpha0 := -1.17 * (1 - ft) / (1 - 0.22*ft - 0.19*ft*ft)
	ft6 := math.Pow(ft, 6)
	return ((alpha0+0.25*(1-ft*ft)*math.Sqrt(nuStarI))/(1+0.5*math.Sqrt(nuStarI)) +
		0.315*nuStarI*nuStarI*ft6) /
		(1 + 0.15*nuStarI*nuStarI*ft6)
}

// betaCorrections returns the electron-only and total (electron + ion)
// poloidal-beta corrections for the step from prev to cur. Interior points
// use the sum of both points' densities and temperatures; the boundary point
// uses only the previous point's values scaled by four. Both are normalized
// by (B_T * rho_prev * |1/q_prev + offset|)^2.
func betaCorrections(cur, prev profile.Point, toroidalField float64, boundary bool) (electron, total float64) {
	denom := toroidalField * prev.Rho * math.Abs(prev.InverseQ+constants.InverseQOffset)
	denom *= denom

	if boundary {
		electron = constants.BetaCorrectionBoundary * prev.ElectronDensity * prev.ElectronTemp / denom
		total = electron + constants.BetaCorrectionBoundary*prev.IonDensity*prev.IonTemp/denom
		return electron, total
	}

	electron = constants.BetaCorrectionInterior *
		(cur.ElectronDensity + prev.ElectronDensity) * (cur.ElectronTemp + prev.ElectronTemp) / denom
	total = electron + constants.BetaCorrectionInterior*
		(cur.IonDensity+prev.IonDensity)*(cur.IonTemp+prev.IonTemp)/denom
	return electron, total
}

// TermsAt assembles the three weighted gradient coefficients for the step
// ending at cur. boundary marks the last grid point, where the poloidal-beta
// corrections switch to their previous-point-only form.
func TermsAt(cur, prev profile.Point, col Collisionality, zeff, toroidalField float64, boundary bool) Terms {
	electron, total := betaCorrections(cur, prev, toroidalField, boundary)
	ratio := electron / total

	ft := col.TrappedFraction
	nuStarE := col.ElectronCollisionality

	l31 := responseF31(effectiveTrapped31(ft, nuStarE, zeff), zeff) * total

	l32 := responseF32EE(effectiveTrapped32EE(ft, nuStarE, zeff), zeff) +
		responseF32EI(effectiveTrapped32EI(ft, nuStarE, zeff), zeff)
	l31l32 := (l32 + l31) * ratio

	l34 := responseF31(effectiveTrapped34(ft, nuStarE, zeff), zeff)
	alpha := alphaViscosity(ft, col.IonCollisionality)
	l34Alpha := (total-electron)*(l34+alpha) + l31*(1-ratio)

	return Terms{L31: l31, L31L32: l31l32, L34Alpha: l34Alpha}
}
