// Package sauter implements the neoclassical bootstrap current estimate:
// a collisionality kernel and coefficient fits evaluated on a radial profile
// grid, integrated with a running-difference scheme.
package sauter

import (
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/profile"
)

// Collisionality gathers the trapped particle fraction, Coulomb logarithm,
// collision frequencies and normalized collisionalities at one grid point.
type Collisionality struct {
	TrappedFraction        float64
	CoulombLog             float64
	ElectronCollisionFreq  float64
	ElectronCollisionality float64
	IonCollisionFreq       float64
	IonCollisionality      float64
}

// TrappedFraction is the fraction of particles on banana orbits at local
// inverse aspect ratio eps. It is exactly zero at eps = 0 and strictly
// increasing on (0, 1).
func TrappedFraction(eps float64) float64 {
	return (1 - (1-eps)*math.Sqrt(1-eps)) / (1 + 1.46*math.Sqrt(eps))
}

// Collisions evaluates the collisionality kernel at one grid point. The
// absolute values in the collisionality denominators guard against sign flips
// of 1/q near the axis, and the ion form carries a small 1/q offset so a
// vanishing inverse safety factor cannot produce a singularity.
func Collisions(p profile.Point, majorRadius, zeff, ionMass float64) Collisionality {
	coulombLog := 15.9 - 0.5*math.Log(p.ElectronDensity) + math.Log(p.ElectronTemp)

	nuE := constants.ElectronCollisionPrefactor * coulombLog * p.ElectronDensity /
		(p.ElectronTemp * math.Sqrt(p.ElectronTemp))
	nuStarE := constants.ElectronCollisionalityPrefactor * majorRadius * nuE * zeff /
		math.Abs(p.InverseQ*math.Pow(p.Epsilon, 1.5)*math.Sqrt(p.ElectronTemp)*constants.ElectronCollisionalityNorm)

	nuI := constants.IonCollisionPrefactor * math.Pow(zeff, 4) * p.IonDensity /
		(p.IonTemp * math.Sqrt(p.IonTemp) * math.Sqrt(ionMass))
	nuStarI := constants.IonCollisionalityPrefactor * nuI * majorRadius /
		math.Abs((p.InverseQ+constants.InverseQOffset)*math.Pow(p.Epsilon, 1.5)*math.Sqrt(p.IonTemp/ionMass))

	return Collisionality{
		TrappedFraction:        TrappedFraction(p.Epsilon),
		CoulombLog:             coulombLog,
		ElectronCollisionFreq:  nuE,
		ElectronCollisionality: nuStarE,
		IonCollisionFreq:       nuI,
		IonCollisionality:      nuStarI,
	}
}
