// Package profile builds the normalized-radius discretization used by the
// neoclassical (Sauter) bootstrap path. The grid is rebuilt for every
// evaluation and discarded afterwards; the snapshot may change between
// invocations of the outer solver, so nothing here is cached.
package profile

import (
	"fmt"
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/mathutil"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// Point is one radial grid point. Densities are in units of
// constants.GridDensityUnit (1e19 m^-3) and temperatures in keV; the
// collisionality and coefficient fits are written for those units.
type Point struct {
	Rho             float64
	Epsilon         float64
	ElectronDensity float64
	IonDensity      float64
	ElectronTemp    float64
	IonTemp         float64
	InverseQ        float64
}

// Grid evaluates the density, temperature and safety-factor profiles on n
// points with rho running from 1/n up to 1. The density and temperature
// profiles are parabolic, x(rho) = x0*(1-rho^2)^alpha, with the shape factor
// floored so edge values and their logarithms stay finite. The safety factor
// rises as q(rho) = q0 + (q95-q0)*(rho+rho^2+rho^3)/3, which climbs faster
// than parabolic near the edge, as measured q profiles do.
func Grid(snap *plasma.Snapshot, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("profile: grid resolution must be at least 2, got %d", n)
	}

	points := make([]Point, n)
	for i := range points {
		rho := float64(i+1) / float64(n)
		shape := mathutil.Floor(1-rho*rho, constants.ProfileShapeFloor)
		q := snap.Q0 + (snap.Q95-snap.Q0)*(rho+rho*rho+rho*rho*rho)/3

		points[i] = Point{
			Rho:             rho,
			Epsilon:         mathutil.Floor(rho*snap.InverseAspectRatio, constants.EpsilonFloor),
			ElectronDensity: snap.ElectronDensityCentre / constants.GridDensityUnit * math.Pow(shape, snap.AlphaN),
			IonDensity:      snap.IonDensityCentre / constants.GridDensityUnit * math.Pow(shape, snap.AlphaN),
			ElectronTemp:    snap.ElectronTempCentre * math.Pow(shape, snap.AlphaT),
			IonTemp:         snap.IonTempCentre * math.Pow(shape, snap.AlphaT),
			InverseQ:        1 / q,
		}
	}

	return points, nil
}
