package sauter

import (
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
	"github.com/fusionforge/plasma-bootstrap/pkg/profile"
)

// Fraction walks the radial grid from the second point to the last,
// accumulates the bootstrap current with a left-point running-difference
// scheme, and normalizes by the plasma current.
//
// Log gradients use the inward difference (previous minus current), so
// profiles falling toward the edge combine with the -B_T field factor to
// drive a positive fraction. The sigma_neo*<E.B> term of the underlying
// derivation is not represented in this numerical form; the formula is
// reproduced as documented.
func Fraction(snap *plasma.Snapshot, resolution int) (float64, error) {
	grid, err := profile.Grid(snap, resolution)
	if err != nil {
		return 0, err
	}

	last := len(grid) - 1
	sum := 0.0
	for j := 1; j <= last; j++ {
		cur, prev := grid[j], grid[j-1]

		col := Collisions(cur, snap.MajorRadius, snap.Zeff, snap.IonMassNumber)
		terms := TermsAt(cur, prev, col, snap.Zeff, snap.ToroidalField, j == last)

		dRho := cur.Rho - prev.Rho
		dLnNe := (math.Log(prev.ElectronDensity) - math.Log(cur.ElectronDensity)) / dRho
		dLnTe := (math.Log(prev.ElectronTemp) - math.Log(cur.ElectronTemp)) / dRho
		dLnTi := (math.Log(prev.IonTemp) - math.Log(cur.IonTemp)) / dRho

		gradients := 0.5 * (terms.L31*dLnNe + terms.L31L32*dLnTe + terms.L34Alpha*dLnTi)
		field := -snap.ToroidalField * prev.Rho * math.Abs(prev.InverseQ) / (0.2 * math.Pi * snap.MajorRadius)

		sum += 2 * math.Pi * prev.Rho * dRho * gradients * 1e6 * field
	}

	return sum / snap.PlasmaCurrent, nil
}
