package profile

import (
	"math"
	"testing"

	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

func testSnapshot() plasma.Snapshot {
	return plasma.Snapshot{
		MajorRadius:           6.2,
		InverseAspectRatio:    0.323,
		ToroidalField:         5.3,
		PlasmaCurrent:         1.5e7,
		Q0:                    1.0,
		Q95:                   3.0,
		ElectronDensityCentre: 1.2e20,
		IonDensityCentre:      1.05e20,
		ElectronTempCentre:    25.0,
		IonTempCentre:         24.0,
		Zeff:                  2.5,
		IonMassNumber:         2.5,
		AlphaN:                0.5,
		AlphaT:                1.0,
	}
}

func TestGridRejectsTinyResolution(t *testing.T) {
	snap := testSnapshot()
	for _, n := range []int{-1, 0, 1} {
		if _, err := Grid(&snap, n); err == nil {
			t.Errorf("Grid(n=%d) = nil error, want error", n)
		}
	}
}

func TestGridGeometry(t *testing.T) {
	snap := testSnapshot()
	n := 100
	grid, err := Grid(&snap, n)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	if len(grid) != n {
		t.Fatalf("len(grid) = %d, want %d", len(grid), n)
	}
	if got := grid[0].Rho; math.Abs(got-1.0/float64(n)) > 1e-12 {
		t.Errorf("first rho = %v, want %v", got, 1.0/float64(n))
	}
	if got := grid[n-1].Rho; got != 1.0 {
		t.Errorf("last rho = %v, want 1", got)
	}

	// Epsilon scales linearly with rho up to the snapshot's edge value.
	edgeEps := grid[n-1].Epsilon
	if math.Abs(edgeEps-snap.InverseAspectRatio) > 1e-12 {
		t.Errorf("edge epsilon = %v, want %v", edgeEps, snap.InverseAspectRatio)
	}
}

func TestGridProfilesDecreaseOutward(t *testing.T) {
	snap := testSnapshot()
	grid, err := Grid(&snap, 200)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	for i := 1; i < len(grid); i++ {
		if grid[i].ElectronDensity > grid[i-1].ElectronDensity {
			t.Fatalf("electron density rose at rho=%v", grid[i].Rho)
		}
		if grid[i].ElectronTemp > grid[i-1].ElectronTemp {
			t.Fatalf("electron temperature rose at rho=%v", grid[i].Rho)
		}
		if grid[i].IonTemp > grid[i-1].IonTemp {
			t.Fatalf("ion temperature rose at rho=%v", grid[i].Rho)
		}
	}
}

func TestGridCentreValues(t *testing.T) {
	snap := testSnapshot()
	n := 1000
	grid, err := Grid(&snap, n)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	// The innermost point sits at rho = 1/n, essentially on axis.
	first := grid[0]
	wantDensity := snap.ElectronDensityCentre / constants.GridDensityUnit
	if math.Abs(first.ElectronDensity-wantDensity)/wantDensity > 1e-4 {
		t.Errorf("axis electron density = %v, want close to %v", first.ElectronDensity, wantDensity)
	}
	if math.Abs(first.ElectronTemp-snap.ElectronTempCentre)/snap.ElectronTempCentre > 1e-4 {
		t.Errorf("axis electron temperature = %v, want close to %v", first.ElectronTemp, snap.ElectronTempCentre)
	}
	if math.Abs(first.InverseQ-1/snap.Q0) > 1e-2 {
		t.Errorf("axis 1/q = %v, want close to %v", first.InverseQ, 1/snap.Q0)
	}
}

func TestGridEdgeShapeFloor(t *testing.T) {
	snap := testSnapshot()
	grid, err := Grid(&snap, 100)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	// The shape factor (1 - rho^2) vanishes at rho = 1; the floor keeps the
	// edge values finite and positive.
	edge := grid[len(grid)-1]
	wantDensity := snap.ElectronDensityCentre / constants.GridDensityUnit *
		math.Pow(constants.ProfileShapeFloor, snap.AlphaN)
	if math.Abs(edge.ElectronDensity-wantDensity)/wantDensity > 1e-12 {
		t.Errorf("edge electron density = %v, want %v", edge.ElectronDensity, wantDensity)
	}
	wantTemp := snap.ElectronTempCentre * math.Pow(constants.ProfileShapeFloor, snap.AlphaT)
	if math.Abs(edge.ElectronTemp-wantTemp)/wantTemp > 1e-12 {
		t.Errorf("edge electron temperature = %v, want %v", edge.ElectronTemp, wantTemp)
	}
}

func TestGridSafetyFactorEndpoints(t *testing.T) {
	snap := testSnapshot()
	grid, err := Grid(&snap, 100)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	// q(1) = q0 + (q95-q0)*(1+1+1)/3 = q95.
	edge := grid[len(grid)-1]
	if math.Abs(1/edge.InverseQ-snap.Q95) > 1e-12 {
		t.Errorf("edge q = %v, want %v", 1/edge.InverseQ, snap.Q95)
	}

	for i := 1; i < len(grid); i++ {
		if grid[i].InverseQ > grid[i-1].InverseQ {
			t.Fatalf("1/q rose at rho=%v; q must increase outward", grid[i].Rho)
		}
	}
}

func TestGridFlatProfiles(t *testing.T) {
	snap := testSnapshot()
	snap.AlphaN = 0
	snap.AlphaT = 0
	grid, err := Grid(&snap, 50)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	wantDensity := snap.ElectronDensityCentre / constants.GridDensityUnit
	for _, p := range grid {
		if p.ElectronDensity != wantDensity {
			t.Fatalf("flat profile density = %v at rho=%v, want %v", p.ElectronDensity, p.Rho, wantDensity)
		}
		if p.ElectronTemp != snap.ElectronTempCentre {
			t.Fatalf("flat profile temperature = %v at rho=%v, want %v", p.ElectronTemp, p.Rho, snap.ElectronTempCentre)
		}
	}
}
