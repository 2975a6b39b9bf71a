package scalings

import (
	"math"

	"github.com/fusionforge/plasma-bootstrap/pkg/plasma"
)

// Sakai evaluates the Sakai bootstrap fraction correlation: a product of
// power laws whose exponents are all linear in the inverse aspect ratio.
// The poloidal beta supplied must already exclude the diamagnetic
// contribution; the correlation cannot detect a wrong convention.
func Sakai(snap *plasma.Snapshot) (float64, error) {
	checks := []struct {
		field  string
		value  float64
		bad    bool
		reason string
	}{
		{"betaPoloidal", snap.BetaPoloidal, snap.BetaPoloidal <= 0, "must be positive"},
		{"internalInductance", snap.InternalInductance, snap.InternalInductance <= 0, "must be positive"},
		{"alphaN", snap.AlphaN, snap.AlphaN <= 0, "must be positive"},
		{"alphaT", snap.AlphaT, snap.AlphaT <= 0, "must be positive"},
	}
	for _, c := range checks {
		if c.bad {
			return 0, &plasma.DomainError{Field: c.field, Value: c.value, Reason: c.reason}
		}
	}

	eps := snap.InverseAspectRatio

	return math.Pow(10, 0.951*eps-0.948) *
		math.Pow(snap.BetaPoloidal, 1.226*eps+1.584) *
		math.Pow(snap.InternalInductance, -0.184*eps-0.282) *
		math.Pow(snap.Q95/snap.Q0, -0.042*eps-0.02) *
		math.Pow(snap.AlphaN, 0.13*eps+0.05) *
		math.Pow(snap.AlphaT, 0.502*eps-0.273), nil
}
