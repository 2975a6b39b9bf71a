// Package plasma defines the read-only plasma state snapshot consumed by the
// bootstrap current fraction engine. The snapshot is assembled by the
// surrounding systems code (geometry, profiles, power balance) and is never
// mutated here; every evaluation reads it and produces fresh intermediates.
package plasma

// Snapshot holds the scalar plasma state at one design point.
//
// Units: lengths in m, fields in T, currents in A, volumes in m^3,
// densities in particles/m^3, temperatures in keV.
type Snapshot struct {
	MajorRadius        float64 `yaml:"majorRadius"`
	InverseAspectRatio float64 `yaml:"inverseAspectRatio"`
	ToroidalField      float64 `yaml:"toroidalField"`
	PlasmaCurrent      float64 `yaml:"plasmaCurrent"`
	PlasmaVolume       float64 `yaml:"plasmaVolume"`

	// Safety factor on axis and at the 95% flux surface.
	Q0  float64 `yaml:"q0"`
	Q95 float64 `yaml:"q95"`

	ElectronDensityAvg    float64 `yaml:"electronDensityAvg"`
	ElectronDensityCentre float64 `yaml:"electronDensityCentre"`
	IonDensityAvg         float64 `yaml:"ionDensityAvg"`
	IonDensityCentre      float64 `yaml:"ionDensityCentre"`
	ElectronTempAvg       float64 `yaml:"electronTempAvg"`
	ElectronTempCentre    float64 `yaml:"electronTempCentre"`
	IonTempAvg            float64 `yaml:"ionTempAvg"`
	IonTempCentre         float64 `yaml:"ionTempCentre"`

	Zeff          float64 `yaml:"zeff"`
	IonMassNumber float64 `yaml:"ionMassNumber"`

	// Profile exponents for density, temperature and current.
	AlphaN float64 `yaml:"alphaN"`
	AlphaT float64 `yaml:"alphaT"`
	AlphaJ float64 `yaml:"alphaJ"`

	InternalInductance  float64 `yaml:"internalInductance"`
	BetaTotal           float64 `yaml:"betaTotal"`
	BetaPoloidal        float64 `yaml:"betaPoloidal"`
	BetaPoloidalThermal float64 `yaml:"betaPoloidalThermal"`
}

// MinorRadius derives the plasma minor radius from the major radius and the
// inverse aspect ratio.
func (s *Snapshot) MinorRadius() float64 {
	return s.MajorRadius * s.InverseAspectRatio
}

// Validate checks the snapshot invariants every strategy relies on. It
// returns a DomainError naming the first offending field, so the outer
// solver can report which input went non-physical instead of silently
// converging on garbage.
func (s *Snapshot) Validate() error {
	checks := []struct {
		field  string
		value  float64
		ok     bool
		reason string
	}{
		{"majorRadius", s.MajorRadius, s.MajorRadius > 0, "must be positive"},
		{"inverseAspectRatio", s.InverseAspectRatio, s.InverseAspectRatio > 0 && s.InverseAspectRatio < 1, "must be in (0, 1)"},
		{"toroidalField", s.ToroidalField, s.ToroidalField > 0, "must be positive"},
		{"plasmaCurrent", s.PlasmaCurrent, s.PlasmaCurrent > 0, "must be positive"},
		{"q0", s.Q0, s.Q0 > 0, "must be positive"},
		{"q95", s.Q95, s.Q95 >= s.Q0, "must be at least q0"},
		{"electronDensityAvg", s.ElectronDensityAvg, s.ElectronDensityAvg > 0, "must be positive"},
		{"electronDensityCentre", s.ElectronDensityCentre, s.ElectronDensityCentre > 0, "must be positive"},
		{"ionDensityAvg", s.IonDensityAvg, s.IonDensityAvg > 0, "must be positive"},
		{"ionDensityCentre", s.IonDensityCentre, s.IonDensityCentre > 0, "must be positive"},
		{"electronTempAvg", s.ElectronTempAvg, s.ElectronTempAvg > 0, "must be positive"},
		{"electronTempCentre", s.ElectronTempCentre, s.ElectronTempCentre > 0, "must be positive"},
		{"ionTempAvg", s.IonTempAvg, s.IonTempAvg > 0, "must be positive"},
		{"ionTempCentre", s.IonTempCentre, s.IonTempCentre > 0, "must be positive"},
		{"zeff", s.Zeff, s.Zeff >= 1, "must be at least 1"},
		{"ionMassNumber", s.IonMassNumber, s.IonMassNumber > 0, "must be positive"},
		{"alphaN", s.AlphaN, s.AlphaN >= 0, "must not be negative"},
		{"alphaT", s.AlphaT, s.AlphaT >= 0, "must not be negative"},
	}
	for _, c := range checks {
		if !c.ok {
			return &DomainError{Field: c.field, Value: c.value, Reason: c.reason}
		}
	}
	return nil
}
