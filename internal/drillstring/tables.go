package drillstring

// Steel and wellbore constants used across the load calculations.
const (
	// SteelModulus is Young's modulus for drillpipe steel (psi).
	SteelModulus = 30e6

	// SteelDensityPPG is the density of steel expressed as an
	// equivalent mud weight (ppg). Buoyancy factor = 1 - MW/65.5.
	SteelDensityPPG = 65.5

	// DefaultOpenHoleClearance is the radial clearance assumed for the
	// buckling check when no hole diameter is supplied (in).
	DefaultOpenHoleClearance = 1.5
)

// BuoyancyFactor returns 1 - MW/65.5 for a mud weight in ppg. Mud
// heavier than steel would float the string; the factor is clamped at
// zero rather than going negative.
func BuoyancyFactor(mudWeight float64) float64 {
	bf := 1 - mudWeight/SteelDensityPPG
	if bf < 0 {
		return 0
	}
	return bf
}

// casingIDs maps nominal casing OD (in) to the drift-representative
// inner diameter (in) of the most common weight per size. Used to
// estimate radial clearance inside cased hole.
var casingIDs = map[float64]float64{
	4.5:    3.92,
	5.0:    4.276,
	5.5:    4.778,
	7.0:    6.276,
	7.625:  6.875,
	8.625:  7.825,
	9.625:  8.835,
	10.75:  9.95,
	11.75:  10.772,
	13.375: 12.615,
	16.0:   15.01,
	18.625: 17.755,
	20.0:   19.124,
}

// CasingID returns the nominal inner diameter for a casing OD. The
// second return reports whether the size is in the table.
func CasingID(casingOD float64) (float64, bool) {
	id, ok := casingIDs[casingOD]
	return id, ok
}
