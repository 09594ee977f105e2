// Package hydraulics predicts frictional pressure losses, bit hydraulics
// and surge/swab pressures for a circulating drilling-fluid system.
//
// All calculations use oilfield units: flow rate in gpm, diameters in
// inches, lengths and depths in feet, density in ppg, pressure in psi.
package hydraulics

import "fmt"

// RheologyModel selects the constitutive model for the drilling fluid.
type RheologyModel int

const (
	// Bingham is the Bingham Plastic model (PV/YP).
	Bingham RheologyModel = iota
	// PowerLaw is the Ostwald-de Waele model (n/K).
	PowerLaw
)

func (m RheologyModel) String() string {
	switch m {
	case Bingham:
		return "Bingham Plastic"
	case PowerLaw:
		return "Power Law"
	}
	return "unknown"
}

// FlowRegime classifies a section's flow as laminar or turbulent.
type FlowRegime int

const (
	Laminar FlowRegime = iota
	Turbulent
)

func (r FlowRegime) String() string {
	if r == Turbulent {
		return "turbulent"
	}
	return "laminar"
}

// FlowGeometry distinguishes flow inside pipe from flow in an annulus.
type FlowGeometry int

const (
	Pipe FlowGeometry = iota
	Annulus
)

// Fluid holds the drilling-fluid properties. Exactly one rheological
// model is active per calculation: PV/YP for Bingham, N/K for Power Law.
type Fluid struct {
	Density float64       // Mud weight (ppg)
	Model   RheologyModel // Active constitutive model

	// Bingham Plastic parameters
	PV float64 // Plastic viscosity (cp)
	YP float64 // Yield point (lbf/100 ft2)

	// Power Law parameters
	N float64 // Flow behavior index (dimensionless)
	K float64 // Consistency index (lbf.s^n/100 ft2)
}

// Validate checks that the fluid is physical for its active model.
func (f Fluid) Validate() error {
	if f.Density <= 0 {
		return fmt.Errorf("fluid density must be positive, got %.2f ppg", f.Density)
	}
	switch f.Model {
	case Bingham:
		if f.PV <= 0 || f.YP < 0 {
			return fmt.Errorf("bingham fluid requires PV > 0 and YP >= 0, got PV=%.2f YP=%.2f", f.PV, f.YP)
		}
	case PowerLaw:
		if f.N <= 0 || f.N > 1.2 || f.K <= 0 {
			return fmt.Errorf("power-law fluid requires 0 < n <= 1.2 and K > 0, got n=%.3f K=%.4f", f.N, f.K)
		}
	default:
		return fmt.Errorf("unknown rheology model %d", f.Model)
	}
	return nil
}
