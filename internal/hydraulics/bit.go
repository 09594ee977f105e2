package hydraulics

import (
	"fmt"
	"math"
)

// NozzleDischargeCoeff is the discharge coefficient for bit nozzles.
const NozzleDischargeCoeff = 0.95

// BitResult holds the jet hydraulics computed at the bit.
type BitResult struct {
	TFA          float64 // Total flow area (in2)
	JetVelocity  float64 // Nozzle velocity (ft/s)
	PressureDrop float64 // Pressure drop across the bit (psi)
	HHP          float64 // Hydraulic horsepower (hp)
	HSI          float64 // Hydraulic horsepower per square inch of bit (hp/in2)
	ImpactForce  float64 // Jet impact force (lbf)
}

// BitHydraulics computes jet velocity, bit pressure drop, hydraulic
// horsepower, HSI and impact force for a set of nozzles sized in 32nds
// of an inch. An empty or zero-area nozzle set is a structural error.
func BitHydraulics(nozzles32nds []int, q, density, bitDiameter float64) (*BitResult, error) {
	var tfa float64
	for _, n := range nozzles32nds {
		d := float64(n) / 32
		tfa += math.Pi / 4 * d * d
	}
	if tfa <= 0 {
		return nil, fmt.Errorf("bit has zero total flow area (nozzles %v)", nozzles32nds)
	}
	if bitDiameter <= 0 {
		return nil, fmt.Errorf("bit diameter must be positive, got %.3f in", bitDiameter)
	}

	res := &BitResult{TFA: tfa}
	res.JetVelocity = 0.3208 * q / tfa
	res.PressureDrop = 8.311e-5 * density * q * q / (NozzleDischargeCoeff * NozzleDischargeCoeff * tfa * tfa)
	res.HHP = res.PressureDrop * q / 1714
	res.HSI = res.HHP / (math.Pi / 4 * bitDiameter * bitDiameter)
	res.ImpactForce = 0.01823 * NozzleDischargeCoeff * q * math.Sqrt(density*res.PressureDrop)
	return res, nil
}
