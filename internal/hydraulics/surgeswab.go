package hydraulics

import "fmt"

// ClingingConstant is the Burkhardt mud clinging constant for
// turbulent-annulus tripping.
const ClingingConstant = 0.45

// Risk bands for surge/swab equivalent mud weight swings (ppg).
const (
	SurgeWarningEMW  = 0.5
	SurgeCriticalEMW = 1.0
	SwabWarningEMW   = 0.3
	SwabCriticalEMW  = 0.5
)

// RiskBand is the qualitative severity of a surge or swab swing.
type RiskBand int

const (
	RiskOK RiskBand = iota
	RiskWarning
	RiskCritical
)

func (r RiskBand) String() string {
	switch r {
	case RiskWarning:
		return "WARNING"
	case RiskCritical:
		return "CRITICAL"
	}
	return "OK"
}

func bandFor(delta, warn, crit float64) RiskBand {
	switch {
	case delta >= crit:
		return RiskCritical
	case delta >= warn:
		return RiskWarning
	}
	return RiskOK
}

// SurgeSwabResult reports the pressure swing caused by pipe movement.
type SurgeSwabResult struct {
	EquivalentFlow float64  // Annular flow rate equivalent to the pipe movement (gpm)
	PressureSwing  float64  // Frictional pressure change over the string (psi)
	DeltaEMW       float64  // Swing as equivalent mud weight (ppg)
	SurgeEMW       float64  // Effective density running in (ppg)
	SwabEMW        float64  // Effective density pulling out (ppg)
	SurgeStatus    RiskBand // Banding against fracture-margin thresholds
	SwabStatus     RiskBand // Banding against kick-margin thresholds
}

// SurgeSwab converts a pipe tripping speed into an equivalent annular
// flow rate using the clinging-constant correction, reuses the annular
// pressure-loss routine for the active rheology, and reports the swing
// as surge and swab equivalent mud weights with risk banding.
//
// Open-ended pipe displaces the steel cross-section only; closed-ended
// (bit plugged or float in place) displaces the full pipe body.
func SurgeSwab(tripSpeed, holeID, pipeOD, pipeID float64, openEnded bool, fluid Fluid, length, tvd float64) (*SurgeSwabResult, error) {
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	if holeID <= pipeOD {
		return nil, fmt.Errorf("hole ID %.3f must exceed pipe OD %.3f", holeID, pipeOD)
	}
	if tvd <= 0 {
		return nil, fmt.Errorf("TVD must be positive, got %.1f ft", tvd)
	}

	res := &SurgeSwabResult{SurgeEMW: fluid.Density, SwabEMW: fluid.Density}
	if tripSpeed <= 0 || length <= 0 {
		return res, nil
	}

	annArea := holeID*holeID - pipeOD*pipeOD
	var ratio float64
	if openEnded {
		ratio = ClingingConstant + (pipeOD*pipeOD-pipeID*pipeID)/(annArea+pipeID*pipeID)
	} else {
		ratio = ClingingConstant + pipeOD*pipeOD/annArea
	}

	vAnn := tripSpeed * ratio
	res.EquivalentFlow = vAnn * 2.448 * annArea

	flow := PressureLoss(res.EquivalentFlow, fluid, length, pipeOD, holeID, Annulus)
	res.PressureSwing = flow.Loss
	res.DeltaEMW = flow.Loss / (PsiPerFootPerPPG * tvd)
	res.SurgeEMW = fluid.Density + res.DeltaEMW
	res.SwabEMW = fluid.Density - res.DeltaEMW
	res.SurgeStatus = bandFor(res.DeltaEMW, SurgeWarningEMW, SurgeCriticalEMW)
	res.SwabStatus = bandFor(res.DeltaEMW, SwabWarningEMW, SwabCriticalEMW)
	return res, nil
}
