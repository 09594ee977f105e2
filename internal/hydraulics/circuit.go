package hydraulics

import "fmt"

// PsiPerFootPerPPG converts mud weight to pressure gradient:
// P (psi) = 0.052 * MW (ppg) * TVD (ft).
const PsiPerFootPerPPG = 0.052

// SectionKind tags a circuit section with its place in the flow path.
type SectionKind int

const (
	DrillPipeBore SectionKind = iota
	HWDPBore
	CollarBore
	DrillPipeAnnulus
	HWDPAnnulus
	CollarAnnulus
)

var sectionKindNames = map[SectionKind]string{
	DrillPipeBore:    "drill pipe",
	HWDPBore:         "hwdp",
	CollarBore:       "drill collar",
	DrillPipeAnnulus: "drill pipe annulus",
	HWDPAnnulus:      "hwdp annulus",
	CollarAnnulus:    "drill collar annulus",
}

func (k SectionKind) String() string { return sectionKindNames[k] }

// IsAnnulus reports whether the section is on the return side of the
// circuit.
func (k SectionKind) IsAnnulus() bool {
	return k == DrillPipeAnnulus || k == HWDPAnnulus || k == CollarAnnulus
}

// ParseSectionKind resolves the JSON/CLI spelling of a section kind.
func ParseSectionKind(s string) (SectionKind, error) {
	for k, name := range sectionKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown circuit section kind %q", s)
}

// CircuitSection is one leg of the circulating path. For bore sections
// InnerDiameter is the pipe bore; for annulus sections OuterDiameter is
// the hole or casing ID and InnerDiameter the pipe OD.
type CircuitSection struct {
	Kind          SectionKind
	Length        float64 // ft
	OuterDiameter float64 // in (annulus sections only)
	InnerDiameter float64 // in
}

// SectionLoss pairs a circuit section with its computed flow state.
type SectionLoss struct {
	Section CircuitSection
	Flow    PressureLossResult
}

// ECDPoint is one sample of the equivalent circulating density profile.
type ECDPoint struct {
	TVD     float64 // ft
	Density float64 // ppg
}

// ECDProfile is an ordered, TVD-monotonic sequence of density samples
// produced by the hydraulics engine. Consumers read it; they never
// mutate it.
type ECDProfile []ECDPoint

// DensityAt linearly interpolates the profile density at a TVD. Depths
// outside the profile clamp to the end samples; an empty profile
// returns zero so callers can fall back to static mud weight.
func (p ECDProfile) DensityAt(tvd float64) float64 {
	if len(p) == 0 {
		return 0
	}
	if tvd <= p[0].TVD {
		return p[0].Density
	}
	for i := 1; i < len(p); i++ {
		if tvd <= p[i].TVD {
			span := p[i].TVD - p[i-1].TVD
			if span <= 0 {
				return p[i].Density
			}
			frac := (tvd - p[i-1].TVD) / span
			return p[i-1].Density + (p[i].Density-p[i-1].Density)*frac
		}
	}
	return p[len(p)-1].Density
}

// CircuitResult aggregates the losses over a full circulating path.
type CircuitResult struct {
	Sections    []SectionLoss // In path order, standpipe to flowline
	SurfaceLoss float64       // psi
	PipeLoss    float64       // psi, bore side total
	AnnulusLoss float64       // psi, return side total
	BitLoss     float64       // psi
	Standpipe   float64       // psi, exact sum of the four above
	ECD         ECDProfile    // ppg vs TVD, surface to total depth
}

// FullCircuit walks an ordered section list from standpipe to bit and
// back up the annulus, accumulating bore-side and return-side losses
// separately. The standpipe pressure is the arithmetic sum of surface,
// pipe, bit and annulus losses. The ECD profile distributes cumulative
// annular loss over depth, approximating TVD by the annular section
// lengths; ECD never falls below the static mud weight.
//
// An annulus section whose hole ID does not exceed the pipe OD is a
// structural error. bit may be nil when no nozzle data is available.
func FullCircuit(sections []CircuitSection, fluid Fluid, q, surfaceLoss float64, bit *BitResult) (*CircuitResult, error) {
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("circuit has no sections")
	}
	for _, s := range sections {
		if s.Kind.IsAnnulus() && s.OuterDiameter <= s.InnerDiameter {
			return nil, fmt.Errorf("%s: hole ID %.3f must exceed pipe OD %.3f",
				s.Kind, s.OuterDiameter, s.InnerDiameter)
		}
	}

	res := &CircuitResult{SurfaceLoss: surfaceLoss}
	for _, s := range sections {
		geom := Pipe
		d1, d2 := 0.0, s.InnerDiameter
		if s.Kind.IsAnnulus() {
			geom = Annulus
			d1, d2 = s.InnerDiameter, s.OuterDiameter
		}
		flow := PressureLoss(q, fluid, s.Length, d1, d2, geom)
		res.Sections = append(res.Sections, SectionLoss{Section: s, Flow: flow})
		if geom == Annulus {
			res.AnnulusLoss += flow.Loss
		} else {
			res.PipeLoss += flow.Loss
		}
	}
	if bit != nil {
		res.BitLoss = bit.PressureDrop
	}
	res.Standpipe = res.SurfaceLoss + res.PipeLoss + res.BitLoss + res.AnnulusLoss

	res.ECD = ecdProfile(res.Sections, fluid.Density)
	return res, nil
}

// ecdProfile walks the annulus legs from surface to bottom. The path
// order lists them bit-first, so they are traversed in reverse.
func ecdProfile(sections []SectionLoss, mudWeight float64) ECDProfile {
	prof := ECDProfile{{TVD: 0, Density: mudWeight}}
	var depth, cum float64
	for i := len(sections) - 1; i >= 0; i-- {
		s := sections[i]
		if !s.Section.Kind.IsAnnulus() {
			continue
		}
		depth += s.Section.Length
		cum += s.Flow.Loss
		if depth <= 0 {
			continue
		}
		prof = append(prof, ECDPoint{
			TVD:     depth,
			Density: mudWeight + cum/(PsiPerFootPerPPG*depth),
		})
	}
	return prof
}
