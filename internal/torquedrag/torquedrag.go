// Package torquedrag predicts axial loads, drag and torque along a
// deviated wellbore using the Johancsik soft-string model (SPE 11380).
//
// Forces are in lbf with compression negative, torque in ft-lbf,
// depths in feet and diameters in inches.
package torquedrag

import (
	"fmt"
	"math"

	"github.com/wellteklabs/drillcalc/internal/drillstring"
	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/survey"
)

// Operation names the rig activity being modelled. It determines how
// friction is routed: into axial drag, into torque, or both.
type Operation int

const (
	RotatingOnBottom Operation = iota
	RotatingOffBottom
	SlidingDrilling
	TrippingIn
	TrippingOut
	BackReaming
)

var operationNames = map[Operation]string{
	RotatingOnBottom:  "rotating",
	RotatingOffBottom: "rotating_off_bottom",
	SlidingDrilling:   "sliding",
	TrippingIn:        "tripping_in",
	TrippingOut:       "tripping_out",
	BackReaming:       "back_reaming",
}

func (o Operation) String() string { return operationNames[o] }

// ParseOperation resolves the CLI/JSON spelling of an operation.
func ParseOperation(s string) (Operation, error) {
	for op, name := range operationNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// appliesWOB reports whether the bit carries weight for this operation.
func (o Operation) appliesWOB() bool {
	return o == RotatingOnBottom || o == SlidingDrilling
}

// axialDragSign returns +1 when drag adds to axial force (pipe moving
// up), -1 when it subtracts (pipe moving down), 0 when friction is
// circumferential only.
func (o Operation) axialDragSign() float64 {
	switch o {
	case TrippingOut, BackReaming:
		return 1
	case TrippingIn, SlidingDrilling:
		return -1
	}
	return 0
}

// accumulatesTorque reports whether friction winds up as torque.
func (o Operation) accumulatesTorque() bool {
	return o == RotatingOnBottom || o == RotatingOffBottom || o == BackReaming
}

// Input collects everything the soft-string integration needs.
type Input struct {
	Survey    []survey.ComputedStation // Ordered surface to TD
	String    *drillstring.String      // Ordered from the bit
	Operation Operation

	MudWeight   float64 // Static mud weight (ppg)
	WOB         float64 // Weight on bit (lbf), drilling operations only
	TorqueAtBit float64 // Bit torque (ft-lbf), rotating on bottom

	FrictionCased float64 // Friction factor inside casing
	FrictionOpen  float64 // Friction factor in open hole
	CasingShoeMD  float64 // Shoe measured depth (ft); 0 = no casing
	CasingOD      float64 // Casing size (in) for the ID lookup table
	HoleDiameter  float64 // Open-hole diameter (in)

	// ECD, when present, couples the hydraulics engine in: buoyancy at
	// each interval uses the circulating density interpolated at the
	// interval's midpoint TVD instead of the static mud weight.
	ECD hydraulics.ECDProfile
}

func (in *Input) validate() error {
	if len(in.Survey) < 2 {
		return fmt.Errorf("torque-drag requires at least two survey stations, got %d", len(in.Survey))
	}
	if in.String == nil {
		return fmt.Errorf("torque-drag requires a drillstring")
	}
	if err := in.String.Validate(); err != nil {
		return err
	}
	if in.MudWeight <= 0 {
		return fmt.Errorf("mud weight must be positive, got %.2f ppg", in.MudWeight)
	}
	return nil
}

// FrictionAt returns the friction factor governing an interval whose
// midpoint measured depth is mid. The boundary belongs to the casing:
// an interval centred exactly at the shoe uses the cased-hole factor.
func (in *Input) FrictionAt(mid float64) float64 {
	if in.CasingShoeMD > 0 && mid <= in.CasingShoeMD {
		return in.FrictionCased
	}
	return in.FrictionOpen
}

// StationResult is the computed load state at one survey station,
// covering the interval below it.
type StationResult struct {
	MD          float64
	TVD         float64
	Inclination float64 // deg
	AxialForce  float64 // lbf, compression negative
	NormalForce float64 // lbf
	Drag        float64 // lbf
	Torque      float64 // ft-lbf, cumulative from the bit
	Buckling    BucklingStatus
}

// Result is the full output of one soft-string integration.
type Result struct {
	// Stations in computation order, from the station above the bit to
	// surface. Downstream consumers must not reorder them.
	Stations []StationResult

	Hookload      float64 // Surface axial force (lbf)
	SurfaceTorque float64 // ft-lbf
	WorstBuckling BucklingStatus
}

// Compute runs the Johancsik bottom-up force integration over the
// survey intervals.
//
// At the bit the axial force starts at -WOB for drilling operations and
// zero for tripping. For each interval, working upward: the active
// drillstring section is found by distance from the bit, the buoyed
// segment weight uses the static mud weight or the coupled ECD profile,
// the Johancsik normal force is
//
//	Fn = sqrt((Fa*dInc + W*sin(incAvg))^2 + (Fa*sin(incAvg)*dAzi)^2)
//
// and friction mu*Fn is routed into axial drag or torque according to
// the operation. Zero-length intervals contribute nothing.
func Compute(in *Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	fa := 0.0
	if in.Operation.appliesWOB() {
		fa = -in.WOB
	}
	torque := 0.0
	if in.Operation == RotatingOnBottom {
		torque = in.TorqueAtBit
	}

	totalMD := in.Survey[len(in.Survey)-1].MD
	res := &Result{Stations: make([]StationResult, 0, len(in.Survey)-1)}

	for i := len(in.Survey) - 1; i > 0; i-- {
		lower := in.Survey[i]
		upper := in.Survey[i-1]
		dmd := lower.MD - upper.MD

		mid := (upper.MD + lower.MD) / 2
		sec := in.String.SectionAt(totalMD - mid)
		incAvg := radians((upper.Inclination + lower.Inclination) / 2)

		var fn, drag float64
		if dmd > 0 {
			density := in.MudWeight
			if len(in.ECD) > 0 {
				density = in.ECD.DensityAt((upper.TVD + lower.TVD) / 2)
			}
			w := sec.LinearWeight * drillstring.BuoyancyFactor(density) * dmd

			dInc := radians(lower.Inclination - upper.Inclination)
			dAzi := radians(lower.Azimuth - upper.Azimuth)
			fn = math.Sqrt(math.Pow(fa*dInc+w*math.Sin(incAvg), 2) +
				math.Pow(fa*math.Sin(incAvg)*dAzi, 2))

			mu := in.FrictionAt(mid)
			drag = mu * fn
			fa += w*math.Cos(incAvg) + in.Operation.axialDragSign()*drag
			if in.Operation.accumulatesTorque() {
				torque += mu * fn * sec.OD / 2 / 12
			}
		}

		st := StationResult{
			MD:          upper.MD,
			TVD:         upper.TVD,
			Inclination: upper.Inclination,
			AxialForce:  fa,
			NormalForce: fn,
			Drag:        drag,
			Torque:      torque,
		}
		st.Buckling = in.bucklingCheck(fa, sec, incAvg, mid)
		if st.Buckling > res.WorstBuckling {
			res.WorstBuckling = st.Buckling
		}
		res.Stations = append(res.Stations, st)
	}

	res.Hookload = fa
	res.SurfaceTorque = torque
	return res, nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
