package torquedrag

import (
	"math"

	"github.com/wellteklabs/drillcalc/internal/drillstring"
)

// BucklingStatus classifies compressive pipe deformation.
type BucklingStatus int

const (
	BucklingNone BucklingStatus = iota
	BucklingSinusoidal
	BucklingHelical
)

func (b BucklingStatus) String() string {
	switch b {
	case BucklingSinusoidal:
		return "SINUSOIDAL"
	case BucklingHelical:
		return "HELICAL"
	}
	return "OK"
}

// minClearance keeps the critical-force denominator away from zero for
// near-gauge pipe.
const minClearance = 0.25 // in

// minBucklingInc floors sin(inclination) so near-vertical hole does not
// drive the sinusoidal threshold to zero; vertical-hole buckling is a
// different mechanism the soft-string model does not cover.
var minBucklingInc = math.Sin(1 * math.Pi / 180)

// radialClearance estimates the annular gap around a section (in).
// Inside casing the casing ID table is consulted; in open hole the hole
// diameter is used, falling back to a fixed clearance when unknown.
func (in *Input) radialClearance(sec drillstring.Section, mid float64) float64 {
	cased := in.CasingShoeMD > 0 && mid <= in.CasingShoeMD
	if cased {
		if id, ok := drillstring.CasingID(in.CasingOD); ok && id > sec.OD {
			return math.Max((id-sec.OD)/2, minClearance)
		}
	}
	if in.HoleDiameter > sec.OD {
		return math.Max((in.HoleDiameter-sec.OD)/2, minClearance)
	}
	return drillstring.DefaultOpenHoleClearance
}

// bucklingCheck compares a compressive axial force against the Lubinski
// sinusoidal and Mitchell helical critical loads,
//
//	Fc_sin = 2*sqrt(E*I*w*sin(inc)/r)    Fc_hel = sqrt(2)*Fc_sin
//
// with I in in^4, w in lb/in buoyed and r the radial clearance in
// inches. Tension never buckles.
func (in *Input) bucklingCheck(axial float64, sec drillstring.Section, incAvg, mid float64) BucklingStatus {
	if axial >= 0 {
		return BucklingNone
	}

	inertia := math.Pi / 64 * (math.Pow(sec.OD, 4) - math.Pow(sec.ID, 4))
	w := sec.LinearWeight * drillstring.BuoyancyFactor(in.MudWeight) / 12
	if inertia <= 0 || w <= 0 {
		return BucklingNone
	}
	r := in.radialClearance(sec, mid)
	s := math.Max(math.Sin(incAvg), minBucklingInc)

	fcSin := 2 * math.Sqrt(drillstring.SteelModulus*inertia*w*s/r)
	fcHel := math.Sqrt2 * fcSin

	compression := -axial
	switch {
	case compression >= fcHel:
		return BucklingHelical
	case compression >= fcSin:
		return BucklingSinusoidal
	}
	return BucklingNone
}
