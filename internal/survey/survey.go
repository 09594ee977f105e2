// Package survey converts directional survey stations into wellbore
// positions using the minimum curvature method.
package survey

import (
	"fmt"
	"math"
)

// Station is a raw directional survey measurement as recorded at the rig.
type Station struct {
	MD          float64 // Measured depth (ft)
	Inclination float64 // Inclination from vertical (deg)
	Azimuth     float64 // Azimuth from true north (deg)
}

// ComputedStation is a survey station enriched with the position and
// curvature derived by the minimum curvature method.
type ComputedStation struct {
	Station

	TVD   float64 // True vertical depth (ft)
	North float64 // Northing displacement from surface location (ft)
	East  float64 // Easting displacement from surface location (ft)
	DLS   float64 // Dogleg severity (deg/100 ft)
}

// doglegTol is the dogleg angle (rad) below which the ratio factor is
// taken as its analytic limit of 1 to avoid division by zero.
const doglegTol = 1e-8

// MinimumCurvature enriches an ordered list of survey stations with TVD,
// north/east displacement and dogleg severity.
//
// The dogleg angle between consecutive stations comes from the spherical
// law of cosines; position increments use the averaged direction vectors
// scaled by the ratio factor 2/dl*tan(dl/2).
//
// A non-increasing MD between consecutive stations is not an error: the
// interval contributes nothing and the station inherits the previous
// position with DLS = 0.
func MinimumCurvature(stations []Station) ([]ComputedStation, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("survey requires at least one station")
	}

	out := make([]ComputedStation, 0, len(stations))
	out = append(out, ComputedStation{Station: stations[0]})

	for i := 1; i < len(stations); i++ {
		prev := out[i-1]
		cur := stations[i]
		cs := ComputedStation{
			Station: cur,
			TVD:     prev.TVD,
			North:   prev.North,
			East:    prev.East,
		}

		dmd := cur.MD - prev.MD
		if dmd <= 0 {
			// Degenerate interval: repeated or out-of-order MD.
			out = append(out, cs)
			continue
		}

		i1 := radians(prev.Inclination)
		i2 := radians(cur.Inclination)
		a1 := radians(prev.Azimuth)
		a2 := radians(cur.Azimuth)

		// Spherical law of cosines between the two direction vectors.
		cosDL := math.Cos(i2-i1) - math.Sin(i1)*math.Sin(i2)*(1-math.Cos(a2-a1))
		cosDL = math.Max(-1, math.Min(1, cosDL))
		dl := math.Acos(cosDL)

		rf := 1.0
		if dl >= doglegTol {
			rf = 2 / dl * math.Tan(dl/2)
		}

		cs.TVD = prev.TVD + dmd/2*(math.Cos(i1)+math.Cos(i2))*rf
		cs.North = prev.North + dmd/2*(math.Sin(i1)*math.Cos(a1)+math.Sin(i2)*math.Cos(a2))*rf
		cs.East = prev.East + dmd/2*(math.Sin(i1)*math.Sin(a1)+math.Sin(i2)*math.Sin(a2))*rf
		cs.DLS = degrees(dl) * 100 / dmd

		out = append(out, cs)
	}

	return out, nil
}

// InterpolateTVD returns the true vertical depth at a measured depth,
// linearly interpolated between the bracketing stations. Depths outside
// the survey clamp to the first/last station.
func InterpolateTVD(stations []ComputedStation, md float64) float64 {
	if len(stations) == 0 {
		return 0
	}
	if md <= stations[0].MD {
		return stations[0].TVD
	}
	for i := 1; i < len(stations); i++ {
		if md <= stations[i].MD {
			s0, s1 := stations[i-1], stations[i]
			dmd := s1.MD - s0.MD
			if dmd <= 0 {
				return s1.TVD
			}
			return s0.TVD + (s1.TVD-s0.TVD)*(md-s0.MD)/dmd
		}
	}
	return stations[len(stations)-1].TVD
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
