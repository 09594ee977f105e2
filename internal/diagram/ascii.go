// Package diagram renders hydraulics and torque-drag results as
// terminal charts and exportable images.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/torquedrag"
)

const (
	asciiHeight  = 14
	asciiSamples = 60
)

// ASCIIECDProfile renders the equivalent circulating density versus
// depth as a terminal chart. Depth increases left to right, from
// surface to total depth.
func ASCIIECDProfile(profile hydraulics.ECDProfile) string {
	if len(profile) < 2 {
		return ""
	}
	top := profile[0].TVD
	bottom := profile[len(profile)-1].TVD
	if bottom <= top {
		return ""
	}

	data := make([]float64, asciiSamples)
	for i := range data {
		tvd := top + (bottom-top)*float64(i)/float64(asciiSamples-1)
		data[i] = profile.DensityAt(tvd)
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(data,
		asciigraph.Height(asciiHeight),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("ECD (ppg), surface to %.0f ft TVD", bottom)),
	))
	sb.WriteString("\n")
	return sb.String()
}

// ASCIILoadProfile renders axial force along the string as a terminal
// chart, from the bit (left) to surface (right).
func ASCIILoadProfile(stations []torquedrag.StationResult) string {
	if len(stations) < 2 {
		return ""
	}
	data := make([]float64, len(stations))
	for i, st := range stations {
		data[i] = st.AxialForce / 1000 // klb
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(data,
		asciigraph.Height(asciiHeight),
		asciigraph.Precision(1),
		asciigraph.Caption("axial force (klb), bit to surface"),
	))
	sb.WriteString("\n")
	return sb.String()
}
