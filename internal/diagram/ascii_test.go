package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/torquedrag"
)

func TestASCIIECDProfile(t *testing.T) {
	prof := hydraulics.ECDProfile{
		{TVD: 0, Density: 12.0},
		{TVD: 5000, Density: 12.3},
		{TVD: 10000, Density: 12.5},
	}

	out := ASCIIECDProfile(prof)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "ECD (ppg)")
	assert.Contains(t, out, "10000 ft")

	assert.Empty(t, ASCIIECDProfile(nil))
	assert.Empty(t, ASCIIECDProfile(prof[:1]))
}

func TestASCIILoadProfile(t *testing.T) {
	stations := []torquedrag.StationResult{
		{MD: 7000, AxialForce: -20000},
		{MD: 5000, AxialForce: 40000},
		{MD: 2000, AxialForce: 100000},
		{MD: 0, AxialForce: 160000},
	}

	out := ASCIILoadProfile(stations)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "axial force")
	assert.True(t, strings.Contains(out, "bit to surface"))

	assert.Empty(t, ASCIILoadProfile(nil))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	prof := hydraulics.ECDProfile{{TVD: 0, Density: 12}, {TVD: 1000, Density: 12.2}}
	err := ExportECDProfile(prof, 12, "out.bmp")
	assert.Error(t, err)
}
