package torquedrag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellteklabs/drillcalc/internal/drillstring"
	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/survey"
)

// benchmarkWell is a 7,000 ft S-shaped well after SPE 11380: vertical
// to 1,400 ft, 2 deg/100 ft build to an 18 deg tangent, dropped back to
// near-vertical at TD.
func benchmarkWell(t *testing.T) []survey.ComputedStation {
	t.Helper()
	out, err := survey.MinimumCurvature([]survey.Station{
		{MD: 0, Inclination: 0, Azimuth: 0},
		{MD: 1400, Inclination: 0, Azimuth: 0},
		{MD: 2300, Inclination: 18, Azimuth: 35},
		{MD: 5200, Inclination: 18, Azimuth: 35},
		{MD: 6700, Inclination: 2, Azimuth: 35},
		{MD: 7000, Inclination: 2, Azimuth: 35},
	})
	require.NoError(t, err)
	return out
}

func benchmarkString() *drillstring.String {
	return &drillstring.String{Sections: []drillstring.Section{
		{Ordinal: 0, Label: "8in DC", OD: 8.0, ID: 2.8125, LinearWeight: 147.0, Length: 280},
		{Ordinal: 1, Label: "5in HWDP", OD: 5.0, ID: 3.0, LinearWeight: 49.3, Length: 400},
		{Ordinal: 2, Label: "5in DP", OD: 5.0, ID: 4.276, LinearWeight: 19.5, Length: 6320},
	}}
}

func benchmarkInput(t *testing.T, op Operation) *Input {
	return &Input{
		Survey:        benchmarkWell(t),
		String:        benchmarkString(),
		Operation:     op,
		MudWeight:     10.0,
		FrictionCased: 0.30,
		FrictionOpen:  0.30,
		HoleDiameter:  8.5,
	}
}

func TestComputeBenchmark(t *testing.T) {
	t.Run("should reproduce tripping-out hookload near 164 klb", func(t *testing.T) {
		res, err := Compute(benchmarkInput(t, TrippingOut))
		require.NoError(t, err)
		assert.InDelta(t, 163749, res.Hookload, 50)
		assert.InEpsilon(t, 164000, res.Hookload, 0.15)
		assert.Zero(t, res.SurfaceTorque)
	})

	t.Run("should reproduce tripping-in hookload near 129 klb", func(t *testing.T) {
		res, err := Compute(benchmarkInput(t, TrippingIn))
		require.NoError(t, err)
		assert.InDelta(t, 127917, res.Hookload, 50)
		assert.InEpsilon(t, 129000, res.Hookload, 0.15)
	})

	t.Run("should show tripping out heavier than tripping in", func(t *testing.T) {
		out, err := Compute(benchmarkInput(t, TrippingOut))
		require.NoError(t, err)
		in, err := Compute(benchmarkInput(t, TrippingIn))
		require.NoError(t, err)
		assert.Greater(t, out.Hookload, in.Hookload)
	})

	t.Run("should route friction into torque while rotating", func(t *testing.T) {
		res, err := Compute(benchmarkInput(t, RotatingOffBottom))
		require.NoError(t, err)
		assert.InDelta(t, 145143, res.Hookload, 50)
		assert.InDelta(t, 3781, res.SurfaceTorque, 5)
	})

	t.Run("should subtract WOB and bit torque while drilling", func(t *testing.T) {
		in := benchmarkInput(t, RotatingOnBottom)
		in.WOB = 25000
		in.TorqueAtBit = 1500
		res, err := Compute(in)
		require.NoError(t, err)
		assert.InDelta(t, 120143, res.Hookload, 50)
		assert.InDelta(t, 1500+2939, res.SurfaceTorque, 5)
	})

	t.Run("should subtract drag while sliding", func(t *testing.T) {
		in := benchmarkInput(t, SlidingDrilling)
		in.WOB = 25000
		res, err := Compute(in)
		require.NoError(t, err)
		assert.InDelta(t, 106745, res.Hookload, 50)
		assert.Zero(t, res.SurfaceTorque)
	})

	t.Run("should add both drag and torque back-reaming", func(t *testing.T) {
		res, err := Compute(benchmarkInput(t, BackReaming))
		require.NoError(t, err)
		out, err := Compute(benchmarkInput(t, TrippingOut))
		require.NoError(t, err)
		assert.InDelta(t, out.Hookload, res.Hookload, 1e-6)
		assert.Greater(t, res.SurfaceTorque, 0.0)
	})
}

func TestComputeECDCoupling(t *testing.T) {
	t.Run("should lighten the string with circulating density", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		in.ECD = hydraulics.ECDProfile{
			{TVD: 0, Density: 10.0},
			{TVD: 3000, Density: 10.25},
			{TVD: 6260, Density: 10.4},
		}
		coupled, err := Compute(in)
		require.NoError(t, err)
		static, err := Compute(benchmarkInput(t, TrippingOut))
		require.NoError(t, err)

		assert.Less(t, coupled.Hookload, static.Hookload)
		assert.InDelta(t, 162908, coupled.Hookload, 50)
	})
}

func TestComputeStations(t *testing.T) {
	res, err := Compute(benchmarkInput(t, TrippingOut))
	require.NoError(t, err)

	t.Run("should emit one result per survey interval", func(t *testing.T) {
		assert.Len(t, res.Stations, 5)
	})

	t.Run("should walk from bit to surface in depth order", func(t *testing.T) {
		for i := 1; i < len(res.Stations); i++ {
			assert.Less(t, res.Stations[i].MD, res.Stations[i-1].MD)
		}
		assert.Zero(t, res.Stations[len(res.Stations)-1].MD)
	})

	t.Run("should grow tension monotonically pulling out", func(t *testing.T) {
		for i := 1; i < len(res.Stations); i++ {
			assert.Greater(t, res.Stations[i].AxialForce, res.Stations[i-1].AxialForce)
		}
		assert.Equal(t, res.Hookload, res.Stations[len(res.Stations)-1].AxialForce)
	})
}

func TestComputeEdgeCases(t *testing.T) {
	t.Run("should reject fewer than two stations", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		in.Survey = in.Survey[:1]
		_, err := Compute(in)
		assert.Error(t, err)
	})

	t.Run("should reject missing or invalid string", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		in.String = nil
		_, err := Compute(in)
		assert.Error(t, err)

		in = benchmarkInput(t, TrippingOut)
		in.String.Sections[0].ID = 10
		_, err = Compute(in)
		assert.Error(t, err)
	})

	t.Run("should pass through zero-length intervals", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		dup := in.Survey[3]
		in.Survey = append(in.Survey[:4], append([]survey.ComputedStation{dup}, in.Survey[4:]...)...)
		res, err := Compute(in)
		require.NoError(t, err)
		assert.Len(t, res.Stations, 6)

		ref, err := Compute(benchmarkInput(t, TrippingOut))
		require.NoError(t, err)
		assert.InDelta(t, ref.Hookload, res.Hookload, 1e-6)
	})

	t.Run("should carry weightless sections without drag", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		for i := range in.String.Sections {
			in.String.Sections[i].LinearWeight = 0
		}
		res, err := Compute(in)
		require.NoError(t, err)
		assert.Zero(t, res.Hookload)
	})
}

func TestFrictionAt(t *testing.T) {
	in := &Input{FrictionCased: 0.25, FrictionOpen: 0.35, CasingShoeMD: 3000}

	t.Run("should pick cased factor above the shoe", func(t *testing.T) {
		assert.Equal(t, 0.25, in.FrictionAt(1500))
	})

	t.Run("should pick open factor below the shoe", func(t *testing.T) {
		assert.Equal(t, 0.35, in.FrictionAt(4500))
	})

	t.Run("should deterministically give the boundary to the casing", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, 0.25, in.FrictionAt(3000))
		}
		assert.Equal(t, 0.35, in.FrictionAt(3000.001))
	})

	t.Run("should treat zero shoe depth as all open hole", func(t *testing.T) {
		noCasing := &Input{FrictionCased: 0.25, FrictionOpen: 0.35}
		assert.Equal(t, 0.35, noCasing.FrictionAt(100))
	})
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("tripping_out")
	require.NoError(t, err)
	assert.Equal(t, TrippingOut, op)

	_, err = ParseOperation("circulating")
	assert.Error(t, err)
}
