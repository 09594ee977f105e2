package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumCurvature(t *testing.T) {
	t.Run("should reject empty survey", func(t *testing.T) {
		_, err := MinimumCurvature(nil)
		assert.Error(t, err)
	})

	t.Run("should anchor first station at surface", func(t *testing.T) {
		out, err := MinimumCurvature([]Station{{MD: 0, Inclination: 0, Azimuth: 0}})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Zero(t, out[0].TVD)
		assert.Zero(t, out[0].DLS)
	})

	t.Run("should track MD exactly in a vertical hole", func(t *testing.T) {
		out, err := MinimumCurvature([]Station{
			{MD: 0}, {MD: 1500}, {MD: 4200},
		})
		require.NoError(t, err)
		assert.InDelta(t, 4200, out[2].TVD, 1e-9)
		assert.InDelta(t, 0, out[2].North, 1e-9)
		assert.InDelta(t, 0, out[2].East, 1e-9)
	})

	t.Run("should match hand-computed build section", func(t *testing.T) {
		// 3 deg/100 ft build from vertical to 30 deg at azimuth 45.
		out, err := MinimumCurvature([]Station{
			{MD: 0, Inclination: 0, Azimuth: 0},
			{MD: 1000, Inclination: 0, Azimuth: 0},
			{MD: 2000, Inclination: 30, Azimuth: 45},
			{MD: 3000, Inclination: 30, Azimuth: 45},
		})
		require.NoError(t, err)

		assert.InDelta(t, 1954.930, out[2].TVD, 0.01)
		assert.InDelta(t, 180.929, out[2].North, 0.01)
		assert.InDelta(t, 180.929, out[2].East, 0.01)
		assert.InDelta(t, 3.0, out[2].DLS, 1e-6)

		// Hold section: straight increments, zero dogleg.
		assert.InDelta(t, 2820.955, out[3].TVD, 0.01)
		assert.InDelta(t, 534.483, out[3].North, 0.01)
		assert.InDelta(t, 534.483, out[3].East, 0.01)
		assert.InDelta(t, 0.0, out[3].DLS, 1e-9)
	})

	t.Run("should accumulate monotonically with DLS never negative", func(t *testing.T) {
		out, err := MinimumCurvature([]Station{
			{MD: 0, Inclination: 0, Azimuth: 0},
			{MD: 900, Inclination: 12, Azimuth: 80},
			{MD: 1800, Inclination: 25, Azimuth: 95},
			{MD: 2700, Inclination: 25, Azimuth: 95},
			{MD: 3600, Inclination: 8, Azimuth: 110},
		})
		require.NoError(t, err)
		for i := 1; i < len(out); i++ {
			assert.GreaterOrEqual(t, out[i].TVD, out[i-1].TVD, "TVD must accumulate")
			assert.GreaterOrEqual(t, out[i].DLS, 0.0, "DLS must be non-negative")
		}
	})

	t.Run("should short-circuit duplicate MD without error", func(t *testing.T) {
		out, err := MinimumCurvature([]Station{
			{MD: 0, Inclination: 0, Azimuth: 0},
			{MD: 1000, Inclination: 10, Azimuth: 30},
			{MD: 1000, Inclination: 12, Azimuth: 30},
			{MD: 2000, Inclination: 12, Azimuth: 30},
		})
		require.NoError(t, err)
		require.Len(t, out, 4)
		assert.Equal(t, out[1].TVD, out[2].TVD)
		assert.Equal(t, out[1].North, out[2].North)
		assert.Zero(t, out[2].DLS)
		assert.Greater(t, out[3].TVD, out[2].TVD)
	})

	t.Run("should keep output shape equal to input shape", func(t *testing.T) {
		in := []Station{{MD: 0}, {MD: 100}, {MD: 90}, {MD: 200}}
		out, err := MinimumCurvature(in)
		require.NoError(t, err)
		assert.Len(t, out, len(in))
	})
}

func TestInterpolateTVD(t *testing.T) {
	out, err := MinimumCurvature([]Station{
		{MD: 0}, {MD: 1000}, {MD: 2000, Inclination: 30, Azimuth: 45},
	})
	require.NoError(t, err)

	t.Run("should clamp outside the survey", func(t *testing.T) {
		assert.Equal(t, 0.0, InterpolateTVD(out, -50))
		assert.Equal(t, out[2].TVD, InterpolateTVD(out, 5000))
	})

	t.Run("should interpolate linearly between stations", func(t *testing.T) {
		assert.InDelta(t, 500, InterpolateTVD(out, 500), 1e-9)
		mid := (out[1].TVD + out[2].TVD) / 2
		assert.InDelta(t, mid, InterpolateTVD(out, 1500), 1e-9)
	})

	t.Run("should handle empty slice", func(t *testing.T) {
		assert.Zero(t, InterpolateTVD(nil, 100))
	})
}
