package hydraulics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurgeSwab(t *testing.T) {
	mud := binghamMud(10, 20, 15)

	t.Run("should compute closed-ended trip at 3 ft/s", func(t *testing.T) {
		res, err := SurgeSwab(3.0, 8.5, 5.0, 4.276, false, mud, 8000, 8000)
		require.NoError(t, err)

		assert.InDelta(t, 339.75, res.EquivalentFlow, 0.5)
		assert.InDelta(t, 209.79, res.PressureSwing, 0.5)
		assert.InDelta(t, 0.5043, res.DeltaEMW, 0.002)
		assert.InDelta(t, 10.5043, res.SurgeEMW, 0.002)
		assert.InDelta(t, 9.4957, res.SwabEMW, 0.002)
		assert.Equal(t, RiskWarning, res.SurgeStatus)
		assert.Equal(t, RiskCritical, res.SwabStatus)
	})

	t.Run("should displace less with open-ended pipe", func(t *testing.T) {
		closed, err := SurgeSwab(3.0, 8.5, 5.0, 4.276, false, mud, 8000, 8000)
		require.NoError(t, err)
		open, err := SurgeSwab(3.0, 8.5, 5.0, 4.276, true, mud, 8000, 8000)
		require.NoError(t, err)

		assert.Less(t, open.EquivalentFlow, closed.EquivalentFlow)
		assert.Less(t, open.DeltaEMW, closed.DeltaEMW)
		assert.InDelta(t, 0.4641, open.DeltaEMW, 0.002)
		assert.Equal(t, RiskOK, open.SurgeStatus)
		assert.Equal(t, RiskWarning, open.SwabStatus)
	})

	t.Run("should escalate banding with trip speed", func(t *testing.T) {
		fast, err := SurgeSwab(8.0, 8.5, 5.0, 4.276, false, mud, 8000, 8000)
		require.NoError(t, err)
		assert.InDelta(t, 0.658, fast.DeltaEMW, 0.005)
		assert.Equal(t, RiskWarning, fast.SurgeStatus)
		assert.Equal(t, RiskCritical, fast.SwabStatus)
	})

	t.Run("should return neutral result for zero trip speed", func(t *testing.T) {
		res, err := SurgeSwab(0, 8.5, 5.0, 4.276, false, mud, 8000, 8000)
		require.NoError(t, err)
		assert.Zero(t, res.DeltaEMW)
		assert.Equal(t, mud.Density, res.SurgeEMW)
		assert.Equal(t, mud.Density, res.SwabEMW)
		assert.Equal(t, RiskOK, res.SurgeStatus)
		assert.Equal(t, RiskOK, res.SwabStatus)
	})

	t.Run("should reject invalid geometry", func(t *testing.T) {
		_, err := SurgeSwab(3.0, 5.0, 5.0, 4.276, false, mud, 8000, 8000)
		assert.Error(t, err)
	})

	t.Run("should reject non-positive TVD", func(t *testing.T) {
		_, err := SurgeSwab(3.0, 8.5, 5.0, 4.276, false, mud, 8000, 0)
		assert.Error(t, err)
	})
}

func TestRiskBandString(t *testing.T) {
	assert.Equal(t, "OK", RiskOK.String())
	assert.Equal(t, "WARNING", RiskWarning.String())
	assert.Equal(t, "CRITICAL", RiskCritical.String())
}
