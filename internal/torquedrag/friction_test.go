package torquedrag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackCalculateFriction(t *testing.T) {
	t.Run("should recover the friction factor from a tripping-out hookload", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		target, err := Compute(in)
		require.NoError(t, err)

		res, err := BackCalculateFriction(in, target.Hookload, 50, 0)
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 0.30, res.FrictionFactor, 0.005)
		assert.LessOrEqual(t, res.Residual, 50.0)
		assert.LessOrEqual(t, res.Iterations, DefaultMaxIterations)
	})

	t.Run("should handle the reversed monotonicity tripping in", func(t *testing.T) {
		in := benchmarkInput(t, TrippingIn)
		in.FrictionCased = 0.22
		in.FrictionOpen = 0.22
		target, err := Compute(in)
		require.NoError(t, err)

		res, err := BackCalculateFriction(in, target.Hookload, 50, 0)
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 0.22, res.FrictionFactor, 0.005)
	})

	t.Run("should report non-convergence for an unreachable heavy hookload", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		res, err := BackCalculateFriction(in, 250000, 50, 0)
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, FrictionMax, res.FrictionFactor)
		assert.Greater(t, res.Residual, 50.0)
	})

	t.Run("should report non-convergence for an unreachable light hookload", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		res, err := BackCalculateFriction(in, 100000, 50, 0)
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, FrictionMin, res.FrictionFactor)
	})

	t.Run("should propagate invalid inputs as errors", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		in.Survey = in.Survey[:1]
		_, err := BackCalculateFriction(in, 160000, 50, 0)
		assert.Error(t, err)
	})

	t.Run("should respect the iteration cap", func(t *testing.T) {
		in := benchmarkInput(t, TrippingOut)
		res, err := BackCalculateFriction(in, 160000, 1e-9, 5)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Iterations, 5)
		assert.False(t, res.Converged)
	})
}
