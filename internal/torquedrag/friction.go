package torquedrag

import (
	"fmt"
	"math"
)

// Bisection bracket and termination defaults for the friction-factor
// back-calculation.
const (
	FrictionMin = 0.05
	FrictionMax = 0.60

	DefaultHookloadTol   = 100.0 // lbf
	DefaultMaxIterations = 50
)

// FrictionResult reports a friction-factor back-calculation.
type FrictionResult struct {
	FrictionFactor float64 // Effective factor applied to cased and open hole
	Hookload       float64 // Hookload the factor reproduces (lbf)
	Residual       float64 // |Hookload - measured| (lbf)
	Iterations     int
	Converged      bool
}

// BackCalculateFriction finds the single effective friction factor in
// [0.05, 0.60] that reproduces a measured surface hookload, by
// bisection over repeated soft-string runs. Hookload is monotonic in
// the friction factor; the direction depends on the operation, so the
// bracket endpoints are probed rather than assuming a sign.
//
// A target outside the achievable hookload range, or failure to meet
// the tolerance within the iteration cap, returns Converged = false
// with the best estimate found; it never silently returns a stale
// value.
func BackCalculateFriction(in *Input, measuredHookload, tol float64, maxIter int) (*FrictionResult, error) {
	if tol <= 0 {
		tol = DefaultHookloadTol
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	evaluate := func(mu float64) (float64, error) {
		trial := *in
		trial.FrictionCased = mu
		trial.FrictionOpen = mu
		res, err := Compute(&trial)
		if err != nil {
			return 0, err
		}
		return res.Hookload, nil
	}

	hLo, err := evaluate(FrictionMin)
	if err != nil {
		return nil, fmt.Errorf("friction back-calculation: %w", err)
	}
	hHi, err := evaluate(FrictionMax)
	if err != nil {
		return nil, fmt.Errorf("friction back-calculation: %w", err)
	}
	increasing := hHi >= hLo

	// Clamp to the nearest endpoint when the target is unreachable.
	low, high := math.Min(hLo, hHi), math.Max(hLo, hHi)
	if measuredHookload < low || measuredHookload > high {
		mu, h := FrictionMin, hLo
		if math.Abs(hHi-measuredHookload) < math.Abs(hLo-measuredHookload) {
			mu, h = FrictionMax, hHi
		}
		return &FrictionResult{
			FrictionFactor: mu,
			Hookload:       h,
			Residual:       math.Abs(h - measuredHookload),
			Converged:      false,
		}, nil
	}

	lo, hi := FrictionMin, FrictionMax
	result := &FrictionResult{}
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		h, err := evaluate(mid)
		if err != nil {
			return nil, fmt.Errorf("friction back-calculation: %w", err)
		}
		result.FrictionFactor = mid
		result.Hookload = h
		result.Residual = math.Abs(h - measuredHookload)
		result.Iterations = i + 1

		if result.Residual <= tol {
			result.Converged = true
			return result, nil
		}
		if (h < measuredHookload) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return result, nil
}
