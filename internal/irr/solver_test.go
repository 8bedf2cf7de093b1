package irr

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIRRKnownRoot(t *testing.T) {
	res, err := IRR([]float64{-100, 110})
	require.NoError(t, err)
	require.True(t, res.Converged())

	rate, ok := res.Rate()
	require.True(t, ok)
	assert.InDelta(t, 0.10, rate, DefaultTolerance)
}

func TestIRRSingleElement(t *testing.T) {
	// NPV is the outlay at every rate: -100 picks the downward walk and the
	// signed error stays at 100, so the budget runs out.
	res, err := IRR([]float64{-100})
	require.NoError(t, err)
	assert.Equal(t, Diverged, res.Status)
	assert.Equal(t, DefaultMaxIterations, res.Iterations)
	_, ok := res.Rate()
	assert.False(t, ok)

	res, err = IRR([]float64{100})
	require.NoError(t, err)
	assert.Equal(t, Diverged, res.Status)
	assert.Equal(t, DefaultMaxIterations, res.Iterations)

	res, err = IRR([]float64{0})
	require.NoError(t, err)
	assert.Equal(t, Converged, res.Status)
	assert.Equal(t, 0, res.Iterations)
	rate, ok := res.Rate()
	require.True(t, ok)
	assert.Equal(t, DefaultInitialGuess, rate)
}

func TestIRRDivergesWithoutRoot(t *testing.T) {
	res, err := IRR([]float64{100, 100})
	require.NoError(t, err)
	assert.Equal(t, Diverged, res.Status)
	assert.Equal(t, DefaultMaxIterations, res.Iterations)

	cfg := DefaultConfig()
	cfg.MaxIterations = 250
	res, err = Solve([]float64{100, 100}, cfg)
	require.NoError(t, err)
	assert.Equal(t, Diverged, res.Status)
	assert.Equal(t, 250, res.Iterations)
}

func TestIRRSingleSignChange(t *testing.T) {
	cashflows := [][]float64{
		{-1000, 300, 400, 500},
		{-100, 20, 20, 20, 20, 20, 20},
		{-5000, 1200, 1400, 1600, 1800},
		{-100, 0, 0, 150},
		{-1, 0.5, 0.5, 0.5},
	}

	cfg := DefaultConfig()
	for _, cf := range cashflows {
		res, err := Solve(cf, cfg)
		require.NoError(t, err, "%v", cf)
		require.True(t, res.Converged(), "%v", cf)
		assert.Less(t, res.Iterations, cfg.MaxIterations)

		rate, _ := res.Rate()
		start, err := NPV(cf, cfg.InitialGuess)
		require.NoError(t, err)
		multiplier := direction(start)

		at, err := NPV(cf, rate)
		require.NoError(t, err)
		assert.LessOrEqual(t, multiplier*at, cfg.Tolerance, "%v", cf)

		// The previous guess had not reached the root yet, so it lies within one step.
		if res.Iterations > 0 {
			before, err := NPV(cf, rate-multiplier*cfg.step())
			require.NoError(t, err)
			assert.Greater(t, multiplier*before, cfg.Tolerance, "%v", cf)
		}
	}
}

func TestIRRSmallFlowsLandWithinTolerance(t *testing.T) {
	// Per-step NPV change stays below the tolerance, so the stopping point is
	// also within tolerance in absolute terms.
	cf := []float64{-0.5, 0.3, 0.3}
	res, err := IRR(cf)
	require.NoError(t, err)
	rate, ok := res.Rate()
	require.True(t, ok)

	at, err := NPV(cf, rate)
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(at), DefaultTolerance)
	assert.InDelta(t, 0.1307, rate, 0.002)
}

func TestIRRWalksDown(t *testing.T) {
	res, err := IRR([]float64{-100, 105})
	require.NoError(t, err)
	rate, ok := res.Rate()
	require.True(t, ok)
	assert.InDelta(t, 0.05, rate, 2*DefaultTolerance)
	assert.InDelta(t, 50, res.Iterations, 2)
}

func TestSolveStepIndependentOfTolerance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Step = 0.0001
	res, err := Solve([]float64{-100, 105}, cfg)
	require.NoError(t, err)
	rate, ok := res.Rate()
	require.True(t, ok)
	assert.InDelta(t, 0.05, rate, 0.0002)
	assert.InDelta(t, 500, res.Iterations, 5)

	cfg = DefaultConfig()
	cfg.Step = 0
	zero, err := Solve([]float64{-100, 105}, cfg)
	require.NoError(t, err)
	def, err := IRR([]float64{-100, 105})
	require.NoError(t, err)
	assert.Equal(t, def, zero)
}

func TestSolveRederiveKeepsConvergingWalk(t *testing.T) {
	// |NPV| shrinks on every step towards the root, so re-deriving never turns
	// the walk and the result matches the fixed-direction search exactly.
	cf := []float64{-100, 60, 60}
	fixed, err := IRR(cf)
	require.NoError(t, err)
	require.True(t, fixed.Converged())
	assert.Equal(t, 31, fixed.Iterations)

	for _, every := range []int{1, 7, 10, 30} {
		cfg := DefaultConfig()
		cfg.RederiveEvery = every
		rederived, err := Solve(cf, cfg)
		require.NoError(t, err)
		assert.Equal(t, fixed, rederived, "every %d", every)
	}
}

func TestSolveRederiveTurnsAround(t *testing.T) {
	// NPV rises with the rate here: the sign rule walks away from the root at
	// 0.5 and runs into the pole, while re-deriving notices |NPV| growing.
	cf := []float64{100, -150}
	fixed, err := IRR(cf)
	require.NoError(t, err)
	assert.Equal(t, Diverged, fixed.Status)
	assert.Less(t, fixed.Iterations, DefaultMaxIterations)

	cfg := DefaultConfig()
	cfg.RederiveEvery = 10
	res, err := Solve(cf, cfg)
	require.NoError(t, err)
	require.True(t, res.Converged())
	rate, _ := res.Rate()
	assert.InDelta(t, 0.5, rate, 2*DefaultTolerance)
	assert.InDelta(t, 420, res.Iterations, 5)
}

func TestSolveContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SolveContext(ctx, []float64{100, 100}, DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)

	// Converging before the first check is not affected.
	res, err := SolveContext(ctx, []float64{-100, 110}, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, res.Converged())
}

func TestSolveStopsAtPole(t *testing.T) {
	// Walking down from -0.9 heads into the pole at -1; the sign flip past it
	// must not be read as a root.
	cfg := DefaultConfig()
	cfg.InitialGuess = -0.9
	res, err := Solve([]float64{100, -50}, cfg)
	require.NoError(t, err)
	assert.Equal(t, Diverged, res.Status)
	assert.Less(t, res.Iterations, cfg.MaxIterations)
	assert.InDelta(t, 100, res.Iterations, 1)
}

func TestSolveInvalidInput(t *testing.T) {
	_, err := IRR(nil)
	assert.ErrorIs(t, err, ErrEmptyCashFlow)

	cfg := DefaultConfig()
	cfg.InitialGuess = -1
	_, err = Solve([]float64{-100, 110}, cfg)
	assert.ErrorIs(t, err, ErrSingularInput)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero iterations", func(c *Config) { c.MaxIterations = 0 }},
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"nan tolerance", func(c *Config) { c.Tolerance = math.NaN() }},
		{"negative step", func(c *Config) { c.Step = -0.1 }},
		{"infinite guess", func(c *Config) { c.InitialGuess = math.Inf(1) }},
		{"negative rederive", func(c *Config) { c.RederiveEvery = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := Solve([]float64{-100, 110}, cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "converged", Converged.String())
	assert.Equal(t, "diverged", Diverged.String())
	assert.Equal(t, "unknown", Status(0).String())
}
