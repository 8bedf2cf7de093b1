package irr

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a solver Config cannot drive a search.
var ErrInvalidConfig = errors.New("irr: invalid solver config")

const (
	DefaultInitialGuess  = 0.1
	DefaultMaxIterations = 10000
	DefaultTolerance     = 0.001
)

// Config tunes the directional search.
type Config struct {
	InitialGuess  float64
	MaxIterations int
	// Tolerance is the stopping threshold on the signed NPV error.
	Tolerance float64
	// Step is the fixed amount the guess moves per iteration. Zero means Tolerance.
	Step float64
	// RederiveEvery checks every N steps whether |NPV| grew since the last check
	// and, if so, reverses the walk. Zero keeps the direction chosen at the initial
	// guess for the whole run.
	RederiveEvery int
}

// DefaultConfig returns the calculator's stock settings.
func DefaultConfig() Config {
	return Config{
		InitialGuess:  DefaultInitialGuess,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

func (c Config) Validate() error {
	if math.IsNaN(c.InitialGuess) || math.IsInf(c.InitialGuess, 0) {
		return fmt.Errorf("%w: initial guess must be finite", ErrInvalidConfig)
	}
	if 1+c.InitialGuess == 0 {
		return ErrSingularRate
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be > 0", ErrInvalidConfig)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be a positive number", ErrInvalidConfig)
	}
	if c.Step < 0 || math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w: step must be a non-negative number", ErrInvalidConfig)
	}
	if c.RederiveEvery < 0 {
		return fmt.Errorf("%w: rederive interval must be >= 0", ErrInvalidConfig)
	}
	return nil
}

func (c Config) step() float64 {
	if c.Step == 0 {
		return c.Tolerance
	}
	return c.Step
}

// Status tags the outcome of a search.
type Status int

const (
	Converged Status = iota + 1
	Diverged
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Result is either Converged with a rate or Diverged. The rate is only reachable
// through Rate, which reports whether it is meaningful.
type Result struct {
	Status Status
	// Iterations is the number of steps taken before stopping.
	Iterations int
	// NPV is the net present value at the last evaluated guess.
	NPV float64

	rate float64
}

func (r Result) Converged() bool { return r.Status == Converged }

// Rate returns the solved rate and true, or 0 and false when the search diverged.
func (r Result) Rate() (float64, bool) {
	if r.Status != Converged {
		return 0, false
	}
	return r.rate, true
}

// IRR solves with DefaultConfig.
func IRR(cashflow []float64) (Result, error) {
	return Solve(cashflow, DefaultConfig())
}

// Solve searches for the rate at which cashflow's NPV is within cfg.Tolerance of zero.
//
// The direction is fixed from the NPV sign at the initial guess: positive NPV walks
// the rate up, anything else walks it down. The guess moves by a fixed step until
// the NPV has come within Tolerance of crossing zero (Converged) or MaxIterations
// steps were taken (Diverged). A walk that crosses the pole at rate -1 also ends
// Diverged.
func Solve(cashflow []float64, cfg Config) (Result, error) {
	return SolveContext(context.Background(), cashflow, cfg)
}

// ctxCheckEvery is how many steps run between context checks.
const ctxCheckEvery = 1024

// SolveContext is Solve, abandoning the search with ctx.Err() once ctx is done.
func SolveContext(ctx context.Context, cashflow []float64, cfg Config) (Result, error) {
	if len(cashflow) == 0 {
		return Result{}, ErrEmptyCashFlow
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	step := cfg.step()
	pole := hasPole(cashflow)
	guess := cfg.InitialGuess
	value := npv(cashflow, guess)
	// side is the sign the NPV must leave; multiplier is where the guess moves.
	// They only differ after a re-derivation turned the walk around.
	side := direction(value)
	multiplier := side
	checkpoint := math.Abs(value)

	for i := 0; i < cfg.MaxIterations; i++ {
		if finite(value) && side*value <= cfg.Tolerance {
			return Result{Status: Converged, Iterations: i, NPV: value, rate: guess}, nil
		}
		if i%ctxCheckEvery == ctxCheckEvery-1 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if cfg.RederiveEvery > 0 && i > 0 && i%cfg.RederiveEvery == 0 && finite(value) {
			mag := math.Abs(value)
			if mag > checkpoint {
				multiplier = -multiplier
			}
			checkpoint = mag
		}

		prev := guess
		guess += multiplier * step
		if pole && (1+prev)*(1+guess) <= 0 {
			return Result{Status: Diverged, Iterations: i + 1, NPV: value}, nil
		}
		value = npv(cashflow, guess)
	}

	return Result{Status: Diverged, Iterations: cfg.MaxIterations, NPV: value}, nil
}

func direction(value float64) float64 {
	if value > 0 {
		return 1
	}
	return -1
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// hasPole reports whether NPV actually depends on the rate, i.e. whether any
// discounted entry is non-zero.
func hasPole(cashflow []float64) bool {
	for _, cf := range cashflow[1:] {
		if cf != 0 {
			return true
		}
	}
	return false
}
