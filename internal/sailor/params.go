package sailor

import (
	"errors"
	"fmt"
)

const (
	DefaultStartPosition  = 5
	DefaultTowardsEdge    = 0.5
	DefaultSimulations    = 1000
	DefaultMaxSteps       = 10000
	DefaultMaxSimulations = 10000
	DefaultMaxStepsLimit  = 10000
)

// Limits caps the work one batch may ask for.
type Limits struct {
	MaxSimulations int
	MaxSteps       int
}

func DefaultLimits() Limits {
	return Limits{
		MaxSimulations: DefaultMaxSimulations,
		MaxSteps:       DefaultMaxStepsLimit,
	}
}

// Params describes one batch of random walks.
// Units:
// - StartPosition: steps away from the edge (position 0 is the edge)
// - TowardsEdge: probability 0..1 of stepping towards the edge
// - MaxSteps: per-walk step budget; a walk still alive after it survives
type Params struct {
	StartPosition int
	TowardsEdge   float64
	Simulations   int
	MaxSteps      int
}

func DefaultParams() Params {
	return Params{
		StartPosition: DefaultStartPosition,
		TowardsEdge:   DefaultTowardsEdge,
		Simulations:   DefaultSimulations,
		MaxSteps:      DefaultMaxSteps,
	}
}

// Validate checks p against l.
func (p Params) Validate(l Limits) error {
	if p.StartPosition < 1 {
		return errors.New("StartPosition must be >= 1")
	}
	if !(p.TowardsEdge >= 0 && p.TowardsEdge <= 1) {
		return errors.New("TowardsEdge must be in [0, 1]")
	}
	if p.Simulations <= 0 || p.Simulations > l.MaxSimulations {
		return fmt.Errorf("Simulations must be in (0, %d]", l.MaxSimulations)
	}
	if p.MaxSteps <= 0 || p.MaxSteps > l.MaxSteps {
		return fmt.Errorf("MaxSteps must be in (0, %d]", l.MaxSteps)
	}
	return nil
}
