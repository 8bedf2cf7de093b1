package sailor

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Simulator runs batches of walks. A Simulator is not safe for concurrent use;
// create one per goroutine.
type Simulator struct {
	seed   uint64
	rng    *rand.Rand
	Limits Limits
}

// New returns a Simulator whose draws are fully determined by seed.
func New(seed uint64) *Simulator {
	return &Simulator{
		seed:   seed,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Limits: DefaultLimits(),
	}
}

func (s *Simulator) Seed() uint64 { return s.seed }

// Run executes p.Simulations independent walks.
func (s *Simulator) Run(p Params) (*Result, error) {
	return s.RunContext(context.Background(), p)
}

// RunContext is Run, checking ctx between walks.
func (s *Simulator) RunContext(ctx context.Context, p Params) (*Result, error) {
	if err := p.Validate(s.Limits); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	runs := make([]Run, 0, p.Simulations)
	for idx := 0; idx < p.Simulations; idx++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos, steps := s.walk(p)
		runs = append(runs, Run{
			Index:         idx,
			FinalPosition: pos,
			Steps:         steps,
			Died:          pos == 0,
		})
	}

	return &Result{
		Seed:    s.seed,
		Params:  p,
		Runs:    runs,
		Summary: summarize(runs),
	}, nil
}

func (s *Simulator) walk(p Params) (position, steps int) {
	position = p.StartPosition
	for position > 0 && steps < p.MaxSteps {
		if s.rng.Float64() < p.TowardsEdge {
			position--
		} else {
			position++
		}
		steps++
	}
	return position, steps
}
