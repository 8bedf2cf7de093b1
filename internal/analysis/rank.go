package analysis

import (
	"sort"

	"blog-apps/internal/irr"
)

// Scenario is one named IRR solve. Err is set when the scenario could not be solved
// at all (bad input), as opposed to a diverged search.
type Scenario struct {
	Name      string
	CashFlows []float64
	Result    irr.Result
	Err       error
}

type RankedScenario struct {
	Scenario
	Rank int
}

// RankByRate orders converged scenarios by rate, highest first. Diverged and failed
// scenarios follow in their input order and keep Rank 0.
func RankByRate(scenarios []Scenario) []RankedScenario {
	out := make([]RankedScenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, RankedScenario{Scenario: s})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, oki := out[i].rate()
		rj, okj := out[j].rate()
		if oki != okj {
			return oki
		}
		return oki && ri > rj
	})
	for i := range out {
		if _, ok := out[i].rate(); ok {
			out[i].Rank = i + 1
		}
	}
	return out
}

func (s Scenario) rate() (float64, bool) {
	if s.Err != nil {
		return 0, false
	}
	return s.Result.Rate()
}
