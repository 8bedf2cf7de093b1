package sailor

// Run is one row of per-walk output.
type Run struct {
	Index         int
	FinalPosition int
	Steps         int
	Died          bool
}

// Summary aggregates a batch. DeathRate is a percentage (0..100).
type Summary struct {
	Simulations  int
	Deaths       int
	DeathRate    float64
	TotalSteps   int
	AverageSteps float64
}

type Result struct {
	Seed    uint64
	Params  Params
	Runs    []Run
	Summary Summary
}

func summarize(runs []Run) Summary {
	s := Summary{Simulations: len(runs)}
	if len(runs) == 0 {
		return s
	}
	for _, r := range runs {
		if r.Died {
			s.Deaths++
		}
		s.TotalSteps += r.Steps
	}
	n := float64(len(runs))
	s.DeathRate = float64(s.Deaths) / n * 100
	s.AverageSteps = float64(s.TotalSteps) / n
	return s
}

// LindyReport answers: of the walks that lasted at least Barrier steps, how many
// still ended at the edge?
type LindyReport struct {
	Barrier   int
	Survivors int
	Deaths    int
	DeathRate float64
}

func Lindy(res *Result, barrier int) LindyReport {
	out := LindyReport{Barrier: barrier}
	if res == nil {
		return out
	}
	for _, r := range res.Runs {
		if r.Steps < barrier {
			continue
		}
		out.Survivors++
		if r.Died {
			out.Deaths++
		}
	}
	if out.Survivors > 0 {
		out.DeathRate = float64(out.Deaths) / float64(out.Survivors) * 100
	}
	return out
}
