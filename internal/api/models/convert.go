package models

import (
	"math"

	"blog-apps/internal/format"
	"blog-apps/internal/irr"
	"blog-apps/internal/sailor"
)

// NewIRRResponse shapes a solver result for JSON output.
func NewIRRResponse(cashflow []float64, res irr.Result) *IRRResponse {
	out := &IRRResponse{
		Status:     res.Status.String(),
		Message:    format.IRRMessage(res),
		Iterations: res.Iterations,
		CashFlows:  cashflow,
	}
	if rate, ok := res.Rate(); ok {
		out.Rate = &rate
		out.Formatted = format.Percent(rate)
	}
	if v := res.NPV; !math.IsNaN(v) && !math.IsInf(v, 0) {
		out.NPV = &v
	}
	return out
}

func NewSailorRuns(runs []sailor.Run) []SailorRun {
	out := make([]SailorRun, 0, len(runs))
	for _, r := range runs {
		out = append(out, SailorRun{
			Index:         r.Index,
			FinalPosition: r.FinalPosition,
			Steps:         r.Steps,
			Died:          r.Died,
		})
	}
	return out
}

func NewSailorSummary(s sailor.Summary) SailorSummary {
	return SailorSummary{
		Deaths:             s.Deaths,
		PercentageOfDeaths: format.Fixed(s.DeathRate),
		TotalIterations:    s.TotalSteps,
		AverageIterations:  format.Round2(s.AverageSteps),
	}
}

func NewSailorParams(p sailor.Params) SailorParams {
	return SailorParams{
		StartPosition: p.StartPosition,
		TowardsEdge:   p.TowardsEdge,
		Simulations:   p.Simulations,
		MaxSteps:      p.MaxSteps,
	}
}

func NewLindyResponse(id string, l sailor.LindyReport) *LindyResponse {
	return &LindyResponse{
		ID:                 id,
		Barrier:            l.Barrier,
		Survivors:          l.Survivors,
		Deaths:             l.Deaths,
		PercentageOfDeaths: format.Fixed(l.DeathRate),
	}
}
