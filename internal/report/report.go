// Package report builds markdown summaries of calculator runs and renders them
// for a terminal.
package report

import (
	"fmt"
	"strings"

	"blog-apps/internal/format"
	"blog-apps/internal/irr"
	"blog-apps/internal/sailor"

	"github.com/charmbracelet/glamour"
)

// IRR describes a solve: the cash flows, the outcome and the search effort.
func IRR(cashflow []float64, res irr.Result) string {
	var b strings.Builder
	b.WriteString("# IRR Calculator\n\n")
	b.WriteString("| Period | Cash flow |\n|---:|---:|\n")
	for i, cf := range cashflow {
		fmt.Fprintf(&b, "| %d | %s |\n", i, format.Fixed(cf))
	}
	b.WriteString("\n")

	if rate, ok := res.Rate(); ok {
		fmt.Fprintf(&b, "Projected IRR is **%s**.\n\n", format.Percent(rate))
	} else {
		fmt.Fprintf(&b, "%s\n\n", format.DivergedMessage)
	}
	fmt.Fprintf(&b, "- Status: %s\n- Iterations: %d\n", res.Status, res.Iterations)
	return b.String()
}

// Sailor describes a simulation batch and, when barrier > 0, its Lindy analysis.
func Sailor(res *sailor.Result, barrier int) string {
	var b strings.Builder
	b.WriteString("# Drunken Sailor Simulator\n\n")
	p := res.Params
	fmt.Fprintf(&b, "- Steps away from the edge: %d\n", p.StartPosition)
	fmt.Fprintf(&b, "- Probability towards the edge: %s\n", format.Fixed(p.TowardsEdge))
	fmt.Fprintf(&b, "- Simulations: %d (max %d steps each)\n", p.Simulations, p.MaxSteps)
	fmt.Fprintf(&b, "- Seed: %d\n\n", res.Seed)

	s := res.Summary
	fmt.Fprintf(&b, "The sailor died in **%s%%** of the simulations.\n\n", format.Fixed(s.DeathRate))
	fmt.Fprintf(&b, "| Deaths | Total steps | Average steps |\n|---:|---:|---:|\n| %d | %d | %s |\n",
		s.Deaths, s.TotalSteps, format.Fixed(s.AverageSteps))

	if barrier > 0 {
		l := sailor.Lindy(res, barrier)
		fmt.Fprintf(&b, "\n## Lindy\n\n%d walks lasted at least %d steps and %d of them died in the end (%s%%).\n",
			l.Survivors, l.Barrier, l.Deaths, format.Fixed(l.DeathRate))
	}
	return b.String()
}

// Render styles markdown for a terminal. An empty style picks one from the terminal.
func Render(markdown, style string) (string, error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return r.Render(markdown)
}
