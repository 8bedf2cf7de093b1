package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"blog-apps/internal/api/models"
	"blog-apps/internal/format"
	"blog-apps/internal/report"
	"blog-apps/internal/sailor"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sailorOptions struct {
	start    int
	p        float64
	n        int
	maxSteps int
	seed     uint64
	barrier  int
	out      string
	format   string
	style    string
}

func newSailorCmd(app *cli) *cobra.Command {
	opts := &sailorOptions{}
	cmd := &cobra.Command{
		Use:   "sailor",
		Short: "Simulate the drunken sailor walking along a cliff",
		Long: `Runs independent random walks that start --start steps from the edge and
move towards it with probability --p. A walk that reaches the edge dies; one
still standing after --max-steps survives.

Pass --seed to reproduce a batch; without it a random seed is drawn and printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSailor(cmd, app, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.start, "start", sailor.DefaultStartPosition, "Steps away from the edge")
	f.Float64Var(&opts.p, "p", sailor.DefaultTowardsEdge, "Probability of stepping towards the edge")
	f.IntVar(&opts.n, "n", sailor.DefaultSimulations, "Number of simulations")
	f.IntVar(&opts.maxSteps, "max-steps", sailor.DefaultMaxSteps, "Step budget per walk")
	f.Uint64Var(&opts.seed, "seed", 0, "RNG seed (random when unset)")
	f.IntVar(&opts.barrier, "barrier", 0, "Lindy barrier in steps (0 = skip)")
	f.StringVar(&opts.out, "out", "", "Optional CSV path for the per-walk ledger")
	f.StringVar(&opts.format, "format", formatText, "Output format: text, markdown or json")
	f.StringVar(&opts.style, "style", "", "Glamour style for markdown output (dark, light, notty)")
	return cmd
}

func (o *sailorOptions) params(cmd *cobra.Command, app *cli) sailor.Params {
	p := app.cfg.Sailor.ToParams()
	f := cmd.Flags()
	if f.Changed("start") {
		p.StartPosition = o.start
	}
	if f.Changed("p") {
		p.TowardsEdge = o.p
	}
	if f.Changed("n") {
		p.Simulations = o.n
	}
	if f.Changed("max-steps") {
		p.MaxSteps = o.maxSteps
	}
	return p
}

func runSailor(cmd *cobra.Command, app *cli, opts *sailorOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	if opts.barrier < 0 {
		return fmt.Errorf("--barrier must be >= 0")
	}

	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	sim := sailor.New(seed)
	sim.Limits = app.cfg.Sailor.Limits()

	res, err := sim.RunContext(cmd.Context(), opts.params(cmd, app))
	if err != nil {
		return err
	}
	app.logger.Debug("sailor batch done",
		zap.Uint64("seed", seed),
		zap.Int("simulations", res.Summary.Simulations),
		zap.Int("deaths", res.Summary.Deaths),
	)

	if opts.out != "" {
		if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
			return err
		}
		if err := sailor.WriteRunsCSVFile(opts.out, res.Runs); err != nil {
			return fmt.Errorf("write runs: %w", err)
		}
		app.logger.Info("wrote runs", zap.String("path", opts.out), zap.Int("rows", len(res.Runs)))
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		resp := models.SailorResponse{
			Seed:    seed,
			Params:  models.NewSailorParams(res.Params),
			Summary: models.NewSailorSummary(res.Summary),
		}
		if opts.barrier > 0 {
			resp.Lindy = models.NewLindyResponse("", sailor.Lindy(res, opts.barrier))
		}
		return writeJSON(out, resp)
	case formatMarkdown:
		return writeMarkdown(out, report.Sailor(res, opts.barrier), opts.style)
	default:
		s := res.Summary
		fmt.Fprintf(out, "seed: %d\n", seed)
		fmt.Fprintf(out, "The sailor died in %s%% of %d simulations.\n", format.Fixed(s.DeathRate), s.Simulations)
		fmt.Fprintf(out, "deaths: %d  total steps: %d  average steps: %s\n", s.Deaths, s.TotalSteps, format.Fixed(s.AverageSteps))
		if opts.barrier > 0 {
			l := sailor.Lindy(res, opts.barrier)
			fmt.Fprintf(out, "lindy: %d of %d walks past %d steps died (%s%%)\n",
				l.Deaths, l.Survivors, l.Barrier, format.Fixed(l.DeathRate))
		}
		return nil
	}
}
