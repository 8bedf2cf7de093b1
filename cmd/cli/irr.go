package main

import (
	"errors"
	"fmt"
	"math"

	"blog-apps/internal/api/models"
	"blog-apps/internal/data"
	"blog-apps/internal/format"
	"blog-apps/internal/irr"
	"blog-apps/internal/model"
	"blog-apps/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type irrOptions struct {
	flows string
	file  string

	investment  float64
	firstReturn float64
	periods     int
	growth      float64

	guess         float64
	maxIterations int
	tolerance     float64
	step          float64
	rederiveEvery int

	format string
	style  string
}

func newIRRCmd(app *cli) *cobra.Command {
	opts := &irrOptions{}
	cmd := &cobra.Command{
		Use:   "irr",
		Short: "Solve the internal rate of return of a cash-flow sequence",
		Long: `Solves for the rate that zeroes the NPV of the cash flows.

Cash flows come from exactly one of:
  --flows -100,60,60         explicit list, outlay first
  --file flows.json          JSON or YAML file
  --investment ... --periods automatic projection`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIRR(cmd, app, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.flows, "flows", "", "Comma-separated cash flows, index 0 is the outlay")
	f.StringVar(&opts.file, "file", "", "Path to a JSON or YAML cash-flow file")
	f.Float64Var(&opts.investment, "investment", 0, "Initial investment (automatic mode)")
	f.Float64Var(&opts.firstReturn, "first-return", 0, "Return in the first period (automatic mode)")
	f.IntVar(&opts.periods, "periods", 0, "Number of return periods (automatic mode)")
	f.Float64Var(&opts.growth, "growth", 0, "Per-period growth of returns, e.g. 0.05 (automatic mode)")
	addSolverFlags(cmd, opts)
	f.StringVar(&opts.format, "format", formatText, "Output format: text, markdown or json")
	f.StringVar(&opts.style, "style", "", "Glamour style for markdown output (dark, light, notty)")
	return cmd
}

func addSolverFlags(cmd *cobra.Command, opts *irrOptions) {
	f := cmd.Flags()
	f.Float64Var(&opts.guess, "guess", irr.DefaultInitialGuess, "Initial rate guess")
	f.IntVar(&opts.maxIterations, "max-iterations", irr.DefaultMaxIterations, "Iteration budget")
	f.Float64Var(&opts.tolerance, "tolerance", irr.DefaultTolerance, "Stopping threshold on NPV")
	f.Float64Var(&opts.step, "step", 0, "Rate step per iteration (0 = tolerance)")
	f.IntVar(&opts.rederiveEvery, "rederive-every", 0, "Re-read the search direction every N steps (0 = never)")
}

// solverConfig starts from the loaded config and overlays flags the user set.
// A custom tolerance also resets the step unless --step is given.
func solverConfig(cmd *cobra.Command, app *cli, opts *irrOptions) irr.Config {
	cfg := app.cfg.Solver.ToIRR()
	f := cmd.Flags()
	if f.Changed("guess") {
		cfg.InitialGuess = opts.guess
	}
	if f.Changed("max-iterations") {
		cfg.MaxIterations = opts.maxIterations
	}
	if f.Changed("tolerance") {
		cfg.Tolerance = opts.tolerance
		if !f.Changed("step") {
			cfg.Step = 0
		}
	}
	if f.Changed("step") {
		cfg.Step = opts.step
	}
	if f.Changed("rederive-every") {
		cfg.RederiveEvery = opts.rederiveEvery
	}
	return cfg
}

func (o *irrOptions) projection(cmd *cobra.Command) (model.Projection, error) {
	f := cmd.Flags()
	automatic := f.Changed("investment") || f.Changed("first-return") || f.Changed("periods") || f.Changed("growth")

	sources := 0
	for _, set := range []bool{o.flows != "", o.file != "", automatic} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return model.Projection{}, errors.New("give exactly one of --flows, --file or the automatic projection flags")
	}

	switch {
	case o.flows != "":
		flows, err := data.ParseFlowList(o.flows)
		if err != nil {
			return model.Projection{}, err
		}
		return model.Projection{Mode: model.ModeManual, CashFlows: flows}, nil
	case o.file != "":
		flows, err := data.LoadCashFlows(o.file)
		if err != nil {
			return model.Projection{}, err
		}
		return model.Projection{Mode: model.ModeManual, CashFlows: flows}, nil
	default:
		return model.Projection{
			Mode:              model.ModeAutomatic,
			InitialInvestment: o.investment,
			FirstReturn:       o.firstReturn,
			Periods:           o.periods,
			GrowthRate:        o.growth,
		}, nil
	}
}

func runIRR(cmd *cobra.Command, app *cli, opts *irrOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	p, err := opts.projection(cmd)
	if err != nil {
		return err
	}
	flows, err := p.Flows()
	if err != nil {
		return fmt.Errorf("invalid projection: %w", err)
	}

	cfg := solverConfig(cmd, app, opts)
	res, err := irr.SolveContext(cmd.Context(), flows, cfg)
	if err != nil {
		return err
	}
	app.logger.Debug("irr solved",
		zap.String("status", res.Status.String()),
		zap.Int("iterations", res.Iterations),
		zap.Int("flows", len(flows)),
		zap.Float64("tolerance", cfg.Tolerance),
	)

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		return writeJSON(out, models.NewIRRResponse(flows, res))
	case formatMarkdown:
		return writeMarkdown(out, report.IRR(flows, res), opts.style)
	default:
		_, err = fmt.Fprintln(out, format.IRRMessage(res))
		return err
	}
}

func newNPVCmd(app *cli) *cobra.Command {
	var (
		flows  string
		rate   float64
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "npv",
		Short: "Net present value of cash flows at a rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := data.ParseFlowList(flows)
			if err != nil {
				return err
			}
			v, err := irr.NPV(cf, rate)
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("npv at rate %v is not a finite number (%v)", rate, v)
			}
			app.logger.Debug("npv computed", zap.Float64("rate", rate), zap.Float64("npv", v))

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, models.NPVResponse{NPV: v})
			}
			_, err = fmt.Fprintln(out, format.Fixed(v))
			return err
		},
	}
	cmd.Flags().StringVar(&flows, "flows", "", "Comma-separated cash flows, index 0 is the outlay")
	cmd.Flags().Float64Var(&rate, "rate", irr.DefaultInitialGuess, "Discount rate per period")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	_ = cmd.MarkFlagRequired("flows")
	return cmd
}
