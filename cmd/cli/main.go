package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blog-apps/internal/config"
	"blog-apps/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries state shared by every subcommand once the root has run.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	app := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cli",
		Short: "IRR calculator and drunken-sailor simulator",
		Long: `Command-line front end for the blog apps.

  cli irr --flows -100,60,60
  cli irr --investment 1000 --first-return 300 --periods 5 --growth 0.05
  cli npv --flows -100,60,60 --rate 0.1
  cli sailor --start 5 --p 0.5 --n 1000 --seed 42 --out results/runs.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.configPath)
			if err != nil {
				return err
			}
			app.cfg = cfg

			logger, err := logging.New(cfg.Log, app.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			app.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "Path to YAML or TOML config")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newIRRCmd(app),
		newNPVCmd(app),
		newSailorCmd(app),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
