package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/valveflow/compress"
	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/logging"
	"github.com/katalvlaran/valveflow/scenario"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the resolved settings into subcommands.
type app struct {
	cfgPath string
	cfg     config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "valveflow",
		Short: "Maximize pressure released from a valve network",
		Long: "valveflow compresses a valve/tunnel network to its reward-bearing valves\n" +
			"and searches for the activation order that releases the most pressure.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML settings file")
	config.RegisterFlags(pf)

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newCompressCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	lg, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, lg

	return nil
}

// loadCave reads a scenario and compresses it around the configured start.
func (a *app) loadCave(cmd *cobra.Command, path string) (*compress.Graph, string, error) {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	if a.cfg.Start != "" {
		sc.Start = a.cfg.Start
	}
	raw, err := sc.Graph()
	if err != nil {
		return nil, "", err
	}
	g, err := compress.Compress(raw, sc.Start,
		compress.WithContext(cmd.Context()),
		compress.WithLogger(a.log),
	)
	if err != nil {
		return nil, "", fmt.Errorf("compress %s: %w", path, err)
	}

	return g, sc.Start, nil
}
