package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/valveflow/metrics"
	"github.com/katalvlaran/valveflow/search"
)

type solveFlags struct {
	plan    bool
	metrics bool
}

func newSolveCmd(a *app) *cobra.Command {
	var sf solveFlags
	cmd := &cobra.Command{
		Use:   "solve <scenario>",
		Short: "Print the maximum pressure that can be released",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], sf)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&sf.plan, "plan", false, "print the activation schedule")
	f.BoolVar(&sf.metrics, "metrics", false, "print search metrics in Prometheus text format")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, path string, sf solveFlags) error {
	g, start, err := a.loadCave(cmd, path)
	if err != nil {
		return err
	}
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return err
	}
	opts.Ctx = cmd.Context()
	opts.Logger = a.log

	reg := prometheus.NewRegistry()
	m := metrics.NewSearchMetrics(reg)

	t0 := time.Now()
	res, err := search.Solve(g, start, a.cfg.Minutes, a.cfg.Agents, opts)
	elapsed := time.Since(t0)
	if err != nil {
		m.Fail(a.cfg.Agents, res, err)
		return fmt.Errorf("solve %s: %w", path, err)
	}
	m.Observe(a.cfg.Agents, res, elapsed)
	a.log.Info("search finished",
		zap.Int("reward", res.Reward),
		zap.Int("agents", a.cfg.Agents),
		zap.Int("minutes", a.cfg.Minutes),
		zap.Int64("expanded", res.Stats.Expanded),
		zap.Int64("pruned", res.Stats.Pruned),
		zap.Duration("elapsed", elapsed),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Reward)

	if sf.plan {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Minute\tAgent\tValve\tGain\n")
		for _, s := range res.Plan {
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", a.cfg.Minutes-s.MinutesLeft, s.Agent+1, s.Node, s.Gain)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if sf.metrics {
		families, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
				return err
			}
		}
	}

	return nil
}
