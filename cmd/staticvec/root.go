package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/staticvec/internal/scenario"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "staticvec",
		Short: "Run fixed-capacity vector scenarios",
		Long: `staticvec drives the fixed-capacity Vector through scripted scenarios.

A scenario file (YAML or JSON) names a capacity, the initial contents and a list
of steps, each with the contents or error it must produce.

Examples:
  staticvec run testdata/insert_positions.yaml
  staticvec run --keep-going scenarios/
  staticvec capacities`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")

	root.AddCommand(newRunCmd(&cfgFile), newCapacitiesCmd())
	return root
}

func newRunCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE|DIR...",
		Short: "Run scenario files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runScenarios(cmd.OutOrStdout(), logger, cfg, args)
		},
	}
	cmd.Flags().Bool("keep-going", false, "run every step and scenario even after failures")
	return cmd
}

func newCapacitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacities",
		Short: "List the capacities scenarios may use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			caps := scenario.Capacities()
			parts := make([]string, len(caps))
			for i, c := range caps {
				parts[i] = fmt.Sprint(c)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
		},
	}
}

func collect(paths []string) ([]*scenario.Scenario, error) {
	var out []*scenario.Scenario
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			scs, err := scenario.LoadDir(p)
			if err != nil {
				return nil, err
			}
			out = append(out, scs...)
			continue
		}
		sc, err := scenario.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func runScenarios(w io.Writer, logger *zap.Logger, cfg Config, paths []string) error {
	scs, err := collect(paths)
	if err != nil {
		return err
	}

	r := scenario.NewRunner(scenario.WithLogger(logger), scenario.WithKeepGoing(cfg.KeepGoing))
	failed := 0
	for _, sc := range scs {
		res, err := r.Run(sc)
		if err == nil {
			fmt.Fprintf(w, "PASS %s (capacity %d, %d steps) %v\n", sc.Name, res.Capacity, len(res.Steps), res.Final)
			continue
		}

		failed++
		fmt.Fprintf(w, "FAIL %s: %v\n", sc.Name, err)
		if res != nil {
			for _, s := range res.Failed() {
				fmt.Fprintf(w, "  step %d %s: %s\n", s.Index, s.Op, s.Failure)
			}
		}
		if !cfg.KeepGoing {
			break
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scs))
	}
	if len(scs) == 0 {
		return errors.New("no scenarios found")
	}
	return nil
}
