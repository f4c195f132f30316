package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/statistics"
	"github.com/FooBarShebang/statistics-lib-sub001/stattests"
)

type testOptions struct {
	mean  float64
	sigma float64
	mode  string
	level float64
	lags  int
	fitdf int
}

// testFiles is the number of input files of each test kind.
var testFiles = map[string]int{
	"z": 1, "t": 1, "chi2": 1, "ljungbox": 1, "boxpierce": 1,
	"f": 2, "unpaired": 2, "welch": 2, "paired": 2,
}

func newTestCommand(root *rootOptions) *cobra.Command {
	opts := testOptions{sigma: 1, mode: "two-sided", lags: 10}

	cmd := &cobra.Command{
		Use:   "test KIND FILE [FILE]",
		Short: "Run a hypothesis test (z, t, chi2, ljungbox, boxpierce, f, unpaired, welch, paired)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg.Tests
			if cmd.Flags().Changed("level") {
				cfg.ConfidenceLevel = opts.level
			}
			mode, err := stattests.ParseMode(opts.mode)
			if err != nil {
				return err
			}
			r, err := runTest(root, strings.ToLower(args[0]), args[1:], opts, mode, cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), r.Report())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.mean, "mean", opts.mean, "Population mean under the null hypothesis")
	flags.Float64Var(&opts.sigma, "sigma", opts.sigma, "Population sigma for the z and chi2 tests")
	flags.StringVar(&opts.mode, "mode", opts.mode, "Alternative hypothesis: two-sided, greater or less")
	flags.Float64Var(&opts.level, "level", 0.95, "Confidence level, overrides the configuration file")
	flags.IntVar(&opts.lags, "lags", opts.lags, "Lags for the ljungbox and boxpierce tests")
	flags.IntVar(&opts.fitdf, "fitdf", 0, "Fitted parameters subtracted from the ljungbox and boxpierce degrees of freedom")
	return cmd
}

func runTest(root *rootOptions, kind string, files []string, opts testOptions, mode stattests.Mode, cfg stattests.Config) (*stattests.TestResult, error) {
	want, ok := testFiles[kind]
	if !ok {
		return nil, errkind.Valuef("unknown test %q", kind)
	}
	if len(files) != want {
		return nil, errkind.Valuef("test %q takes %d file(s), got %d", kind, want, len(files))
	}

	samples := make([]*statistics.Statistics1D, len(files))
	for i, f := range files {
		s, err := root.load(f)
		if err != nil {
			return nil, err
		}
		if samples[i], err = statistics.FromSequence(s); err != nil {
			return nil, err
		}
	}

	switch kind {
	case "z":
		return stattests.ZTest(samples[0], opts.mean, opts.sigma, mode, cfg)
	case "t":
		return stattests.TTest(samples[0], opts.mean, mode, cfg)
	case "chi2":
		return stattests.ChiSquaredTest(samples[0], opts.sigma, mode, cfg)
	case "ljungbox":
		return stattests.LjungBox(samples[0], opts.lags, opts.fitdf, cfg)
	case "boxpierce":
		return stattests.BoxPierce(samples[0], opts.lags, opts.fitdf, cfg)
	case "f":
		return stattests.FTest(samples[0], samples[1], mode, cfg)
	case "unpaired":
		return stattests.UnpairedTTest(samples[0], samples[1], mode, cfg)
	case "welch":
		return stattests.WelchTTest(samples[0], samples[1], mode, cfg)
	case "paired":
		x, y := samples[0], samples[1]
		p, err := statistics.NewStatistics2D(x.Data(), y.Data())
		if err != nil {
			return nil, err
		}
		p.SetName(x.Name() + " / " + y.Name())
		return stattests.PairedTTest(p, mode, cfg)
	}
	return nil, errkind.Valuef("unknown test %q", kind)
}
