package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FooBarShebang/statistics-lib-sub001/distributions"
	"github.com/FooBarShebang/statistics-lib-sub001/sample"
)

type rootOptions struct {
	configFile string
	verbose    bool
	csvFlags   csvConfig
	cfg        demoConfig
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{cfg: defaultConfig(), csvFlags: defaultConfig().CSV}

	cmd := &cobra.Command{
		Use:           "statdemo",
		Short:         "Descriptive statistics, hypothesis tests and distributions on CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log numeric details to stderr")
	installCSVFlags(&opts.csvFlags, flags)

	cmd.AddCommand(
		newDescribeCommand(opts),
		newTestCommand(opts),
		newDistCommand(opts),
	)
	return cmd
}

// setup loads the configuration, applies flag overrides and installs the
// logger and inversion defaults in the library.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configFile)
	if err != nil {
		return err
	}
	applyCSVFlags(cmd.Flags(), o.csvFlags, &cfg.CSV)
	if err := cfg.validate(); err != nil {
		return err
	}
	o.cfg = cfg

	if o.verbose {
		o.logger, err = zap.NewDevelopment()
	} else {
		o.logger, err = zap.NewProduction(zap.IncreaseLevel(zap.WarnLevel))
	}
	if err != nil {
		return err
	}
	distributions.SetLogger(o.logger)
	if err := distributions.SetDefaultInversionConfig(cfg.Inversion); err != nil {
		return err
	}
	o.logger.Debug("configuration loaded",
		zap.String("file", o.configFile),
		zap.Float64("confidence_level", cfg.Tests.ConfidenceLevel),
		zap.String("value_column", cfg.CSV.ValueColumn))
	return nil
}

// load reads a sample from a CSV file using the csv settings.
func (o *rootOptions) load(path string) (*sample.Sample, error) {
	s, err := sample.LoadCSV(path, o.cfg.CSV.options())
	if err != nil {
		return nil, err
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	o.logger.Debug("sample loaded",
		zap.String("file", path),
		zap.Int("n", s.Len()),
		zap.Bool("uncertainty", s.HasUncertainty()))
	return s, nil
}
