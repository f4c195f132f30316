package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/FooBarShebang/statistics-lib-sub001/distributions"
	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/sample"
	"github.com/FooBarShebang/statistics-lib-sub001/stattests"
)

// demoConfig is the optional YAML configuration file.
type demoConfig struct {
	Tests     stattests.Config              `yaml:"tests"`
	Inversion distributions.InversionConfig `yaml:"inversion"`
	CSV       csvConfig                     `yaml:"csv"`
}

// csvConfig mirrors sample.CSVOptions with YAML friendly fields.
type csvConfig struct {
	ValueColumn string `yaml:"value_column"`
	ErrorColumn string `yaml:"error_column"`
	IDColumn    string `yaml:"id_column"`
	IDFilter    string `yaml:"id_filter"`
	Delimiter   string `yaml:"delimiter"`
	SkipRows    int    `yaml:"skip_rows"`
	NoHeader    bool   `yaml:"no_header"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Tests:     stattests.DefaultConfig(),
		Inversion: distributions.DefaultInversionConfig(),
		CSV:       csvConfig{ValueColumn: "value", Delimiter: ","},
	}
}

// loadConfig reads path over the defaults. An empty path gives the
// defaults.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c demoConfig) validate() error {
	if err := c.Tests.Validate(); err != nil {
		return err
	}
	if err := c.Inversion.Validate(); err != nil {
		return err
	}
	if len([]rune(c.CSV.Delimiter)) != 1 {
		return errkind.Valuef("csv delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	return nil
}

func (c csvConfig) options() *sample.CSVOptions {
	opts := sample.DefaultCSVOptions()
	opts.ValueColumn = c.ValueColumn
	opts.ErrorColumn = c.ErrorColumn
	opts.IDColumn = c.IDColumn
	opts.IDFilter = c.IDFilter
	opts.SkipRows = c.SkipRows
	opts.HasHeader = !c.NoHeader
	if r := []rune(c.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}

// installCSVFlags adds the flags that override the csv section of the
// configuration file.
func installCSVFlags(conf *csvConfig, flags *pflag.FlagSet) {
	flags.StringVar(&conf.ValueColumn, "column", conf.ValueColumn, "CSV column holding the values")
	flags.StringVar(&conf.ErrorColumn, "error-column", conf.ErrorColumn, "CSV column holding standard errors")
	flags.StringVar(&conf.IDColumn, "id-column", conf.IDColumn, "CSV column to filter rows on")
	flags.StringVar(&conf.IDFilter, "id", conf.IDFilter, "Keep only rows whose id column equals this value")
	flags.IntVar(&conf.SkipRows, "skip-rows", conf.SkipRows, "Rows to skip before the header")
	flags.BoolVar(&conf.NoHeader, "no-header", conf.NoHeader, "The CSV has no header row")
}

// applyCSVFlags copies the csv flags set on the command line over conf.
func applyCSVFlags(flags *pflag.FlagSet, set csvConfig, conf *csvConfig) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "column":
			conf.ValueColumn = set.ValueColumn
		case "error-column":
			conf.ErrorColumn = set.ErrorColumn
		case "id-column":
			conf.IDColumn = set.IDColumn
		case "id":
			conf.IDFilter = set.IDFilter
		case "skip-rows":
			conf.SkipRows = set.SkipRows
		case "no-header":
			conf.NoHeader = set.NoHeader
		}
	})
}
