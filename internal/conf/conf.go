// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conf reads benchplot's configuration.
//
// Every option is a command line flag that can also be set through an
// environment variable named BENCHPLOT_<FLAG>. Variables may be kept
// in a .env file in the working directory. With no flags and no
// environment the defaults chart benchmark_*.csv into plots/.
package conf

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "BENCHPLOT_"

const help = `Chart benchmark tables and browse the charts.

benchplot reads every CSV file matching the input pattern, writes one
line chart per benchmarked function under the output directory and
then opens a slideshow of the charts. Use the left and right arrow keys
to move between charts and escape to quit.`

// Config holds the resolved options.
type Config struct {
	// Pattern is the glob of input tables.
	Pattern string

	// Dir is the output directory.
	Dir string

	// DPI is the chart resolution.
	DPI int

	// LogLevel is the logrus level for the run.
	LogLevel logrus.Level
}

func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// LoadDotEnv adds the variables in the env file at path to the
// environment, without overriding variables that are already set. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(err, "reading %s", path)
}

// Parse resolves the configuration from args and the environment.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("benchplot", help)
	cfg := &Config{}

	app.Flag("pattern", "Glob matching the benchmark tables to chart.").
		Default("benchmark_*.csv").Envar(envName("pattern")).StringVar(&cfg.Pattern)
	app.Flag("out", "Directory to write charts into.").
		Default("plots").Envar(envName("out")).StringVar(&cfg.Dir)
	app.Flag("dpi", "Resolution of the chart images.").
		Default("100").Envar(envName("dpi")).IntVar(&cfg.DPI)
	level := app.Flag("log", "Log level: debug, info, warn, error.").
		Default("info").Envar(envName("log")).String()

	if _, err := app.Parse(args); err != nil {
		return nil, errors.Wrap(err, "could not parse command line flags")
	}

	var err error
	cfg.LogLevel, err = logrus.ParseLevel(*level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level failed")
	}
	if cfg.DPI <= 0 {
		return nil, errors.Errorf("dpi must be positive, got %d", cfg.DPI)
	}
	if cfg.Pattern == "" {
		return nil, errors.New("empty input pattern")
	}
	return cfg, nil
}
