// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot charts benchmark result tables and shows the charts in a
// slideshow.
//
// Usage:
//
//	benchplot [--pattern glob] [--out dir] [--dpi n] [--log level]
//
// Every file matching the pattern (benchmark_*.csv by default) must be
// a CSV table with the columns Namespace, Function, Type, Size and
// Time. For a table file T.csv, benchplot writes one chart per
// function F to plots/T/F/F.png, where ':' and '/' in F are replaced
// by '_'. Each chart has one panel per Type and one line per
// Namespace. All tables are loaded before any chart is written, so a
// bad table stops the run without touching plots/.
//
// Once the charts are written, a window shows them one at a time.
// The right and left arrow keys move forward and back, wrapping around
// at the ends, and escape closes the window.
//
// Benchplot exits with status 1 if no file matches the pattern or a
// table cannot be loaded.
package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/containerbench/benchplot/benchchart"
	"github.com/containerbench/benchplot/benchtab"
	"github.com/containerbench/benchplot/internal/conf"
	"github.com/containerbench/benchplot/internal/fyneview"
	"github.com/containerbench/benchplot/internal/texttab"
)

var log = logrus.New()

func main() {
	log.Out = os.Stderr

	loadDotEnv(".env", log)
	cfg, err := conf.Parse(os.Args[1:])
	if err != nil {
		fail(err)
	}
	log.SetLevel(cfg.LogLevel)

	images, err := generate(cfg, os.Stdout, log)
	if err != nil {
		fail(err)
	}
	if len(images) == 0 {
		log.Warn("no plots generated")
		return
	}

	present(images, fyneview.Run, log)
}

// loadDotEnv reads the optional env file at path. A file that cannot
// be read is reported and otherwise ignored.
func loadDotEnv(path string, log logrus.FieldLogger) {
	if err := conf.LoadDotEnv(path); err != nil {
		log.WithError(err).Warn("ignoring env file")
	}
}

// present runs the slideshow over images with show. An image that
// fails to load ends the slideshow but not the run: it is reported
// and the charts stay on disk.
func present(images []string, show func([]string) error, log logrus.FieldLogger) {
	log.Infof("launching slideshow of %d charts", len(images))
	if err := show(images); err != nil {
		log.WithError(err).Error("slideshow closed")
	}
}

// generate charts every table matching cfg.Pattern, writes a summary
// of the charts to out and returns the chart paths in order.
func generate(cfg *conf.Config, out io.Writer, log logrus.FieldLogger) ([]string, error) {
	files, err := filepath.Glob(cfg.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "bad input pattern %q", cfg.Pattern)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no %s files found", cfg.Pattern)
	}

	tables := make([]*benchtab.Table, 0, len(files))
	for _, file := range files {
		t, err := benchtab.Load(file)
		if err != nil {
			return nil, err
		}
		log.WithField("table", t.Name).Debugf("loaded %d rows from %s", t.Len(), file)
		tables = append(tables, t)
	}

	opts := benchchart.DefaultOptions()
	opts.Dir = cfg.Dir
	opts.DPI = cfg.DPI
	opts.Log = log

	var summary texttab.Table
	summary.Row().Cell("table").Cell("function").Cell("panels", texttab.Right).Cell("lines", texttab.Right).Cell("chart")

	var images []string
	for _, t := range tables {
		charts, err := benchchart.Generate(t, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "charting %s", t.Path)
		}
		log.Infof("plots saved for %q", t.Name)
		for _, c := range charts {
			summary.Row().
				Cell(c.Table).
				Cell(c.Function).
				Cell(strconv.Itoa(len(c.Types)), texttab.Right).
				Cell(strconv.Itoa(len(c.Namespaces)), texttab.Right).
				Cell(c.Path)
		}
		images = append(images, benchchart.Paths(charts)...)
	}

	if len(images) > 0 {
		if err := summary.Format(out); err != nil {
			return nil, errors.Wrap(err, "writing summary")
		}
	}
	return images, nil
}

func fail(err error) {
	log.Error(err)
	os.Exit(1)
}
