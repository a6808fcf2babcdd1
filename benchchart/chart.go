// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders benchmark tables as line charts.
//
// Generate writes one PNG per benchmarked function. Each chart has one
// panel per Type of that function, plotting the mean Time against Size
// with one line per Namespace. Panels share their Y range so the
// variants of a function can be compared at a glance.
package benchchart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/containerbench/benchplot/benchtab"
)

// Options control where and how charts are written.
type Options struct {
	// Dir is the root output directory. Charts for a table named
	// T are written below Dir/T.
	Dir string

	// DPI is the resolution of the PNG images.
	DPI int

	// PanelWidth is the width of one panel; a chart is
	// PanelWidth times its number of panels wide.
	PanelWidth vg.Length

	// Height is the height of a chart.
	Height vg.Length

	// Log receives progress and warnings. If nil, the logrus
	// standard logger is used.
	Log logrus.FieldLogger
}

// DefaultOptions returns the options used by the benchplot command.
func DefaultOptions() Options {
	return Options{
		Dir:        "plots",
		DPI:        100,
		PanelWidth: 6 * vg.Inch,
		Height:     5 * vg.Inch,
	}
}

func (o Options) log() logrus.FieldLogger {
	if o.Log == nil {
		return logrus.StandardLogger()
	}
	return o.Log
}

// A Chart describes one image written by Generate.
type Chart struct {
	// Table is the name of the source table.
	Table string

	// Function is the benchmarked function the chart shows.
	Function string

	// Types holds the panel titles, left to right.
	Types []string

	// Namespaces holds the lines drawn, in legend order of
	// first appearance across all panels.
	Namespaces []string

	// Path is the PNG file.
	Path string
}

var unsafeChars = strings.NewReplacer(":", "_", "/", "_")

// SafeName returns fn with every ':' and '/' replaced by '_', so it can
// be used as a single path element.
func SafeName(fn string) string {
	return unsafeChars.Replace(fn)
}

// TableDir returns the directory that holds the charts of table name.
func TableDir(root, name string) string {
	return filepath.Join(root, name)
}

// ChartPath returns the image path for function fn of table name.
func ChartPath(root, name, fn string) string {
	safe := SafeName(fn)
	return filepath.Join(TableDir(root, name), safe, safe+".png")
}

// Generate writes one chart per distinct Function of t, in order of
// first appearance, and returns them. Existing files are overwritten.
//
// Functions whose names sanitize to the same path overwrite each
// other; the last one wins and only it is returned.
func Generate(t *benchtab.Table, opts Options) ([]Chart, error) {
	log := opts.log().WithField("table", t.Name)

	if err := os.MkdirAll(TableDir(opts.Dir, t.Name), 0777); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	styles := newStyler(t.Distinct(benchtab.ColNamespace))

	var charts []Chart
	byPath := make(map[string]int)
	for _, fn := range t.GroupBy(benchtab.ColFunction) {
		path := ChartPath(opts.Dir, t.Name, fn.Label)

		fig, err := newFigure(t.Name+"::"+fn.Label+"()", fn.Table, styles)
		if err != nil {
			return nil, errors.Wrapf(err, "charting %s", fn.Label)
		}
		if err := fig.save(path, opts); err != nil {
			return nil, err
		}
		log.WithField("function", fn.Label).Debugf("wrote %s", path)

		c := Chart{
			Table:      t.Name,
			Function:   fn.Label,
			Types:      fig.types,
			Namespaces: fig.namespaces,
			Path:       path,
		}
		if i, ok := byPath[path]; ok {
			log.Warnf("function %q overwrites chart of %q at %s", fn.Label, charts[i].Function, path)
			charts[i] = c
			continue
		}
		byPath[path] = len(charts)
		charts = append(charts, c)
	}
	return charts, nil
}

// Paths returns the image paths of charts.
func Paths(charts []Chart) []string {
	paths := make([]string, len(charts))
	for i, c := range charts {
		paths[i] = c.Path
	}
	return paths
}
