// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/containerbench/benchplot/benchtab"
)

const (
	titleSize = vg.Length(16)
	titlePad  = vg.Length(6)
	lineWidth = vg.Length(1.5)
	pointRad  = vg.Length(3)
)

// A figure is a row of panels under a common title.
type figure struct {
	title      string
	panels     []*plot.Plot
	types      []string
	namespaces []string
}

// newFigure builds one panel per Type in t.
func newFigure(title string, t *benchtab.Table, st *styler) (*figure, error) {
	f := &figure{title: title}
	seen := make(map[string]bool)
	for i, typ := range t.GroupBy(benchtab.ColType) {
		p, series, err := newPanel(typ.Label, typ.Table, st)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %s", typ.Label)
		}
		if i == 0 {
			p.Y.Label.Text = "Time (s)"
		}
		f.panels = append(f.panels, p)
		f.types = append(f.types, typ.Label)
		for _, s := range series {
			if !seen[s.Namespace] {
				seen[s.Namespace] = true
				f.namespaces = append(f.namespaces, s.Namespace)
			}
		}
	}
	shareY(f.panels)
	return f, nil
}

// newPanel plots Time against Size labels for each Namespace in t.
func newPanel(title string, t *benchtab.Table, st *styler) (*plot.Plot, []benchtab.Series, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Size"
	p.Add(plotter.NewGrid())

	// Sizes are nominal: the i'th distinct size is drawn at x=i.
	sizes := t.Sizes()
	xpos := make(map[int]float64, len(sizes))
	for i, n := range sizes {
		xpos[n] = float64(i)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Add(benchtab.ColNamespace)

	series := t.Series()
	for _, s := range series {
		xys := make(plotter.XYs, len(s.Sizes))
		for i := range s.Sizes {
			xys[i].X = xpos[s.Sizes[i]]
			xys[i].Y = s.Times[i]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "namespace %s", s.Namespace)
		}
		sty := st.style(s.Namespace)
		line.Color = sty.color
		line.Width = lineWidth
		points.Color = sty.color
		points.Shape = sty.glyph
		points.Radius = pointRad

		p.Add(line, points)
		p.Legend.Add(s.Namespace, line, points)
	}

	p.NominalX(benchtab.SizeLabels(sizes)...)
	return p, series, nil
}

// shareY gives every panel the union of their Y ranges.
func shareY(panels []*plot.Plot) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, p := range panels {
		min = math.Min(min, p.Y.Min)
		max = math.Max(max, p.Y.Max)
	}
	for _, p := range panels {
		p.Y.Min, p.Y.Max = min, max
	}
}

// draw lays out the title and the panels on dc.
func (f *figure) draw(dc draw.Canvas) {
	sty := f.panels[0].Title.TextStyle
	sty.Font.Size = titleSize
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - titlePad}, f.title)

	body := draw.Crop(dc, 0, 0, 0, -(sty.Height(f.title) + 2*titlePad))
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(f.panels),
		PadX:      vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{f.panels}, tiles, body)
	for i, p := range f.panels {
		p.Draw(canvases[0][i])
	}
}

// save renders f as a PNG at path, creating its directory.
func (f *figure) save(path string, opts Options) error {
	width := opts.PanelWidth * vg.Length(len(f.panels))
	c := vgimg.NewWith(
		vgimg.UseWH(width, opts.Height),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	f.draw(draw.New(c))

	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return errors.Wrap(err, "creating chart directory")
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating chart file")
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(out.Close(), "writing %s", path)
}
