// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gopkg.in/go-playground/colors.v1"
)

// deep is the default categorical palette of seaborn, which the
// original charts were drawn with.
var deep = []string{
	"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
	"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd",
}

var palette = mustPalette(deep)

func mustPalette(hexes []string) []color.Color {
	pal := make([]color.Color, len(hexes))
	for i, h := range hexes {
		hex, err := colors.ParseHEX(h)
		if err != nil {
			panic(err)
		}
		rgb := hex.ToRGB()
		pal[i] = color.NRGBA{rgb.R, rgb.G, rgb.B, 0xff}
	}
	return pal
}

var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	heavyCross{},
	draw.BoxGlyph{},
	draw.PlusGlyph{},
	triUp{},
	triDown{},
	draw.TriangleGlyph{},
	draw.PyramidGlyph{},
	draw.RingGlyph{},
}

type lineStyle struct {
	color color.Color
	glyph draw.GlyphDrawer
}

// A styler assigns each Namespace a fixed color and glyph, so a
// Namespace looks the same in every panel and chart of a table.
type styler struct {
	index map[string]int
}

func newStyler(namespaces []string) *styler {
	s := &styler{index: make(map[string]int, len(namespaces))}
	for _, ns := range namespaces {
		s.add(ns)
	}
	return s
}

func (s *styler) add(ns string) int {
	i, ok := s.index[ns]
	if !ok {
		i = len(s.index)
		s.index[ns] = i
	}
	return i
}

func (s *styler) style(ns string) lineStyle {
	i := s.add(ns)
	return lineStyle{
		color: palette[i%len(palette)],
		glyph: glyphs[i%len(glyphs)],
	}
}

const cosπover4 = vg.Length(.707106781202420)

// heavyCross is a glyph that draws a big X with a heavier stroke than
// draw.CrossGlyph.
type heavyCross struct{}

// DrawGlyph implements the Glyph interface.
func (heavyCross) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(2)})
	r := sty.Radius * cosπover4
	p := make(vg.Path, 0, 2)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	c.Stroke(p)
	p = p[:0]
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	c.Stroke(p)
}

// triUp and triDown draw a three-legged star pointing up or down.
type triUp struct{}

// DrawGlyph implements the Glyph interface.
func (triUp) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	drawTri(c, sty, pt, 1)
}

type triDown struct{}

// DrawGlyph implements the Glyph interface.
func (triDown) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	drawTri(c, sty, pt, -1)
}

func drawTri(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point, dir vg.Length) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius * cosπover4
	tip := vg.Point{X: pt.X, Y: pt.Y + dir*r}
	for _, foot := range []vg.Point{
		{X: pt.X - r, Y: pt.Y - dir*r},
		{X: pt.X + r, Y: pt.Y - dir*r},
	} {
		p := make(vg.Path, 0, 2)
		p.Move(foot)
		p.Line(tip)
		c.Stroke(p)
	}
	p := make(vg.Path, 0, 2)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	c.Stroke(p)
}
