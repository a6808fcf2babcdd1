// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containerbench/benchplot/benchtab"
)

const listCSV = `Namespace,Function,Type,Size,Time
std,push_back,int,1000,0.0010
std,push_back,int,10000,0.0100
ft,push_back,int,1000,0.0012
ft,push_back,int,10000,0.0130
std,push_back,Point,1000,0.0020
ft,push_back,Point,1000,0.0024
std,push_back,Point,10000,0.0200
ft,push_back,Point,10000,0.0250
std,list::sort,int,1000,0.0050
ft,list::sort,int,1000,0.0060
std,list::sort,int,1000,0.0070
std,iter/begin,int,10,0.0001
std,iter/begin,Point,10,0.0002
std,iter/begin,string,10,0.0003
`

func readTable(t *testing.T, name, data string) *benchtab.Table {
	t.Helper()
	tab, err := benchtab.Read(name, strings.NewReader(data))
	require.NoError(t, err)
	return tab
}

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.Dir = t.TempDir()
	return opts
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestSafeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"push_back", "push_back"},
		{"list:sort", "list_sort"},
		{"Foo::Bar", "Foo__Bar"},
		{"a/b", "a_b"},
		{"a:/b", "a__b"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, SafeName(test.in), "SafeName(%q)", test.in)
	}
}

func TestChartPath(t *testing.T) {
	got := ChartPath("plots", "benchmark_list", "list::sort")
	assert.Equal(t, filepath.Join("plots", "benchmark_list", "list__sort", "list__sort.png"), got)
}

func TestGenerate(t *testing.T) {
	opts := testOptions(t)
	tab := readTable(t, "benchmark_list", listCSV)

	charts, err := Generate(tab, opts)
	require.NoError(t, err)
	require.Len(t, charts, 3)

	want := []struct {
		fn    string
		types []string
	}{
		{"push_back", []string{"int", "Point"}},
		{"list::sort", []string{"int"}},
		{"iter/begin", []string{"int", "Point", "string"}},
	}
	for i, w := range want {
		c := charts[i]
		assert.Equal(t, "benchmark_list", c.Table)
		assert.Equal(t, w.fn, c.Function)
		assert.Equal(t, w.types, c.Types)
		assert.Equal(t, ChartPath(opts.Dir, "benchmark_list", w.fn), c.Path)

		// One 6in panel per type at 100 dpi, 5in high.
		width, height := pngSize(t, c.Path)
		assert.Equal(t, 600*len(w.types), width, "width of %s", c.Path)
		assert.Equal(t, 500, height, "height of %s", c.Path)
	}
	assert.Equal(t, []string{"std", "ft"}, charts[0].Namespaces)
	assert.Equal(t, []string{"std"}, charts[2].Namespaces)

	files, err := filepath.Glob(filepath.Join(opts.Dir, "benchmark_list", "*", "*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestGenerateIdempotent(t *testing.T) {
	opts := testOptions(t)
	tab := readTable(t, "benchmark_deque", listCSV)

	first, err := Generate(tab, opts)
	require.NoError(t, err)
	second, err := Generate(tab, opts)
	require.NoError(t, err)
	assert.Equal(t, Paths(first), Paths(second))

	files, err := filepath.Glob(filepath.Join(opts.Dir, "benchmark_deque", "*", "*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestGenerateCollision(t *testing.T) {
	const data = `Namespace,Function,Type,Size,Time
std,A:B,int,1,1
std,A/B,int,1,2
std,A/B,Point,1,2
`
	opts := testOptions(t)
	charts, err := Generate(readTable(t, "t", data), opts)
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "A/B", charts[0].Function)

	width, _ := pngSize(t, charts[0].Path)
	assert.Equal(t, 1200, width)
}

func TestNewFigure(t *testing.T) {
	tab := readTable(t, "benchmark_list", listCSV)
	fns := tab.GroupBy(benchtab.ColFunction)
	styles := newStyler(tab.Distinct(benchtab.ColNamespace))

	fig, err := newFigure("benchmark_list::push_back()", fns[0].Table, styles)
	require.NoError(t, err)
	require.Len(t, fig.panels, 2)

	assert.Equal(t, "int", fig.panels[0].Title.Text)
	assert.Equal(t, "Point", fig.panels[1].Title.Text)
	assert.Equal(t, "Time (s)", fig.panels[0].Y.Label.Text)
	assert.Equal(t, "", fig.panels[1].Y.Label.Text)
	assert.Equal(t, "Size", fig.panels[1].X.Label.Text)

	// The Y axis is shared.
	assert.Equal(t, fig.panels[0].Y.Min, fig.panels[1].Y.Min)
	assert.Equal(t, fig.panels[0].Y.Max, fig.panels[1].Y.Max)
	assert.InDelta(t, 0.001, fig.panels[0].Y.Min, 1e-12)
	assert.InDelta(t, 0.025, fig.panels[0].Y.Max, 1e-12)
}

func TestStyler(t *testing.T) {
	s := newStyler([]string{"std", "ft"})
	assert.Equal(t, s.style("std"), s.style("std"))
	assert.NotEqual(t, s.style("std").color, s.style("ft").color)

	// Unknown namespaces get the next free style.
	third := s.style("boost")
	assert.Equal(t, palette[2], third.color)
	assert.Equal(t, palette[0], s.style("std").color)
}

func TestPalette(t *testing.T) {
	require.Len(t, palette, len(deep))
	r, g, b, a := palette[0].RGBA()
	assert.Equal(t, []uint32{0x4c4c, 0x7272, 0xb0b0, 0xffff}, []uint32{r, g, b, a})
}
