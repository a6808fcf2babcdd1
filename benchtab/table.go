// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab loads benchmark result tables from CSV files and
// groups their rows for charting.
//
// A benchmark table has one row per measurement and at least the
// columns Namespace, Function, Type, Size and Time. Other columns are
// ignored. Grouping keeps distinct values in the order they first
// appear in the file, so charts follow the order of the input.
package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/pkg/errors"
)

// Required column names.
const (
	ColNamespace = "Namespace"
	ColFunction  = "Function"
	ColType      = "Type"
	ColSize      = "Size"
	ColTime      = "Time"
)

// Required lists the columns every benchmark table must carry.
var Required = []string{ColNamespace, ColFunction, ColType, ColSize, ColTime}

// ErrEmpty is returned when a table has no data rows.
var ErrEmpty = errors.New("table is empty")

// A Row is a single benchmark measurement.
type Row struct {
	Namespace string
	Function  string
	Type      string
	Size      int
	Time      float64
}

// A Table is an ordered sequence of benchmark rows loaded from one
// input file. A Table returned by Load or Read is never empty.
type Table struct {
	// Name is the input file's base name without its extension,
	// for example "benchmark_list".
	Name string

	// Path is the file the table was loaded from, if any.
	Path string

	t *table.Table
}

// A Group is the subset of a Table sharing one value of a column.
type Group struct {
	Label string
	Table *Table
}

// A Series is the mean Time at each Size for one Namespace.
// Sizes are ascending and Times[i] belongs to Sizes[i].
type Series struct {
	Namespace string
	Sizes     []int
	Times     []float64
}

// Name returns the table name for the file at path.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the benchmark table in the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open benchmark table")
	}
	defer f.Close()

	t, err := Read(Name(path), f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	t.Path = path
	return t, nil
}

// Read parses a benchmark table from CSV data in r. The first record
// is the header.
func Read(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "malformed CSV")
	}
	if len(records) < 2 {
		return nil, ErrEmpty
	}

	header := records[0]
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.TrimSpace(h)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	raw := table.TableFromStrings(header, records[1:], false)

	sizes, err := parseColumn(raw, ColSize, func(s string) (int, error) {
		v, err := parseFinite(s)
		if err != nil {
			return 0, err
		}
		if v < -intLimit || v >= intLimit {
			return 0, errors.New("out of range")
		}
		return int(v), nil
	})
	if err != nil {
		return nil, err
	}
	times, err := parseColumn(raw, ColTime, parseFinite)
	if err != nil {
		return nil, err
	}

	var b table.Builder
	for _, col := range []string{ColNamespace, ColFunction, ColType} {
		b.Add(col, raw.MustColumn(col))
	}
	b.Add(ColSize, sizes)
	b.Add(ColTime, times)
	return &Table{Name: name, t: b.Done()}, nil
}

func missingColumns(header []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, col := range Required {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}

// intLimit is the magnitude of the smallest int.
const intLimit = -float64(math.MinInt)

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// parseColumn converts the string column col of t with parse.
// Line numbers in errors count the header as line 1.
func parseColumn[T any](t *table.Table, col string, parse func(string) (T, error)) ([]T, error) {
	strs := t.MustColumn(col).([]string)
	out := make([]T, len(strs))
	for i, s := range strs {
		v, err := parse(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad %s %q", i+2, col, s)
		}
		out[i] = v
	}
	return out, nil
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.t.Len()
}

func (t *Table) strCol(col string) []string {
	return t.t.MustColumn(col).([]string)
}

func (t *Table) sizes() []int {
	return t.t.MustColumn(ColSize).([]int)
}

func (t *Table) times() []float64 {
	return t.t.MustColumn(ColTime).([]float64)
}

// Rows returns the rows of t in file order.
func (t *Table) Rows() []Row {
	ns, fn, typ := t.strCol(ColNamespace), t.strCol(ColFunction), t.strCol(ColType)
	sizes, times := t.sizes(), t.times()
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = Row{ns[i], fn[i], typ[i], sizes[i], times[i]}
	}
	return rows
}

// GroupBy splits t by the distinct values of the string column col.
// Groups are ordered by first appearance and each group keeps the
// relative order of its rows.
func (t *Table) GroupBy(col string) []Group {
	g := table.GroupBy(t.t, col)
	groups := make([]Group, 0, len(g.Tables()))
	for _, gid := range g.Tables() {
		groups = append(groups, Group{
			Label: fmt.Sprint(gid.Label()),
			Table: &Table{Name: t.Name, Path: t.Path, t: g.Table(gid)},
		})
	}
	return groups
}

// Distinct returns the distinct values of the string column col in
// order of first appearance.
func (t *Table) Distinct(col string) []string {
	return slice.Nub(t.strCol(col)).([]string)
}

// Sizes returns the distinct sizes in t in ascending order.
func (t *Table) Sizes() []int {
	sizes := append([]int(nil), slice.Nub(t.sizes()).([]int)...)
	sort.Ints(sizes)
	return sizes
}

// Series returns one Series per Namespace in t, in order of first
// appearance. Repeated measurements of a Namespace at the same Size
// are averaged.
func (t *Table) Series() []Series {
	means := ggstat.Agg(ColNamespace, ColSize)(ggstat.AggMean(ColTime)).F(t.t)
	flat := table.Flatten(table.SortBy(means, ColSize))

	out := make([]Series, 0)
	index := make(map[string]int)
	for _, ns := range t.Distinct(ColNamespace) {
		index[ns] = len(out)
		out = append(out, Series{Namespace: ns})
	}

	names := flat.MustColumn(ColNamespace).([]string)
	sizes := flat.MustColumn(ColSize).([]int)
	times := flat.MustColumn("mean " + ColTime).([]float64)
	for i, ns := range names {
		s := &out[index[ns]]
		s.Sizes = append(s.Sizes, sizes[i])
		s.Times = append(s.Times, times[i])
	}
	return out
}
