// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"github.com/aclements/go-gg/table"
	"github.com/hepdata/hepvis/heatmap"
)

// Table returns the cells of p as a table with one row per point.
// Columns are named after the plot's axes.
func Table(p *heatmap.Plot) *table.Table {
	n := len(p.Cells)
	rows := make([]int, n)
	xs, ys := make([]string, n), make([]string, n)
	values, norms := make([]float64, n), make([]float64, n)
	buckets := make([]int, n)
	for i := range p.Cells {
		c := &p.Cells[i]
		labels := heatmap.Label(c.Point)
		rows[i] = c.Point.Row
		xs[i], ys[i] = labels[0], labels[1]
		values[i] = c.Point.Value
		norms[i] = c.Norm
		buckets[i] = heatmap.BucketIndex(c.Norm)
	}

	xcol, ycol := axisColumn(p.XLabel(), "x"), axisColumn(p.YLabel(), "y")
	if xcol == ycol {
		ycol += " (y)"
	}
	return new(table.Builder).
		Add("row", rows).
		Add(xcol, xs).
		Add(ycol, ys).
		Add("value", values).
		Add("normalized", norms).
		Add("bucket", buckets).
		Done()
}

func axisColumn(label, def string) string {
	switch label {
	case "", "row", "value", "normalized", "bucket":
		return def
	}
	return label
}
