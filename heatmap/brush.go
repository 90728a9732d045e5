// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"math"
	"sort"
)

// An Extent is a brushed rectangle in brush coordinates. On a Linear
// axis, brush coordinates are domain values. On any other axis, they
// are pixel offsets.
type Extent struct {
	X0, Y0, X1, Y1 float64
}

// Rect is a rectangle in plot-area pixels.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// BrushFromPixels converts the pixel rectangle r into an Extent for
// the scales xs and ys.
func BrushFromPixels(r Rect, xs, ys Scale) Extent {
	x0, x1 := toBrush(xs, r.X0), toBrush(xs, r.X1)
	y0, y1 := toBrush(ys, r.Y0), toBrush(ys, r.Y1)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Extent{x0, y0, x1, y1}
}

func toBrush(s Scale, px float64) float64 {
	if l, ok := s.(*Linear); ok {
		return l.Invert(px)
	}
	return px
}

// brushCoord returns the brush coordinate of ap on s.
func brushCoord(s Scale, ap AxisPoint) float64 {
	if _, ok := s.(*Linear); ok {
		return ap.Pos().Float()
	}
	return s.Map(ap.Pos())
}

// Contains reports whether brush coordinates (x, y) lie in e. The
// boundary is inside.
func (e Extent) Contains(x, y float64) bool {
	return x >= e.X0 && x <= e.X1 && y >= e.Y0 && y <= e.Y1
}

// A Selection is the set of brushed points, keyed by row.
type Selection map[int]DataPoint

// Rows returns the selected rows in increasing order.
func (s Selection) Rows() []int {
	rows := make([]int, 0, len(s))
	for r := range s {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// Points returns the selected points in row order.
func (s Selection) Points() []DataPoint {
	rows := s.Rows()
	points := make([]DataPoint, len(rows))
	for i, r := range rows {
		points[i] = s[r]
	}
	return points
}

// Select returns the points whose positions fall inside e. Points
// that cannot be placed on xs or ys are never selected.
func Select(points []DataPoint, xs, ys Scale, e Extent) Selection {
	sel := make(Selection)
	for _, p := range points {
		x, y := brushCoord(xs, AxisX.Of(p)), brushCoord(ys, AxisY.Of(p))
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		if e.Contains(x, y) {
			sel[p.Row] = p
		}
	}
	return sel
}

// Brush selects the points of p inside the pixel rectangle r. It
// returns an empty Selection if the View does not allow brushing.
func (p *Plot) Brush(r Rect) Selection {
	if !p.View.Brushable {
		return make(Selection)
	}
	return Select(p.Points, p.X, p.Y, BrushFromPixels(r, p.X, p.Y))
}
