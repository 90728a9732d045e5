// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Stats are externally known extents of a dataset. A nil field means
// the extent is not known.
type Stats struct {
	// X and Y, if set, make the corresponding axis continuous.
	X, Y *Bounds

	// Value is the range of measurements. If nil, it is computed
	// from the data.
	Value *Bounds
}

// Swap returns s with the X and Y extents exchanged.
func (s Stats) Swap() Stats {
	s.X, s.Y = s.Y, s.X
	return s
}

// Data is a processed heatmap dataset.
type Data struct {
	// Headers are the names of the two independent variables.
	// Points are stored with Headers[1] on X and Headers[0] on Y.
	Headers []string

	Points []DataPoint

	Stats Stats
}

// Orient returns the points and stats of d arranged for v. If v plots
// the headers in the opposite orientation from the stored one, the X
// and Y positions of every point are exchanged.
func (d *Data) Orient(v View) ([]DataPoint, Stats) {
	if !v.swapped(d.Headers) {
		return d.Points, d.Stats
	}
	points := make([]DataPoint, len(d.Points))
	for i, p := range d.Points {
		points[i] = p.Swap()
	}
	return points, d.Stats.Swap()
}

// ValueBounds returns the range of measurements in d, preferring
// d.Stats.Value if it is set. NaN measurements are ignored. If there
// are no measurements, both bounds are NaN.
func (d *Data) ValueBounds() Bounds {
	if d.Stats.Value != nil {
		return *d.Stats.Value
	}
	xs := make([]float64, 0, len(d.Points))
	for _, p := range d.Points {
		if !math.IsNaN(p.Value) {
			xs = append(xs, p.Value)
		}
	}
	if len(xs) == 0 {
		return Bounds{math.NaN(), math.NaN()}
	}
	min, max := stats.Sample{Xs: xs}.Bounds()
	return Bounds{min, max}
}

// A Cell is the rectangle drawn for one DataPoint.
type Cell struct {
	Point DataPoint

	// X, Y, Width, and Height give the rectangle in plot-area
	// pixels. Width and Height may be negative if a bin's bounds
	// are reversed.
	X, Y, Width, Height float64

	// Norm is the normalized measurement.
	Norm float64

	Fill color.Color
}

// Visible reports whether c could be placed on the plot.
func (c *Cell) Visible() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y) && !math.IsNaN(c.Width) && !math.IsNaN(c.Height)
}

// Plot is a laid-out heatmap, ready to be handed to a renderer.
type Plot struct {
	View View

	// X and Y are the axis scales.
	X, Y Scale

	// Points are the points of the dataset in the orientation of
	// View.
	Points []DataPoint

	Cells []Cell

	Normalizer Normalizer
}

// Layout computes the scales and cell geometry of d under v. v must
// already be resolved against d's headers.
func Layout(d *Data, v View) *Plot {
	points, st := d.Orient(v)
	p := &Plot{
		View:   v,
		X:      ComputeAxisScale(points, AxisX, st.X, v.XRange()),
		Y:      ComputeAxisScale(points, AxisY, st.Y, v.YRange()),
		Points: points,
		Cells:  make([]Cell, len(points)),
	}
	vb := d.ValueBounds()
	p.Normalizer = Normalizer{Min: vb.Min, Max: vb.Max, Exponent: v.Exponent}

	colors := v.ColorMap()
	half := v.Fallback / 2
	for i, pt := range points {
		c := &p.Cells[i]
		c.Point = pt
		c.X, c.Width = place(p.X, AxisX.Of(pt), v.Fallback, false)
		c.Y, c.Height = place(p.Y, AxisY.Of(pt), v.Fallback, true)
		c.X -= half
		c.Y -= half
		c.Norm = p.Normalizer.Normalize(pt.Value)
		c.Fill = colors.Map(c.Norm)
	}
	return p
}

// place returns the starting pixel offset and extent of ap on s.
// Bins span the distance between their scaled bounds; anything else,
// including a bin whose bounds s cannot place, gets the fallback
// extent. If inverted, a bin starts at its Max, as on a Y axis.
func place(s Scale, ap AxisPoint, fallback float64, inverted bool) (start, extent float64) {
	if c, ok := ap.(Continuous); ok {
		lo, hi := s.Map(Num(c.Min)), s.Map(Num(c.Max))
		if !math.IsNaN(lo) && !math.IsNaN(hi) {
			if inverted {
				return hi, lo - hi
			}
			return lo, hi - lo
		}
	}
	return s.Map(ap.Pos()), fallback
}

// XLabel returns the title of the X axis.
func (p *Plot) XLabel() string { return p.View.XIndex }

// YLabel returns the title of the Y axis.
func (p *Plot) YLabel() string { return p.View.YIndex }
