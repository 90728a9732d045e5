// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
)

// Thresholds are the cut points between color buckets. There is one
// more bucket than there are thresholds.
var Thresholds = []float64{0, 0.25, 0.5, 0.75, 1}

// NumBuckets is the number of color buckets.
const NumBuckets = 6

// DefaultPalette runs from yellow through orange to red.
var DefaultPalette = Palette{
	{0xf1, 0xc4, 0x0f, 0xff},
	{0xf3, 0x9c, 0x12, 0xff},
	{0xe6, 0x7e, 0x22, 0xff},
	{0xd3, 0x54, 0x00, 0xff},
	{0xe7, 0x4c, 0x3c, 0xff},
	{0xc0, 0x39, 0x2b, 0xff},
}

// Normalizer maps raw measurements onto [0, 1] relative to the
// dataset-wide [Min, Max] after a power transform with the given
// Exponent. An Exponent of 0 is treated as 1.
type Normalizer struct {
	Min, Max float64
	Exponent float64
}

func pow(x, k float64) float64 {
	if x < 0 {
		return -math.Pow(-x, k)
	}
	return math.Pow(x, k)
}

// Normalize returns v's position in [0, 1]. Values outside [Min, Max]
// are clamped. NaN values and degenerate ranges map to 0.
func (n Normalizer) Normalize(v float64) float64 {
	k := n.Exponent
	if k == 0 {
		k = 1
	}
	lo, hi := pow(n.Min, k), pow(n.Max, k)
	if math.IsNaN(v) || math.IsNaN(lo) || math.IsNaN(hi) || lo == hi {
		return 0
	}
	y := scale.Linear{Min: lo, Max: hi}.Map(pow(v, k))
	switch {
	case math.IsNaN(y), y < 0:
		return 0
	case y > 1:
		return 1
	}
	return y
}

// Denormalize returns the raw value that Normalize maps to x, for x
// in [0, 1].
func (n Normalizer) Denormalize(x float64) float64 {
	k := n.Exponent
	if k == 0 {
		k = 1
	}
	lo, hi := pow(n.Min, k), pow(n.Max, k)
	return pow(scale.Linear{Min: lo, Max: hi}.Unmap(x), 1/k)
}

// BucketIndex returns the color bucket of normalized value x. Values
// at or below the first threshold fall in bucket 0 and values at or
// above the last threshold fall in the final bucket. Between them, x
// falls in the bucket after the last threshold that is <= x.
func BucketIndex(x float64) int {
	switch {
	case math.IsNaN(x) || x <= Thresholds[0]:
		return 0
	case x >= Thresholds[len(Thresholds)-1]:
		return NumBuckets - 1
	}
	return sort.Search(len(Thresholds), func(i int) bool {
		return Thresholds[i] > x
	})
}

// Palette is a discrete set of bucket colors.
type Palette []color.RGBA

// Color returns the color of the bucket containing normalized value
// x. If p has fewer colors than there are buckets, the last color is
// repeated.
func (p Palette) Color(x float64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 0xff}
	}
	i := BucketIndex(x)
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}

// Map implements palette.Continuous.
func (p Palette) Map(x float64) color.Color {
	return p.Color(x)
}

// Gradient returns a continuous palette that blends between the
// colors of p.
func (p Palette) Gradient() palette.Continuous {
	return palette.RGBGradient{Colors: []color.RGBA(p)}
}
