// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

// Bounds is a known [Min, Max] extent of an axis.
type Bounds struct {
	Min, Max float64
}

// ComputeAxisScale returns the Scale for axis a of points.
//
// If override is non-nil, the axis is continuous and the result is a
// Linear scale from override onto px, regardless of the data.
// Otherwise the axis is categorical and the result is a Point scale
// over the distinct positions of points on a, in the order they are
// first seen. If points is empty, the Point scale is empty and maps
// every value to NaN.
func ComputeAxisScale(points []DataPoint, a Axis, override *Bounds, px PixelRange) Scale {
	if override != nil {
		return NewLinear(override.Min, override.Max, px)
	}
	domain := make([]Value, len(points))
	for i, p := range points {
		domain[i] = a.Of(p).Pos()
	}
	return NewPoint(domain, px)
}
