// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"math"
	"strconv"
)

// A Value is a coordinate on one axis of a heatmap. It is either a
// number or a string label.
type Value struct {
	num   float64
	str   string
	isStr bool
}

// Num returns a numeric Value.
func Num(x float64) Value {
	return Value{num: x}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{str: s, isStr: true}
}

// Missing returns the Value of a position that is not known. It is a
// NaN number: it is never a category and scales never place it.
func Missing() Value {
	return Num(math.NaN())
}

// IsMissing reports whether v is a missing position.
func (v Value) IsMissing() bool {
	return !v.isStr && math.IsNaN(v.num)
}

// IsNum reports whether v is numeric.
func (v Value) IsNum() bool {
	return !v.isStr
}

// Float returns v as a float64. String values that do not parse as
// numbers return NaN.
func (v Value) Float() float64 {
	if !v.isStr {
		return v.num
	}
	f, err := strconv.ParseFloat(v.str, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// String returns v as text. A missing Value is the empty string.
func (v Value) String() string {
	if v.isStr {
		return v.str
	}
	if math.IsNaN(v.num) {
		return ""
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// key returns a comparable form of v for indexing. Numbers and
// strings never collide. v must not be missing.
func (v Value) key() Value {
	if !v.isStr && v.num == 0 {
		// Fold -0 into 0.
		return Value{}
	}
	return v
}

// An AxisPoint is the position of a DataPoint along one axis. It is
// either a Continuous bin or a Categorical value.
type AxisPoint interface {
	// Pos returns the representative position of the point.
	Pos() Value

	axisPoint()
}

// Continuous is a bin [Min, Max] on a continuous axis. Value is the
// bin's representative position (typically its center or label).
type Continuous struct {
	Value    Value
	Min, Max float64
}

func (c Continuous) Pos() Value { return c.Value }
func (Continuous) axisPoint()   {}

// Categorical is a single discrete position on an axis.
type Categorical struct {
	Value Value
}

func (c Categorical) Pos() Value { return c.Value }
func (Categorical) axisPoint()   {}

// DataPoint is one measurement in a heatmap.
type DataPoint struct {
	// Row identifies the row of the underlying table this point
	// was produced from.
	Row int

	X, Y AxisPoint

	// Value is the measurement at (X, Y).
	Value float64
}

// Axis selects one axis of a DataPoint.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Of returns p's position on axis a. It never returns nil; a nil
// position is reported as a Categorical with a Missing value.
func (a Axis) Of(p DataPoint) AxisPoint {
	var ap AxisPoint
	if a == AxisY {
		ap = p.Y
	} else {
		ap = p.X
	}
	if ap == nil {
		return Categorical{Value: Missing()}
	}
	return ap
}

// Swap returns p with its X and Y positions exchanged.
func (p DataPoint) Swap() DataPoint {
	p.X, p.Y = p.Y, p.X
	return p
}
