// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// A PixelRange is the output interval of a Scale. Lo may be greater
// than Hi, in which case the scale is inverted (as for a Y axis whose
// origin is at the bottom of the plot).
type PixelRange struct {
	Lo, Hi float64
}

func (r PixelRange) String() string {
	return fmt.Sprintf("[%g,%g]", r.Lo, r.Hi)
}

// A Scale maps axis values to pixel offsets.
//
// Scales are immutable once constructed.
type Scale interface {
	// Map returns the pixel offset of v. It returns NaN if v
	// cannot be placed on this scale.
	Map(v Value) float64

	// Range returns the output interval of this scale.
	Range() PixelRange

	// Ticks returns at most max major tick positions in the
	// domain of the scale, along with their labels.
	Ticks(max int) ([]Value, []string)
}

// Linear is a continuous Scale that maps the numeric interval
// [Min, Max] linearly onto its PixelRange.
type Linear struct {
	Min, Max float64
	PixelRange
}

// NewLinear returns a Linear scale mapping [min, max] onto px.
func NewLinear(min, max float64, px PixelRange) *Linear {
	return &Linear{min, max, px}
}

func (s *Linear) String() string {
	return fmt.Sprintf("linear [%g,%g] => %s", s.Min, s.Max, s.PixelRange)
}

func (s *Linear) get() scale.Linear {
	return scale.Linear{Min: s.Min, Max: s.Max}
}

func (s *Linear) Map(v Value) float64 {
	x := v.Float()
	if math.IsNaN(x) {
		return math.NaN()
	}
	if s.Min == s.Max {
		return s.Lo
	}
	return s.Lo + s.get().Map(x)*(s.Hi-s.Lo)
}

// Invert returns the domain value that maps to pixel offset px.
func (s *Linear) Invert(px float64) float64 {
	if s.Lo == s.Hi {
		return s.Min
	}
	return s.get().Unmap((px - s.Lo) / (s.Hi - s.Lo))
}

func (s *Linear) Range() PixelRange {
	return s.PixelRange
}

func (s *Linear) Ticks(max int) ([]Value, []string) {
	if s.Min == s.Max || math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return nil, nil
	}
	ls := s.get()
	if ls.Min > ls.Max {
		ls.Min, ls.Max = ls.Max, ls.Min
	}
	major, _ := ls.Ticks(scale.TickOptions{Max: max})
	ticks := make([]Value, len(major))
	labels := make([]string, len(major))
	for i, x := range major {
		ticks[i] = Num(x)
		labels[i] = fmt.Sprintf("%.6g", x)
	}
	return ticks, labels
}

// Point is a categorical Scale that places a finite, ordered set of
// values at evenly spaced offsets spanning its PixelRange. The first
// value maps to Lo and the last to Hi. A single value maps to the
// middle of the range.
type Point struct {
	domain []Value
	pos    []float64
	index  map[Value]int
	px     PixelRange
}

// NewPoint returns a Point scale over domain. Duplicate and missing
// values in domain are dropped; the first occurrence fixes each
// value's order.
func NewPoint(domain []Value, px PixelRange) *Point {
	s := &Point{index: make(map[Value]int), px: px}
	for _, v := range domain {
		if v.IsMissing() {
			continue
		}
		k := v.key()
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = len(s.domain)
		s.domain = append(s.domain, v)
	}

	switch n := len(s.domain); n {
	case 0:
	case 1:
		s.pos = []float64{(px.Lo + px.Hi) / 2}
	default:
		s.pos = vec.Linspace(px.Lo, px.Hi, n)
		// Pin the ends so the scale covers the range exactly.
		s.pos[0], s.pos[n-1] = px.Lo, px.Hi
	}
	return s
}

func (s *Point) String() string {
	return fmt.Sprintf("point %v => %s", s.domain, s.px)
}

// Domain returns the values of s in order.
func (s *Point) Domain() []Value {
	return append([]Value(nil), s.domain...)
}

// Step returns the distance between adjacent values.
func (s *Point) Step() float64 {
	if len(s.pos) < 2 {
		return 0
	}
	return s.pos[1] - s.pos[0]
}

func (s *Point) Map(v Value) float64 {
	if v.IsMissing() {
		return math.NaN()
	}
	i, ok := s.index[v.key()]
	if !ok {
		return math.NaN()
	}
	return s.pos[i]
}

func (s *Point) Range() PixelRange {
	return s.px
}

// Ticks returns every value in the domain. Categorical axes label
// each category, so max is ignored.
func (s *Point) Ticks(max int) ([]Value, []string) {
	labels := make([]string, len(s.domain))
	for i, v := range s.domain {
		labels[i] = v.String()
	}
	return s.Domain(), labels
}
