// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"image/color"
	"math"
	"reflect"
	"testing"
)

// testView has a 100x100 plot area with X on [0,100] and Y on
// [110,10].
func testView() View {
	return View{Width: 100, Height: 110, Fallback: 4, Exponent: 1}
}

func binnedData() *Data {
	return &Data{
		Headers: []string{"y", "x"},
		Points: []DataPoint{
			{Row: 0, X: Continuous{Num(15), 10, 20}, Y: Continuous{Num(5), 0, 10}, Value: 0},
			{Row: 1, X: Categorical{Num(50)}, Y: Categorical{Num(50)}, Value: 1},
		},
		Stats: Stats{X: &Bounds{0, 100}, Y: &Bounds{0, 100}},
	}
}

func checkCell(t *testing.T, c Cell, x, y, w, h float64) {
	t.Helper()
	if !near(c.X, x) || !near(c.Y, y) || !near(c.Width, w) || !near(c.Height, h) {
		t.Errorf("row %d cell = (%v,%v %vx%v); want (%v,%v %vx%v)",
			c.Point.Row, c.X, c.Y, c.Width, c.Height, x, y, w, h)
	}
}

func TestLayoutBinned(t *testing.T) {
	d := binnedData()
	v := testView().Resolve(d.Headers)
	p := Layout(d, v)

	if _, ok := p.X.(*Linear); !ok {
		t.Fatalf("X scale is %T; want *Linear", p.X)
	}
	if len(p.Cells) != 2 {
		t.Fatalf("got %d cells; want 2", len(p.Cells))
	}
	// Bins span their scaled bounds, offset by half the fallback.
	checkCell(t, p.Cells[0], 8, 98, 10, 10)
	// Non-bins get the fallback size.
	checkCell(t, p.Cells[1], 48, 58, 4, 4)

	if p.Cells[0].Fill != color.Color(DefaultPalette[0]) {
		t.Errorf("min cell fill = %v; want %v", p.Cells[0].Fill, DefaultPalette[0])
	}
	if p.Cells[1].Fill != color.Color(DefaultPalette[5]) {
		t.Errorf("max cell fill = %v; want %v", p.Cells[1].Fill, DefaultPalette[5])
	}
	if p.XLabel() != "x" || p.YLabel() != "y" {
		t.Errorf("labels = %q, %q; want x, y", p.XLabel(), p.YLabel())
	}
}

func TestLayoutCategorical(t *testing.T) {
	d := &Data{
		Headers: []string{"y", "x"},
		Points: []DataPoint{
			{Row: 0, X: Categorical{Str("a")}, Y: Categorical{Str("p")}, Value: 1},
			{Row: 1, X: Categorical{Str("b")}, Y: Categorical{Str("q")}, Value: 2},
			{Row: 2, X: Categorical{Str("a")}, Y: Categorical{Str("q")}, Value: 3},
		},
	}
	p := Layout(d, testView().Resolve(d.Headers))
	if _, ok := p.X.(*Point); !ok {
		t.Fatalf("X scale is %T; want *Point", p.X)
	}
	checkCell(t, p.Cells[0], -2, 108, 4, 4)
	checkCell(t, p.Cells[1], 98, 8, 4, 4)
	checkCell(t, p.Cells[2], -2, 8, 4, 4)
	if !near(p.Cells[1].Norm, 0.5) {
		t.Errorf("middle value normalized to %v; want 0.5", p.Cells[1].Norm)
	}
}

// A bin on an axis without bounds cannot be placed by its extent, so
// it is placed at its position with the fallback size.
func TestLayoutBinOnCategoricalAxis(t *testing.T) {
	d := &Data{
		Headers: []string{"y", "x"},
		Points: []DataPoint{
			{Row: 0, X: Continuous{Str("10-20"), 10, 20}, Y: Categorical{Str("p")}, Value: 1},
		},
	}
	p := Layout(d, testView().Resolve(d.Headers))
	checkCell(t, p.Cells[0], 48, 58, 4, 4)
}

func TestLayoutSwap(t *testing.T) {
	d := binnedData()
	v := testView().Resolve(d.Headers)
	p := Layout(d, v.SwapAxes())
	if p.XLabel() != "y" {
		t.Fatalf("swapped X label = %q; want y", p.XLabel())
	}
	// Row 0 now has X bin [0,10] and Y bin [10,20].
	checkCell(t, p.Cells[0], -2, 88, 10, 10)
	if d.Points[0].X.(Continuous).Min != 10 {
		t.Fatalf("Layout modified its input")
	}

	// Swapping twice restores the original layout.
	p2 := Layout(d, v.SwapAxes().SwapAxes())
	checkCell(t, p2.Cells[0], 8, 98, 10, 10)
}

// A point with no X position is not a category and is not drawn, even
// next to a real X of 0.
func TestLayoutMissingPosition(t *testing.T) {
	d := &Data{
		Headers: []string{"y", "x"},
		Points: []DataPoint{
			{Row: 0, X: Categorical{Num(0)}, Y: Categorical{Str("a")}, Value: 1},
			{Row: 1, Y: Categorical{Str("a")}, Value: 2},
			{Row: 2, X: Categorical{Num(5)}, Y: Categorical{Str("a")}, Value: 3},
		},
	}
	p := Layout(d, testView().Resolve(d.Headers))
	if got, want := p.X.(*Point).Domain(), []Value{Num(0), Num(5)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("X domain = %v; want %v", got, want)
	}
	checkCell(t, p.Cells[0], -2, 58, 4, 4)
	checkCell(t, p.Cells[2], 98, 58, 4, 4)
	if p.Cells[1].Visible() {
		t.Errorf("cell with missing X is visible at (%v,%v)", p.Cells[1].X, p.Cells[1].Y)
	}
}

func TestLayoutStatsValue(t *testing.T) {
	d := binnedData()
	d.Stats.Value = &Bounds{0, 4}
	p := Layout(d, testView().Resolve(d.Headers))
	if !near(p.Cells[1].Norm, 0.25) {
		t.Errorf("Norm = %v; want 0.25", p.Cells[1].Norm)
	}
}

func TestLayoutEmpty(t *testing.T) {
	d := &Data{}
	p := Layout(d, testView().Resolve(d.Headers))
	if len(p.Cells) != 0 {
		t.Fatalf("got %d cells for empty data", len(p.Cells))
	}
	if vb := d.ValueBounds(); !math.IsNaN(vb.Min) {
		t.Fatalf("ValueBounds of empty data = %v", vb)
	}
}

func TestCellVisible(t *testing.T) {
	d := &Data{
		Headers: []string{"y", "x"},
		Points: []DataPoint{
			{Row: 0, X: Categorical{Str("a")}, Y: Categorical{Num(1)}, Value: 1},
		},
		Stats: Stats{Y: &Bounds{0, 2}, X: &Bounds{0, 2}},
	}
	p := Layout(d, testView().Resolve(d.Headers))
	if p.Cells[0].Visible() {
		t.Fatalf("cell with non-numeric X on a linear axis is visible: %+v", p.Cells[0])
	}
}
