// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/hepdata/hepvis/heatmap"
)

func testPlot(brushable bool) *heatmap.Plot {
	d := &heatmap.Data{
		Headers: []string{"SQRT(S)", "PT"},
		Points: []heatmap.DataPoint{
			{Row: 0, X: heatmap.Continuous{Value: heatmap.Num(15), Min: 10, Max: 20},
				Y: heatmap.Continuous{Value: heatmap.Num(5), Min: 0, Max: 10}, Value: 1},
			{Row: 1, X: heatmap.Categorical{Value: heatmap.Num(50)},
				Y: heatmap.Categorical{Value: heatmap.Num(50)}, Value: 3},
		},
		Stats: heatmap.Stats{X: &heatmap.Bounds{Min: 0, Max: 100}, Y: &heatmap.Bounds{Min: 0, Max: 100}},
	}
	v := heatmap.View{Width: 100, Height: 110, Fallback: 4, Brushable: brushable}
	return heatmap.Layout(d, v.Resolve(d.Headers))
}

func TestSVG(t *testing.T) {
	p := testPlot(true)
	brush := heatmap.Rect{X0: 0, Y0: 0, X1: 30, Y1: 110}
	var buf bytes.Buffer
	err := SVG(&buf, p, Options{Brush: &brush, Selection: p.Brush(brush)})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"<svg",
		`id="row-0"`,
		`id="row-1"`,
		"fill:#f1c40f; stroke:#F15D2F",
		"fill:#c0392b",
		"<title>10 to 20",
		">PT</text>",
		">SQRT(S)</text>",
		`class="brush"`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "fill:#c0392b; stroke") {
		t.Errorf("unselected cell is outlined:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSVGWriteError(t *testing.T) {
	if err := SVG(failWriter{}, testPlot(false), Options{}); err == nil {
		t.Fatal("SVG to a failing writer returned nil error")
	}
}

func TestRaster(t *testing.T) {
	img := Raster(testPlot(false), 2)
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 220 {
		t.Fatalf("raster bounds = %v; want 200x220", b)
	}
	// Row 0 occupies (8,98)-(18,108) at scale 1.
	if got, want := img.RGBAAt(26, 206), heatmap.DefaultPalette[0]; got != want {
		t.Errorf("pixel in row 0 = %v; want %v", got, want)
	}
	// Row 1 is a 4x4 cell at (48,58).
	if got, want := img.RGBAAt(100, 120), heatmap.DefaultPalette[5]; got != want {
		t.Errorf("pixel in row 1 = %v; want %v", got, want)
	}
	if got := img.RGBAAt(60, 60); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("background pixel = %v; want white", got)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testPlot(false), 3); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 110 {
		t.Fatalf("PNG bounds = %v; want 100x110", b)
	}
	r, g, b, _ := img.At(13, 103).RGBA()
	want := heatmap.DefaultPalette[0]
	near8 := func(got uint32, want uint8) bool {
		d := int(got>>8) - int(want)
		return -1 <= d && d <= 1
	}
	if !near8(r, want.R) || !near8(g, want.G) || !near8(b, want.B) {
		t.Errorf("pixel in row 0 = %v; want %v", img.At(13, 103), want)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testPlot(false), 10, 5); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// A title, 5 rows, and 6 legend lines.
	if n := strings.Count(out, "\n"); n != 12 {
		t.Errorf("text output has %d lines; want 12:\n%s", n, out)
	}
	if !strings.HasPrefix(out, "SQRT(S) (y) vs PT (x)\n") {
		t.Errorf("text output has wrong title:\n%s", out)
	}
	if got := strings.Count(out, "▀"); got != 50 {
		t.Errorf("text output has %d blocks; want 50", got)
	}
	for _, want := range []string{"<= 1\n", ">= 3\n", "1.5 to 2\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("legend missing %q:\n%s", want, out)
		}
	}

	if err := Text(&buf, testPlot(false), 0, 5); err == nil {
		t.Errorf("Text with no columns succeeded")
	}
}
