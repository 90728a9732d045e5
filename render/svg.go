// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws laid-out heatmaps.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/hepdata/hepvis/heatmap"
)

// Options control the decoration of a rendered heatmap.
type Options struct {
	// Brush, if non-nil, is the brushed rectangle in plot-area
	// pixels. It is drawn on top of the cells.
	Brush *heatmap.Rect

	// Selection is the set of brushed points. Their cells are
	// outlined.
	Selection heatmap.Selection

	// MaxTicks is the maximum number of ticks on a continuous
	// axis. If 0, it is chosen from the axis length.
	MaxTicks int
}

const (
	selectedStroke = "#F15D2F"
	axisStyle      = "stroke:#888; stroke-width:1; fill:none"
	tickLen        = 6
	tickPad        = 2
)

// SVG writes p to w as an SVG image.
func SVG(w io.Writer, p *heatmap.Plot, o Options) error {
	ew := &errWriter{w: w}
	v := p.View
	width, height := round(v.Width), round(v.Height)

	canvas := svg.New(ew)
	canvas.Start(width, height, `font-size="10px" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`)
	canvas.Group(fmt.Sprintf(`transform="translate(%d,%d)"`, round(v.Margins.Left), round(v.Margins.Top)))
	canvas.Rect(0, 0, width, height, "fill:rgba(1,1,1,0)")

	// Axes.
	xr, yr := p.X.Range(), p.Y.Range()
	canvas.Group(fmt.Sprintf(`class="x axis" transform="translate(0,%d)"`, round(v.Height-v.Margins.Bottom-v.Margins.Top)))
	renderAxis(canvas, 'x', p.X, maxTicks(o, xr))
	canvas.Gend()
	canvas.Text(round(v.Width/2), round(v.Height-10), p.XLabel(), `class="axis_text" text-anchor="middle"`)

	canvas.Group(`class="y axis" transform="translate(-4,0)"`)
	renderAxis(canvas, 'y', p.Y, maxTicks(o, yr))
	canvas.Gend()
	canvas.Text(round(-v.Height/3), 0, p.YLabel(), `class="axis_text" text-anchor="middle" dy="-3.5em" transform="rotate(-90)"`)

	// Cells.
	for i := range p.Cells {
		c := &p.Cells[i]
		if !c.Visible() {
			continue
		}
		x, y, cw, ch := rect(c)
		style := "fill:" + hex(c.Fill)
		if _, ok := o.Selection[c.Point.Row]; ok {
			style += "; stroke:" + selectedStroke
		}
		canvas.Group(fmt.Sprintf(`class="node" id="row-%d"`, c.Point.Row))
		canvas.Title(strings.Join(heatmap.Label(c.Point), "\n"))
		canvas.Rect(x, y, cw, ch, style)
		canvas.Gend()
	}

	if o.Brush != nil {
		b := *o.Brush
		x0, x1 := math.Min(b.X0, b.X1), math.Max(b.X0, b.X1)
		y0, y1 := math.Min(b.Y0, b.Y1), math.Max(b.Y0, b.Y1)
		canvas.Rect(round(x0), round(y0), round(x1-x0), round(y1-y0),
			`class="brush" style="fill:#000; fill-opacity:0.125; stroke:#fff"`)
	}

	canvas.Gend()
	canvas.End()
	return ew.err
}

// maxTicks returns the tick budget for an axis spanning r.
func maxTicks(o Options, r heatmap.PixelRange) int {
	if o.MaxTicks > 0 {
		return o.MaxTicks
	}
	n := int(math.Abs(r.Hi-r.Lo) / 50)
	if n < 2 {
		n = 2
	}
	return n
}

func renderAxis(canvas *svg.SVG, dir rune, s heatmap.Scale, max int) {
	r := s.Range()
	ticks, labels := s.Ticks(max)
	if dir == 'x' {
		canvas.Line(round(r.Lo), 0, round(r.Hi), 0, axisStyle)
	} else {
		canvas.Line(0, round(r.Lo), 0, round(r.Hi), axisStyle)
	}
	for i, t := range ticks {
		pos := s.Map(t)
		if math.IsNaN(pos) {
			continue
		}
		pi := round(pos)
		if dir == 'x' {
			canvas.Line(pi, 0, pi, tickLen, axisStyle)
			canvas.Text(pi, tickLen+tickPad, labels[i], `text-anchor="middle" dy=".71em" fill="#666"`)
		} else {
			canvas.Line(-tickLen, pi, 0, pi, axisStyle)
			canvas.Text(-tickLen-tickPad, pi, labels[i], `text-anchor="end" dy=".32em" fill="#666"`)
		}
	}
}

// rect returns the integer geometry of c with a non-negative width
// and height.
func rect(c *heatmap.Cell) (x, y, w, h int) {
	fx, fy, fw, fh := c.X, c.Y, c.Width, c.Height
	if fw < 0 {
		fx, fw = fx+fw, -fw
	}
	if fh < 0 {
		fy, fh = fy+fh, -fh
	}
	return round(fx), round(fy), round(fw), round(fh)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// errWriter records the first error from w and drops all later
// writes. svgo does not report write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
