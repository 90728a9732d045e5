// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/hepdata/hepvis/heatmap"
	"golang.org/x/image/draw"
)

// Text writes p to w as rows of 24-bit ANSI colored half blocks, at
// most cols characters wide and rows lines high, followed by a legend
// of the color buckets.
func Text(w io.Writer, p *heatmap.Plot, cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("text area %dx%d is too small", cols, rows)
	}
	img := Raster(p, 1)

	// Crop to the plot area, including the overhang of cells on
	// the edges.
	v := p.View
	xr, yr := p.X.Range(), p.Y.Range()
	pad := v.Fallback / 2
	area := image.Rect(
		round(v.Margins.Left+math.Min(xr.Lo, xr.Hi)-pad),
		round(v.Margins.Top+math.Min(yr.Lo, yr.Hi)-pad),
		round(v.Margins.Left+math.Max(xr.Lo, xr.Hi)+pad),
		round(v.Margins.Top+math.Max(yr.Lo, yr.Hi)+pad),
	).Intersect(img.Bounds())
	if area.Empty() {
		area = img.Bounds()
	}

	// Each character shows two pixels, one above the other.
	small := image.NewRGBA(image.Rect(0, 0, cols, 2*rows))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img, area, draw.Src, nil)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s (y) vs %s (x)\n", p.YLabel(), p.XLabel())
	for y := 0; y < 2*rows; y += 2 {
		for x := 0; x < cols; x++ {
			top, bot := small.RGBAAt(x, y), small.RGBAAt(x, y+1)
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		bw.WriteString("\x1b[0m\n")
	}
	legend(bw, p)
	return bw.Flush()
}

// legend writes one swatch per color bucket with the range of raw
// values it covers.
func legend(w io.Writer, p *heatmap.Plot) {
	colors := p.View.ColorMap()
	t := heatmap.Thresholds
	for b := 0; b < heatmap.NumBuckets; b++ {
		var lo, hi float64
		switch {
		case b == 0:
			lo, hi = math.Inf(-1), t[0]
		case b >= len(t):
			lo, hi = t[len(t)-1], math.Inf(1)
		default:
			lo, hi = t[b-1], t[b]
		}
		mid := (math.Max(lo, t[0]) + math.Min(hi, t[len(t)-1])) / 2
		r, g, bl, _ := colors.Map(mid).RGBA()
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm  \x1b[0m %s\n", r>>8, g>>8, bl>>8, bucketRange(p.Normalizer, lo, hi))
	}
}

// bucketRange describes the normalized interval between lo and hi in
// terms of raw values.
func bucketRange(n heatmap.Normalizer, lo, hi float64) string {
	raw := func(x float64) string {
		return fmt.Sprintf("%.4g", n.Denormalize(x))
	}
	switch {
	case math.IsInf(lo, -1):
		return "<= " + raw(hi)
	case math.IsInf(hi, 1):
		return ">= " + raw(lo)
	}
	return raw(lo) + " to " + raw(hi)
}
