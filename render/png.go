// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/hepdata/hepvis/heatmap"
	"golang.org/x/image/draw"
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	axisColor  = color.RGBA{0x88, 0x88, 0x88, 0xff}
)

// Raster draws the cells and axis lines of p into an image the size
// of p's View, with every dimension multiplied by scale. scale < 1 is
// treated as 1.
func Raster(p *heatmap.Plot, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	v := p.View
	k := float64(scale)
	img := image.NewRGBA(image.Rect(0, 0, round(v.Width*k), round(v.Height*k)))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	ox, oy := v.Margins.Left, v.Margins.Top
	box := func(x, y, w, h float64) image.Rectangle {
		return image.Rect(round((ox+x)*k), round((oy+y)*k), round((ox+x+w)*k), round((oy+y+h)*k)).Canon()
	}

	for i := range p.Cells {
		c := &p.Cells[i]
		if !c.Visible() || c.Fill == nil {
			continue
		}
		draw.Draw(img, box(c.X, c.Y, c.Width, c.Height), image.NewUniform(c.Fill), image.Point{}, draw.Over)
	}

	// Axis lines along the bottom and left of the plot area.
	xr, yr := p.X.Range(), p.Y.Range()
	axis := image.NewUniform(axisColor)
	base := v.Height - v.Margins.Bottom - v.Margins.Top
	draw.Draw(img, box(xr.Lo, base, xr.Hi-xr.Lo, 1), axis, image.Point{}, draw.Src)
	draw.Draw(img, box(-4, yr.Lo, 1, yr.Hi-yr.Lo), axis, image.Point{}, draw.Src)
	return img
}

// PNG writes p to w as a PNG image. The image is drawn at supersample
// times its size and scaled down, which smooths the edges of cells
// that do not fall on pixel boundaries.
func PNG(w io.Writer, p *heatmap.Plot, supersample int) error {
	src := Raster(p, supersample)
	dst := src
	if supersample > 1 {
		dst = image.NewRGBA(image.Rect(0, 0, round(p.View.Width), round(p.View.Height)))
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	}
	return png.Encode(w, dst)
}
