// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import "github.com/aclements/go-gg/palette"

// Margins are the space reserved around the plot area for axes and
// labels, in pixels.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// topPad is the space left above the highest Y position.
const topPad = 10

// View is the configuration of one rendering of a heatmap. Views are
// values: the methods that change a View return a modified copy.
type View struct {
	// XIndex and YIndex name the headers plotted on the X and Y
	// axes. If XIndex is "", Resolve fills both in from the
	// dataset headers.
	XIndex, YIndex string

	// Brushable enables range selection.
	Brushable bool

	// Width and Height are the size of the whole image.
	Width, Height float64

	Margins Margins

	// Fallback is the width or height of a cell along an axis on
	// which the point is not a bin.
	Fallback float64

	// Exponent is the power applied when normalizing values for
	// coloring. 0 means 1.
	Exponent float64

	// Colors maps normalized values to cell colors. If nil,
	// DefaultPalette is used.
	Colors palette.Continuous
}

// DefaultView returns the View used when nothing is configured.
func DefaultView() View {
	return View{
		Width:    400,
		Height:   400,
		Margins:  Margins{Left: 60, Right: 30, Top: 10, Bottom: 30},
		Fallback: 5,
		Exponent: 1,
	}
}

// Resolve returns v with its axis selection filled in from headers
// if it is unset. By default, the second header is plotted on X and
// the first on Y.
func (v View) Resolve(headers []string) View {
	if v.XIndex != "" {
		return v
	}
	if len(headers) > 1 {
		v.XIndex = headers[1]
	}
	if len(headers) > 0 {
		v.YIndex = headers[0]
	}
	return v
}

// Reset returns v with no axis selection.
func (v View) Reset() View {
	v.XIndex, v.YIndex = "", ""
	return v
}

// SwapAxes returns v with its X and Y axes exchanged.
func (v View) SwapAxes() View {
	v.XIndex, v.YIndex = v.YIndex, v.XIndex
	return v
}

// WithBrushing returns v with range selection enabled or disabled.
func (v View) WithBrushing(on bool) View {
	v.Brushable = on
	return v
}

// XRange returns the pixel range of the X axis.
func (v View) XRange() PixelRange {
	return PixelRange{0, v.Width - v.Margins.Left - v.Margins.Right}
}

// YRange returns the pixel range of the Y axis. It is inverted so
// larger values are higher on the page.
func (v View) YRange() PixelRange {
	return PixelRange{v.Height - v.Margins.Top - v.Margins.Bottom, topPad}
}

// ColorMap returns the palette cells are colored with.
func (v View) ColorMap() palette.Continuous {
	if v.Colors == nil {
		return DefaultPalette
	}
	return v.Colors
}

// swapped reports whether v plots the dataset's headers in the
// opposite orientation from the one the points are stored in. Points
// are stored with the second header on X.
func (v View) swapped(headers []string) bool {
	return len(headers) > 1 && v.XIndex == headers[0] && v.XIndex != headers[1]
}
