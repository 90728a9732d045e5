// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hepdata/hepvis/heatmap"
	"golang.org/x/crypto/ssh/terminal"
)

// parseRect parses a rectangle of the form "x0,y0,x1,y1".
func parseRect(s string) (heatmap.Rect, error) {
	f := strings.Split(s, ",")
	if len(f) != 4 {
		return heatmap.Rect{}, fmt.Errorf("bad rectangle %q: want x0,y0,x1,y1", s)
	}
	var xs [4]float64
	for i, p := range f {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return heatmap.Rect{}, fmt.Errorf("bad rectangle %q: %v", s, err)
		}
		xs[i] = x
	}
	return heatmap.Rect{X0: xs[0], Y0: xs[1], X1: xs[2], Y1: xs[3]}, nil
}

var formats = map[string]bool{"svg": true, "png": true, "text": true, "table": true}

var formatExts = map[string]string{
	".svg": "svg",
	".png": "png",
	".txt": "table",
}

// chooseFormat resolves the -format flag. "auto" picks a format from
// the output file's extension, or text if the output is a terminal,
// or SVG otherwise.
func chooseFormat(format, outPath string, out *os.File) (string, error) {
	if format != "auto" {
		if !formats[format] {
			return "", fmt.Errorf("unknown output format %q", format)
		}
		return format, nil
	}
	if f, ok := formatExts[strings.ToLower(filepath.Ext(outPath))]; ok {
		return f, nil
	}
	if isTerminal(out) {
		return "text", nil
	}
	return "svg", nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		return false
	}
	return terminal.IsTerminal(int(f.Fd()))
}

// textSize returns the size of the heatmap to draw on f, leaving room
// for the title and legend. If f is not a terminal, it assumes 80x24.
func textSize(f *os.File) (cols, rows int) {
	cols, rows = 80, 24
	if isTerminal(f) {
		if w, h, err := terminal.GetSize(int(f.Fd())); err == nil {
			cols, rows = w, h
		}
	}
	return fitText(cols, rows)
}

// fitText returns the heatmap size for a cols x rows screen.
func fitText(cols, rows int) (int, int) {
	rows -= 1 + heatmap.NumBuckets + 1
	if rows < 4 {
		rows = 4
	}
	if rows > cols/2 {
		// Keep cells roughly square; characters are about
		// twice as tall as they are wide.
		rows = cols / 2
	}
	return cols, rows
}
