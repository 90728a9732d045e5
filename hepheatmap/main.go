// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hepheatmap plots a processed two-variable dataset as a
// heatmap.
//
// hepheatmap reads a processed dataset (see package dataset) in YAML
// or JSON. By default, the second independent variable is plotted on
// the X axis and the first on the Y axis; -swap exchanges them. An
// axis with min/max bounds in the dataset's stats is continuous and
// its points are drawn as bins; any other axis is categorical.
//
// With -brush, hepheatmap selects the points inside a rectangle of
// the plot area, outlines them, and with -selected writes them out as
// a new processed dataset.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/table"
	"github.com/hepdata/hepvis/dataset"
	"github.com/hepdata/hepvis/heatmap"
	"github.com/hepdata/hepvis/render"
)

func main() {
	log.SetPrefix("hepheatmap: ")
	log.SetFlags(0)

	def := heatmap.DefaultView()
	var (
		flagCPUProfile  = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile  = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut         = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat      = flag.String("format", "auto", "output `format`: auto, svg, png, text, or table")
		flagInput       = flag.String("input", "", "input `format`: yaml or json (default: from file extension)")
		flagSwap        = flag.Bool("swap", false, "plot the first variable on X and the second on Y")
		flagBrush       = flag.String("brush", "", "select points in plot-area `rect` x0,y0,x1,y1")
		flagSelected    = flag.String("selected", "", "write points selected by -brush to `file`")
		flagWidth       = flag.Float64("width", def.Width, "image width in `pixels`")
		flagHeight      = flag.Float64("height", def.Height, "image height in `pixels`")
		flagFallback    = flag.Float64("fallback", def.Fallback, "cell size in `pixels` along axes where a point is not a bin")
		flagExponent    = flag.Float64("exponent", def.Exponent, "`power` applied to values before coloring")
		flagPalette     = flag.String("palette", "threshold", "color `palette`: threshold or gradient")
		flagSupersample = flag.Int("supersample", 2, "draw PNG output at `n` times its size and scale it down")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Parse input.
	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	d, err := readDataset(path, *flagInput)
	if err != nil {
		log.Fatal(err)
	}

	// Configure the view.
	view := def
	view.Width, view.Height = *flagWidth, *flagHeight
	view.Fallback, view.Exponent = *flagFallback, *flagExponent
	switch *flagPalette {
	case "threshold":
	case "gradient":
		view.Colors = heatmap.DefaultPalette.Gradient()
	default:
		log.Fatalf("unknown palette %q", *flagPalette)
	}
	view = view.Resolve(d.Headers)
	if *flagSwap {
		view = view.SwapAxes()
	}

	var brush *heatmap.Rect
	if *flagBrush != "" {
		r, err := parseRect(*flagBrush)
		if err != nil {
			log.Fatal(err)
		}
		brush = &r
		view = view.WithBrushing(true)
	} else if *flagSelected != "" {
		log.Fatal("-selected requires -brush")
	}

	// Lay out and select.
	plot := heatmap.Layout(d, view)
	var sel heatmap.Selection
	if brush != nil {
		sel = plot.Brush(*brush)
		log.Printf("selected %d of %d points", len(sel), len(plot.Points))
	}
	if *flagSelected != "" {
		if err := writeSelection(*flagSelected, dataset.Selection(d, sel)); err != nil {
			log.Fatal(err)
		}
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	format, err := chooseFormat(*flagFormat, *flagOut, f)
	if err != nil {
		log.Fatal(err)
	}

	switch format {
	case "table":
		table.Fprint(f, dataset.Table(plot))
	case "text":
		cols, rows := textSize(f)
		err = render.Text(f, plot, cols, rows)
	case "png":
		err = render.PNG(f, plot, *flagSupersample)
	default:
		err = render.SVG(f, plot, render.Options{Brush: brush, Selection: sel})
	}
	if err != nil {
		log.Fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

func readDataset(path, format string) (*heatmap.Data, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	df := dataset.FormatOf(path)
	if format != "" {
		var err error
		df, err = dataset.ParseFormat(format)
		if err != nil {
			return nil, err
		}
	}
	d, err := dataset.Parse(f, df)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return d, nil
}

func writeSelection(path string, d *heatmap.Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataset.Fprint(f, d, dataset.FormatOf(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
