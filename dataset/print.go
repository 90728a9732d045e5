// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/json"
	"io"

	"github.com/hepdata/hepvis/heatmap"
	"gopkg.in/yaml.v2"
)

// Fprint writes d to w in format f. The result can be read back with
// Parse.
func Fprint(w io.Writer, d *heatmap.Data, f Format) error {
	doc := document{Processed: make([]row, len(d.Points))}
	for _, h := range d.Headers {
		doc.Headers = append(doc.Headers, header{h})
	}
	for i, p := range d.Points {
		r := &doc.Processed[i]
		r.Row = p.Row
		r.Value = fromValue(heatmap.Num(p.Value))
		r.X, r.XMin, r.XMax = coord(heatmap.AxisX.Of(p))
		r.Y, r.YMin, r.YMax = coord(heatmap.AxisY.Of(p))
	}
	st := d.Stats
	if st.X != nil || st.Y != nil || st.Value != nil {
		doc.Stats = new(stats)
		doc.Stats.MinX, doc.Stats.MaxX = unbounds(st.X)
		doc.Stats.MinY, doc.Stats.MaxY = unbounds(st.Y)
		doc.Stats.MinValue, doc.Stats.MaxValue = unbounds(st.Value)
	}

	if f == JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(&doc)
	}
	buf, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// Selection returns the dataset made of the points of d whose rows
// are in sel. Points keep the orientation they have in d, regardless
// of the orientation they were selected in.
func Selection(d *heatmap.Data, sel heatmap.Selection) *heatmap.Data {
	nd := &heatmap.Data{Headers: d.Headers, Stats: d.Stats}
	for _, p := range d.Points {
		if _, ok := sel[p.Row]; ok {
			nd.Points = append(nd.Points, p)
		}
	}
	return nd
}

func coord(ap heatmap.AxisPoint) (pos interface{}, min, max *float64) {
	pos = fromValue(ap.Pos())
	if c, ok := ap.(heatmap.Continuous); ok {
		lo, hi := c.Min, c.Max
		return pos, &lo, &hi
	}
	return pos, nil, nil
}

func unbounds(b *heatmap.Bounds) (min, max *float64) {
	if b == nil {
		return nil, nil
	}
	lo, hi := b.Min, b.Max
	return &lo, &hi
}
