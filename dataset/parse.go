// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads and writes processed heatmap datasets.
//
// A processed dataset is a document of the form
//
//	headers:
//	- name: SQRT(S)
//	- name: PT
//	processed:
//	- {x: 15, x_min: 10, x_max: 20, y: 7, value: 0.3, row: 0}
//	stats: {min_x: 0, max_x: 100, min_value: 0, max_value: 1}
//
// in either YAML or JSON. Each processed row has its x position taken
// from the second header and its y position from the first. A
// coordinate with both a min and a max is a bin on a continuous axis;
// otherwise it is a categorical position. Stats are optional.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hepdata/hepvis/heatmap"
	"gopkg.in/yaml.v2"
)

// Format is an encoding of a processed dataset.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// ParseFormat returns the Format named by s ("yaml", "yml", or "json").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("unknown dataset format %q", s)
}

// FormatOf guesses the Format of the file at path from its extension.
// Anything that is not ".json" is assumed to be YAML, which is a
// superset of JSON.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

type header struct {
	Name string `json:"name" yaml:"name"`
}

type row struct {
	X     interface{} `json:"x" yaml:"x"`
	Y     interface{} `json:"y" yaml:"y"`
	Value interface{} `json:"value" yaml:"value"`
	XMin  *float64    `json:"x_min,omitempty" yaml:"x_min,omitempty"`
	XMax  *float64    `json:"x_max,omitempty" yaml:"x_max,omitempty"`
	YMin  *float64    `json:"y_min,omitempty" yaml:"y_min,omitempty"`
	YMax  *float64    `json:"y_max,omitempty" yaml:"y_max,omitempty"`
	Row   int         `json:"row" yaml:"row"`
}

type stats struct {
	MinX     *float64 `json:"min_x,omitempty" yaml:"min_x,omitempty"`
	MaxX     *float64 `json:"max_x,omitempty" yaml:"max_x,omitempty"`
	MinY     *float64 `json:"min_y,omitempty" yaml:"min_y,omitempty"`
	MaxY     *float64 `json:"max_y,omitempty" yaml:"max_y,omitempty"`
	MinValue *float64 `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty" yaml:"max_value,omitempty"`
}

type document struct {
	Headers   []header `json:"headers" yaml:"headers"`
	Processed []row    `json:"processed" yaml:"processed"`
	Stats     *stats   `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Parse reads a processed dataset in format f from r.
//
// Missing headers are named "y" and "x". Values that are not numbers
// become NaN.
func Parse(r io.Reader, f Format) (*heatmap.Data, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc document
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		err = dec.Decode(&doc)
	default:
		err = yaml.Unmarshal(buf, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s dataset: %v", f, err)
	}
	return doc.data(), nil
}

func (doc *document) data() *heatmap.Data {
	d := &heatmap.Data{
		Headers: []string{"y", "x"},
		Points:  make([]heatmap.DataPoint, len(doc.Processed)),
	}
	for i, h := range doc.Headers {
		if i >= len(d.Headers) {
			break
		}
		if h.Name != "" {
			d.Headers[i] = h.Name
		}
	}
	for i, r := range doc.Processed {
		d.Points[i] = heatmap.DataPoint{
			Row:   r.Row,
			X:     axisPoint(r.X, r.XMin, r.XMax),
			Y:     axisPoint(r.Y, r.YMin, r.YMax),
			Value: toValue(r.Value).Float(),
		}
	}
	if s := doc.Stats; s != nil {
		d.Stats = heatmap.Stats{
			X:     bounds(s.MinX, s.MaxX),
			Y:     bounds(s.MinY, s.MaxY),
			Value: bounds(s.MinValue, s.MaxValue),
		}
	}
	return d
}

func bounds(min, max *float64) *heatmap.Bounds {
	if min == nil || max == nil {
		return nil
	}
	return &heatmap.Bounds{Min: *min, Max: *max}
}

func axisPoint(v interface{}, min, max *float64) heatmap.AxisPoint {
	pos := toValue(v)
	if min != nil && max != nil {
		return heatmap.Continuous{Value: pos, Min: *min, Max: *max}
	}
	return heatmap.Categorical{Value: pos}
}

// toValue converts a decoded YAML or JSON scalar to a Value. A null
// is a missing value.
func toValue(v interface{}) heatmap.Value {
	switch v := v.(type) {
	case nil:
		return heatmap.Missing()
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return heatmap.Num(f)
		}
		return heatmap.Str(v.String())
	case float64:
		return heatmap.Num(v)
	case int:
		return heatmap.Num(float64(v))
	case int64:
		return heatmap.Num(float64(v))
	case uint64:
		return heatmap.Num(float64(v))
	case string:
		return heatmap.Str(v)
	}
	return heatmap.Str(fmt.Sprint(v))
}

// fromValue is the inverse of toValue.
func fromValue(v heatmap.Value) interface{} {
	switch {
	case v.IsMissing():
		return nil
	case !v.IsNum():
		return v.String()
	}
	x := v.Float()
	if math.IsInf(x, 0) {
		// Neither YAML nor JSON numbers can represent these.
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return x
}
