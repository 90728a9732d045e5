// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"fmt"
	"strings"
)

// Label returns the tooltip lines for p: its X position, its Y
// position, and its value. A bin is shown as its extent. Other
// positions are shown with any TeX "$" delimiters removed.
func Label(p DataPoint) []string {
	return []string{
		axisLabel(AxisX.Of(p)),
		axisLabel(AxisY.Of(p)),
		fmt.Sprint(p.Value),
	}
}

func axisLabel(ap AxisPoint) string {
	if c, ok := ap.(Continuous); ok {
		return fmt.Sprintf("%g to %g", c.Min, c.Max)
	}
	return strings.Replace(ap.Pos().String(), "$", "", -1)
}
