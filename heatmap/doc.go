// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap lays out two-variable heatmaps.
//
// Each axis of a heatmap is either continuous or categorical. A
// continuous axis has known bounds and a Linear scale; points on it
// are usually bins that span part of the axis. A categorical axis
// places each distinct observed value at evenly spaced positions
// using a Point scale.
//
// Measurements are normalized against the range of the dataset and
// colored by a step function with six buckets.
//
// Layout is a pure function of a Data and a View. Interactions such
// as swapping axes or toggling range selection produce a new View
// which is laid out again.
package heatmap
