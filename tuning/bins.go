// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"fmt"
	"sort"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Edges returns nbEdges evenly spaced bin edges (so nbEdges-1 bins)
// spanning bounds if non-nil, else the min and max of vals.  nbEdges must
// be at least 2, and vals must be non-empty when bounds is nil.
func Edges(nbEdges int, vals []float64, bounds *minmax.F64) ([]float64, error) {
	if nbEdges < 2 {
		return nil, fmt.Errorf("tuning: nbEdges must be >= 2, got %d", nbEdges)
	}
	var lo, hi float64
	if bounds != nil {
		lo, hi = bounds.Min, bounds.Max
	} else {
		var err error
		if lo, err = stats.Min(vals); err != nil {
			return nil, fmt.Errorf("tuning: cannot infer bin bounds: %w", err)
		}
		if hi, err = stats.Max(vals); err != nil {
			return nil, fmt.Errorf("tuning: cannot infer bin bounds: %w", err)
		}
	}
	return floats.Span(make([]float64, nbEdges), lo, hi), nil
}

// Centers returns the midpoints of consecutive edges.
func Centers(edges []float64) []float64 {
	c := make([]float64, len(edges)-1)
	for i := range c {
		c[i] = edges[i] + (edges[i+1]-edges[i])/2
	}
	return c
}

// binOf returns the bin index of v over the given edges, or -1 if v is
// out of range.  Bins are right-open except the last, which is closed,
// so a value exactly at the last edge lands in the last bin.
func binOf(v float64, edges []float64) int {
	n := len(edges) - 1
	if v < edges[0] || v > edges[n] {
		return -1
	}
	if v == edges[n] {
		return n - 1
	}
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i
	}
	return i - 1
}

// Histogram counts vals over the given edges: len(edges)-1 bins,
// right-open except the last, values outside the edge range dropped.
func Histogram(vals, edges []float64) []float64 {
	h := make([]float64, len(edges)-1)
	for _, v := range vals {
		if b := binOf(v, edges); b >= 0 {
			h[b]++
		}
	}
	return h
}

// Histogram2D counts (x, y) sample pairs over independent x and y edges,
// with the same bin conventions as Histogram per axis.  The result has
// shape [len(xedges)-1, len(yedges)-1].
func Histogram2D(xs, ys, xedges, yedges []float64) *etensor.Float64 {
	nx := len(xedges) - 1
	ny := len(yedges) - 1
	h := etensor.NewFloat64([]int{nx, ny}, nil, []string{"X", "Y"})
	for i := range xs {
		bx := binOf(xs[i], xedges)
		by := binOf(ys[i], yedges)
		if bx >= 0 && by >= 0 {
			h.Values[bx*ny+by]++
		}
	}
	return h
}
