// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"testing"

	"github.com/emer/etable/v2/minmax"
	"github.com/stretchr/testify/require"
)

func TestEdges(t *testing.T) {
	edges, err := Edges(5, []float64{0, 1, 2, 3, 4}, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3, 4}, edges)

	_, err = Edges(1, []float64{0, 1}, nil)
	require.Error(t, err)
	_, err = Edges(5, nil, nil)
	require.Error(t, err)

	// explicit bounds skip the data entirely
	edges, err = Edges(3, nil, &minmax.F64{Min: -1, Max: 1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1}, edges)
}

// TestEdgesBoundsIdempotence verifies that supplying the auto-inferred
// bounds explicitly reproduces the identical edges.
func TestEdgesBoundsIdempotence(t *testing.T) {
	vals := []float64{0.13, 2.7, 1.9, 0.4, 2.2}
	auto, err := Edges(7, vals, nil)
	require.NoError(t, err)
	expl, err := Edges(7, vals, &minmax.F64{Min: 0.13, Max: 2.7})
	require.NoError(t, err)
	require.Equal(t, auto, expl)
}

func TestCenters(t *testing.T) {
	require.Equal(t, []float64{0.5, 1.5, 2.5}, Centers([]float64{0, 1, 2, 3}))
}

func TestHistogram(t *testing.T) {
	edges := []float64{0, 1, 2, 3}
	// out-of-range values dropped, right-open bins, last bin closed
	h := Histogram([]float64{-0.5, 0, 0.5, 1, 2.9, 3, 3.5}, edges)
	require.Equal(t, []float64{2, 1, 2}, h)
}

func TestHistogramEdgeValues(t *testing.T) {
	edges := []float64{0, 1, 2}
	cases := []struct {
		v   float64
		bin int
	}{
		{0, 0},
		{0.999, 0},
		{1, 1}, // edge value belongs to the bin it starts
		{2, 1}, // last edge closes the last bin
		{2.001, -1},
		{-0.001, -1},
	}
	for _, c := range cases {
		if got := binOf(c.v, edges); got != c.bin {
			t.Errorf("binOf(%v) = %v, want %v", c.v, got, c.bin)
		}
	}
}

func TestHistogram2D(t *testing.T) {
	xe := []float64{0, 1, 2}
	ye := []float64{0, 1, 2, 3}
	xs := []float64{0.5, 0.5, 1.5, 2.5}
	ys := []float64{0.5, 2.5, 1.5, 0.5}
	h := Histogram2D(xs, ys, xe, ye)
	require.Equal(t, 2, h.Dim(0))
	require.Equal(t, 3, h.Dim(1))
	require.Equal(t, 1.0, h.Value([]int{0, 0}))
	require.Equal(t, 1.0, h.Value([]int{0, 2}))
	require.Equal(t, 1.0, h.Value([]int{1, 1}))
	// (2.5, 0.5) is out of x range and dropped
	sum := 0.0
	for _, v := range h.Values {
		sum += v
	}
	require.Equal(t, 3.0, sum)
}
