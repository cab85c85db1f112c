// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"

	"github.com/alejoe91/pynapple/ts"
)

// ErrInvalidDimension is returned by Curves2D when the feature frame does
// not have exactly two channels.
var ErrInvalidDimension = errors.New("feature is not 2-dimensional")

// FeatureColumn is the name of the bin-center index column in the table
// returned by Curves1D.
const FeatureColumn = "Feature"

// Bounds2D holds explicit per-channel bin bounds for Curves2D.
type Bounds2D struct {

	// bounds for the first (X) channel
	X minmax.F64

	// bounds for the second (Y) channel
	Y minmax.F64
}

// Curves1D computes 1-D tuning curves of every member of group relative
// to a 1-D feature: per-bin event counts divided by the feature's own
// occupancy histogram, scaled by the feature sampling rate, so results
// are in events per second.  Bin edges are nbEdges evenly spaced values
// over bounds if non-nil, else over the feature's min and max.  Bins the
// feature never visits are reported as 0.
//
// The result has FeatureColumn holding the nbEdges-1 bin centers plus one
// float64 column per member, named by its id, in group key order.
func Curves1D(group *ts.TsGroup, feature *ts.Tsd, ep *ts.IntervalSet, nbEdges int, bounds *minmax.F64) (*etable.Table, error) {
	ids, aligned, err := Align(group, feature, ep)
	if err != nil {
		return nil, err
	}
	edges, err := Edges(nbEdges, feature.Values(), bounds)
	if err != nil {
		return nil, err
	}
	centers := Centers(edges)
	occ := Histogram(feature.Values(), edges)
	rate := feature.Rate()

	sch := etable.Schema{
		{Name: FeatureColumn, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	for _, id := range ids {
		sch = append(sch, etable.Column{Name: strconv.FormatInt(id, 10), Type: etensor.FLOAT64, CellShape: nil, DimNames: nil})
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", "TuningCurves1D")
	dt.SetFromSchema(sch, len(centers))

	for row, c := range centers {
		dt.SetCellFloat(FeatureColumn, row, c)
	}
	for i, id := range ids {
		col := strconv.FormatInt(id, 10)
		cnt := Histogram(aligned[i].Values(), edges)
		for b := range cnt {
			r := 0.0 // unvisited bins report 0
			if occ[b] > 0 {
				r = cnt[b] / occ[b] * rate
			}
			dt.SetCellFloat(col, b, r)
		}
	}
	return dt, nil
}

// Curves2D computes 2-D tuning curves of every member of group relative
// to a two-channel feature frame, with independent bin edges per channel
// (nbEdges evenly spaced values over the per-channel bounds if given,
// else each channel's min and max).  Normalization follows Curves1D: 2-D
// event counts divided by the 2-D occupancy histogram, scaled by the
// frame sampling rate, unvisited bins reported as 0.
//
// Returns one [nbEdges-1, nbEdges-1] tensor per member id, plus the bin
// centers of the two channels.  Fails with ErrInvalidDimension if the
// frame does not have exactly two channels.
func Curves2D(group *ts.TsGroup, feature *ts.TsdFrame, ep *ts.IntervalSet, nbEdges int, bounds *Bounds2D) (map[int64]*etensor.Float64, [2][]float64, error) {
	var centers [2][]float64
	if feature == nil || feature.NumChannels() != 2 {
		n := 0
		if feature != nil {
			n = feature.NumChannels()
		}
		return nil, centers, fmt.Errorf("tuning: feature frame has %d channels: %w", n, ErrInvalidDimension)
	}

	var chans [2]*ts.Tsd
	var edges [2][]float64
	for i, nm := range feature.Names() {
		ch, err := feature.Channel(nm)
		if err != nil {
			return nil, centers, err
		}
		var bd *minmax.F64
		if bounds != nil {
			if i == 0 {
				bd = &bounds.X
			} else {
				bd = &bounds.Y
			}
		}
		if edges[i], err = Edges(nbEdges, ch.Values(), bd); err != nil {
			return nil, centers, err
		}
		chans[i] = ch
	}

	ids, alignedX, err := Align(group, chans[0], ep)
	if err != nil {
		return nil, centers, err
	}
	_, alignedY, err := Align(group, chans[1], ep)
	if err != nil {
		return nil, centers, err
	}

	occ := Histogram2D(chans[0].Values(), chans[1].Values(), edges[0], edges[1])
	rate := feature.Rate()

	tc := make(map[int64]*etensor.Float64, len(ids))
	for i, id := range ids {
		cnt := Histogram2D(alignedX[i].Values(), alignedY[i].Values(), edges[0], edges[1])
		for j, c := range cnt.Values {
			r := 0.0 // unvisited bins report 0, as in the 1-D case
			if occ.Values[j] > 0 {
				r = c / occ.Values[j] * rate
			}
			cnt.Values[j] = r
		}
		tc[id] = cnt
	}
	centers[0] = Centers(edges[0])
	centers[1] = Centers(edges[1])
	return tc, centers, nil
}
