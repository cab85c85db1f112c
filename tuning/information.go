// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"

	"github.com/alejoe91/pynapple/ts"
)

// InfoColumn is the name of the information-statistic column in the
// tables returned by MutualInfo1D and MutualInfoMatrix.
const InfoColumn = "SI"

// MutualInfo1D computes the Skaggs et al. (1993) feature information of
// every member column of a tuning curve produced by Curves1D:
//
//	I = sum_x p(x) lambda(x) log2(lambda(x) / lambda)
//
// where p is the occupancy probability of each feature bin and lambda is
// the occupancy-weighted mean rate.  The feature and ep must be the ones
// the tuning curve was computed from, and bounds must match the bounds
// used there; this is not validated, and mismatched bounds silently give
// a meaningless statistic.  Unvisited and zero-rate bins contribute 0.
//
// The result has one row per member, in tuning-curve column order, with
// an ID string column and an InfoColumn float64 column holding bits per
// event, or bits per second if bitsSecond is true.
func MutualInfo1D(tc *etable.Table, feature *ts.Tsd, ep *ts.IntervalSet, bounds *minmax.F64, bitsSecond bool) (*etable.Table, error) {
	if tc == nil || tc.Rows == 0 {
		return nil, fmt.Errorf("tuning: empty tuning curve")
	}
	var ids []string
	for _, nm := range tc.ColNames {
		if nm != FeatureColumn {
			ids = append(ids, nm)
		}
	}
	fx := make([][]float64, tc.Rows)
	for b := range fx {
		fx[b] = make([]float64, len(ids))
		for k, nm := range ids {
			fx[b][k] = tc.CellFloat(nm, b)
		}
	}
	return MutualInfoMatrix(fx, ids, feature, ep, bounds, bitsSecond)
}

// MutualInfoMatrix is MutualInfo1D over a raw rate matrix: rows are
// feature bins, columns are group members named by ids.  This is the
// entry point for flattened 2-D tuning curves.
func MutualInfoMatrix(fx [][]float64, ids []string, feature *ts.Tsd, ep *ts.IntervalSet, bounds *minmax.F64, bitsSecond bool) (*etable.Table, error) {
	if len(fx) == 0 {
		return nil, fmt.Errorf("tuning: empty tuning curve")
	}
	for b := range fx {
		if len(fx[b]) != len(ids) {
			return nil, fmt.Errorf("tuning: tuning curve row %d has %d members, want %d", b, len(fx[b]), len(ids))
		}
	}
	if ep == nil || ep.Len() == 0 {
		return nil, fmt.Errorf("tuning: %w", ErrEmptyEpoch)
	}
	if feature == nil || feature.Len() == 0 {
		return nil, fmt.Errorf("tuning: %w", ErrEmptyFeature)
	}

	// same edge count and bounds rule as the tuning-curve computation
	edges, err := Edges(len(fx)+1, feature.Values(), bounds)
	if err != nil {
		return nil, err
	}
	occ := Histogram(feature.Restrict(ep).Values(), edges)
	tot := 0.0
	for _, o := range occ {
		tot += o
	}
	p := make([]float64, len(occ))
	if tot > 0 {
		for b := range occ {
			p[b] = occ[b] / tot
		}
	}

	dt := &etable.Table{}
	dt.SetMetaData("name", "MutualInfo")
	dt.SetFromSchema(etable.Schema{
		{Name: "ID", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: InfoColumn, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}, len(ids))

	for k, id := range ids {
		fr := 0.0
		for b := range p {
			fr += fx[b][k] * p[b]
		}
		si := 0.0
		for b := range p {
			l := math.Log2(fx[b][k] / fr)
			if math.IsInf(l, 0) || math.IsNaN(l) {
				continue // unvisited or zero-rate bin contributes nothing
			}
			si += p[b] * fx[b][k] * l
		}
		if !bitsSecond {
			if fr > 0 {
				si /= fr
			} else {
				si = 0
			}
		}
		dt.SetCellString("ID", k, id)
		dt.SetCellFloat(InfoColumn, k, si)
	}
	return dt, nil
}
