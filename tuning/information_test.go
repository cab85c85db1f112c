// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"math"
	"testing"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/stretchr/testify/require"

	"github.com/alejoe91/pynapple/ts"
)

// infoFixture returns a feature visiting two bins equally and a manually
// built tuning-curve table over those bins.
func infoFixture(t *testing.T, rates []float64) (*etable.Table, *ts.Tsd, *ts.IntervalSet, *minmax.F64) {
	t.Helper()
	feat, err := ts.NewTsd([]float64{0, 1}, []float64{0.25, 0.75})
	require.NoError(t, err)
	ep, err := ts.NewInterval(0, 1.5)
	require.NoError(t, err)

	dt := &etable.Table{}
	dt.SetFromSchema(etable.Schema{
		{Name: FeatureColumn, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "0", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}, len(rates))
	for b, r := range rates {
		dt.SetCellFloat(FeatureColumn, b, 0.25+0.5*float64(b))
		dt.SetCellFloat("0", b, r)
	}
	return dt, feat, ep, &minmax.F64{Min: 0, Max: 1}
}

// TestMutualInfoAnalytic checks the Skaggs statistic against a case that
// can be computed by hand: equal occupancy p = (1/2, 1/2), rates (2, 0),
// so the mean rate is 1 and I = 1/2 * 2 * log2(2) = 1 bit/s = 1 bit/event.
func TestMutualInfoAnalytic(t *testing.T) {
	tc, feat, ep, bounds := infoFixture(t, []float64{2, 0})

	si, err := MutualInfo1D(tc, feat, ep, bounds, true)
	require.NoError(t, err)
	require.Equal(t, 1, si.Rows)
	require.Equal(t, "0", si.CellString("ID", 0))
	if dif := math.Abs(si.CellFloat(InfoColumn, 0) - 1); dif > difTol {
		t.Errorf("bits/s: %v, want 1, dif %v", si.CellFloat(InfoColumn, 0), dif)
	}

	si, err = MutualInfo1D(tc, feat, ep, bounds, false)
	require.NoError(t, err)
	if dif := math.Abs(si.CellFloat(InfoColumn, 0) - 1); dif > difTol {
		t.Errorf("bits/event: %v, want 1, dif %v", si.CellFloat(InfoColumn, 0), dif)
	}
}

// TestMutualInfoZeroCurve checks the suppression policy: an all-zero
// tuning curve yields exactly 0 information, never NaN or Inf.
func TestMutualInfoZeroCurve(t *testing.T) {
	tc, feat, ep, bounds := infoFixture(t, []float64{0, 0})

	for _, bitsSecond := range []bool{false, true} {
		si, err := MutualInfo1D(tc, feat, ep, bounds, bitsSecond)
		require.NoError(t, err)
		v := si.CellFloat(InfoColumn, 0)
		require.Equal(t, 0.0, v)
	}
}

// TestMutualInfoBitsRelation checks bits/event = bits/s divided by the
// member's mean rate, end to end from a computed tuning curve.
func TestMutualInfoBitsRelation(t *testing.T) {
	feat := sineFeature(t, 0.01, 2)
	ep, err := ts.NewInterval(0, 2)
	require.NoError(t, err)
	g := ts.NewTsGroup(map[int64]*ts.Ts{
		0: ts.NewTs([]float64{0.1, 0.5, 1.2}),
		1: ts.NewTs([]float64{0.3, 0.4, 0.9, 1.7}),
	}, ep)

	tc, err := Curves1D(g, feat, ep, 9, nil)
	require.NoError(t, err)
	perSec, err := MutualInfo1D(tc, feat, ep, nil, true)
	require.NoError(t, err)
	perEvt, err := MutualInfo1D(tc, feat, ep, nil, false)
	require.NoError(t, err)
	require.Equal(t, 2, perSec.Rows)

	// recompute each member's occupancy-weighted mean rate
	edges, err := Edges(tc.Rows+1, feat.Values(), nil)
	require.NoError(t, err)
	occ := Histogram(feat.Restrict(ep).Values(), edges)
	tot := 0.0
	for _, o := range occ {
		tot += o
	}
	for k, col := range []string{"0", "1"} {
		fr := 0.0
		for b := 0; b < tc.Rows; b++ {
			fr += tc.CellFloat(col, b) * occ[b] / tot
		}
		require.Greater(t, fr, 0.0)
		bps := perSec.CellFloat(InfoColumn, k)
		bpe := perEvt.CellFloat(InfoColumn, k)
		require.GreaterOrEqual(t, bpe, -difTol) // Skaggs information is non-negative
		if dif := math.Abs(bpe - bps/fr); dif > difTol {
			t.Errorf("member %v: bits/event %v != bits/s / mean rate %v, dif %v", col, bpe, bps/fr, dif)
		}
	}
}

func TestMutualInfoMatrix(t *testing.T) {
	_, feat, ep, bounds := infoFixture(t, nil)

	fx := [][]float64{{2, 1}, {0, 1}}
	si, err := MutualInfoMatrix(fx, []string{"a", "b"}, feat, ep, bounds, false)
	require.NoError(t, err)
	require.Equal(t, 2, si.Rows)
	require.Equal(t, "a", si.CellString("ID", 0))
	require.Equal(t, "b", si.CellString("ID", 1))
	// member b has a flat curve: zero information
	if v := si.CellFloat(InfoColumn, 1); math.Abs(v) > difTol {
		t.Errorf("flat curve information: %v, want 0", v)
	}
	require.Greater(t, si.CellFloat(InfoColumn, 0), 0.0)

	_, err = MutualInfoMatrix([][]float64{{1}}, []string{"a", "b"}, feat, ep, bounds, false)
	require.Error(t, err)
	_, err = MutualInfoMatrix(nil, nil, feat, ep, bounds, false)
	require.Error(t, err)
}
