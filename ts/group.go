// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ts

import "sort"

// TsGroup is a keyed collection of event series (e.g., one Ts of spike
// times per recorded unit) sharing a common time support.  Iteration
// order is the ascending key order, and all downstream outputs (tuning
// curve columns, information rows) follow it.
type TsGroup struct {
	keys    []int64
	series  map[int64]*Ts
	support *IntervalSet
}

// NewTsGroup builds a TsGroup from a plain id -> series map, the one
// canonical adapter for any accepted input shape.  Keys are ordered
// ascending.  If support is non-nil every member is restricted to it.
func NewTsGroup(series map[int64]*Ts, support *IntervalSet) *TsGroup {
	keys := make([]int64, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	sc := make(map[int64]*Ts, len(series))
	for k, s := range series {
		if support != nil {
			s = s.Restrict(support)
		}
		sc[k] = s
	}
	return &TsGroup{keys: keys, series: sc, support: support}
}

// Len returns the number of members.
func (g *TsGroup) Len() int {
	return len(g.keys)
}

// Keys returns the member ids in iteration order.  The returned slice is
// the internal storage and must not be modified.
func (g *TsGroup) Keys() []int64 {
	return g.keys
}

// Series returns the member with the given id.
func (g *TsGroup) Series(id int64) (*Ts, bool) {
	s, ok := g.series[id]
	return s, ok
}

// ValueFrom aligns every member onto the feature's timebase: for each
// member, a Tsd whose timestamps are the member's event times within ep
// and whose values are the feature's nearest-sample values at those
// times.  Results are in Keys order.
func (g *TsGroup) ValueFrom(feature *Tsd, ep *IntervalSet) []*Tsd {
	out := make([]*Tsd, len(g.keys))
	for i, k := range g.keys {
		out[i] = feature.ValueFrom(g.series[k], ep)
	}
	return out
}
