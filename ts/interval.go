// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ts

import (
	"fmt"
	"sort"
)

// Interval is a single [Start, End) time interval, in seconds.
type Interval struct {

	// start of the interval, inclusive
	Start float64

	// end of the interval, exclusive
	End float64
}

// Length returns End - Start.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Contains returns true if Start <= t < End.
func (iv Interval) Contains(t float64) bool {
	return t >= iv.Start && t < iv.End
}

// IntervalSet is an ordered, non-overlapping set of [Start, End) intervals
// defining the valid time support of an analysis.  Intervals are sorted by
// start time and merged at construction, so consumers can rely on the
// ordering and on the absence of overlap.
type IntervalSet struct {
	ivs []Interval
}

// NewIntervalSet builds an IntervalSet from parallel slices of start and end
// times.  Intervals are sorted by start and overlapping or touching intervals
// are merged.  Returns an error if the slices differ in length, are empty,
// or any interval has End <= Start.
func NewIntervalSet(starts, ends []float64) (*IntervalSet, error) {
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("ts: interval starts and ends differ in length: %d != %d", len(starts), len(ends))
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("ts: empty interval set")
	}
	ivs := make([]Interval, len(starts))
	for i := range starts {
		if ends[i] <= starts[i] {
			return nil, fmt.Errorf("ts: interval %d has end %g <= start %g", i, ends[i], starts[i])
		}
		ivs[i] = Interval{starts[i], ends[i]}
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
	mrg := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &mrg[len(mrg)-1]
		if iv.Start <= last.End { // overlapping or touching
			if iv.End > last.End {
				last.End = iv.End
			}
		} else {
			mrg = append(mrg, iv)
		}
	}
	return &IntervalSet{ivs: mrg}, nil
}

// NewInterval builds an IntervalSet holding the single interval [start, end).
func NewInterval(start, end float64) (*IntervalSet, error) {
	return NewIntervalSet([]float64{start}, []float64{end})
}

// Len returns the number of intervals.
func (is *IntervalSet) Len() int {
	return len(is.ivs)
}

// Interval returns the i-th interval, in start-time order.
func (is *IntervalSet) Interval(i int) Interval {
	return is.ivs[i]
}

// TotLength returns the summed length of all intervals.
func (is *IntervalSet) TotLength() float64 {
	tot := 0.0
	for _, iv := range is.ivs {
		tot += iv.Length()
	}
	return tot
}

// Contains returns true if t falls within any interval.
func (is *IntervalSet) Contains(t float64) bool {
	// first interval ending after t is the only candidate
	i := sort.Search(len(is.ivs), func(i int) bool { return is.ivs[i].End > t })
	return i < len(is.ivs) && is.ivs[i].Contains(t)
}

// indexes returns the indexes into times, which must be sorted ascending,
// of the samples that fall within the set.  Single merged walk over both
// the times and the intervals.
func (is *IntervalSet) indexes(times []float64) []int {
	var idx []int
	ti := 0
	for _, iv := range is.ivs {
		for ti < len(times) && times[ti] < iv.Start {
			ti++
		}
		for ti < len(times) && times[ti] < iv.End {
			idx = append(idx, ti)
			ti++
		}
	}
	return idx
}
