// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ts

import (
	"fmt"
	"sort"
)

// TsdFrame is a multi-channel value series: named channels of float64
// values sharing one set of timestamps, e.g. the X and Y coordinates of a
// 2-D position signal.  Channel order is the construction order.
type TsdFrame struct {
	times   []float64
	names   []string
	cols    [][]float64
	support *IntervalSet
}

// NewTsdFrame returns a TsdFrame over copies of the given timestamps and
// per-channel value slices, sorted by time.  names and cols must be
// parallel, channel names must be unique, and every channel must have one
// value per timestamp.  The time support defaults to the interval spanning
// the first and last timestamp.
func NewTsdFrame(times []float64, names []string, cols [][]float64) (*TsdFrame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("ts: frame has %d names for %d channels", len(names), len(cols))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("ts: frame has no channels")
	}
	seen := map[string]bool{}
	for i, nm := range names {
		if seen[nm] {
			return nil, fmt.Errorf("ts: duplicate channel name %q", nm)
		}
		seen[nm] = true
		if len(cols[i]) != len(times) {
			return nil, fmt.Errorf("ts: channel %q has %d values for %d timestamps", nm, len(cols[i]), len(times))
		}
	}
	tc := make([]float64, len(times))
	copy(tc, times)
	cc := make([][]float64, len(cols))
	for i := range cols {
		cc[i] = make([]float64, len(cols[i]))
		copy(cc[i], cols[i])
	}
	if !sort.Float64sAreSorted(tc) {
		ord := make([]int, len(tc))
		for i := range ord {
			ord[i] = i
		}
		sort.SliceStable(ord, func(i, j int) bool { return times[ord[i]] < times[ord[j]] })
		for i, j := range ord {
			tc[i] = times[j]
			for c := range cc {
				cc[c][i] = cols[c][j]
			}
		}
	}
	var sup *IntervalSet
	if len(tc) > 1 && tc[len(tc)-1] > tc[0] {
		sup, _ = NewInterval(tc[0], tc[len(tc)-1])
	}
	nc := make([]string, len(names))
	copy(nc, names)
	return &TsdFrame{times: tc, names: nc, cols: cc, support: sup}, nil
}

// Len returns the number of timestamps.
func (f *TsdFrame) Len() int {
	return len(f.times)
}

// NumChannels returns the number of channels.
func (f *TsdFrame) NumChannels() int {
	return len(f.names)
}

// Names returns the channel names in order.  The returned slice is the
// internal storage and must not be modified.
func (f *TsdFrame) Names() []string {
	return f.names
}

// Rate returns the intrinsic sampling rate of the shared timebase, as for
// Tsd.Rate.
func (f *TsdFrame) Rate() float64 {
	if f.support == nil {
		return 0
	}
	tot := f.support.TotLength()
	if tot <= 0 {
		return 0
	}
	return float64(len(f.times)) / tot
}

// Channel returns the named channel as a Tsd sharing the frame's
// timestamps and time support.
func (f *TsdFrame) Channel(name string) (*Tsd, error) {
	for i, nm := range f.names {
		if nm == name {
			return &Tsd{times: f.times, values: f.cols[i], support: f.support}, nil
		}
	}
	return nil, fmt.Errorf("ts: frame has no channel %q", name)
}

// Restrict returns a new TsdFrame holding only the samples that fall
// within ep, with ep as the time support of the result.
func (f *TsdFrame) Restrict(ep *IntervalSet) *TsdFrame {
	idx := ep.indexes(f.times)
	nt := make([]float64, len(idx))
	nc := make([][]float64, len(f.cols))
	for c := range nc {
		nc[c] = make([]float64, len(idx))
	}
	for i, j := range idx {
		nt[i] = f.times[j]
		for c := range f.cols {
			nc[c][i] = f.cols[c][j]
		}
	}
	return &TsdFrame{times: nt, names: f.names, cols: nc, support: ep}
}
