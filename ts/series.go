// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ts

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// Ts is a series of event timestamps (e.g., spike times), sorted ascending.
type Ts struct {
	times []float64
}

// NewTs returns a Ts over a sorted copy of the given event times.
func NewTs(times []float64) *Ts {
	tc := make([]float64, len(times))
	copy(tc, times)
	sort.Float64s(tc)
	return &Ts{times: tc}
}

// Len returns the number of events.
func (t *Ts) Len() int {
	return len(t.times)
}

// Times returns the event times.  The returned slice is the internal
// storage and must not be modified.
func (t *Ts) Times() []float64 {
	return t.times
}

// Restrict returns a new Ts holding only the events that fall within ep.
func (t *Ts) Restrict(ep *IntervalSet) *Ts {
	idx := ep.indexes(t.times)
	nt := make([]float64, len(idx))
	for i, j := range idx {
		nt[i] = t.times[j]
	}
	return &Ts{times: nt}
}

// Tsd is a series of values sampled at known timestamps, sorted ascending
// by time, with an explicit time support over which its sampling rate is
// defined.  It serves both as a behavioral feature (the regressor of a
// tuning curve) and as the aligned-value output of ValueFrom.
type Tsd struct {
	times   []float64
	values  []float64
	support *IntervalSet
}

// NewTsd returns a Tsd over copies of the given timestamps and values,
// sorted by time.  The time support defaults to the single interval
// spanning the first and last timestamp.  Returns an error if the slices
// differ in length.
func NewTsd(times, values []float64) (*Tsd, error) {
	d, err := NewTsdWithSupport(times, values, nil)
	if err != nil {
		return nil, err
	}
	if n := d.Len(); n > 1 && d.times[n-1] > d.times[0] {
		d.support, _ = NewInterval(d.times[0], d.times[n-1])
	}
	return d, nil
}

// NewTsdWithSupport is NewTsd with an explicit time support, which
// determines the sampling rate (Rate = samples / support length).
func NewTsdWithSupport(times, values []float64, support *IntervalSet) (*Tsd, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("ts: times and values differ in length: %d != %d", len(times), len(values))
	}
	tc := make([]float64, len(times))
	vc := make([]float64, len(values))
	copy(tc, times)
	copy(vc, values)
	if !sort.Float64sAreSorted(tc) {
		sort.Sort(&timeValSort{tc, vc})
	}
	return &Tsd{times: tc, values: vc, support: support}, nil
}

// timeValSort sorts a (times, values) pair by time.
type timeValSort struct {
	t []float64
	v []float64
}

func (s *timeValSort) Len() int           { return len(s.t) }
func (s *timeValSort) Less(i, j int) bool { return s.t[i] < s.t[j] }
func (s *timeValSort) Swap(i, j int) {
	s.t[i], s.t[j] = s.t[j], s.t[i]
	s.v[i], s.v[j] = s.v[j], s.v[i]
}

// Len returns the number of samples.
func (d *Tsd) Len() int {
	return len(d.times)
}

// Times returns the sample times.  The returned slice is the internal
// storage and must not be modified.
func (d *Tsd) Times() []float64 {
	return d.times
}

// Values returns the sample values.  The returned slice is the internal
// storage and must not be modified.
func (d *Tsd) Values() []float64 {
	return d.values
}

// Support returns the time support, which can be nil for a degenerate
// series (empty or single-sample with no explicit support).
func (d *Tsd) Support() *IntervalSet {
	return d.support
}

// Rate returns the intrinsic sampling rate: number of samples divided by
// the total length of the time support.  Returns 0 for a series with no
// support.
func (d *Tsd) Rate() float64 {
	if d.support == nil {
		return 0
	}
	tot := d.support.TotLength()
	if tot <= 0 {
		return 0
	}
	return float64(len(d.times)) / tot
}

// Min returns the minimum sample value.  Errors on an empty series.
func (d *Tsd) Min() (float64, error) {
	return stats.Min(d.values)
}

// Max returns the maximum sample value.  Errors on an empty series.
func (d *Tsd) Max() (float64, error) {
	return stats.Max(d.values)
}

// Restrict returns a new Tsd holding only the samples that fall within ep,
// with ep as the time support of the result.
func (d *Tsd) Restrict(ep *IntervalSet) *Tsd {
	idx := ep.indexes(d.times)
	nt := make([]float64, len(idx))
	nv := make([]float64, len(idx))
	for i, j := range idx {
		nt[i] = d.times[j]
		nv[i] = d.values[j]
	}
	return &Tsd{times: nt, values: nv, support: ep}
}

// ValueAt returns the value of the nearest sample to time t.  Ties go to
// the earlier sample.  Panics on an empty series; callers restrict first
// and check Len.
func (d *Tsd) ValueAt(t float64) float64 {
	i := sort.SearchFloat64s(d.times, t)
	if i == 0 {
		return d.values[0]
	}
	if i == len(d.times) {
		return d.values[len(d.times)-1]
	}
	if t-d.times[i-1] <= d.times[i]-t {
		return d.values[i-1]
	}
	return d.values[i]
}

// ValueFrom returns a new Tsd whose timestamps are the event times of evt
// restricted to ep, and whose values are this series' nearest-sample
// values at those times.  This is the alignment primitive used by the
// tuning package.  The result's time support is ep.  If this series has
// no samples within ep the result is empty.
func (d *Tsd) ValueFrom(evt *Ts, ep *IntervalSet) *Tsd {
	rd := d.Restrict(ep)
	re := evt.Restrict(ep)
	if rd.Len() == 0 || re.Len() == 0 {
		return &Tsd{support: ep}
	}
	nt := make([]float64, re.Len())
	nv := make([]float64, re.Len())
	for i, et := range re.times {
		nt[i] = et
		nv[i] = rd.ValueAt(et)
	}
	return &Tsd{times: nt, values: nv, support: ep}
}
