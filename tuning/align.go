// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"errors"
	"fmt"

	"github.com/alejoe91/pynapple/ts"
)

var (
	// ErrEmptyFeature is returned when the reference feature has no samples.
	ErrEmptyFeature = errors.New("feature series is empty")

	// ErrEmptyEpoch is returned when no interval set is given.
	ErrEmptyEpoch = errors.New("interval set is empty")
)

// Align resamples every member of group onto the feature's timebase,
// restricted to ep: for each member, a series whose timestamps are the
// member's event times within ep and whose values are the feature's
// nearest-sample values at those times.  Returns the member ids and the
// aligned series, both in group key order.
func Align(group *ts.TsGroup, feature *ts.Tsd, ep *ts.IntervalSet) ([]int64, []*ts.Tsd, error) {
	if ep == nil || ep.Len() == 0 {
		return nil, nil, fmt.Errorf("tuning: %w", ErrEmptyEpoch)
	}
	if feature == nil || feature.Len() == 0 {
		return nil, nil, fmt.Errorf("tuning: %w", ErrEmptyFeature)
	}
	return group.Keys(), group.ValueFrom(feature, ep), nil
}
