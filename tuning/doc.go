// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tuning computes tuning curves: normalized per-bin response rates
of event series (e.g., neuron spike trains) as a function of a behavioral
feature (e.g., head direction or 2-D position), plus the Skaggs et al.
(1993) feature information statistic derived from them.

The pipeline is three stateless stages, composed by the caller:

  - Align resamples each group member onto the feature's timebase within
    the valid epochs, producing per-member aligned-value series.
  - Curves1D / Curves2D histogram the aligned values against the
    feature's own occupancy histogram and normalize by occupancy and by
    the feature sampling rate, yielding rates in events per second.
  - MutualInfo1D / MutualInfoMatrix consume a tuning curve and the
    feature and produce the information statistic per member, in bits
    per event or bits per second.

Bins that the feature never visits have an undefined rate; they are
reported as 0 rather than propagating non-finite values, in both the 1-D
and 2-D paths.  Note on binning parameters: nbEdges counts bin edges, so
a call with nbEdges = n produces n-1 bins.
*/
package tuning
