// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pynapple is the overall repository for the Go port of the pynapple
neural data-analysis core: tuning curves and feature information for
spiking and continuous signals.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* ts: the time-indexed containers -- event series (Ts), value series
(Tsd), multi-channel frames (TsdFrame), keyed groups of event series
(TsGroup), and the IntervalSet of valid analysis epochs.

* tuning: the analysis core -- alignment of event series onto a feature's
timebase, occupancy-normalized 1-D and 2-D tuning curves, and the Skaggs
et al. (1993) feature information statistic.

* examples: these compile into runnable programs.  examples/headdir
simulates head-direction cells and computes their tuning curves and
information; examples/place does the same for place cells on a 2-D arena.
*/
package pynapple
