// Copyright (c) 2024, The Pynapple Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ts provides the time-indexed containers that the analysis code
operates on: event-time series (Ts), value series (Tsd), multi-channel
frames (TsdFrame), keyed collections of event series (TsGroup), and the
IntervalSet of valid analysis epochs that everything can be restricted to.

All times are float64 seconds.  Containers are immutable once built:
Restrict and ValueFrom return new containers and never modify the
receiver, so the same series can feed any number of computations.
*/
package ts
