// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/plt"
)

// PlotProfile plots pressure and velocity along the pipe for molar flow ndot,
// inlet pressure pin and temperature T
func (o *GasLine) PlotProfile(dirout, fnkey string, ndot, pin, T float64) {

	// capture segments
	saved := o.OnSegment
	var X, P, V []float64
	nseg := o.Nseg
	if nseg < 1 {
		nseg = NsegDefault
	}
	dL := o.Pipe.L / float64(nseg)
	o.OnSegment = func(s Segment) {
		X = append(X, float64(s.I)*dL)
		P = append(P, s.P)
		V = append(V, s.V)
	}
	o.Solve(ndot, pin, T)
	o.OnSegment = saved

	plt.Subplot(2, 1, 1)
	plt.Plot(X, P, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$x$", "$p$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(X, V, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$x$", "$v$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
