// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"pipeflow/mdl/fluid"
	"pipeflow/mdl/friction"
)

// default discretisation and outlet pressure floor
const (
	NsegDefault = 100   // number of segments
	PminDefault = 1.0e4 // 0.1 bara [Pa]
)

// GasLine solves isothermal compressible flow through a pipe by marching the
// conserved molar flow along equal-length segments. At each segment the local
// density, velocity, Reynolds number and friction factor are recomputed from
// the running pressure and a Darcy–Weisbach increment is accumulated. Z, T
// and μ are evaluated once at operating conditions and held constant along
// the pipe.
//
// The march is a piecewise-constant quadrature of the isothermal-flow ODE;
// it converges to the exact solution as Nseg grows. A segment that would push
// the running pressure under Pmin is not executed: the integration stops and
// the partial result is returned with Choked set.
type GasLine struct {

	// input
	Pipe Pipe           // geometry
	Gas  fluid.Gas      // gas state at operating conditions
	Nseg int            // number of segments; 0 means NsegDefault
	Pmin float64        // outlet pressure floor [Pa]; 0 means PminDefault
	FF   friction.Model // friction factor model

	// OnSegment, if set, receives each executed segment in inlet-to-outlet
	// order. Segments are sequentially dependent through the running
	// pressure, so the hook is always called in order.
	OnSegment func(Segment)
}

// Init initialises the solver with the default discretisation and the
// friction model given by name (e.g. "colebrook")
func (o *GasLine) Init(pipe Pipe, gas fluid.Gas, ffname string) (err error) {
	o.Pipe = pipe
	o.Gas = gas
	o.Nseg = NsegDefault
	o.Pmin = PminDefault
	o.FF, err = friction.New(ffname)
	return
}

// Solve integrates the gas column for molar flow ndot [kmol/s], inlet
// absolute pressure pin [Pa] and temperature T [K]. Returns nil when any
// input is non-physical; never NaN, never panics.
func (o *GasLine) Solve(ndot, pin, T float64) *Result {

	// invalid-input short circuit
	if !o.Pipe.Valid() || ndot <= 0 || pin <= 0 || T <= 0 {
		return nil
	}
	if o.Gas.Mw <= 0 || o.Gas.Z <= 0 || o.Gas.Mu <= 0 {
		return nil
	}
	if o.FF == nil {
		return nil
	}

	nseg := o.Nseg
	if nseg < 1 {
		nseg = NsegDefault
	}
	pmin := o.Pmin
	if pmin <= 0 {
		pmin = PminDefault
	}

	A := o.Pipe.Area()
	dL := o.Pipe.L / float64(nseg)
	rr := o.Pipe.RelRough()

	// march from inlet to outlet
	p := pin
	var dpTot, vin float64
	var sumV, sumRho, sumRe, sumF, sumRv2 float64
	n := 0
	choked := false
	for i := 0; i < nseg; i++ {

		// local state from the conserved molar flow
		rho := o.Gas.Rho(p, T)
		v := o.Gas.Q(ndot, p, T) / A
		Re := rho * v * o.Pipe.D / o.Gas.Mu
		f := o.FF.Calc(Re, rr)
		dp := f * (dL / o.Pipe.D) * (rho * v * v / 2.0)
		if i == 0 {
			vin = v
		}

		// the floor is checked before committing the segment so the
		// reported outlet pressure never goes below pmin
		if p-dp < pmin {
			choked = true
			break
		}

		if o.OnSegment != nil {
			o.OnSegment(Segment{I: i, P: p, Rho: rho, V: v, Re: Re, F: f, Dp: dp})
		}

		dpTot += dp
		p -= dp
		sumV += v
		sumRho += rho
		sumRe += Re
		sumF += f
		sumRv2 += rho * v * v
		n++
	}

	res := &Result{
		Dp:     dpTot,
		Pout:   p,
		Vin:    vin,
		Nseg:   n,
		Choked: choked,
	}
	if n > 0 {
		// averages and the per-length drop cover executed segments only;
		// on a choked march the executed length is shorter than the pipe
		res.DpL = dpTot / (float64(n) * dL)
		res.V = sumV / float64(n)
		res.Rho = sumRho / float64(n)
		res.Re = sumRe / float64(n)
		res.F = sumF / float64(n)
		res.Rv2 = sumRv2 / float64(n)
	}

	// outlet state from the same molar-flow relation
	res.Vout = o.Gas.Q(ndot, p, T) / A
	if a := o.Gas.SoundSpeed(T); a > 0 {
		res.Mach = res.Vout / a
	}
	return res
}
