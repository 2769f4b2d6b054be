// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"pipeflow/mdl/fluid"
	"pipeflow/mdl/friction"
)

// LiquidLine evaluates the incompressible Darcy–Weisbach pressure drop for a
// single segment. No discretisation is needed: density and velocity are
// constant along the pipe for an incompressible fluid at fixed cross-section.
type LiquidLine struct {
	Pipe Pipe           // geometry
	Liq  fluid.Liquid   // liquid state
	FF   friction.Model // friction factor model
}

// Init initialises the solver with the friction model given by name
func (o *LiquidLine) Init(pipe Pipe, liq fluid.Liquid, ffname string) (err error) {
	o.Pipe = pipe
	o.Liq = liq
	o.FF, err = friction.New(ffname)
	return
}

// Solve computes the pressure drop for mean velocity v [m/s]. Returns nil
// when any input is non-physical.
func (o *LiquidLine) Solve(v float64) *Result {
	if !o.Pipe.Valid() || v <= 0 || o.Liq.Rho <= 0 || o.Liq.Mu <= 0 || o.FF == nil {
		return nil
	}
	Re := o.Liq.Rho * v * o.Pipe.D / o.Liq.Mu
	f := o.FF.Calc(Re, o.Pipe.RelRough())
	dp := f * (o.Pipe.L / o.Pipe.D) * (o.Liq.Rho * v * v / 2.0)
	return &Result{
		Dp:   dp,
		DpL:  dp / o.Pipe.L,
		Vin:  v,
		Vout: v,
		V:    v,
		Rho:  o.Liq.Rho,
		Re:   Re,
		F:    f,
		Rv2:  o.Liq.Rho * v * v,
		Nseg: 1,
	}
}

// SolveFlow computes the pressure drop for volumetric flow q [m³/s]
func (o *LiquidLine) SolveFlow(q float64) *Result {
	if q <= 0 || o.Pipe.D <= 0 {
		return nil
	}
	return o.Solve(q / o.Pipe.Area())
}
