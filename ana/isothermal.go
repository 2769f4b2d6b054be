// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verifying the pipe-flow
// solvers
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"pipeflow/mdl/fluid"
)

// IsothermalGasFlow computes the pressure profile of isothermal compressible
// pipe flow with a constant Darcy friction factor. Neglecting the
// acceleration term, conservation of molar flow ṅ gives
//
//    ρ·v² = MW·ṅ²·Z·R·T/(p·A²)
//
//    p·dp = -k·dx   with   k = f·MW·ṅ²·Z·R·T/(2·D·A²)
//
// which integrates to
//
//    p(x) = √(p1² - 2·k·x)
//
// The numerical solution integrates dp/dx = -k/p directly. Along an
// isothermal pipe the mass flux ρ·v is constant, hence Re and f are exactly
// constant, and the segmented integrator must converge to this solution.
type IsothermalGasFlow struct {
	Mw   float64    // molecular weight [kg/kmol]
	Z    float64    // compressibility factor [-]
	T    float64    // temperature [K]
	D    float64    // internal diameter [m]
	L    float64    // length [m]
	F    float64    // constant Darcy friction factor [-]
	Ndot float64    // molar flow [kmol/s]
	sol  ode.Solver // ODE solver
}

// Init initialises this structure
func (o *IsothermalGasFlow) Init(mw, z, T, D, L, f, ndot float64, withNum bool) {

	// input data
	o.Mw = mw
	o.Z = z
	o.T = T
	o.D = D
	o.L = L
	o.F = f
	o.Ndot = ndot

	// numerical solver with ξ := {p} and x = T·L, T in [0,1]
	if withNum {
		o.sol.Init("Radau5", 1, func(fvec []float64, dT, T float64, ξ []float64) error {
			p := ξ[0]
			fvec[0] = -o.k() * o.L / p // dp/dT
			return nil
		}, nil, nil, nil)
		o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
	}
}

// k returns f·MW·ṅ²·Z·R·T/(2·D·A²)
func (o IsothermalGasFlow) k() float64 {
	A := math.Pi * o.D * o.D / 4.0
	return o.F * o.Mw * o.Ndot * o.Ndot * o.Z * fluid.Rgas * o.T / (2.0 * o.D * A * A)
}

// Calc computes the pressure at distance x from the inlet, for inlet pressure
// pin. Returns 0 past the point where the flow chokes (p² would go negative).
func (o IsothermalGasFlow) Calc(pin, x float64) float64 {
	s := pin*pin - 2.0*o.k()*x
	if s <= 0 {
		return 0
	}
	return math.Sqrt(s)
}

// CalcNum computes the outlet pressure using the ODE solver
func (o *IsothermalGasFlow) CalcNum(pin float64) float64 {
	ξ := []float64{pin}
	err := o.sol.Solve(ξ, 0, 1, 1, false)
	if err != nil {
		chk.Panic("IsothermalGasFlow failed when calculating pressure using ODE solver: %v", err)
	}
	return ξ[0]
}

// Plot plots the pressure profile along the pipe
func (o IsothermalGasFlow) Plot(dirout, fnkey string, pin float64, np int) {

	X := utl.LinSpace(0, o.L, np)
	P := make([]float64, np)
	for i, x := range X {
		P[i] = o.Calc(pin, x)
	}

	plt.Plot(X, P, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$x$", "$p$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
