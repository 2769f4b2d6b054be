// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"pipeflow/ana"
	"pipeflow/mdl/fluid"
)

// natgasLine returns a 6" natural-gas line used across the tests
func natgasLine(tst *testing.T) (o GasLine) {
	var gas fluid.Gas
	err := gas.Init(gas.GetPrms(true))
	if err != nil {
		tst.Fatalf("cannot initialise gas: %v\n", err)
	}
	err = o.Init(Pipe{D: 0.154, L: 5000, Rough: 4.5e-5}, gas, "colebrook")
	if err != nil {
		tst.Fatalf("cannot initialise solver: %v\n", err)
	}
	return
}

func Test_gasline01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gasline01. conservation and monotonic decay")

	o := natgasLine(tst)
	pin := 50e5
	T := 288.15
	ndot := o.Gas.MolarFlow(0.05, pin, T) // 0.05 m³/s actual at inlet

	// per-segment checks through the hook
	A := o.Pipe.Area()
	nhook := 0
	prevP := math.Inf(1)
	maxdev := 0.0
	sumRv2 := 0.0
	o.OnSegment = func(s Segment) {
		nhook++
		if s.P > prevP {
			tst.Errorf("segment %d: pressure recovered mid-pipe: %v > %v\n", s.I, s.P, prevP)
		}
		prevP = s.P
		// recover molar flow from local state: ṅ = p·(v·A)/(Z·R·T)
		nd := s.P * (s.V * A) / (o.Gas.Z * fluid.Rgas * T)
		if dev := math.Abs(nd-ndot) / ndot; dev > maxdev {
			maxdev = dev
		}
		sumRv2 += s.Rho * s.V * s.V
	}

	res := o.Solve(ndot, pin, T)
	if res == nil {
		tst.Errorf("solver returned nil for valid input\n")
		return
	}
	io.Pforan("%v\n", res)

	chk.IntAssert(res.Nseg, 100)
	chk.IntAssert(nhook, 100)
	io.Pforan("max molar-flow deviation = %v\n", maxdev)
	chk.Scalar(tst, "molar-flow conservation", 1e-12, maxdev, 0)

	// pressure bookkeeping
	chk.Scalar(tst, "pout = pin - dp", 1e-6, res.Pout, pin-res.Dp)
	chk.Scalar(tst, "dp/L", 1e-12, res.DpL, res.Dp/o.Pipe.L)

	// momentum flux is averaged segment by segment, not taken as the
	// product of the averaged density and velocity
	chk.Scalar(tst, "flow-averaged rhov2", 1e-12, res.Rv2, sumRv2/float64(res.Nseg))
	if res.Choked {
		tst.Errorf("flow must not choke in this scenario\n")
		return
	}

	// gas accelerates towards the outlet
	if res.Vout <= res.Vin {
		tst.Errorf("outlet velocity (%v) must exceed inlet velocity (%v)\n", res.Vout, res.Vin)
		return
	}
	if res.Mach <= 0 {
		tst.Errorf("Mach number must be positive: %v\n", res.Mach)
		return
	}

	if chk.Verbose {
		o.OnSegment = nil
		o.PlotProfile("/tmp/pipeflow", "fig_gasline01", ndot, pin, T)
	}
}

func Test_gasline02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gasline02. segmented march vs closed-form isothermal flow")

	o := natgasLine(tst)
	pin := 50e5
	T := 288.15
	ndot := o.Gas.MolarFlow(0.05, pin, T)

	res := o.Solve(ndot, pin, T)
	if res == nil {
		tst.Errorf("solver returned nil for valid input\n")
		return
	}

	// along an isothermal pipe the mass flux is constant, hence Re and f are
	// constant and the closed form applies with f taken from the march
	var iso ana.IsothermalGasFlow
	iso.Init(o.Gas.Mw, o.Gas.Z, T, o.Pipe.D, o.Pipe.L, res.F, ndot, false)
	pAna := iso.Calc(pin, o.Pipe.L)
	io.Pforan("pout (march)       = %v\n", res.Pout)
	io.Pforan("pout (closed form) = %v\n", pAna)
	chk.Scalar(tst, "pout vs closed form", 1e-4*pin, res.Pout, pAna)

	// refinement brings the march closer to the closed form
	errA := math.Abs(res.Pout - pAna)
	o.Nseg = 1000
	resB := o.Solve(ndot, pin, T)
	iso.F = resB.F
	errB := math.Abs(resB.Pout - iso.Calc(pin, o.Pipe.L))
	io.Pforan("err(nseg=100) = %v  err(nseg=1000) = %v\n", errA, errB)
	if errB > errA {
		tst.Errorf("refinement must not increase the discretisation error\n")
		return
	}
}

func Test_gasline03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gasline03. choke boundary and early termination")

	var gas fluid.Gas
	err := gas.Init(gas.GetPrms(true))
	if err != nil {
		tst.Fatalf("cannot initialise gas: %v\n", err)
	}
	var o GasLine
	err = o.Init(Pipe{D: 0.0266, L: 2000, Rough: 4.5e-5}, gas, "colebrook")
	if err != nil {
		tst.Fatalf("cannot initialise solver: %v\n", err)
	}

	pin := 2e5
	T := 288.15
	ndot := 5e-4 // drives the outlet below the floor before the pipe ends

	res := o.Solve(ndot, pin, T)
	if res == nil {
		tst.Errorf("choked flow must still return the partial result\n")
		return
	}
	io.Pforan("%v\n", res)

	if !res.Choked {
		tst.Errorf("flow must choke in this scenario\n")
		return
	}
	if res.Nseg <= 0 || res.Nseg >= 100 {
		tst.Errorf("integration must stop mid-pipe: nseg=%d\n", res.Nseg)
		return
	}
	if res.Pout < PminDefault {
		tst.Errorf("outlet pressure %v below the floor %v\n", res.Pout, PminDefault)
		return
	}
	chk.Scalar(tst, "partial dp", 1e-6, res.Dp, pin-res.Pout)

	// the per-length drop covers the executed length, not the full pipe
	dL := o.Pipe.L / float64(NsegDefault)
	chk.Scalar(tst, "dp/L over executed length", 1e-12, res.DpL, res.Dp/(float64(res.Nseg)*dL))
	if res.DpL <= res.Dp/o.Pipe.L {
		tst.Errorf("dp/L (%v) must exceed dp over the full length (%v) on early termination\n", res.DpL, res.Dp/o.Pipe.L)
		return
	}
}

func Test_gasline04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gasline04. invalid-input short circuit")

	o := natgasLine(tst)
	pin := 50e5
	T := 288.15
	ndot := 0.1

	if res := o.Solve(0, pin, T); res != nil {
		tst.Errorf("ndot=0 must give nil\n")
		return
	}
	if res := o.Solve(ndot, 0, T); res != nil {
		tst.Errorf("pin=0 must give nil\n")
		return
	}
	if res := o.Solve(ndot, pin, -1); res != nil {
		tst.Errorf("T<0 must give nil\n")
		return
	}

	o.Pipe.D = 0
	if res := o.Solve(ndot, pin, T); res != nil {
		tst.Errorf("D=0 must give nil\n")
		return
	}
	o.Pipe.D = 0.154

	o.Gas.Mu = 0
	if res := o.Solve(ndot, pin, T); res != nil {
		tst.Errorf("mu=0 must give nil\n")
		return
	}
}

func Test_gasline05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gasline05. incompressible limit matches the liquid evaluator")

	// very high pressure and a short pipe: density barely changes
	var gas fluid.Gas
	err := gas.Init(gas.GetPrms(true))
	if err != nil {
		tst.Fatalf("cannot initialise gas: %v\n", err)
	}
	pipe := Pipe{D: 0.1, L: 10, Rough: 4.5e-5}
	pin := 500e5
	T := 288.15
	v := 3.0
	q := v * pipe.Area()
	ndot := gas.MolarFlow(q, pin, T)

	var og GasLine
	err = og.Init(pipe, gas, "colebrook")
	if err != nil {
		tst.Fatalf("cannot initialise gas solver: %v\n", err)
	}
	og.Nseg = 1000
	resG := og.Solve(ndot, pin, T)
	if resG == nil {
		tst.Errorf("gas solver returned nil\n")
		return
	}

	var ol LiquidLine
	err = ol.Init(pipe, fluid.Liquid{Rho: gas.Rho(pin, T), Mu: gas.Mu}, "colebrook")
	if err != nil {
		tst.Fatalf("cannot initialise liquid solver: %v\n", err)
	}
	resL := ol.Solve(v)
	if resL == nil {
		tst.Errorf("liquid solver returned nil\n")
		return
	}

	io.Pforan("dp gas    = %v\n", resG.Dp)
	io.Pforan("dp liquid = %v\n", resL.Dp)
	chk.Scalar(tst, "dp", 1e-3*resL.Dp, resG.Dp, resL.Dp)
}
