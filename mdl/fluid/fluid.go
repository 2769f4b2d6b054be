// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements gas and liquid state models for pipe hydraulics
package fluid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Rgas is the universal gas constant [J/(kmol·K)]
const Rgas = 8314.0

// standard (base) conditions for declared standard volumetric flows
const (
	Pstd = 101325.0 // [Pa]
	Tstd = 288.15   // [K]
)

// Gas holds the composition data of a real gas. Z and Mu are evaluated once
// at operating conditions and held constant along the pipe (isothermal,
// fixed-Z model).
type Gas struct {
	Mw  float64 // molecular weight [kg/kmol]
	Z   float64 // compressibility factor [-]
	Mu  float64 // dynamic viscosity [Pa·s]
	Gam float64 // specific heat ratio cp/cv [-]
}

// Init initialises this structure
func (o *Gas) Init(prms dbf.Params) error {
	o.Gam = 1.31
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "mw":
			o.Mw = p.V
		case "z":
			o.Z = p.V
		case "mu":
			o.Mu = p.V
		case "gam":
			o.Gam = p.V
		default:
			return chk.Err("gas: parameter named %q is incorrect\n", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example of) parameters
//  Note:
//   example == true returns pipeline-quality natural gas
func (o Gas) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "mw", V: 17.4},   // [kg/kmol]
			&dbf.P{N: "z", V: 0.92},    // [-]
			&dbf.P{N: "mu", V: 1.1e-5}, // [Pa·s]
			&dbf.P{N: "gam", V: 1.31},  // [-]
		}
	}
	return []*dbf.P{
		&dbf.P{N: "mw", V: o.Mw},
		&dbf.P{N: "z", V: o.Z},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "gam", V: o.Gam},
	}
}

// Rho computes the real-gas density at pressure p [Pa] and temperature T [K]
// via ρ = p·MW/(Z·R·T). Returns 0 on non-physical input; callers must guard
// their own divisions.
func (o Gas) Rho(p, T float64) float64 {
	if p <= 0 || T <= 0 || o.Mw <= 0 || o.Z <= 0 {
		return 0
	}
	return p * o.Mw / (o.Z * Rgas * T)
}

// SoundSpeed computes the speed of sound a = √(γ·Z·R·T/MW) at temperature T
func (o Gas) SoundSpeed(T float64) float64 {
	if T <= 0 || o.Mw <= 0 || o.Z <= 0 || o.Gam <= 0 {
		return 0
	}
	return math.Sqrt(o.Gam * o.Z * Rgas * T / o.Mw)
}

// MolarFlow converts an actual volumetric flow q [m³/s] declared at (p, T)
// into molar flow [kmol/s] via ṅ = p·q/(Z·R·T)
func (o Gas) MolarFlow(q, p, T float64) float64 {
	if q <= 0 || p <= 0 || T <= 0 || o.Z <= 0 {
		return 0
	}
	return p * q / (o.Z * Rgas * T)
}

// Q recovers the actual volumetric flow [m³/s] at (p, T) from the conserved
// molar flow ṅ [kmol/s]
func (o Gas) Q(ndot, p, T float64) float64 {
	if ndot <= 0 || p <= 0 || T <= 0 || o.Z <= 0 {
		return 0
	}
	return ndot * o.Z * Rgas * T / p
}

// MolarFlowStd converts a standard volumetric flow q [Sm³/s] declared at
// base conditions (Pstd, Tstd, Z=1) into molar flow [kmol/s]
func MolarFlowStd(q float64) float64 {
	if q <= 0 {
		return 0
	}
	return Pstd * q / (Rgas * Tstd)
}

// String returns the gas data in JSON format
func (o Gas) String() string {
	return io.Sf("{\"mw\":%g, \"z\":%g, \"mu\":%g, \"gam\":%g}", o.Mw, o.Z, o.Mu, o.Gam)
}

// Liquid holds the state of an incompressible liquid; density and viscosity
// are constant along the pipe
type Liquid struct {
	Rho float64 // density [kg/m³]
	Mu  float64 // dynamic viscosity [Pa·s]
}

// Init initialises this structure
func (o *Liquid) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("liquid: parameter named %q is incorrect\n", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example of) parameters
//  Note:
//   example == true returns water at 20 °C
func (o Liquid) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "rho", V: 998.0}, // [kg/m³]
			&dbf.P{N: "mu", V: 1.0e-3}, // [Pa·s]
		}
	}
	return []*dbf.P{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// String returns the liquid data in JSON format
func (o Liquid) String() string {
	return io.Sf("{\"rho\":%g, \"mu\":%g}", o.Rho, o.Mu)
}
