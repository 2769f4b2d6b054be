// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/io"
)

// Segment holds the local state of one integration segment. Segments are
// ephemeral: they exist only while the integrator marches and are handed to
// the OnSegment hook, never stored.
type Segment struct {
	I   int     // segment index, from inlet
	P   float64 // pressure at segment inlet [Pa]
	Rho float64 // local density [kg/m³]
	V   float64 // local velocity [m/s]
	Re  float64 // local Reynolds number [-]
	F   float64 // local Darcy friction factor [-]
	Dp  float64 // segment pressure drop [Pa]
}

// Result holds the aggregate output of one calculation. Averages are taken
// over the segments actually executed, not the nominal segment count.
type Result struct {
	Dp     float64 // total pressure drop [Pa]
	DpL    float64 // pressure drop per unit length [Pa/m]
	Pout   float64 // outlet absolute pressure [Pa]
	Vin    float64 // inlet velocity [m/s]
	Vout   float64 // outlet velocity [m/s]
	V      float64 // flow-averaged velocity [m/s]
	Rho    float64 // flow-averaged density [kg/m³]
	Re     float64 // flow-averaged Reynolds number [-]
	F      float64 // flow-averaged Darcy friction factor [-]
	Rv2    float64 // flow-averaged momentum flux ρ·v² [kg/(m·s²)]
	Mach   float64 // outlet Mach number [-]; 0 for liquids
	Nseg   int     // number of segments executed
	Choked bool    // integration stopped at the outlet pressure floor
}

// String returns a summary of the result
func (o Result) String() string {
	l := io.Sf("dp      = %13.6e [Pa]\n", o.Dp)
	l += io.Sf("dp/L    = %13.6e [Pa/m]\n", o.DpL)
	l += io.Sf("pout    = %13.6e [Pa]\n", o.Pout)
	l += io.Sf("vin     = %13.6e [m/s]\n", o.Vin)
	l += io.Sf("vout    = %13.6e [m/s]\n", o.Vout)
	l += io.Sf("vavg    = %13.6e [m/s]\n", o.V)
	l += io.Sf("rhoavg  = %13.6e [kg/m³]\n", o.Rho)
	l += io.Sf("reavg   = %13.6e [-]\n", o.Re)
	l += io.Sf("favg    = %13.6e [-]\n", o.F)
	l += io.Sf("rhov2   = %13.6e [kg/(m·s²)]\n", o.Rv2)
	l += io.Sf("mach    = %13.6e [-]\n", o.Mach)
	l += io.Sf("nseg    = %d\n", o.Nseg)
	l += io.Sf("choked  = %v", o.Choked)
	return l
}
