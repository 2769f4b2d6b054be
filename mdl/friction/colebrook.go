// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Colebrook implements the implicit Colebrook–White correlation
//   1/√f = -2·log10(ε/(3.7·D) + 2.51/(Re·√f))
// solved by Newton–Raphson on the residual
//   g(f) = 1/√f + 2·log10(ε/(3.7·D) + 2.51/(Re·√f))
// seeded with the Swamee–Jain approximation. On non-convergence within itmax
// iterations the last iterate is returned and Conv is left false.
type Colebrook struct {

	// parameters
	itmax int     // maximum number of Newton–Raphson iterations
	tol   float64 // step tolerance |fnew - f|
	fmin  float64 // positivity clamp for iterates

	// run data from the last Calc
	It   int  // iterations used
	Conv bool // step tolerance reached
}

// add model to factory
func init() {
	allocators["colebrook"] = func() Model { return new(Colebrook) }
}

// Init initialises model
func (o *Colebrook) Init(prms dbf.Params) error {
	o.itmax, o.tol, o.fmin = 20, 1e-10, 1e-3
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "itmax":
			o.itmax = int(p.V)
		case "tol":
			o.tol = p.V
		case "fmin":
			o.fmin = p.V
		default:
			return chk.Err("colebrook: parameter named %q is incorrect\n", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Colebrook) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "itmax", V: 20},
			&dbf.P{N: "tol", V: 1e-10},
			&dbf.P{N: "fmin", V: 1e-3},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "itmax", V: float64(o.itmax)},
		&dbf.P{N: "tol", V: o.tol},
		&dbf.P{N: "fmin", V: o.fmin},
	}
}

// Calc computes the Darcy friction factor
func (o *Colebrook) Calc(Re, relRough float64) float64 {

	// zero-value model works with default parameters
	if o.itmax == 0 {
		o.Init(nil)
	}

	o.It, o.Conv = 0, false
	if Re <= 0 {
		return 0
	}
	if Re < ReLaminar {
		o.Conv = true
		return laminar(Re)
	}

	// seed
	var sj SwameeJain
	f := sj.Calc(Re, relRough)

	// Newton–Raphson with A = ε/(3.7·D) and B = 2.51/Re:
	//   g(f)  = f^(-1/2) + 2·log10(A + B·f^(-1/2))
	//   g'(f) = -f^(-3/2)/2 · (1 + 2·B/(ln(10)·(A + B·f^(-1/2))))
	A := relRough / 3.7
	B := 2.51 / Re
	for o.It = 1; o.It <= o.itmax; o.It++ {
		if f <= 0 {
			f = o.fmin
		}
		s := 1.0 / math.Sqrt(f)
		arg := A + B*s
		g := s + 2.0*math.Log10(arg)
		dgdf := -0.5 * s * s * s * (1.0 + 2.0*B/(math.Ln10*arg))
		fnew := f - g/dgdf
		if fnew <= 0 {
			fnew = o.fmin
		}
		if math.Abs(fnew-f) < o.tol {
			f = fnew
			o.Conv = true
			break
		}
		f = fnew
	}
	return f
}
