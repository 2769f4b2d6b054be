// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements single-phase pipe-flow solvers: a segmented
// compressible-gas integrator and a single-segment incompressible liquid
// evaluator, both closed by the Darcy–Weisbach equation
//   Δp = f·(L/D)·(ρ·v²/2)
package flow

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Pipe holds the pipe geometry. Values are resolved SI quantities; schedule
// and fitting lookups belong to the input catalogs, not here.
type Pipe struct {
	D     float64 // internal diameter [m]
	L     float64 // length [m]
	Rough float64 // absolute roughness ε [m]
}

// Area returns the cross-section area [m²]
func (o Pipe) Area() float64 {
	return math.Pi * o.D * o.D / 4.0
}

// RelRough returns the relative roughness ε/D
func (o Pipe) RelRough() float64 {
	if o.D <= 0 {
		return 0
	}
	return o.Rough / o.D
}

// Valid tells whether the geometry is physically meaningful
func (o Pipe) Valid() bool {
	return o.D > 0 && o.L > 0 && o.Rough >= 0
}

// String returns the pipe data in JSON format
func (o Pipe) String() string {
	return io.Sf("{\"d\":%g, \"l\":%g, \"rough\":%g}", o.D, o.L, o.Rough)
}
