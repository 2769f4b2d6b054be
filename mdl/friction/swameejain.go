// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SwameeJain implements the explicit Swamee–Jain approximation to the
// Colebrook–White equation:
//   f = 0.25 / log10(ε/(3.7·D) + 5.74/Re^0.9)²
// It is accurate to a few percent over 5e3 ≤ Re ≤ 1e8 and is also used to
// seed the iterative Colebrook model.
type SwameeJain struct{}

// add model to factory
func init() {
	allocators["swameejain"] = func() Model { return new(SwameeJain) }
}

// Init initialises model
func (o *SwameeJain) Init(prms dbf.Params) error {
	if len(prms) > 0 {
		return chk.Err("swameejain: this model has no parameters\n")
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o SwameeJain) GetPrms(example bool) dbf.Params {
	return nil
}

// Calc computes the Darcy friction factor
func (o SwameeJain) Calc(Re, relRough float64) float64 {
	if Re <= 0 {
		return 0
	}
	if Re < ReLaminar {
		return laminar(Re)
	}
	d := math.Log10(relRough/3.7 + 5.74/math.Pow(Re, 0.9))
	return 0.25 / (d * d)
}
