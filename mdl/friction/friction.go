// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package friction implements models for the Darcy friction factor
package friction

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ReLaminar is the Reynolds number below which the closed-form laminar
// solution 64/Re is used. The transitional band up to Re≈4000 is handled
// with the turbulent correlation, without special-casing.
const ReLaminar = 2300.0

// Model defines friction factor models
//  Calc returns the Darcy friction factor for a Reynolds number and a
//  relative roughness ε/D. Re ≤ 0 yields 0 (sentinel, not an error).
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Calc(Re, relRough float64) float64
}

// New returns a new friction factor model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'friction' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// laminar returns the closed-form laminar factor; Re must be positive
func laminar(Re float64) float64 {
	return 64.0 / Re
}
