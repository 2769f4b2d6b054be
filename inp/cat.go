// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the read-only input catalogs: fluid property sets,
// sizing-criteria sets and pipe schedule tables. Catalogs are loaded once and
// never mutated by the solvers.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"pipeflow/crit"
	"pipeflow/mdl/fluid"
)

// FluidDef holds one fluid entry of the catalog
type FluidDef struct {

	// input
	Name string     `json:"name"` // name of fluid
	Type string     `json:"type"` // type of fluid; "gas" or "liquid"
	Prms dbf.Params `json:"prms"` // prms holds the state parameters

	// derived
	Gas *fluid.Gas    // pointer to actual gas model
	Liq *fluid.Liquid // pointer to actual liquid model
}

// CritDef holds one sizing-criteria entry; absent limits decode as nil,
// meaning "not applicable for this service"
type CritDef struct {
	Name    string   `json:"name"`    // key of criteria set
	Service string   `json:"service"` // service/pressure-range description
	Vmax    *float64 `json:"vmax"`    // maximum velocity [m/s]
	Rv2max  *float64 `json:"rv2max"`  // maximum momentum flux [kg/(m·s²)]
	DpLmax  *float64 `json:"dplmax"`  // maximum pressure gradient [Pa/m]
	Machmax *float64 `json:"machmax"` // maximum Mach number [-]
}

// Catalog implements a database of fluids and sizing criteria
type Catalog struct {

	// input
	Fluids   []*FluidDef `json:"fluids"`   // all fluids
	Criteria []*CritDef  `json:"criteria"` // all sizing-criteria sets

	// derived
	Gases   map[string]*FluidDef       // subset with fluids: gases
	Liquids map[string]*FluidDef       // subset with fluids: liquids
	Crits   map[string]*crit.Criterion // criteria sets by name
}

// ReadCat reads a catalog from a .cat JSON file
func ReadCat(dir, fn string) (cat *Catalog, err error) {

	// new catalog
	cat = new(Catalog)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, cat)
	if err != nil {
		return
	}

	// subsets
	cat.Gases = make(map[string]*FluidDef)
	cat.Liquids = make(map[string]*FluidDef)
	cat.Crits = make(map[string]*crit.Criterion)
	for _, f := range cat.Fluids {
		switch f.Type {
		case "gas":
			f.Gas = new(fluid.Gas)
			err = f.Gas.Init(f.Prms)
			if err != nil {
				return
			}
			cat.Gases[f.Name] = f
		case "liquid":
			f.Liq = new(fluid.Liquid)
			err = f.Liq.Init(f.Prms)
			if err != nil {
				return
			}
			cat.Liquids[f.Name] = f
		default:
			err = chk.Err("fluid type %q is incorrect; options are \"gas\" and \"liquid\"", f.Type)
			return
		}
	}
	for _, c := range cat.Criteria {
		cat.Crits[c.Name] = &crit.Criterion{
			Name:    c.Name,
			Service: c.Service,
			Vmax:    c.Vmax,
			Rv2max:  c.Rv2max,
			DpLmax:  c.DpLmax,
			Machmax: c.Machmax,
		}
	}
	return
}

// GetGas returns a gas model
//  Note: returns nil if not found
func (o Catalog) GetGas(name string) *fluid.Gas {
	if f, ok := o.Gases[name]; ok {
		return f.Gas
	}
	return nil
}

// GetLiquid returns a liquid model
//  Note: returns nil if not found
func (o Catalog) GetLiquid(name string) *fluid.Liquid {
	if f, ok := o.Liquids[name]; ok {
		return f.Liq
	}
	return nil
}

// GetCriterion returns a sizing-criteria set
//  Note: returns nil if not found
func (o Catalog) GetCriterion(name string) *crit.Criterion {
	return o.Crits[name]
}

// String outputs all fluids and criteria
func (o Catalog) String() string {
	l := "{\n  \"fluids\" : [\n"
	for i, f := range o.Fluids {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"name\":%q, \"type\":%q}", f.Name, f.Type)
	}
	l += "\n  ],\n  \"criteria\" : [\n"
	for i, c := range o.Criteria {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"name\":%q, \"service\":%q}", c.Name, c.Service)
	}
	l += "\n  ]\n}"
	return l
}
