// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package crit evaluates line-sizing criteria: computed velocity, momentum
// flux (ρv²), pressure gradient and Mach number are compared against a
// service-specific bundle of limits. The outcome is advisory only; it never
// blocks a computation.
package crit

import (
	"github.com/cpmech/gosl/io"

	"pipeflow/flow"
)

// Status is the advisory outcome of one criterion check
type Status int

const (
	NA   Status = iota // limit not specified for this service
	OK                 // within limit
	Warn               // limit exceeded
)

// String returns the status name
func (o Status) String() string {
	switch o {
	case OK:
		return "OK"
	case Warn:
		return "WARN"
	}
	return "NA"
}

// Criterion holds one service/pressure-class bucket of sizing limits. A nil
// limit means "not applicable for this service" and yields NA, which is
// distinct from OK.
type Criterion struct {
	Name    string   // key, e.g. "gas-hp"
	Service string   // description of the service/pressure range
	Vmax    *float64 // maximum velocity [m/s]
	Rv2max  *float64 // maximum momentum flux ρ·v² [kg/(m·s²)]
	DpLmax  *float64 // maximum pressure gradient [Pa/m]
	Machmax *float64 // maximum Mach number [-]
}

// Report bundles the four advisory statuses
type Report struct {
	Velocity     Status // flow-averaged velocity vs Vmax
	PressureDrop Status // pressure gradient vs DpLmax
	Momentum     Status // flow-averaged ρ·v² vs Rv2max
	Mach         Status // outlet Mach number vs Machmax
}

// String returns the report in one line
func (o Report) String() string {
	return io.Sf("velocity:%v dp/L:%v rhov2:%v mach:%v", o.Velocity, o.PressureDrop, o.Momentum, o.Mach)
}

// check compares a computed value against a nullable limit
func check(val float64, limit *float64) Status {
	if limit == nil {
		return NA
	}
	if val <= *limit {
		return OK
	}
	return Warn
}

// Evaluate checks a flow result against a criterion. A nil result or nil
// criterion yields an all-NA report.
func Evaluate(res *flow.Result, c *Criterion) (rep Report) {
	if res == nil || c == nil {
		return
	}
	rep.Velocity = check(res.V, c.Vmax)
	rep.PressureDrop = check(res.DpL, c.DpLmax)
	rep.Momentum = check(res.Rv2, c.Rv2max)
	rep.Mach = check(res.Mach, c.Machmax)
	return
}
