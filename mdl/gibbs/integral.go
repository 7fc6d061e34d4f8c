// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gibbs

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/stanroozen/godew/mdl/eos"
)

// Integral implements the volume-integral Gibbs formulation: a polynomial
// baseline at 1000 bar plus the integral of the molar volume Vm = M/ρ(T,P')
// from 1000 bar up to P, with ρ from a density equation of state. Below
// 1000 bar the formulation is not defined and the result is zero.
type Integral struct{}

// baseline pressure [bar]
const integralPref = 1000.0

// add model to factory map
func init() {
	allocators["integral"] = func() Model { return new(Integral) }
}

// Init initialises model
func (o *Integral) Init(prms dbf.Params) error {
	return nil
}

// GetPrms gets (an example of) parameters
func (o *Integral) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// baselineG computes the Gibbs free energy at 1000 bar [cal/mol] from a
// polynomial in T [°C], calibrated for roughly 100 to 1000 °C
func baselineG(TC float64) float64 {
	return 2.6880734e-9*TC*TC*TC*TC +
		6.3163061e-7*TC*TC*TC -
		1.9372355e-2*TC*TC -
		16.945093*TC -
		55769.287
}

// G computes the Gibbs free energy [J/mol] at T [K] and P [Pa]
func (o *Integral) G(T, P float64, opt Options) float64 {
	TC := T - 273.15
	Pbar := P * 1e-5

	if Pbar < integralPref {
		return 0
	}

	Gbase := baselineG(TC) * CalToJ
	if Pbar == integralPref {
		return Gbase
	}

	mdl, err := eos.New(opt.Eos.Model)
	if err != nil {
		return 0
	}
	tol := opt.Eos.Tol
	if tol <= 0 {
		tol = 0.001
	}

	// molar volume Vm(P') [m³/mol] at pressure P' [Pa]
	vm := func(Ppa float64) float64 {
		ρ := eos.Density(mdl, Ppa*1e-5, TC, tol) // [g/cm³]
		if ρ <= 0 {
			return 0
		}
		return eos.MolarMass * 1e-3 / (ρ * 1000.0)
	}

	a := integralPref * 1e5 // [Pa]
	b := P

	var Gint float64
	switch opt.Quad {
	case "simpson":
		Gint = quadSimpson(vm, a, b, opt.Steps)
	case "gauss16":
		Gint = quadGauss16(vm, a, b, opt.Steps)
	case "adaptive":
		Gint = quadAdaptive(vm, a, b, opt.AdaptTol, opt.MaxDepth)
	case "legacy":
		Gint = legacySum(vm, Pbar)
	default:
		Gint = quadTrap(vm, a, b, opt.Steps)
	}

	return Gbase + Gint
}

// legacySum reproduces the fixed-spacing sweep of the historical spreadsheet
// implementation: spacing = max(20, (P-1000)/500) bar, with BOTH interval
// endpoints included. The final partial step is therefore double-counted
// relative to a left Riemann sum. This is a deliberate compatibility quirk
// and must not be corrected here.
func legacySum(vm func(Ppa float64) float64, Pbar float64) (res float64) {
	spacing := (Pbar - integralPref) / 500.0
	if spacing < 20.0 {
		spacing = 20.0
	}
	for p := integralPref; p <= Pbar+1e-9; p += spacing {
		res += vm(p*1e5) * spacing * 1e5
	}
	return
}
