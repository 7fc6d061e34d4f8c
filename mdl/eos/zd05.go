// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ZhangDuan05 implements the Zhang & Duan (2005) equation of state for water
type ZhangDuan05 struct {
	ρmin float64 // lower bisection bracket [g/cm³]
	ρmax float64 // upper bisection bracket [g/cm³]
}

// constants of the Zhang & Duan (2005) fit
const (
	zd05R  = 83.144      // gas constant [cm³·bar/(mol·K)]
	zd05Vc = 55.9480373  // critical molar volume [cm³/mol]
	zd05Tc = 647.25      // critical temperature [K]
	zd05γ  = 0.0105999998
)

// add model to factory
func init() {
	allocators["zd05"] = func() Model { return new(ZhangDuan05) }
}

// Init initialises model
func (o *ZhangDuan05) Init(prms dbf.Params) (err error) {
	o.ρmin, o.ρmax = 1e-5, 2.5
	for _, p := range prms {
		switch p.N {
		case "rhomin":
			o.ρmin = p.V
		case "rhomax":
			o.ρmax = p.V
		default:
			return chk.Err("zd05: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o ZhangDuan05) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhomin", V: 1e-5}, // [g/cm³]
			&dbf.P{N: "rhomax", V: 2.5},  // [g/cm³]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rhomin", V: o.ρmin},
		&dbf.P{N: "rhomax", V: o.ρmax},
	}
}

// Brackets returns the bisection bracket
func (o ZhangDuan05) Brackets() (ρmin, ρmax float64) {
	if o.ρmax == 0 {
		return 1e-5, 2.5
	}
	return o.ρmin, o.ρmax
}

// virial coefficients at reduced temperature Tr
func zd05coefs(Tr float64) (B, C, D, E float64) {
	Tr2 := Tr * Tr
	Tr3 := Tr2 * Tr
	B = 0.349824207 - 2.91046273/Tr2 + 2.00914688/Tr3
	C = 0.112819964 + 0.748997714/Tr2 - 0.87320704/Tr3
	D = 0.0170609505 - 0.0146355822/Tr2 + 0.0579768283/Tr3
	E = -0.000841246372 + 0.00495186474/Tr2 - 0.00916248538/Tr3
	return
}

// Pressure computes P(ρ,T) [bar] for ρ [g/cm³] and T [°C]
func (o ZhangDuan05) Pressure(ρ, T float64) float64 {
	TK := T + 273.15
	Vr := MolarMass / (ρ * zd05Vc)
	Tr := TK / zd05Tc

	B, C, D, E := zd05coefs(Tr)
	f := -0.100358152 / Tr
	g := -0.00182674744 * Tr

	Vr2 := Vr * Vr
	Vr4 := Vr2 * Vr2
	Vr5 := Vr4 * Vr

	δ := 1.0 + B/Vr + C/Vr2 + D/Vr4 + E/Vr5 +
		(f/Vr2+g/Vr4)*math.Exp(-zd05γ/Vr2)

	return zd05R * TK * ρ * δ / MolarMass
}

// DrhoDp computes (∂ρ/∂P)_T [g/cm³/bar] by implicit differentiation of the
// forward pressure expansion at ρ [g/cm³], T [°C]
func (o ZhangDuan05) DrhoDp(ρ, T float64) float64 {
	TK := T + 273.15
	Tr := TK / zd05Tc
	cc := zd05Vc / MolarMass
	Vr := MolarMass / (ρ * zd05Vc)

	B, C, D, E := zd05coefs(Tr)
	f := -0.100358152 / Tr
	g := zd05γ * Tr // differs from the forward-function g

	Vr2 := Vr * Vr
	Vr4 := Vr2 * Vr2
	Vr5 := Vr4 * Vr
	expterm := math.Exp(-zd05γ / Vr2)

	δ := 1.0 + B/Vr + C/Vr2 + D/Vr4 + E/Vr5 +
		(f/Vr2+g/Vr4)*expterm

	cc2 := cc * cc
	cc4 := cc2 * cc2
	ρ3 := ρ * ρ * ρ
	ρ4 := ρ3 * ρ

	κ := B*cc +
		2.0*C*cc2*ρ +
		4.0*D*cc4*ρ3 +
		5.0*E*cc4*cc*ρ4 +
		(2.0*f*cc2*ρ+
			4.0*g*cc4*ρ3-
			(f/Vr2+g/Vr4)*(2.0*zd05γ*cc2*ρ))*expterm

	return MolarMass / (zd05R * TK * (δ + ρ*κ))
}
