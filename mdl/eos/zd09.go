// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ZhangDuan09 implements the Zhang & Duan (2009) equation of state for water,
// written in the corresponding-states form of the original calibration: the
// density, volume and temperature are first mapped to the reference-fluid
// scale and the virial expansion is evaluated there.
type ZhangDuan09 struct {
	ρmin float64 // lower bisection bracket [g/cm³]
	ρmax float64 // upper bisection bracket [g/cm³]
}

// constants of the Zhang & Duan (2009) fit
const (
	zd09R  = 0.083145    // gas constant [dm³·bar/(mol·K)]
	zd09c1 = 6.971118009 // scaling constant ε/(3.0626·ω³)
	zd09γ  = 0.015483335997
	zd09e1 = 0.73226726041

	// corresponding-states prefactors
	zd09dm = 475.05656886
	zd09vm = 0.0021050125
	zd09tm = 0.3019607843
)

// add model to factory
func init() {
	allocators["zd09"] = func() Model { return new(ZhangDuan09) }
}

// Init initialises model
func (o *ZhangDuan09) Init(prms dbf.Params) (err error) {
	o.ρmin, o.ρmax = 1e-5, 10.0
	for _, p := range prms {
		switch p.N {
		case "rhomin":
			o.ρmin = p.V
		case "rhomax":
			o.ρmax = p.V
		default:
			return chk.Err("zd09: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o ZhangDuan09) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhomin", V: 1e-5}, // [g/cm³]
			&dbf.P{N: "rhomax", V: 10.0}, // [g/cm³]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rhomin", V: o.ρmin},
		&dbf.P{N: "rhomax", V: o.ρmax},
	}
}

// Brackets returns the bisection bracket
func (o ZhangDuan09) Brackets() (ρmin, ρmax float64) {
	if o.ρmax == 0 {
		return 1e-5, 10.0
	}
	return o.ρmin, o.ρmax
}

// virial coefficients at scaled temperature Tm
func zd09coefs(Tm float64) (B, C, D, E, f float64) {
	Tm2 := Tm * Tm
	Tm3 := Tm2 * Tm
	B = 0.029517729893 - 6337.56452413/Tm2 - 275265.428882/Tm3
	C = 0.00129128089283 - 145.797416153/Tm2 + 76593.8947237/Tm3
	D = 2.58661493537e-06 + 0.52126532146/Tm2 - 139.839523753/Tm3
	E = -2.36335007175e-08 + 0.00535026383543/Tm2 - 0.27110649951/Tm3
	f = 25038.7836486 / Tm3
	return
}

// Pressure computes P(ρ,T) [bar] for ρ [g/cm³] and T [°C]
func (o ZhangDuan09) Pressure(ρ, T float64) float64 {
	TK := T + 273.15
	Vm := zd09vm * (MolarMass / ρ)
	Tm := zd09tm * TK

	B, C, D, E, f := zd09coefs(Tm)

	Vm2 := Vm * Vm
	Vm4 := Vm2 * Vm2
	Vm5 := Vm4 * Vm
	expterm := math.Exp(-zd09γ / Vm2)

	δ := 1.0 + B/Vm + C/Vm2 + D/Vm4 + E/Vm5 +
		f/Vm2*(zd09e1+zd09γ/Vm2)*expterm

	return zd09R * Tm * δ / Vm * zd09c1
}

// DrhoDp computes (∂ρ/∂P)_T [g/cm³/bar] by implicit differentiation of the
// forward pressure expansion at ρ [g/cm³], T [°C]
func (o ZhangDuan09) DrhoDp(ρ, T float64) float64 {
	TK := T + 273.15
	m := MolarMass
	dm := zd09dm * ρ
	Vm := zd09vm * (m / ρ)
	Tm := zd09tm * TK

	B, C, D, E, f := zd09coefs(Tm)

	Vm2 := Vm * Vm
	Vm4 := Vm2 * Vm2
	Vm5 := Vm4 * Vm
	expterm := math.Exp(-zd09γ / Vm2)

	δ := 1.0 + B/Vm + C/Vm2 + D/Vm4 + E/Vm5 +
		f/Vm2*(zd09e1+zd09γ/Vm2)*expterm

	m2 := m * m
	dm3 := dm * dm * dm
	dm4 := dm3 * dm

	κ := B/m +
		2.0*C*dm/m2 +
		4.0*D*dm3/(m2*m2) +
		5.0*E*dm4/(m2*m2*m) +
		(2.0*f*dm/m2*(zd09e1+zd09γ/Vm2)+
			f/Vm2*(1.0-zd09e1-zd09γ/Vm2)*(2.0*zd09γ*dm/m2))*expterm

	return zd09c1 * m / (zd09R * Tm * (δ + dm*κ))
}
