// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// JohnsonNorton implements the Johnson & Norton (1991) dielectric constant
// formulation: a quartic power series in reduced density whose coefficients
// depend on reduced temperature. This is the default formulation.
type JohnsonNorton struct{}

// coefficients of the Johnson & Norton (1991) fit
var jn91a = [10]float64{
	14.70333593,
	212.8462733,
	-115.4445173,
	19.55210915,
	-83.3034798,
	32.13240048,
	-6.694098645,
	-37.86202045,
	68.87359646,
	-27.29401652,
}

// reference temperature of the fit [K]
const jn91Tref = 298.15

// add model to factory
func init() {
	allocators["jn91"] = func() Model { return new(JohnsonNorton) }
}

// Init initialises model
func (o *JohnsonNorton) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("jn91: model has no parameters; got %q", prms[0].N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o JohnsonNorton) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// density-power coefficients at reduced temperature Tr
func jn91k(Tr float64) (k1, k2, k3, k4 float64) {
	a := jn91a
	k1 = a[0] / Tr
	k2 = a[1]/Tr + a[2] + a[3]*Tr
	k3 = a[4]/Tr + a[5]*Tr + a[6]*Tr*Tr
	k4 = a[7]/(Tr*Tr) + a[8]/Tr + a[9]
	return
}

// Epsilon computes ε(T,ρ) for T [K] and ρ [g/cm³]
func (o JohnsonNorton) Epsilon(T, ρ float64) float64 {
	Tr := T / jn91Tref
	k1, k2, k3, k4 := jn91k(Tr)
	return 1.0 + ρ*(k1+ρ*(k2+ρ*(k3+ρ*k4)))
}

// DepsDrho computes (∂ε/∂ρ)_T [cm³/g]
func (o JohnsonNorton) DepsDrho(T, ρ float64) float64 {
	Tr := T / jn91Tref
	k1, k2, k3, k4 := jn91k(Tr)
	return k1 + ρ*(2.0*k2+ρ*(3.0*k3+ρ*4.0*k4))
}
