// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Franck implements the Franck, Rosenzweig & Christoforakos (1990) dielectric
// constant model: a Kirkwood-type expansion in the reduced dipole density,
// calibrated in cgs units.
type Franck struct{}

// constants of the Franck (1990) calibration (cgs)
const (
	franckω  = 2.68e-8      // Lennard-Jones distance [cm]
	franckKb = 1.380648e-16 // Boltzmann constant [erg/K]
	franckNa = 6.022e23     // Avogadro's number [1/mol]
	franckμ  = 2.33e-18     // dipole moment [statC·cm]

	// mol per gram of water; the truncated 0.05508 in the derivative is a
	// quirk of the original calibration and is kept as-is
	franckInvM      = 0.055508
	franckInvMtrunc = 0.05508
)

// add model to factory
func init() {
	allocators["franck90"] = func() Model { return new(Franck) }
}

// Init initialises model
func (o *Franck) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("franck90: model has no parameters; got %q", prms[0].N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Franck) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// reduced quantities at T [K] and molar density d [mol/cm³]
func franckReduced(T, d float64) (ρstar, y, f1, f2, f3 float64) {
	cc := franckω * franckω * franckω * franckNa
	ρstar = d * cc
	μstar2 := (franckμ * franckμ) / (franckKb * T * franckω * franckω * franckω)
	y = (4.0 * math.Pi / 9.0) * ρstar * μstar2
	f1 = 0.4341 * ρstar * ρstar
	f2 = -(0.05 + 0.75*ρstar*ρstar*ρstar)
	f3 = -0.026*ρstar*ρstar + 0.173*math.Pow(ρstar, 4.0)
	return
}

// Epsilon computes ε(T,ρ) for T [K] and ρ [g/cm³]
func (o Franck) Epsilon(T, ρ float64) float64 {
	d := ρ * franckInvM // [mol/cm³]
	_, y, f1, f2, f3 := franckReduced(T, d)
	term := 1.0 + (1.0-f1)*y + f2*y*y + f3*y*y*y
	return (3.0*y/(1.0-f1*y))*term + 1.0
}

// DepsDrho computes (∂ε/∂ρ)_T [cm³/g]
func (o Franck) DepsDrho(T, ρ float64) float64 {
	d := ρ * franckInvM
	_, y, f1, f2, f3 := franckReduced(T, d)

	cc := franckω * franckω * franckω * franckNa
	μstar2 := (franckμ * franckμ) / (franckKb * T * franckω * franckω * franckω)

	dydρ := (4.0 * math.Pi / 9.0) * μstar2 * cc
	df1dρ := 2.0 * 0.4341 * cc * cc * d
	df2dρ := -3.0 * 0.75 * cc * cc * cc * d * d
	df3dρ := -2.0*0.026*cc*cc*d + 4.0*0.173*math.Pow(cc, 4.0)*d*d*d

	ε := o.Epsilon(T, ρ)
	den := 1.0 - f1*y

	term1 := ((dydρ + y*y*df1dρ) / den) * (ε - 1.0) / y
	term2 := (3.0 * y / den) *
		(-df1dρ*y + df2dρ*y*y + df3dρ*y*y*y +
			(1.0-f1+2.0*f2*y+3.0*f3*y*y)*dydρ)

	return franckInvMtrunc * (term1 + term2)
}
