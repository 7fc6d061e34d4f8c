// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Fernandez implements the Fernandez et al. (1997) dielectric constant
// formulation: a Harris-Alder g-factor series combined with the
// Kirkwood equation, calibrated in SI units with density in mol/m³.
type Fernandez struct{}

// physical constants of the Fernandez (1997) calibration
const (
	fzNa   = 6.0221367e23     // Avogadro's number [1/mol]
	fzμ    = 6.138e-30        // dipole moment [C·m]
	fzε0   = 8.8541878176204e-12 // vacuum permittivity [C²/(J·m)]
	fzKb   = 1.380658e-23     // Boltzmann constant [J/K]
	fzα    = 1.636e-40        // molecular polarizability [C²/(J·m²)]
	fzρc   = 17873.728        // critical density [mol/m³]
	fzTc   = 647.096          // critical temperature [K]
	fzConv = 55508.0          // (mol/m³) per (g/cm³)
)

// g-factor series coefficients
var (
	fzN = [12]float64{
		0.978224486826,
		-0.957771379375,
		0.237511794148,
		0.714692224396,
		-0.298217036956,
		-0.108863472196,
		0.0949327488264,
		-0.00980469816509,
		0.000016516763497,
		0.0000937359795772,
		-1.2317921872e-10,
		0.00196096504426,
	}
	fzI = [11]float64{1, 1, 1, 2, 3, 3, 4, 5, 6, 7, 10}
	fzJ = [11]float64{0.25, 1, 2.5, 1.5, 1.5, 2.5, 2, 2, 5, 0.5, 10}
)

// add model to factory
func init() {
	allocators["fernandez97"] = func() Model { return new(Fernandez) }
}

// Init initialises model
func (o *Fernandez) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("fernandez97: model has no parameters; got %q", prms[0].N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Fernandez) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// gFactor computes the Harris-Alder g factor at T [K] and density d [mol/m³]
func fzGfactor(T, d float64) float64 {
	x := d / fzρc
	Tratio := fzTc / T
	g := 1.0
	for i := 0; i <= 10; i++ {
		g += fzN[i] * math.Pow(x, fzI[i]) * math.Pow(Tratio, fzJ[i])
	}
	g += fzN[11] * x * math.Pow(T/228.0-1.0, -1.2)
	return g
}

// fzABC computes the Kirkwood-equation auxiliaries at T [K], d [mol/m³]
func fzABC(T, d, g float64) (A, B, C float64) {
	A = (fzNa * fzμ * fzμ * d * g) / (fzε0 * fzKb * T)
	B = (fzNa * fzα * d) / (3.0 * fzε0)
	C = 9.0 + 2.0*A + 18.0*B + A*A + 10.0*A*B + 9.0*B*B
	return
}

// Epsilon computes ε(T,ρ) for T [K] and ρ [g/cm³]
func (o Fernandez) Epsilon(T, ρ float64) float64 {
	d := ρ * fzConv // [mol/m³]
	g := fzGfactor(T, d)
	A, B, C := fzABC(T, d, g)
	return (1.0 + A + 5.0*B + math.Sqrt(C)) / (4.0 - 4.0*B)
}

// DepsDrho computes (∂ε/∂ρ)_T [cm³/g]
func (o Fernandez) DepsDrho(T, ρ float64) float64 {
	d := ρ * fzConv
	g := fzGfactor(T, d)

	// dg/dd with d in mol/m³
	dgdd := 0.0
	Tratio := fzTc / T
	for i := 0; i <= 10; i++ {
		ik := fzI[i]
		dgdd += ik * fzN[i] * math.Pow(d, ik-1.0) / math.Pow(fzρc, ik) *
			math.Pow(Tratio, fzJ[i])
	}
	dgdd += (fzN[11] / fzρc) * math.Pow(T/228.0-1.0, -1.2)

	A, B, C := fzABC(T, d, g)
	ε := (1.0 + A + 5.0*B + math.Sqrt(C)) / (4.0 - 4.0*B)

	dAdd := A/d + (A/g)*dgdd
	dBdd := B / d
	dCdd := 2.0*dAdd + 18.0*dBdd + 2.0*A*dAdd +
		10.0*(dAdd*B+A*dBdd) + 18.0*B*dBdd

	return fzConv * (1.0 / (4.0 - 4.0*B)) *
		(4.0*dBdd*ε + dAdd + 5.0*dBdd + 0.5*dCdd/math.Sqrt(C))
}
