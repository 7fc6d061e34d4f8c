// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solvent implements the Shock et al. (1992) solvent function g(T,P,ρ)
// of water and its pressure derivative, as recalibrated for deep-crustal
// conditions. The function gives the density-dependent correction to the
// effective electrostatic radius of dissolved ions and feeds the Born omega
// model. Two mutually exclusive branches exist: the bulk-phase formula and a
// saturation-curve evaluation; they are never mixed.
//
//	References:
//	 [1] Shock EL, Oelkers EH, Johnson JW, Sverjensky DA and Helgeson HC (1992)
//	     Calculation of the thermodynamic properties of aqueous species at high
//	     pressures and temperatures. J Chem Soc Faraday Trans, 88(6), 803-826
package solvent

import (
	"math"

	"github.com/stanroozen/godew/mdl/eos"
	"github.com/stanroozen/godew/psat"
)

// bounds of the low-pressure correction window
const (
	fPmax = 1000.0 // correction active below this pressure [bar]
	fTmin = 155.0  // lower temperature bound [°C]
	fTmax = 355.0  // upper temperature bound [°C]
)

// ag and bg are the quadratic-in-temperature fits of the g function, T in [°C]
func ag(T float64) float64 {
	return -2.037662 + 0.005747*T - 6.557892e-6*T*T
}

func bg(T float64) float64 {
	return 6.107361 - 0.01074377*T + 1.268348e-5*T*T
}

// fcorr computes the low-pressure correction term, active only inside the
// calibration window; T in [°C], P in [bar]
func fcorr(T, P float64) float64 {
	if P > fPmax || T < fTmin || T > fTmax {
		return 0
	}
	x := (T - fTmin) / 300.0
	ramp := math.Pow(x, 4.8) + 36.66666*math.Pow(x, 16.0)
	d := fPmax - P
	return ramp * (-1.504956e-10*d*d*d + 5.017997e-14*d*d*d*d)
}

// dfcorrDp computes ∂f/∂P [1/bar] inside the same window
func dfcorrDp(T, P float64) float64 {
	if P > fPmax || T < fTmin || T > fTmax {
		return 0
	}
	x := (T - fTmin) / 300.0
	ramp := math.Pow(x, 4.8) + 36.66666*math.Pow(x, 16.0)
	d := fPmax - P
	return -ramp * (3.0*-1.504956e-10*d*d + 4.0*5.017997e-14*d*d*d)
}

// G computes the solvent function g [Å] at temperature T [K] and pressure
// P [Pa]. With sat true the formula is evaluated at the saturation density
// and pressure instead of the bulk state. Density at or above 1 g/cm³ is
// outside the validity range and collapses g to zero by definition.
func G(T, P float64, ts eos.State, sat bool) float64 {
	TC := T - 273.15

	var ρ, Pbar float64
	if sat {
		ρ = psat.DensityLiq(T) / 1000.0 // [g/cm³]
		Pbar = psat.Pressure(T) * 1e-5
	} else {
		ρ = ts.D / 1000.0
		Pbar = P * 1e-5
	}

	if ρ >= 1.0 {
		return 0
	}
	return ag(TC)*math.Pow(1.0-ρ, bg(TC)) - fcorr(TC, Pbar)
}

// DgDp computes ∂g/∂P [Å/Pa] at temperature T [K] and pressure P [Pa],
// reusing a previously computed g value. The bulk branch differentiates the
// (1-ρ)^b term analytically through the EOS pressure derivative; the
// saturation branch consults the dedicated saturation-slope fit instead.
func DgDp(T, P float64, ts eos.State, g float64, sat bool) float64 {
	if sat {
		return psat.DgdP(T)
	}

	TC := T - 273.15
	Pbar := P * 1e-5
	ρ := ts.D / 1000.0

	if ρ >= 1.0 {
		return 0
	}

	// (kg/m³)/Pa -> (g/cm³)/bar
	dρdPbar := ts.DP * 100.0

	dgdPbar := -bg(TC)*dρdPbar*g/(1.0-ρ) - dfcorrDp(TC, Pbar)
	return dgdPbar * 1e-5 // [Å/bar] -> [Å/Pa]
}
