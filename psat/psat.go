// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package psat implements fitted curves valid along the liquid-vapour
// saturation boundary of water: the vapour-pressure correlation of Wagner and
// Pruss (1993) and a bank of polynomials, functions of temperature only, for
// liquid density, dielectric constant, Gibbs energy, the Born Q function and
// the pressure slope of the solvent function. The polynomial coefficients are
// calibration data and must not be altered; evaluation is plain Horner-style
// arithmetic so results are reproducible bit-for-bit.
//
//	References:
//	 [1] Wagner W and Pruss A (1993) International equations for the saturation
//	     properties of ordinary water substance. J Phys Chem Ref Data 22(3) 783-787
//	 [2] Sverjensky DA, Harrison B and Azzolini D (2014) Water in the deep Earth:
//	     the dielectric constant and the solubilities of quartz and corundum to
//	     60 kb and 1200 C. Geochimica et Cosmochimica Acta, 129, 125-145
package psat

import "math"

// critical point constants used by the vapour-pressure correlation [1]
const (
	Tcrit = 647.096    // critical temperature [K]
	Pcrit = 22.064e+06 // critical pressure [Pa]
)

// Pressure computes the saturation (vapour) pressure of water at temperature
// T [K] using the auxiliary correlation of Wagner and Pruss [1].
// Returns pressure in [Pa]; zero for temperatures outside (0, Tcrit].
func Pressure(T float64) float64 {
	if T <= 0 || T > Tcrit {
		return 0
	}
	τ := 1.0 - T/Tcrit
	τ2 := τ * τ
	τ3 := τ2 * τ
	s := -7.85951783*τ +
		1.84408259*τ*math.Sqrt(τ) +
		-11.7866497*τ3 +
		22.6807411*τ3*math.Sqrt(τ) +
		-15.9618719*τ2*τ2 +
		1.80122502*τ3*τ3*math.Sqrt(τ3)
	return Pcrit * math.Exp(Tcrit/T*s)
}

// Near reports whether pressure P [Pa] lies within the relative tolerance rtol
// of the saturation pressure at temperature T [K]. A non-positive rtol or an
// undefined saturation pressure gives false.
func Near(T, P, rtol float64) bool {
	if rtol <= 0 {
		return false
	}
	Ps := Pressure(T)
	if !(Ps > 0) {
		return false
	}
	return math.Abs(P-Ps) <= rtol*Ps
}

// DensityLiq computes the saturated liquid density at temperature T [K]
// from the fitted polynomial in Celsius temperature. Returns density in [kg/m³].
func DensityLiq(T float64) float64 {
	TC := T - 273.15
	T2 := TC * TC
	T3 := T2 * TC
	T4 := T2 * T2
	T10 := math.Pow(TC, 10.0)
	T40 := math.Pow(TC, 40.0)
	ρ := -1.01023381581205e-104*T40 +
		-1.1368599785953e-27*T10 +
		-2.11689207168779e-11*T4 +
		1.26878850169523e-08*T3 +
		-4.92010672693621e-06*T2 +
		-3.2666598612692e-05*TC +
		1.00046144613017 // [g/cm³]
	return ρ * 1000.0
}

// Epsilon computes the dielectric constant of the saturated liquid at
// temperature T [K] (dimensionless).
func Epsilon(T float64) float64 {
	TC := T - 273.15
	T2 := TC * TC
	T3 := T2 * TC
	T30 := math.Pow(TC, 30.0)
	return -1.66686763214295e-77*T30 +
		-9.02887020379887e-07*T3 +
		8.4590281449009e-04*T2 +
		-0.396542037778945*TC +
		87.605024245432
}

// Gibbs computes the Gibbs free energy of saturated liquid water at
// temperature T [K]. The fit is calorie-based; the result is converted
// to [J/mol].
func Gibbs(T float64) float64 {
	TC := T - 273.15
	T2 := TC * TC
	T3 := T2 * TC
	T4 := T2 * T2
	T10 := math.Pow(TC, 10.0)
	T40 := math.Pow(TC, 40.0)
	Gcal := -2.72980941772081e-103*T40 +
		2.88918186300446e-25*T10 +
		-2.21891314234246e-08*T4 +
		3.0912103873633e-05*T3 +
		-3.20873264480928e-02*T2 +
		-15.169458452209*TC +
		-56289.0379433809
	return Gcal * 4.184
}

// BornQ computes the Born Q function Q = ε_P/ε² of the saturated liquid at
// temperature T [K]. The fit gives Q in [1/bar]; the result is converted
// to [1/Pa].
func BornQ(T float64) float64 {
	TC := T - 273.15
	T2 := TC * TC
	T3 := T2 * TC
	T4 := T2 * T2
	T5 := T4 * TC
	T6 := T3 * T3
	T20 := math.Pow(TC, 20.0)
	poly := 1.99258688758345e-49*T20 +
		-4.43690270750774e-14*T6 +
		4.29110215680165e-11*T5 +
		-1.07146606081182e-08*T4 +
		1.09982931856694e-06*T3 +
		9.60705240954956e-06*T2 +
		0.642579832259358
	return poly * 1.0e-6 * 1.0e-5 // [1/bar] -> [1/Pa]
}

// DgdP computes the pressure slope of the solvent function along the
// saturation curve at temperature T [K]. The underlying fit is an exponential
// of a polynomial in ln(T Celsius); below 0.01 °C the slope is zero by
// definition (the logarithm is undefined there). Returns the slope in [Å/Pa].
func DgdP(T float64) float64 {
	TC := T - 273.15
	if TC < 0.01 {
		return 0
	}
	lnT := math.Log(TC)
	expo := 1.37105493109451e-10*math.Pow(lnT, 15.0) -
		1.43605469318795e-06*math.Pow(lnT, 10.0) +
		26.2649453651117*lnT -
		125.108856715714
	return math.Exp(expo) * 1.0e-6 * 1.0e-5 // [Å/bar] -> [Å/Pa]
}
