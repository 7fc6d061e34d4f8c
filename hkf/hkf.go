// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hkf implements the revised Helgeson-Kirkham-Flowers equations for
// the standard molar thermodynamic properties of aqueous species, consuming
// the aggregate water state from the water package. The solvation
// contribution uses the pressure-dependent Born coefficient from the born
// package; temperature derivatives of omega are approximated through the
// Born functions of the chosen dielectric model.
//
//	References:
//	 [1] Tanger JC and Helgeson HC (1988) Calculation of the thermodynamic and
//	     transport properties of aqueous species at high pressures and
//	     temperatures. American Journal of Science, 288, 19-98
//	 [2] Sverjensky DA, Harrison B and Azzolini D (2014) Water in the deep
//	     Earth. Geochimica et Cosmochimica Acta, 129, 125-145
package hkf

import (
	"math"

	"github.com/stanroozen/godew/mdl/born"
	"github.com/stanroozen/godew/water"
)

// reference state and solvent characteristic constants
const (
	Tr = 298.15           // reference temperature [K]
	Pr = 1.0e5            // reference pressure [Pa]
	Zr = -1.278055636e-02 // Born Z at (Tr,Pr) [-]
	Yr = -5.795424563e-05 // Born Y at (Tr,Pr) [1/K]
	θ  = 228.0            // solvent characteristic temperature [K]
	ψ  = 2600.0e5         // solvent characteristic pressure [Pa]
)

// Species holds the HKF equation-of-state coefficients of one aqueous
// species, in SI units
type Species struct {
	Name         string
	Charge       float64
	Gf           float64 // formation Gibbs energy at (Tr,Pr) [J/mol]
	Hf           float64 // formation enthalpy at (Tr,Pr) [J/mol]
	Sr           float64 // entropy at (Tr,Pr) [J/(mol·K)]
	A1           float64 // a1 [J/(mol·Pa)]
	A2           float64 // a2 [J/mol]
	A3           float64 // a3 [J·K/(mol·Pa)]
	A4           float64 // a4 [J·K/mol]
	C1           float64 // c1 [J/(mol·K)]
	C2           float64 // c2 [J·K/mol]
	Wref         float64 // Born coefficient at (Tr,Pr) [J/mol]
	HydrogenLike bool    // keep omega fixed at Wref, like H+
}

// Props holds the standard molar properties of one species at (T,P)
type Props struct {
	G0  float64 // Gibbs energy [J/mol]
	H0  float64 // enthalpy [J/mol]
	V0  float64 // volume [m³/mol]
	Cp0 float64 // isobaric heat capacity [J/(mol·K)]
	VT0 float64 // ∂V0/∂T [m³/(mol·K)]
	VP0 float64 // ∂V0/∂P [m³/(mol·Pa)]
}

// Calc computes the standard molar properties of species sp at temperature
// T [K] and pressure P [Pa], consuming a previously computed water state.
// The Born options control the omega evaluation; the hydrogen-like flag of
// the species takes precedence over the one in the options.
func Calc(sp Species, T, P float64, ws water.State, bo born.Options) (pr Props) {
	bo.HydrogenLike = bo.HydrogenLike || sp.HydrogenLike
	w, wP := born.Omega(sp.Charge, sp.Wref, T, P, ws.Thermo, bo)

	Z := ws.Electro.Z
	Y := ws.Electro.Y
	Q := ws.Electro.Q
	X := ws.Electro.X
	N := ws.Electro.N
	U := ws.Electro.U

	// temperature derivatives of omega through the Born functions; the
	// cross derivatives would need numerical differentiation and stay zero
	var wT, wTT float64
	if Z != 0 {
		wT = -w * Y / Z
		wTT = -w * X / Z
	}
	var wTP, wPP float64

	Tth := T - θ
	Tth2 := Tth * Tth
	Tth3 := Tth * Tth2
	ψP := ψ + P
	ψPr := ψ + Pr

	pr.V0 = sp.A1 + sp.A2/ψP + (sp.A3+sp.A4/ψP)/Tth - w*Q - (Z+1.0)*wP

	pr.VT0 = -(sp.A3+sp.A4/ψP)/Tth2 - wT*Q - w*U - Y*wP - (Z+1.0)*wTP

	pr.VP0 = -sp.A2/(ψP*ψP) - sp.A4/(ψP*ψP*Tth) - wP*Q - w*N - Q*wP - (Z+1.0)*wPP

	pr.G0 = sp.Gf - sp.Sr*(T-Tr) - sp.C1*(T*math.Log(T/Tr)-T+Tr) +
		sp.A1*(P-Pr) + sp.A2*math.Log(ψP/ψPr) -
		sp.C2*((1.0/(T-θ)-1.0/(Tr-θ))*(θ-T)/θ-
			T/(θ*θ)*math.Log(Tr/T*(T-θ)/(Tr-θ))) +
		(sp.A3*(P-Pr)+sp.A4*math.Log(ψP/ψPr))/Tth -
		w*(Z+1.0) + sp.Wref*(Zr+1.0) + sp.Wref*Yr*(T-Tr)

	pr.H0 = sp.Hf + sp.C1*(T-Tr) - sp.C2*(1.0/Tth-1.0/(Tr-θ)) +
		sp.A1*(P-Pr) + sp.A2*math.Log(ψP/ψPr) +
		(2.0*T-θ)/Tth2*(sp.A3*(P-Pr)+sp.A4*math.Log(ψP/ψPr)) -
		w*(Z+1.0) + w*T*Y + T*(Z+1.0)*wT + sp.Wref*(Zr+1.0) - sp.Wref*Tr*Yr

	pr.Cp0 = sp.C1 + sp.C2/Tth2 - 2.0*T/Tth3*(sp.A3*(P-Pr)+sp.A4*math.Log(ψP/ψPr)) +
		w*T*X + 2.0*T*Y*wT + T*(Z+1.0)*wTT

	return
}
