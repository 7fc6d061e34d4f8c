// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dielec implements models for the static dielectric constant of
// water and the derived Born solvation functions. Four formulations are
// available; all compute ε(T,ρ) and ∂ε/∂ρ from the density supplied by the
// equation of state, converting to the pressure derivative by the chain rule.
// Near the liquid-vapour boundary the saturation polynomials may override the
// primary model.
//
//	References:
//	 [1] Johnson JW and Norton D (1991) Critical phenomena in hydrothermal
//	     systems: state, thermodynamic, electrostatic, and transport properties
//	     of H2O in the critical region. Am J Science, 291, 541-648
//	 [2] Franck EU, Rosenzweig S and Christoforakos M (1990) Calculation of the
//	     dielectric constant of water to 1000 C and very high pressures.
//	     Ber Bunsenges Phys Chem, 94, 199-203
//	 [3] Fernandez DP, Goodwin ARH, Lemmon EW, Levelt Sengers JMH and Williams RC
//	     (1997) A formulation for the static permittivity of water and steam at
//	     temperatures from 238 K to 873 K at pressures up to 1200 MPa.
//	     J Phys Chem Ref Data, 26, 1125-1166
//	 [4] Sverjensky DA, Harrison B and Azzolini D (2014) Water in the deep Earth.
//	     Geochimica et Cosmochimica Acta, 129, 125-145
package dielec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/stanroozen/godew/mdl/eos"
	"github.com/stanroozen/godew/psat"
)

// Props holds the dielectric constant of water, its defined derivatives and
// the Born functions at one (T,P) point. Derivatives a formulation does not
// define are zero. Z and Q are always derived from ε and ε_P by
//
//	Z = -1/ε    Q = ε_P/ε²
//
// and are recomputed identically after any saturation override.
type Props struct {
	Eps   float64 // dielectric constant ε [-]
	EpsT  float64 // ∂ε/∂T [1/K]
	EpsP  float64 // ∂ε/∂P [1/Pa]
	EpsTT float64 // ∂²ε/∂T² [1/K²]
	EpsTP float64 // ∂²ε/∂T∂P [1/(K·Pa)]
	EpsPP float64 // ∂²ε/∂P² [1/Pa²]
	Z     float64 // Born Z = -1/ε [-]
	Q     float64 // Born Q = ε_P/ε² [1/Pa]
	Y     float64 // Born Y = ε_T/ε² [1/K]
	X     float64 // Born X = ∂Y/∂T [1/K²]
	N     float64 // Born N = ∂Q/∂P [1/Pa²]
	U     float64 // Born U = ∂Q/∂T [1/(Pa·K)]
}

// Model defines the interface for dielectric constant formulations. The
// density argument is in the calibration unit [g/cm³]; temperature in [K].
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	Epsilon(T, ρ float64) float64    // ε(T,ρ) [-]
	DepsDrho(T, ρ float64) float64   // (∂ε/∂ρ)_T [cm³/g]
}

// PsatPolicy selects when the saturation polynomials replace the primary model
type PsatPolicy int

const (
	PsatNone     PsatPolicy = iota // never override
	PsatWhenNear                   // override when |P-Psat|/Psat ≤ PsatTol
	PsatAlways                     // always override
)

// Options selects the dielectric formulation and the saturation override policy
type Options struct {
	Model     string     // model name: "jn91", "franck90", "fernandez97" or "power"
	Psat      PsatPolicy // saturation override policy
	PsatTol   float64    // relative proximity tolerance for PsatWhenNear
	OverrideQ bool       // also replace Born Q with the saturation fit
}

// GetDefaultOptions returns options with the canonical choices
func GetDefaultOptions() Options {
	return Options{
		Model:   "jn91",
		Psat:    PsatNone,
		PsatTol: 1e-3,
	}
}

// Calc computes the dielectric properties at temperature T [K] and pressure
// P [Pa], consuming the thermodynamic state from the EOS. The primary
// formulation runs first; the saturation override is then applied according
// to the policy in the options.
func Calc(T, P float64, ts eos.State, o Options) (ep Props, err error) {
	mdl, err := New(o.Model)
	if err != nil {
		return
	}

	ρ := ts.D / 1000.0 // [g/cm³]
	ε := mdl.Epsilon(T, ρ)
	ep.Eps = ε

	// chain rule through the EOS pressure derivative, in calibration units
	ep.EpsP = mdl.DepsDrho(T, ρ) * ts.DP / 1000.0 // [1/Pa]

	if ε != 0 {
		ep.Z = -1.0 / ε
		ep.Q = ep.EpsP / (ε * ε)
	}

	switch o.Psat {
	case PsatWhenNear:
		if psat.Near(T, P, o.PsatTol) {
			applyPsatOverride(T, o, &ep)
		}
	case PsatAlways:
		applyPsatOverride(T, o, &ep)
	}
	return
}

// applyPsatOverride replaces ε (and optionally Q) with the saturation
// polynomial values, rederiving Z and ε_P so the Born relations stay exact.
// Without the Q flag the bulk ε_P deliberately survives the override and Q
// is rederived from it, so Q = ε_P/ε² holds in every branch. Do not zero
// ε_P here: that would break the invariant whenever the override fires.
func applyPsatOverride(T float64, o Options, ep *Props) {
	ε := psat.Epsilon(T)
	if ε <= 0 {
		return // keep the primary values; the fit is outside its range
	}
	ep.Eps = ε
	ep.Z = -1.0 / ε
	if o.OverrideQ {
		ep.Q = psat.BornQ(T)
		ep.EpsP = ep.Q * ε * ε // from Q = ε_P/ε²
	} else {
		ep.Q = ep.EpsP / (ε * ε)
	}
	// the saturation fits define only the T-dependence of ε and Q;
	// the remaining derivatives are zero, not approximated
	ep.EpsT, ep.EpsTT, ep.EpsTP, ep.EpsPP = 0, 0, 0, 0
	ep.Y, ep.X, ep.N, ep.U = 0, 0, 0, 0
}

// New returns a new dielectric model
func New(name string) (mdl Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'dielec' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
