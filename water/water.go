// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package water composes the water property models into one aggregate state.
// The thermodynamic state (density and derivatives) and the dielectric
// properties are always computed; the Gibbs free energy and the solvent
// function are optional subsystems enabled by flags. Born omega is a
// per-species quantity and is computed by the consumer from this state plus
// the species charge and reference coefficient; see the born package.
package water

import (
	"github.com/stanroozen/godew/mdl/dielec"
	"github.com/stanroozen/godew/mdl/eos"
	"github.com/stanroozen/godew/mdl/gibbs"
	"github.com/stanroozen/godew/mdl/solvent"
)

// State aggregates the water properties at one (T,P) point. Optional
// subsystems carry an explicit presence flag; absent results are zero.
type State struct {
	Thermo  eos.State    // density and derivatives (SI)
	Electro dielec.Props // dielectric constant and Born functions

	HasGibbs bool
	Gibbs    float64 // G(T,P) [J/mol]

	HasSolvent bool
	Gsolv      float64 // solvent function g [Å]
	DgdP       float64 // ∂g/∂P [Å/Pa]
}

// Options controls which models and optional subsystems are used
type Options struct {
	Eos    eos.Options    // density equation of state
	Dielec dielec.Options // dielectric formulation and overrides

	ComputeGibbs bool
	Gibbs        gibbs.Options

	ComputeSolvent bool
	SolventSat     bool // evaluate the solvent function on the saturation curve
}

// GetDefaultOptions returns options with the canonical model choices and all
// optional subsystems disabled
func GetDefaultOptions() (o Options) {
	o.Eos = eos.GetDefaultOptions()
	o.Dielec = dielec.GetDefaultOptions()
	o.Gibbs = gibbs.GetDefaultOptions()
	return
}

// CheckOptions validates every model-variant name in the options. Errors
// surface here, at the configuration boundary, so the numeric pipeline never
// fails mid-computation.
func CheckOptions(o Options) (err error) {
	if _, err = eos.New(o.Eos.Model); err != nil {
		return
	}
	if _, err = dielec.New(o.Dielec.Model); err != nil {
		return
	}
	if o.ComputeGibbs {
		if err = gibbs.CheckOptions(o.Gibbs); err != nil {
			return
		}
	}
	return
}

// Calc computes the aggregate water state at temperature T [K] and pressure
// P [Pa]. Thermo and electro always run, in that order; the optional
// subsystems follow their flags.
func Calc(T, P float64, o Options) (s State, err error) {
	if err = CheckOptions(o); err != nil {
		return
	}

	s.Thermo, err = eos.Calc(T, P, o.Eos)
	if err != nil {
		return
	}

	s.Electro, err = dielec.Calc(T, P, s.Thermo, o.Dielec)
	if err != nil {
		return
	}

	if o.ComputeGibbs {
		s.Gibbs, err = gibbs.Calc(T, P, o.Gibbs)
		if err != nil {
			return
		}
		s.HasGibbs = true
	}

	if o.ComputeSolvent {
		s.Gsolv = solvent.G(T, P, s.Thermo, o.SolventSat)
		s.DgdP = solvent.DgDp(T, P, s.Thermo, s.Gsolv, o.SolventSat)
		s.HasSolvent = true
	}
	return
}
