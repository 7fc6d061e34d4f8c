// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package born implements the Born solvation coefficient ω of a charged
// aqueous species and its pressure derivative, following the revised HKF
// treatment of Shock et al. (1992). The effective electrostatic radius of
// an ion grows with the solvent function g, so ω becomes temperature and
// pressure dependent for all charged species. Neutral species and species
// flagged as hydrogen-like keep their reference ω unchanged.
package born

import (
	"github.com/stanroozen/godew/mdl/eos"
	"github.com/stanroozen/godew/mdl/solvent"
)

// CalToJ converts thermochemical calories to Joules
const CalToJ = 4.184

// eta is the Born constant η = N·e²/2 expressed in [Å·cal/mol]
const eta = 166027.0

// zOffset is the charge-dependent radius offset [Å] of the revised HKF model
const zOffset = 3.082

// Options holds the evaluation switches of the Born model
type Options struct {
	HydrogenLike bool    // treat species like H+: ω stays at the reference value
	Pmax         float64 // above this pressure [Pa] the g correction vanishes
	Sat          bool    // evaluate the solvent function on the saturation curve
}

// GetDefaultOptions returns options with the standard pressure cutoff
func GetDefaultOptions() (o Options) {
	o.Pmax = 6000.0e5
	return
}

// Omega computes the Born coefficient ω [J/mol] and its pressure derivative
// ∂ω/∂P [J/(mol·Pa)] for a species of charge Z with reference coefficient
// wref [J/mol]. T [K] and P [Pa] locate the state; ts carries the water
// density and its pressure derivative from the EOS.
//
// Neutral species, hydrogen-like species, and states above the pressure
// cutoff all bypass the solvent correction and return (wref, 0).
func Omega(Z, wref, T, P float64, ts eos.State, o Options) (ω, ωp float64) {
	if Z == 0 || o.HydrogenLike || P > o.Pmax {
		return wref, 0
	}

	wrefCal := wref / CalToJ

	// reference electrostatic radius from the reference ω [Å]
	denom := wrefCal/eta + Z/zOffset
	if denom == 0 {
		return wref, 0
	}
	reref := Z * Z / denom

	g := solvent.G(T, P, ts, o.Sat)
	re := reref + abs(Z)*g
	if re <= 0 {
		return wref, 0
	}

	ωcal := eta * (Z*Z/re - Z/(zOffset+g))

	dgdP := solvent.DgDp(T, P, ts, g, o.Sat) // [Å/Pa]
	ωpcal := -eta * (abs(Z)*Z*Z/(re*re) - Z/((zOffset+g)*(zOffset+g))) * dgdP

	return ωcal * CalToJ, ωpcal * CalToJ
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
