// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PowerFn implements the Sverjensky-Harrison power-function dielectric model:
// ε = exp(B(T))·ρ^A(T) with A and B fitted in Celsius temperature. It is the
// deep-crust extrapolation of the four formulations.
type PowerFn struct{}

// fit coefficients of A(T) and B(T)
const (
	pwA1 = -1.57637700752506e-03
	pwA2 = 6.81028783422197e-02
	pwA3 = 0.754875480393944

	pwB1 = -8.01665106535394e-05
	pwB2 = -6.87161761831994e-02
	pwB3 = 4.74797272182151
)

// add model to factory
func init() {
	allocators["power"] = func() Model { return new(PowerFn) }
}

// Init initialises model
func (o *PowerFn) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("power: model has no parameters; got %q", prms[0].N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o PowerFn) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// exponents at T [K]; the fit is in Celsius and assumes T above freezing
func pwAB(T float64) (A, B float64) {
	TC := T - 273.15
	sqrtT := 0.0
	if TC > 0 {
		sqrtT = math.Sqrt(TC)
	}
	A = pwA1*TC + pwA2*sqrtT + pwA3
	B = pwB1*TC + pwB2*sqrtT + pwB3
	return
}

// Epsilon computes ε(T,ρ) for T [K] and ρ [g/cm³]
func (o PowerFn) Epsilon(T, ρ float64) float64 {
	if ρ <= 0 {
		return 1.0 // unphysical density; vacuum fallback
	}
	A, B := pwAB(T)
	return math.Exp(B) * math.Pow(ρ, A)
}

// DepsDrho computes (∂ε/∂ρ)_T [cm³/g]
func (o PowerFn) DepsDrho(T, ρ float64) float64 {
	if ρ <= 0 {
		return 0
	}
	A, B := pwAB(T)
	return A * math.Exp(B) * math.Pow(ρ, A-1.0)
}
