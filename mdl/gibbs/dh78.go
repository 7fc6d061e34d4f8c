// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gibbs

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// DelaneyHelgeson78 implements the Delaney & Helgeson (1978) bivariate
// polynomial for the Gibbs free energy of water, calibrated in [cal/mol]
// with T in [°C] and P in [bar]
type DelaneyHelgeson78 struct{}

// add model to factory map
func init() {
	allocators["dh78"] = func() Model { return new(DelaneyHelgeson78) }
}

// Init initialises model
func (o *DelaneyHelgeson78) Init(prms dbf.Params) error {
	return nil
}

// GetPrms gets (an example of) parameters
func (o *DelaneyHelgeson78) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// coefficients of the double power series, flattened over j=0..4, k=0..4-j
// for T^j·P^k
var dh78c = [15]float64{
	-56130.073,
	0.38101798,
	-2.1167697e-6,
	2.0266445e-11,
	-8.3225572e-17,
	-15.285559,
	1.375239e-4,
	-1.5586868e-9,
	6.6329577e-15,
	-0.026092451,
	3.5988857e-8,
	-2.7916588e-14,
	1.7140501e-5,
	-1.6860893e-11,
	-6.0126987e-9,
}

// G computes the Gibbs free energy [J/mol] at T [K] and P [Pa]
func (o *DelaneyHelgeson78) G(T, P float64, opt Options) float64 {
	TC := T - 273.15
	Pbar := P * 1e-5
	var Gcal float64
	idx := 0
	for j := 0; j <= 4; j++ {
		Tj := math.Pow(TC, float64(j))
		for k := 0; k <= 4-j; k++ {
			Gcal += dh78c[idx] * Tj * math.Pow(Pbar, float64(k))
			idx++
		}
	}
	return Gcal * CalToJ
}
