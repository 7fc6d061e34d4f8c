// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hkf

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/stanroozen/godew/mdl/born"
	"github.com/stanroozen/godew/water"
)

func Test_hkf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hkf01. hydrogen ion convention")

	ws, err := water.Calc(573.15, 5e8, water.GetDefaultOptions())
	if err != nil {
		tst.Errorf("water.Calc failed: %v\n", err)
		return
	}

	// H+ has zero coefficients by convention; all properties vanish
	hplus := Species{Name: "H+", Charge: 1, HydrogenLike: true}
	pr := Calc(hplus, 573.15, 5e8, ws, born.GetDefaultOptions())
	chk.Float64(tst, "G0 ", 1e-17, pr.G0, 0)
	chk.Float64(tst, "H0 ", 1e-17, pr.H0, 0)
	chk.Float64(tst, "V0 ", 1e-17, pr.V0, 0)
	chk.Float64(tst, "Cp0", 1e-17, pr.Cp0, 0)
}

func Test_hkf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hkf02. aqueous species at 300 C, 5 kb")

	T, P := 573.15, 5e8
	ws, err := water.Calc(T, P, water.GetDefaultOptions())
	if err != nil {
		tst.Errorf("water.Calc failed: %v\n", err)
		return
	}
	bo := born.GetDefaultOptions()

	hco3 := Species{
		Name: "HCO3-", Charge: -1,
		Gf: -586939.89, Hf: -689933.0, Sr: 98.45,
		A1: 3.1619e-5, A2: 480.0, A3: 1.2366e-4, A4: -150599.0,
		C1: 52.0, C2: -519198.0,
		Wref: 532748.72,
	}
	pr := Calc(hco3, T, P, ws, bo)
	chk.Float64(tst, "HCO3-: G0 ", 1e-6, pr.G0, -598855.7423765714)
	chk.Float64(tst, "HCO3-: H0 ", 1e-6, pr.H0, -647524.4363835983)
	chk.Float64(tst, "HCO3-: V0 ", 1e-16, pr.V0, 2.7144564809992738e-05)
	chk.Float64(tst, "HCO3-: Cp0", 1e-9, pr.Cp0, 50.420172848433374)

	co2 := Species{
		Name: "CO2_aq", Charge: 0,
		Gf: -385974.0, Hf: -413797.0, Sr: 117.57,
		A1: 2.614e-5, A2: 3125.9, A3: 4.1087e-5, A4: -141645.0,
		C1: 167.5, C2: 880214.0,
		Wref: -334720.0,
	}
	pr = Calc(co2, T, P, ws, bo)
	chk.Float64(tst, "CO2: G0 ", 1e-6, pr.G0, -425436.34003724006)
	chk.Float64(tst, "CO2: H0 ", 1e-6, pr.H0, -353924.1008505908)
	chk.Float64(tst, "CO2: V0 ", 1e-16, pr.V0, 3.290455270028181e-05)
	chk.Float64(tst, "CO2: Cp0", 1e-9, pr.Cp0, 178.55037664761755)

	// reaction CO2(aq) + H2O = H+ + HCO3- using the water Gibbs model
	og := water.GetDefaultOptions()
	og.ComputeGibbs = true
	ws2, err := water.Calc(T, P, og)
	if err != nil {
		tst.Errorf("water.Calc failed: %v\n", err)
		return
	}
	prh := Calc(hco3, T, P, ws2, bo)
	prc := Calc(co2, T, P, ws2, bo)
	dGr := prh.G0 - prc.G0 - ws2.Gibbs
	chk.Float64(tst, "ΔGr", 1e-5, dGr, 80075.00857616176)
}
