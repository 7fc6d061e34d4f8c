// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solvent

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/stanroozen/godew/mdl/eos"
	"github.com/stanroozen/godew/psat"
)

func Test_solvent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solvent01. bulk branch")

	// high pressure, outside the correction window
	T, P := 673.15, 5e8
	ts, err := eos.Calc(T, P, eos.GetDefaultOptions())
	if err != nil {
		tst.Errorf("eos.Calc failed: %v\n", err)
		return
	}
	g := G(T, P, ts, false)
	chk.Float64(tst, "g    ", 1e-15, g, -2.8580974550961934e-05)
	chk.Float64(tst, "dgdP ", 1e-24, DgDp(T, P, ts, g, false), 3.700564106987661e-13)

	// inside the low-pressure correction window (250 C, 500 bar)
	T, P = 523.15, 5e7
	ts, err = eos.Calc(T, P, eos.GetDefaultOptions())
	if err != nil {
		tst.Errorf("eos.Calc failed: %v\n", err)
		return
	}
	g = G(T, P, ts, false)
	chk.Float64(tst, "g win    ", 1e-14, g, -0.00036953393967672094)
	chk.Float64(tst, "dgdP win ", 1e-23, DgDp(T, P, ts, g, false), 1.907168509253534e-12)
}

func Test_solvent02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solvent02. sentinels and saturation branch")

	// density at or above 1 g/cm³ collapses both values to zero
	var ts eos.State
	ts.D = 1050.0
	ts.DP = 1e-7
	chk.Float64(tst, "g dense   ", 1e-17, G(298.15, 2e8, ts, false), 0)
	chk.Float64(tst, "dgdP dense", 1e-17, DgDp(298.15, 2e8, ts, 0, false), 0)

	// saturation branch ignores the bulk state entirely
	T := 523.15
	g := G(T, 0, eos.State{}, true)
	chk.Float64(tst, "g sat   ", 1e-15, g, -0.0008006589780735747)
	chk.Float64(tst, "dgdP sat", 1e-23, DgDp(T, 0, eos.State{}, g, true), psat.DgdP(T))
	chk.Float64(tst, "dgdP sat value", 1e-22, DgDp(T, 0, eos.State{}, g, true), 1.8635429834347087e-11)
}
