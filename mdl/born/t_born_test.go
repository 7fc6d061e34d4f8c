// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package born

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/stanroozen/godew/mdl/eos"
)

func Test_born01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("born01. bypass laws")

	ts, err := eos.Calc(573.15, 5e8, eos.GetDefaultOptions())
	if err != nil {
		tst.Errorf("eos.Calc failed: %v\n", err)
		return
	}
	o := GetDefaultOptions()

	// neutral species keep the reference coefficient exactly
	w, wp := Omega(0, -334720.0, 573.15, 5e8, ts, o)
	chk.Float64(tst, "neutral: ω ", 1e-17, w, -334720.0)
	chk.Float64(tst, "neutral: ωP", 1e-17, wp, 0)

	// hydrogen-like species too
	o.HydrogenLike = true
	w, wp = Omega(1, 0.0, 573.15, 5e8, ts, o)
	chk.Float64(tst, "H-like: ω ", 1e-17, w, 0)
	chk.Float64(tst, "H-like: ωP", 1e-17, wp, 0)

	// and any state above the pressure cutoff
	o.HydrogenLike = false
	w, wp = Omega(-1, 532748.72, 573.15, 7e8, ts, o)
	chk.Float64(tst, "cutoff: ω ", 1e-17, w, 532748.72)
	chk.Float64(tst, "cutoff: ωP", 1e-17, wp, 0)
}

func Test_born02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("born02. charged species")

	ts, err := eos.Calc(573.15, 5e8, eos.GetDefaultOptions())
	if err != nil {
		tst.Errorf("eos.Calc failed: %v\n", err)
		return
	}
	o := GetDefaultOptions()

	// bicarbonate
	w, wp := Omega(-1, 532748.72, 573.15, 5e8, ts, o)
	chk.Float64(tst, "HCO3-: ω ", 1e-7, w, 532748.7203302481)
	chk.Float64(tst, "HCO3-: ωP", 1e-22, wp, -4.229759400515855e-11)

	// doubly charged cation
	w, wp = Omega(2, 243090.0, 573.15, 5e8, ts, o)
	chk.Float64(tst, "Ca2+: ω ", 1e-7, w, 243090.00031628416)
	chk.Float64(tst, "Ca2+: ωP", 1e-22, wp, -4.0509108334260254e-11)

	// identical inputs give bit-identical outputs
	w2, wp2 := Omega(2, 243090.0, 573.15, 5e8, ts, o)
	if w2 != w || wp2 != wp {
		tst.Errorf("evaluation must be deterministic\n")
		return
	}
}
