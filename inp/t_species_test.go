// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

var testdb = []byte(`
Species:
  HCO3-:
    Name: HCO3-
    Formula: HCO3-
    Charge: -1
    AggregateState: Aqueous
    StandardThermoModel:
      HKF:
        Gf: -586939.89
        Hf: -689933.0
        Sr: 98.45
        a1: 3.1619e-5
        a2: 480.0
        a3: 1.2366e-4
        a4: -150599.0
        c1: 52.0
        c2: -519198.0
        wref: 532748.72
  CO2,aq:
    Name: CO2,aq
    Formula: CO2,aq
    Charge: 0
    AggregateState: Aqueous
    StandardThermoModel:
      HKF:
        Gf: -385974.0
        Hf: -413797.0
        Sr: 117.57
        a1: 2.614e-5
        a2: 3125.9
        a3: 4.1087e-5
        a4: -141645.0
        c1: 167.5
        c2: 880214.0
        wref: -334720.0
  H+:
    Name: H+
    Formula: H+
    Charge: 1
    AggregateState: Aqueous
    StandardThermoModel:
      HKF:
        Gf: 0.0
        Hf: 0.0
        Sr: 0.0
  NoModel:
    Name: NoModel
    Formula: X
    Charge: 0
`)

func Test_species01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("species01. read species database")

	tab, err := ParseTable(testdb)
	if err != nil {
		tst.Errorf("ParseTable failed: %v\n", err)
		return
	}

	// the entry without HKF data is skipped
	if tab.Len() != 3 {
		tst.Errorf("wrong number of species: %d\n", tab.Len())
		return
	}

	sp, ok := tab.Get("HCO3-")
	if !ok {
		tst.Errorf("HCO3- not found\n")
		return
	}
	chk.Float64(tst, "charge", 1e-17, sp.Charge, -1)
	chk.Float64(tst, "Gf    ", 1e-17, sp.Gf, -586939.89)
	chk.Float64(tst, "a4    ", 1e-17, sp.A4, -150599.0)
	chk.Float64(tst, "wref  ", 1e-17, sp.Wref, 532748.72)
	if sp.HydrogenLike {
		tst.Errorf("HCO3- must not be hydrogen-like\n")
		return
	}

	// the ",aq" suffix is normalised
	sp, ok = tab.Get("CO2_aq")
	if !ok {
		tst.Errorf("CO2_aq not found\n")
		return
	}
	chk.Float64(tst, "CO2: wref", 1e-17, sp.Wref, -334720.0)

	sp, ok = tab.Get("H+")
	if !ok {
		tst.Errorf("H+ not found\n")
		return
	}
	if !sp.HydrogenLike {
		tst.Errorf("H+ must be hydrogen-like\n")
		return
	}
}

func Test_species02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("species02. malformed databases")

	if _, err := ParseTable([]byte("Species: [not, a, map]")); err == nil {
		tst.Errorf("ParseTable must fail for a malformed root node\n")
		return
	}
	if _, err := ParseTable([]byte("Other: {}")); err == nil {
		tst.Errorf("ParseTable must fail when no species are present\n")
		return
	}
	if _, err := ReadTable("/tmp/godew-nonexistent-db.yaml"); err == nil {
		tst.Errorf("ReadTable must fail for a missing file\n")
		return
	}
}
