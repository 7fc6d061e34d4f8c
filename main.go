// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/stanroozen/godew/hkf"
	"github.com/stanroozen/godew/inp"
	"github.com/stanroozen/godew/mdl/born"
	"github.com/stanroozen/godew/water"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	T := io.ArgToFloat(0, 573.15)    // [K]
	P := io.ArgToFloat(1, 5e8)       // [Pa]
	dbfn := io.ArgToString(2, "")    // species database filename
	species := io.ArgToString(3, "") // species name
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nGodew -- Deep Earth Water Thermodynamics\n")
		io.Pf("Copyright 2025 The Godew Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"temperature [K]", "T", T,
			"pressure [Pa]", "P", P,
			"species database", "dbfn", dbfn,
			"species name", "species", species,
			"show messages", "verbose", verbose,
		))
	}

	// water state
	o := water.GetDefaultOptions()
	o.ComputeGibbs = true
	o.ComputeSolvent = true
	s, err := water.Calc(T, P, o)
	if err != nil {
		chk.Panic("water state calculation failed:\n%v", err)
	}

	io.Pf("\nwater state at T = %g K, P = %g Pa\n", T, P)
	io.Pf("  ρ     = %23.15e kg/m³\n", s.Thermo.D)
	io.Pf("  ∂ρ/∂P = %23.15e kg/m³/Pa\n", s.Thermo.DP)
	io.Pf("  ε     = %23.15e\n", s.Electro.Eps)
	io.Pf("  Q     = %23.15e 1/Pa\n", s.Electro.Q)
	io.Pf("  G     = %23.15e J/mol\n", s.Gibbs)
	io.Pf("  g     = %23.15e Å\n", s.Gsolv)
	io.Pf("  ∂g/∂P = %23.15e Å/Pa\n", s.DgdP)

	// species properties
	if dbfn != "" && species != "" {
		tab, err := inp.ReadTable(dbfn)
		if err != nil {
			chk.Panic("cannot read species database:\n%v", err)
		}
		sp, ok := tab.Get(species)
		if !ok {
			chk.Panic("species %q is not available in database %q", species, dbfn)
		}
		pr := hkf.Calc(sp, T, P, s, born.GetDefaultOptions())
		io.Pf("\nstandard properties of %s\n", sp.Name)
		io.Pf("  G0  = %23.15e J/mol\n", pr.G0)
		io.Pf("  H0  = %23.15e J/mol\n", pr.H0)
		io.Pf("  V0  = %23.15e m³/mol\n", pr.V0)
		io.Pf("  Cp0 = %23.15e J/(mol·K)\n", pr.Cp0)
	}
}
