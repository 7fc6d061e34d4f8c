// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads species parameter databases. A database is a YAML file
// mapping species names to HKF equation-of-state coefficients. The table is
// built once by the reader and is read-only thereafter; callers thread it
// through as an explicit dependency rather than a process-wide global.
package inp

import (
	"os"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"

	"github.com/stanroozen/godew/hkf"
)

// HKFData holds the raw HKF coefficients of one species as stored in the
// database, in SI units
type HKFData struct {
	Gf   float64 `yaml:"Gf"`   // formation Gibbs energy [J/mol]
	Hf   float64 `yaml:"Hf"`   // formation enthalpy [J/mol]
	Sr   float64 `yaml:"Sr"`   // entropy [J/(mol·K)]
	A1   float64 `yaml:"a1"`   // [J/(mol·Pa)]
	A2   float64 `yaml:"a2"`   // [J/mol]
	A3   float64 `yaml:"a3"`   // [J·K/(mol·Pa)]
	A4   float64 `yaml:"a4"`   // [J·K/mol]
	C1   float64 `yaml:"c1"`   // [J/(mol·K)]
	C2   float64 `yaml:"c2"`   // [J·K/mol]
	Wref float64 `yaml:"wref"` // Born coefficient [J/mol]
	Tmax float64 `yaml:"Tmax"` // upper validity temperature [K]
}

// SpeciesData holds one species entry of the database
type SpeciesData struct {
	Name                string  `yaml:"Name"`
	Formula             string  `yaml:"Formula"`
	Charge              float64 `yaml:"Charge"`
	AggregateState      string  `yaml:"AggregateState"`
	StandardThermoModel struct {
		HKF *HKFData `yaml:"HKF"`
	} `yaml:"StandardThermoModel"`
	Comment string `yaml:"Comment"`
}

// database is the root node of a species YAML file
type database struct {
	Species map[string]SpeciesData `yaml:"Species"`
}

// Table is a read-only lookup of species parameters, fully populated by the
// reader before use
type Table struct {
	species map[string]hkf.Species
	names   []string
}

// ReadTable reads a species database from a YAML file
func ReadTable(fn string) (tab *Table, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return
	}
	return ParseTable(b)
}

// ParseTable builds a species table from the contents of a YAML database
func ParseTable(b []byte) (tab *Table, err error) {
	var db database
	err = yaml.Unmarshal(b, &db)
	if err != nil {
		return nil, chk.Err("cannot parse species database: %v", err)
	}
	if len(db.Species) == 0 {
		return nil, chk.Err("species database has no 'Species' entries")
	}

	tab = &Table{species: make(map[string]hkf.Species, len(db.Species))}
	for key, d := range db.Species {
		name := d.Name
		if name == "" {
			name = key
		}
		// species names carry an ",aq" suffix in the source tables
		name = strings.Replace(name, ",aq", "_aq", 1)

		h := d.StandardThermoModel.HKF
		if h == nil {
			continue // entries without HKF data cannot feed the evaluator
		}
		tab.species[name] = hkf.Species{
			Name:         name,
			Charge:       d.Charge,
			Gf:           h.Gf,
			Hf:           h.Hf,
			Sr:           h.Sr,
			A1:           h.A1,
			A2:           h.A2,
			A3:           h.A3,
			A4:           h.A4,
			C1:           h.C1,
			C2:           h.C2,
			Wref:         h.Wref,
			HydrogenLike: name == "H+",
		}
		tab.names = append(tab.names, name)
	}
	sort.Strings(tab.names)
	return
}

// Get returns the parameters of one species
func (o *Table) Get(name string) (sp hkf.Species, ok bool) {
	sp, ok = o.species[name]
	return
}

// Names returns the names of all species with HKF data
func (o *Table) Names() []string {
	return o.names
}

// Len returns the number of species with HKF data
func (o *Table) Len() int {
	return len(o.species)
}
