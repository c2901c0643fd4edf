// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"

	"github.com/cpmech/barriers/geost"
	"github.com/cpmech/barriers/inp"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
)

// Result holds the output of one scenario
type Result struct {
	Key     string           // scenario key
	Profile geost.Profile    // composed column
	SD      float64          // depth used in the vertical term of the strain model
	Cal     tect.Calibration // calibration stresses
	Strains tect.Strains     // tectonic strains with baseline state
	StrainD tect.Strains     // tectonic strains with differential state
	Records []Record         // stresses at every sample
}

// SeriesNames lists the names accepted by Series
var SeriesNames = []string{
	"z", "SV", "PP", "Sh", "SH", "Sh_D", "SH_D", "DiffSV", "DiffPP",
	"C11", "C13", "C66", "C11_D", "C13_D", "C66_D",
	"BiotH", "BiotV", "BiotH_D", "BiotV_D", "Eta", "Eta_D",
}

// Compute runs the whole analysis of a scenario: composes the column, computes the states
// at every sample, inverts the calibration point at the reference (first) sample and
// computes the stresses along the column
func Compute(cfg *inp.Scenario) (o *Result, err error) {

	// column
	if cfg == nil {
		return nil, chk.Err("compute: scenario must be given")
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	col, err := cfg.ColumnModel()
	if err != nil {
		return
	}
	grid, err := cfg.Grid()
	if err != nil {
		return
	}
	top, bot, err := cfg.AllocLayers()
	if err != nil {
		return
	}
	o = &Result{Key: cfg.Key, SD: cfg.RefDepth()}
	o.Profile, err = geost.Compose(top, bot, grid, cfg.Partition(), col)
	if err != nil {
		return nil, err
	}

	// states
	base, diff, err := o.Profile.States()
	if err != nil {
		return nil, err
	}

	// strains
	ref := o.Profile.Reference()
	o.Cal = cfg.CalibrationPoint(ref.SV)
	o.Strains, o.StrainD, err = tect.SolvePair(base[ref.Index], diff[ref.Index], o.SD, ref.PP, o.Cal)
	if err != nil {
		return nil, fmt.Errorf("reference sample at z=%g: %w", ref.Z, err)
	}

	// stresses
	o.Records, err = Evaluate(o.Profile, base, diff, o.Strains, o.StrainD)
	if err != nil {
		return nil, err
	}
	return
}

// Series returns the values of a quantity along the column. See SeriesNames
func (o Result) Series(name string) (v []float64) {
	v = make([]float64, len(o.Records))
	var get func(r *Record) float64
	switch name {
	case "z":
		get = func(r *Record) float64 { return r.Z }
	case "SV":
		get = func(r *Record) float64 { return r.SV }
	case "PP":
		get = func(r *Record) float64 { return r.PP }
	case "Sh":
		get = func(r *Record) float64 { return r.Sh }
	case "SH":
		get = func(r *Record) float64 { return r.SH }
	case "Sh_D":
		get = func(r *Record) float64 { return r.ShD }
	case "SH_D":
		get = func(r *Record) float64 { return r.SHD }
	case "DiffSV":
		get = func(r *Record) float64 { return r.DiffSV }
	case "DiffPP":
		get = func(r *Record) float64 { return r.DiffPP }
	case "C11":
		get = func(r *Record) float64 { return r.Base.C.C11 }
	case "C13":
		get = func(r *Record) float64 { return r.Base.C.C13 }
	case "C66":
		get = func(r *Record) float64 { return r.Base.C.C66 }
	case "C11_D":
		get = func(r *Record) float64 { return r.Diff.C.C11 }
	case "C13_D":
		get = func(r *Record) float64 { return r.Diff.C.C13 }
	case "C66_D":
		get = func(r *Record) float64 { return r.Diff.C.C66 }
	case "BiotH":
		get = func(r *Record) float64 { return r.Base.B.H }
	case "BiotV":
		get = func(r *Record) float64 { return r.Base.B.V }
	case "BiotH_D":
		get = func(r *Record) float64 { return r.Diff.B.H }
	case "BiotV_D":
		get = func(r *Record) float64 { return r.Diff.B.V }
	case "Eta":
		get = func(r *Record) float64 { return r.Base.C.Eta }
	case "Eta_D":
		get = func(r *Record) float64 { return r.Diff.C.Eta }
	default:
		chk.Panic("series named %q is not available. options are %v", name, SeriesNames)
	}
	for i := range o.Records {
		v[i] = get(&o.Records[i])
	}
	return
}

// Gradients holds stress gradients (stress divided by depth)
type Gradients struct {
	Sh, SH, ShD, SHD, SV, PP []float64
}

// Gradients computes the stress gradients along the column
func (o Result) Gradients() (g Gradients) {
	n := len(o.Records)
	g = Gradients{make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)}
	for i, r := range o.Records {
		if r.Z == 0 {
			chk.Panic("cannot compute gradients at z=0")
		}
		g.Sh[i] = r.Sh / r.Z
		g.SH[i] = r.SH / r.Z
		g.ShD[i] = r.ShD / r.Z
		g.SHD[i] = r.SHD / r.Z
		g.SV[i] = r.SV / r.Z
		g.PP[i] = r.PP / r.Z
	}
	return
}
