// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/barriers/geost"
	"github.com/cpmech/barriers/inp"
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_compute01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compute01. two-layers without anisotropy")

	res, err := Compute(inp.Default())
	if err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}
	io.Pforan("strains = %v\n", res.Strains)
	chk.Int(tst, "number of records", len(res.Records), 40)
	chk.Float64(tst, "SD", 1e-17, res.SD, 2000)

	r := res.Records[0]
	chk.Float64(tst, "SV[0]", 1e-17, r.SV, 4000)
	chk.Float64(tst, "PP[0]", 1e-17, r.PP, 3200)
	chk.Float64(tst, "Sh[0]", 1e-8, r.Sh, 1.0*r.SV)
	chk.Float64(tst, "SH[0]", 1e-8, r.SH, 1.0*r.SV)

	// no anisotropy: differential equals baseline
	chk.Array(tst, "Sh_D", 1e-8, res.Series("Sh_D"), res.Series("Sh"))
	chk.Array(tst, "SH_D", 1e-8, res.Series("SH_D"), res.Series("SH"))
	chk.Array(tst, "DiffSV", 1e-17, res.Series("DiffSV"), make([]float64, 40))
	chk.Array(tst, "DiffPP", 1e-17, res.Series("DiffPP"), make([]float64, 40))
	chk.Array(tst, "C11", 1e-17, res.Series("C11"), utl.Vals(40, 1e9))
	chk.Array(tst, "Eta", 1e-17, res.Series("Eta"), make([]float64, 40))

	g := res.Gradients()
	chk.Array(tst, "SV/z", 1e-15, g.SV, utl.Vals(40, 2))
	chk.Array(tst, "PP/z", 1e-15, g.PP, utl.Vals(40, 1.6))

	if chk.Verbose {
		z := res.Series("z")
		plt.Reset(false, nil)
		plt.Plot(res.Series("Sh"), z, &plt.A{C: "r", L: "Sh"})
		plt.Plot(res.Series("SH"), z, &plt.A{C: "b", L: "SH"})
		plt.Plot(res.Series("SV"), z, &plt.A{C: "k", L: "SV"})
		plt.Gll("stress", "depth", nil)
		plt.Save("/tmp/barriers", "stress_compute01")
	}
}

func Test_compute02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compute02. calibration is reproduced at the reference depth")

	// with SD equal to SV at the reference depth and ε = γ = 0, the forward model matches the
	// inversion kernel
	cfg := inp.Default()
	cfg.Column.SD = 4000
	cfg.SetPrm("top", "delta", 0.1)
	cfg.SetPrm("top", "ddelta", 0.05)
	r := 0.85
	cfg.Calibration = inp.CalibData{ShRatio: &r, DShRatio: 0.15}

	res, err := Compute(cfg)
	if err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}
	io.Pforan("cal = %v\n", res.Cal)
	rec := res.Records[0]
	chk.Float64(tst, "Sh", 1e-8, rec.Sh, 0.85*4000)
	chk.Float64(tst, "SH", 1e-8, rec.SH, 1.00*4000)

	// differential state: inverted with its own kernel but the C13² term keeps baseline strains
	kd, _ := tect.NewKernel(rec.Diff, 4000, rec.PP)
	shmin, _ := kd.Stresses(res.StrainD)
	chk.Float64(tst, "kernel(Sh_D)", 1e-8, shmin, 0.85*4000)
	sum := res.StrainD.Sum() - res.Strains.Sum()
	c := rec.Diff.C
	chk.Float64(tst, "Sh_D", 1e-8, rec.ShD, shmin+(c.C13*c.C13/c.C33)*sum)

	for _, name := range SeriesNames {
		for i, v := range res.Series(name) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Errorf("%s[%d] is not finite\n", name, i)
				return
			}
		}
	}
}

func Test_compute03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compute03. differential anisotropy")

	cfg := inp.Default()
	cfg.SetPrm("bottom", "eps", 0.2)
	cfg.SetPrm("bottom", "gamma", 0.1)
	cfg.SetPrm("bottom", "delta", 0.1)
	cfg.SetPrm("bottom", "deps", 0.04)
	cfg.SetPrm("bottom", "dgamma", 0.02)
	cfg.SetPrm("bottom", "ddelta", 0.02)

	res, err := Compute(cfg)
	if err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}
	it := res.Profile.Transition()
	io.Pforan("transition = %d\n", it)
	if it < 0 {
		tst.Errorf("transition sample must exist\n")
		return
	}

	// top samples have no differential anisotropy
	for i := 0; i < it; i++ {
		chk.Float64(tst, "DiffSV(top)", 1e-17, res.Records[i].DiffSV, 0)
		chk.Float64(tst, "DiffPP(top)", 1e-17, res.Records[i].DiffPP, 0)
	}

	// bottom samples
	last := res.Records[len(res.Records)-1]
	b, d := last.Base, last.Diff
	Δ := (b.C.C13 - d.C.C13) / b.C.C33
	chk.Float64(tst, "DiffSV", 1e-9, last.DiffSV, -Δ*last.SV)
	pp, ks := last.PP, b.Ks
	dpp := pp*(Δ+2.0/3.0/ks*(-b.C.C13+d.C.C13)/b.C.C33*(b.C.C13+d.C.C13)) + 4.0*pp/(3.0*ks)*(0.02*b.C.C44-0.04*b.C.C33)
	chk.Float64(tst, "DiffPP", 1e-9, last.DiffPP, dpp)
	if last.ShD == last.Sh {
		tst.Errorf("differential anisotropy must change Sh\n")
	}
}

func Test_compute04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compute04. errors")

	cfg := inp.Default()
	cfg.SetPrm("bottom", "delta", -1)
	_, err := Compute(cfg)
	io.Pforan("err = %v\n", err)
	if !errors.Is(err, aniso.ErrDomain) {
		tst.Errorf("Compute should have failed with domain error: %v\n", err)
	}
	var derr *aniso.DomainError
	if !errors.As(err, &derr) {
		tst.Errorf("error should be *DomainError\n")
	}

	_, err = Compute(nil)
	if err == nil {
		tst.Errorf("Compute should have failed with nil scenario\n")
	}

	res, _ := Compute(inp.Default())
	_, err = Evaluate(res.Profile, nil, nil, res.Strains, res.StrainD)
	if err == nil {
		tst.Errorf("Evaluate should have failed with missing states\n")
	}
}

func Test_compute05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compute05. column deeper than the default one")

	cfg, err := inp.Read(strings.NewReader(`
column: {ztop: 3000, thickness: 20, npts: 40}
layers:
  top: {thickness: 10, prms: [{n: C33, v: 1e9}, {n: C44, v: 5e8}, {n: Ks, v: 1e8}]}
  bottom:
    thickness: 10
    prms: [{n: C33, v: 1e9}, {n: C44, v: 5e8}, {n: Ks, v: 1e8}, {n: eps, v: 0.3}]
calibration: {shratio: 1}
`))
	if err != nil {
		tst.Errorf("Read failed: %v\n", err)
		return
	}
	res, err := Compute(cfg)
	if err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}
	p := res.Profile
	io.Pforan("transition = %d\n", p.Transition())
	chk.Int(tst, "transition", p.Transition(), 20)
	if p.Samples[0].Kind != geost.TopKind || p.Samples[19].Kind != geost.TopKind {
		tst.Errorf("samples above 3010 must be top\n")
	}
	chk.Float64(tst, "eps[0]", 1e-17, p.Samples[0].T.Eps, 0)
	chk.Float64(tst, "eps[20]", 1e-17, p.Samples[20].T.Eps, 0.15)
	chk.Float64(tst, "eps[21]", 1e-17, p.Samples[21].T.Eps, 0.3)
	chk.Float64(tst, "SD", 1e-17, res.SD, 3000)
	chk.Float64(tst, "Sh[0]", 1e-8, res.Records[0].Sh, res.Records[0].SV)
}
