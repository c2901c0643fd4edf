// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"
	"testing"

	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/go-cmp/cmp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_scenario01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario01. read file")

	o, err := Load("data/two-layers.yml")
	if err != nil {
		tst.Errorf("Load failed: %v\n", err)
		return
	}
	io.Pforan("column = %+v\n", o.Column)
	chk.Int(tst, "npts", o.Column.Npts, 40)
	chk.Float64(tst, "zpart", 1e-17, o.Column.Zpart, 2010)
	chk.Float64(tst, "SD", 1e-17, o.RefDepth(), 2000)
	chk.Int(tst, "polygon: npts", o.PolygonNpts(), 300)
	chk.Int(tst, "polygon: workers", o.Polygon.Workers, 4)
	if o.Key != "two-layers" {
		tst.Errorf("key should be two-layers. %q is incorrect\n", o.Key)
	}

	top, bot, err := o.AllocLayers()
	if err != nil {
		tst.Errorf("AllocLayers failed: %v\n", err)
		return
	}
	chk.Float64(tst, "top: C33", 1e-17, top.C33, 1e9)
	chk.Float64(tst, "bot: eps", 1e-17, bot.T.Eps, 0.2)
	chk.Float64(tst, "bot: dgamma", 1e-17, bot.Dt.Gamma, 0.04)
	chk.Float64(tst, "bot: thickness", 1e-17, bot.Thickness, 10)

	want := tect.Calibration{Sh: 4000, SH: 4400}
	got := o.CalibrationPoint(4000)
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b float64) bool { return a-b < 1e-9 && b-a < 1e-9 })); diff != "" {
		tst.Errorf("calibration mismatch (-want +got):\n%s", diff)
	}

	grid, err := o.Grid()
	if err != nil {
		tst.Errorf("Grid failed: %v\n", err)
		return
	}
	chk.Float64(tst, "zbot", 1e-12, grid.Zbot(), 2020)
}

func Test_scenario02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario02. absolute calibration and iso model")

	o, err := Load("data/barnett.yml")
	if err != nil {
		tst.Errorf("Load failed: %v\n", err)
		return
	}
	cal := o.CalibrationPoint(1e10)
	chk.Float64(tst, "Sh", 1e-17, cal.Sh, 5200)
	chk.Float64(tst, "SH", 1e-17, cal.SH, 5900)

	_, bot, err := o.AllocLayers()
	if err != nil {
		tst.Errorf("AllocLayers failed: %v\n", err)
		return
	}
	if !bot.T.IsZero() {
		tst.Errorf("iso layer must have zero anisotropy\n")
	}
	chk.Float64(tst, "bot: C44", 1e-6, bot.C44, 8e6/2.56)
	chk.Float64(tst, "polygon depth", 1e-17, o.PolygonDepth(), 7010)
	chk.Float64(tst, "polygon depth (default)", 1e-17, Default().PolygonDepth(), 2000)
}

func Test_scenario03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario03. default")

	o := Default()
	if err := o.Validate(); err != nil {
		tst.Errorf("default scenario should be valid: %v\n", err)
		return
	}
	grid, _ := o.Grid()
	z := grid.Depths()
	chk.Int(tst, "npts", len(z), 40)
	chk.Float64(tst, "z[0]", 1e-17, z[0], 2000)
	chk.Float64(tst, "z[39]", 1e-12, z[39], 2020)

	err := o.SetPrm("both", "eps", 0.3)
	if err != nil {
		tst.Errorf("SetPrm failed: %v\n", err)
		return
	}
	top, bot, _ := o.AllocLayers()
	chk.Float64(tst, "top: eps", 1e-17, top.T.Eps, 0.3)
	chk.Float64(tst, "bot: eps", 1e-17, bot.T.Eps, 0.3)

	if err = o.SetPrm("middle", "eps", 0); err == nil {
		tst.Errorf("SetPrm should have failed with unknown layer\n")
	}
	o.SetPrm("top", "rho", 2.7)
	if _, _, err = o.AllocLayers(); err == nil {
		tst.Errorf("AllocLayers should have failed with unknown parameter\n")
	}
}

func Test_scenario04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario04. validation errors")

	layers := `
layers:
  top: {prms: [{n: C33, v: 1e9}, {n: C44, v: 5e8}, {n: Ks, v: 1e8}]}
  bottom: {prms: [{n: C33, v: 1e9}, {n: C44, v: 5e8}, {n: Ks, v: 1e8}]}
`
	for i, text := range []string{
		"column: {npts: 1}\n" + layers + "calibration: {shratio: 1}",
		"column: {thickness: -1}\n" + layers + "calibration: {shratio: 1}",
		"column: {ppratio: 1.2}\n" + layers + "calibration: {shratio: 1}",
		"layers: {top: {prms: [{n: C33, v: 1e9}]}}\ncalibration: {shratio: 1}",
		layers + "calibration: {shratio: 1, sh: 2}",
		layers + "calibration: {sh: 2}",
		layers + "calibration: {shratio: 1}\npolygon: {npts: 1}",
		layers + "calibration: {shratio: 1}\ncolour: red",
	} {
		_, err := Read(strings.NewReader(text))
		io.Pforan("%d: err = %v\n", i, err)
		if err == nil {
			tst.Errorf("%d: Read should have failed\n", i)
		}
	}

	o, err := Read(strings.NewReader(layers + "calibration: {shratio: 0.9, dshratio: 0.2}"))
	if err != nil {
		tst.Errorf("Read failed: %v\n", err)
		return
	}
	chk.Int(tst, "npts (default)", o.Column.Npts, 40)
	chk.Float64(tst, "svg (default)", 1e-17, o.Column.SVG, 2)
	chk.Float64(tst, "SH", 1e-9, o.CalibrationPoint(4000).SH, 4400)
	if o.Key != "scenario" {
		tst.Errorf("key should be scenario. %q is incorrect\n", o.Key)
	}

	if _, err = Load("data/not-found.yml"); err == nil {
		tst.Errorf("Load should have failed with missing file\n")
	}
}

func Test_scenario05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario05. partition depth")

	layers := `
layers:
  top: {thickness: 8, prms: [{n: C33, v: 1e9}, {n: C44, v: 5e8}, {n: Ks, v: 1e8}]}
  bottom: {thickness: 12, prms: [{n: C33, v: 1e9}, {n: C44, v: 5e8}, {n: Ks, v: 1e8}]}
calibration: {shratio: 1}
`
	o, err := Read(strings.NewReader("column: {ztop: 3000}" + layers))
	if err != nil {
		tst.Errorf("Read failed: %v\n", err)
		return
	}
	chk.Float64(tst, "zpart = ztop + top thickness", 1e-17, o.Partition(), 3008)

	o, err = Read(strings.NewReader("column: {ztop: 3000, zpart: 3015}" + layers))
	if err != nil {
		tst.Errorf("Read failed: %v\n", err)
		return
	}
	chk.Float64(tst, "zpart (given)", 1e-17, o.Partition(), 3015)

	o.Layers.Top.Thickness = 0
	o.Column.Zpart = 0
	chk.Float64(tst, "zpart (middle of column)", 1e-17, o.Partition(), 3010)

	for i, text := range []string{
		"column: {ztop: 3000, zpart: 2010}" + layers,
		"column: {ztop: 3000, zpart: 3000}" + layers,
	} {
		_, err = Read(strings.NewReader(text))
		io.Pforan("%d: err = %v\n", i, err)
		if err == nil {
			tst.Errorf("%d: Read should have failed with zpart above ztop\n", i)
		}
	}
}
