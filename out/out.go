// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements figures and tables of stresses along columns, stress polygons and
// well logs
package out

import (
	"bytes"
	goio "io"
	"math"

	"github.com/cpmech/barriers/polygon"
	"github.com/cpmech/barriers/stress"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/barriers/wlog"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Column returns the figure with stresses, gradients and stiffnesses along the column
func Column(res *stress.Result, unit string) (fig *Figure) {
	fig = new(Figure)
	z := res.Series("z")
	zlims := []float64{z[len(z)-1], z[0]}

	fig.Splot("stress", res.Key)
	for _, key := range []string{"SV", "PP", "Sh", "SH", "Sh_D", "SH_D"} {
		fig.Plot(res.Series(key), z, key, Style(key))
	}
	fig.SplotConfig("stress", "z", unit, "", 1, 1)
	fig.Csplot.Yrange = zlims

	g := res.Gradients()
	fig.Splot("grad", "gradients")
	fig.Plot(g.SV, z, "SV", Style("SV"))
	fig.Plot(g.PP, z, "PP", Style("PP"))
	fig.Plot(g.Sh, z, "Sh", Style("Sh"))
	fig.Plot(g.SH, z, "SH", Style("SH"))
	fig.Plot(g.ShD, z, "Sh_D", Style("Sh_D"))
	fig.Plot(g.SHD, z, "SH_D", Style("SH_D"))
	fig.SplotConfig("grad", "z", "", "", 1, 1)
	fig.Csplot.Yrange = zlims

	fig.Splot("cij", "stiffness")
	fig.Plot(res.Series("C11"), z, "C11", plt.A{C: "m", Lw: 2})
	fig.Plot(res.Series("C13"), z, "C13", plt.A{C: "k", Lw: 2})
	fig.Plot(res.Series("C66"), z, "C66", plt.A{C: "g", Lw: 2})
	fig.Plot(res.Series("C11_D"), z, "C11 diff", plt.A{C: "m", Lw: 2, Ls: "--"})
	fig.Plot(res.Series("C13_D"), z, "C13 diff", plt.A{C: "k", Lw: 2, Ls: "--"})
	fig.Plot(res.Series("C66_D"), z, "C66 diff", plt.A{C: "g", Lw: 2, Ls: "--"})
	fig.SplotConfig("Cij", "z", unit, "", 1, 1)
	fig.Csplot.Yrange = zlims
	return
}

// Well returns the figure with stiffnesses and stresses along a well
func Well(a *wlog.Analysis) (fig *Figure) {
	fig = new(Figure)
	z := a.Series("depth")
	if len(z) == 0 {
		chk.Panic("well analysis has no points")
	}
	zlims := []float64{z[len(z)-1], z[0]}

	fig.Splot("cij", "stiffness")
	fig.Plot(a.Series("c33"), z, "C33", plt.A{C: "b", Lw: 2})
	fig.Plot(a.Series("c44"), z, "C44", plt.A{C: "r", Lw: 2})
	fig.Plot(a.Series("c13iso"), z, "C13 iso", plt.A{C: "k", Lw: 2, Ls: ":"})
	fig.Plot(a.Series("c11ani"), z, "C11 ani", plt.A{C: "m", Lw: 2})
	fig.Plot(a.Series("c66ani"), z, "C66 ani", plt.A{C: "g", Lw: 2})
	fig.Plot(a.Series("c13ani"), z, "C13 ani", plt.A{C: "k", Lw: 2})
	fig.SplotConfig("Cij", "z", "[psi]", "", 1, 1)
	fig.Csplot.Yrange = zlims

	sv := a.Series("sigv")
	for _, model := range []string{"iso", "ani", "ane"} {
		fig.Splot(model, model)
		fig.Plot(a.Series("sh"+model), z, "Sh", Style("Sh"))
		fig.Plot(a.Series("bigsh"+model), z, "SH", Style("SH"))
		fig.Plot(sv, z, "SV", Style("SV"))
		fig.SplotConfig("stress", "z", "[psi]", "", 1, 1)
		fig.Csplot.Yrange = zlims
	}
	return
}

// Polygon draws a contour of one of the cell quantities (see polygon.Grid.Ratio) with the
// outlines of the isotropic and anisotropic polygons and the calibration points
func Polygon(g *polygon.Grid, which string, cals []tect.Calibration, dirout, fnkey string) {
	plt.Reset(false, nil)
	X, Y := utl.MeshGrid2dV(g.Smin, g.Smax)
	plt.ContourF(X, Y, g.Ratio(which), nil)
	for _, s := range g.Outline() {
		a := &plt.A{C: "k", Lw: 2}
		if s.Dashed {
			a.Ls = "--"
		}
		if s.Aniso {
			a.C = "m"
		}
		plt.Plot([]float64{s.X0, s.X1}, []float64{s.Y0, s.Y1}, a)
	}
	for i, c := range cals {
		plt.Plot([]float64{c.Sh}, []float64{c.SH}, &plt.A{C: "r", M: "o", Ls: "none"})
		plt.Text(c.Sh, c.SH, io.Sf(" %d", i+1), nil)
	}
	plt.Gll(GetTexLabel("Smin", ""), GetTexLabel("Smax", ""), nil)
	if fnkey == "" {
		plt.Show()
		return
	}
	plt.Save(dirout, fnkey)
}

// WriteColumn writes a table with the stresses along the column
func WriteColumn(w goio.Writer, res *stress.Result) (err error) {
	var b bytes.Buffer
	io.Ff(&b, "# %s: SD=%g %v\n", res.Key, res.SD, res.Cal)
	io.Ff(&b, "# baseline: %v\n# differential: %v\n", res.Strains, res.StrainD)
	io.Ff(&b, "%6s%13s%11s%13s%13s%13s%13s%13s%13s%13s%13s\n",
		"i", "z", "kind", "SV", "PP", "Sh", "SH", "Sh_D", "SH_D", "DiffSV", "DiffPP")
	for _, r := range res.Records {
		io.Ff(&b, "%6d%13.6g%11s%13.6g%13.6g%13.6g%13.6g%13.6g%13.6g%13.6g%13.6g\n",
			r.Index, r.Z, r.Kind, r.SV, r.PP, r.Sh, r.SH, r.ShD, r.SHD, r.DiffSV, r.DiffPP)
	}
	_, err = w.Write(b.Bytes())
	return
}

// WriteCases writes a table with the calibration points of a polygon
func WriteCases(w goio.Writer, cals []tect.Calibration, cells []*polygon.Cell) (err error) {
	if len(cals) != len(cells) {
		return chk.Err("number of calibration points (%d) must equal number of cells (%d)", len(cals), len(cells))
	}
	var b bytes.Buffer
	io.Ff(&b, "%4s%12s%12s%13s%13s%13s%13s%10s%10s%9s%7s\n",
		"case", "Sh", "SH", "εh", "εH", "DiffMin", "DiffMax", "Sh/SV", "SH/SV", "regime", "valid")
	for i, c := range cells {
		io.Ff(&b, "%4d%12.6g%12.6g%13.5e%13.5e%13.6g%13.6g%10.4f%10.4f%9s%7v\n",
			i+1, cals[i].Sh, cals[i].SH, c.Strains.Min, c.Strains.Max, c.DiffMin, c.DiffMax,
			c.NormMin, c.NormMax, RegimeName(c.Regime), c.Valid)
	}
	_, err = w.Write(b.Bytes())
	return
}

// WriteGrid writes a summary of a polygon
func WriteGrid(w goio.Writer, g *polygon.Grid) (err error) {
	var b bytes.Buffer
	n := g.Count()
	io.Ff(&b, "isotropic polygon   : Smin=%g Smax=%g\n", g.Bounds.Smin, g.Bounds.Smax)
	io.Ff(&b, "anisotropic polygon : Smin=%g Smax=%g\n", g.Bounds.SminAni, g.Bounds.SmaxAni)
	io.Ff(&b, "number of cells     : %d × %d\n", len(g.Smax), len(g.Smin))
	for r := polygon.NormalRegime; r <= polygon.ThrustRegime; r++ {
		io.Ff(&b, "%-20s: %d\n", RegimeName(r), n[r])
	}
	io.Ff(&b, "%-20s: %d\n", "invalid", n[polygon.NoRegime])
	lo, hi := extremes(g.Ratio("min"))
	io.Ff(&b, "DiffMin/Sh          : [%g, %g]\n", lo, hi)
	lo, hi = extremes(g.Ratio("max"))
	io.Ff(&b, "DiffMax/SH          : [%g, %g]\n", lo, hi)
	_, err = w.Write(b.Bytes())
	return
}

// WriteWell writes a table with the stresses along a well
func WriteWell(w goio.Writer, a *wlog.Analysis) (err error) {
	var b bytes.Buffer
	io.Ff(&b, "# %v\n", a)
	io.Ff(&b, "%11s%6s%12s%12s%12s%12s%12s%12s%12s%12s%10s%10s\n",
		"depth", "clay", "SV", "Sh_iso", "SH_iso", "Sh_ani", "SH_ani", "Sh_ane", "SH_ane", "Sh_calc", "Sh%", "SH%")
	for _, p := range a.Points {
		io.Ff(&b, "%11.5g%6v%12.6g%12.6g%12.6g%12.6g%12.6g%12.6g%12.6g%12.6g%10.3f%10.3f\n",
			p.Depth, p.Clay, p.SigV, p.ShIso, p.SHIso, p.ShAni, p.SHAni, p.ShAne, p.SHAne, p.ShCalc, p.ShRatio, p.SHRatio)
	}
	_, err = w.Write(b.Bytes())
	return
}

// RegimeName returns the name of a tectonic regime
func RegimeName(r int) string {
	switch r {
	case polygon.NormalRegime:
		return "normal"
	case polygon.StrikeRegime:
		return "strike-slip"
	case polygon.ThrustRegime:
		return "thrust"
	}
	return "none"
}

// extremes returns the min and max of non-NaN values
func extremes(v [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range v {
		for _, x := range row {
			if math.IsNaN(x) {
				continue
			}
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	return
}
