// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polygon

import (
	"context"
	"math"

	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"golang.org/x/sync/errgroup"
)

// Grid holds the cells of a stress polygon. Cells[j][k] corresponds to Smax[j] and Smin[k]
type Grid struct {
	In     Input        // input data
	Iso    *aniso.State // isotropic state
	Ani    *aniso.State // anisotropic state
	Bounds Bounds       // limits of polygons
	Smin   []float64    // axis with candidate minimum horizontal stresses
	Smax   []float64    // axis with candidate maximum horizontal stresses
	Cells  [][]Cell     // [len(Smax)][len(Smin)] cells
}

// Sweep computes all cells of the polygon. Rows are computed concurrently if Workers > 1;
// the results do not depend on the number of workers
func (o Input) Sweep(ctx context.Context) (g *Grid, err error) {

	// model
	if o.N == 0 {
		o.N = 300
	}
	if err = o.check(); err != nil {
		return
	}
	m, err := newModel(o)
	if err != nil {
		return
	}

	// axes
	g = &Grid{In: o, Iso: m.iso, Ani: m.ani, Bounds: m.bounds()}
	g.Smin = utl.LinSpace(g.Bounds.Smin, g.Bounds.Smax, o.N)
	g.Smax = utl.LinSpace(g.Bounds.Smin, g.Bounds.Smax, o.N)
	g.Cells = make([][]Cell, o.N)

	// row function
	row := func(j int) {
		cells := make([]Cell, len(g.Smin))
		for k, smin := range g.Smin {
			cells[k] = m.eval(smin, g.Smax[j])
			if !cells[k].Valid {
				cells[k].invalidate()
			}
		}
		g.Cells[j] = cells
	}

	// sequential
	if o.Workers <= 1 {
		for j := range g.Smax {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			row(j)
		}
		return
	}

	// concurrent
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for j := range g.Smax {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			row(j)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return
}

// Mask returns true for valid cells
func (o Grid) Mask() (m [][]bool) {
	m = make([][]bool, len(o.Cells))
	for j, row := range o.Cells {
		m[j] = make([]bool, len(row))
		for k, c := range row {
			m[j][k] = c.Valid
		}
	}
	return
}

// Regimes returns the tectonic regimes; zero for invalid cells
func (o Grid) Regimes() (r [][]int) {
	r = make([][]int, len(o.Cells))
	for j, row := range o.Cells {
		r[j] = make([]int, len(row))
		for k, c := range row {
			r[j][k] = c.Regime
		}
	}
	return
}

// Ratio returns one quantity of all cells; NaN for invalid cells. which is one of
// "min", "max" (DiffMin/SHMin and DiffMax/SHMax), "weight", "tau", "anisomin", "anisomax",
// "sigmahmin" or "sigmahmax"
func (o Grid) Ratio(which string) (v [][]float64) {
	var get func(c *Cell) float64
	switch which {
	case "min":
		get = func(c *Cell) float64 { return c.RatioMin }
	case "max":
		get = func(c *Cell) float64 { return c.RatioMax }
	case "weight":
		get = func(c *Cell) float64 { return c.Weight }
	case "tau":
		get = func(c *Cell) float64 { return c.Tau }
	case "anisomin":
		get = func(c *Cell) float64 { return c.AnisoMin }
	case "anisomax":
		get = func(c *Cell) float64 { return c.AnisoMax }
	case "sigmahmin":
		get = func(c *Cell) float64 { return c.SigmaHMin }
	case "sigmahmax":
		get = func(c *Cell) float64 { return c.SigmaHMax }
	default:
		chk.Panic("quantity %q is not available in polygon grid", which)
	}
	v = make([][]float64, len(o.Cells))
	for j := range o.Cells {
		v[j] = make([]float64, len(o.Cells[j]))
		for k := range o.Cells[j] {
			c := &o.Cells[j][k]
			if !c.Valid {
				v[j][k] = math.NaN()
				continue
			}
			v[j][k] = get(c)
		}
	}
	return
}

// FirstValid returns the indices of the first valid cell found by scanning each column
// (fixed Smin) upwards, starting with the leftmost column. ok is false if there is no
// valid cell
func (o Grid) FirstValid() (j, k int, ok bool) {
	for k = range o.Smin {
		for j = range o.Smax {
			if o.Cells[j][k].Valid {
				return j, k, true
			}
		}
	}
	return -1, -1, false
}

// Count returns the number of valid cells in each regime; index 0 holds invalid cells
func (o Grid) Count() (n [4]int) {
	for _, row := range o.Cells {
		for _, c := range row {
			n[c.Regime]++
		}
	}
	return
}

// Segment holds the end points of one edge of the polygon
type Segment struct {
	X0, Y0 float64 // start (Smin, Smax)
	X1, Y1 float64 // end (Smin, Smax)
	Dashed bool    // regime boundary; otherwise frictional limit
	Aniso  bool    // edge of the anisotropic polygon
}

// Outline returns the edges of the isotropic and anisotropic polygons
func (o Grid) Outline() (s []Segment) {
	sv := o.In.SV
	edges := func(lo, hi float64, ani bool) []Segment {
		return []Segment{
			{X0: lo, Y0: lo, X1: hi, Y1: hi, Aniso: ani},
			{X0: lo, Y0: lo, X1: lo, Y1: sv, Aniso: ani},
			{X0: lo, Y0: sv, X1: sv, Y1: hi, Aniso: ani},
			{X0: sv, Y0: hi, X1: hi, Y1: hi, Aniso: ani},
		}
	}
	b := o.Bounds
	s = append(s, edges(b.Smin, b.Smax, false)...)
	s = append(s,
		Segment{X0: sv, Y0: sv, X1: b.Smin, Y1: sv, Dashed: true},
		Segment{X0: sv, Y0: sv, X1: sv, Y1: b.Smax, Dashed: true},
	)
	s = append(s, edges(b.SminAni, b.SmaxAni, true)...)
	return
}
