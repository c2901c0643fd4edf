// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlog

import (
	"fmt"
	"strings"

	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/barriers/stress"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Options holds the anisotropic model applied to the clay rich intervals
type Options struct {
	T       aniso.Thomsen // anisotropy of clays
	Ks      float64       // bulk modulus of grains used in the pore pressure corrections
	ClayC33 float64       // samples with C33 ≤ ClayC33 are clays. default = 3.8e6 psi
}

// DefaultOptions returns the anisotropy of a clay rich shale with moduli in psi
func DefaultOptions() Options {
	return Options{
		T:       aniso.Thomsen{Eps: 0.2, Delta: 0.1, Gamma: 0.15},
		Ks:      aniso.KsRefPsi,
		ClayC33: 3.8e6,
	}
}

// Point holds the results at one depth of the well
type Point struct {
	Depth float64 // depth
	SigV  float64 // overburden
	PP    float64 // pore pressure

	// from logs
	C    aniso.Cij     // stiffness with C44 recovered from γ = ε
	B    aniso.Biot    // Biot coefficients from C with the reference grains modulus
	T    aniso.Thomsen // back-computed Thomsen's parameters
	Clay bool          // C33 ≤ ClayC33

	// models
	C13Iso  float64           // C33 - 2・C44
	BiotIso float64           // Biot coefficient of the isotropic model
	Ani     *aniso.State      // anisotropic model; isotropic outside clays
	Diff    stress.Correction // corrections with C13 from δ
	DiffAne stress.Correction // corrections with C13 = C13Iso (ε and γ only)

	// stresses
	ShIso, SHIso   float64 // isotropic
	ShAni, SHAni   float64 // anisotropic
	ShAne, SHAne   float64 // anisotropic without δ
	ShCalc, SHCalc float64 // from the engineering constants
	ShRatio        float64 // 100・Diff.Min / ShIso
	SHRatio        float64 // 100・Diff.Max / SHIso
	Tau            float64 // (εH - εh) / εh
}

// Analysis holds the results along the well
type Analysis struct {
	Opts    Options      // model
	Strains tect.Strains // tectonic strains
	Points  []*Point     // results
}

// Analyze computes the horizontal stresses along the log with tectonic strains s
func Analyze(lg *Log, s tect.Strains, opts Options) (o *Analysis, err error) {
	if opts.Ks == 0 {
		return nil, aniso.NewSingularityError("wlog", "Ks is zero", "Ks", opts.Ks)
	}
	if opts.ClayC33 == 0 {
		opts.ClayC33 = 3.8e6
	}
	o = &Analysis{Opts: opts, Strains: s, Points: make([]*Point, lg.Len())}
	for i := range o.Points {
		o.Points[i], err = o.point(lg, i)
		if err != nil {
			return nil, fmt.Errorf("well log: depth=%g: %w", lg.Depth[i], err)
		}
	}
	return
}

// point computes the results at sample i
func (o Analysis) point(lg *Log, i int) (p *Point, err error) {
	p = &Point{Depth: lg.Depth[i], SigV: lg.SigV[i], PP: lg.PP[i]}
	m := aniso.Moduli{Ev: lg.Ev[i], Eh: lg.Eh[i], NuV: lg.NuV[i], NuH: lg.NuH[i]}
	c, err := m.Stiffness()
	if err != nil {
		return
	}
	p.B = c.Biot(aniso.KsRefPsi)
	p.T, p.C, err = c.BackThomsen()
	if err != nil {
		return
	}
	c33, c44 := p.C.C33, p.C.C44
	p.Clay = c33 <= o.Opts.ClayC33

	// isotropic model with C11 = C33 and C66 = C44
	p.C13Iso = c33 - 2.0*c44
	p.BiotIso = 1.0 - (2.0*p.C13Iso+c33)/(3.0*aniso.KsRefPsi)
	iso := &aniso.State{
		Ks: aniso.KsRefPsi,
		C:  aniso.Stiffness{C11: c33, C13: p.C13Iso, C33: c33, C44: c44, C66: c44},
		B:  aniso.Biot{H: p.BiotIso, V: p.BiotIso},
	}
	s := o.Strains
	p.ShIso, p.SHIso = stress.Horizontal(iso, p.SigV, p.PP, s)

	// anisotropic model
	var t aniso.Thomsen
	if p.Clay {
		t = o.Opts.T
	}
	p.Ani, err = aniso.Calc(c33, c44, o.Opts.Ks, t)
	if err != nil {
		return
	}
	ks := o.Opts.Ks
	p.Diff = stress.Correct(p.C13Iso, p.Ani.C.C13, c33, c44, t, p.SigV, p.PP, ks, s)
	p.DiffAne = stress.Correct(p.C13Iso, p.C13Iso, c33, c44, t, p.SigV, p.PP, ks, s)
	p.ShAni, p.SHAni = p.ShIso+p.Diff.Min, p.SHIso+p.Diff.Max
	p.ShAne, p.SHAne = p.ShIso+p.DiffAne.Min, p.SHIso+p.DiffAne.Max
	p.ShRatio = p.Diff.Min / p.ShIso * 100.0
	p.SHRatio = p.Diff.Max / p.SHIso * 100.0

	// engineering constants
	v := m.Eh / m.Ev * m.NuV / (1.0 - m.NuH) * (p.SigV - p.B.V*p.PP)
	k := m.Eh / (1.0 - m.NuH*m.NuH)
	p.ShCalc = v + k*(s.Min+m.NuH*s.Max) + p.B.H*p.PP
	p.SHCalc = v + k*(s.Max+m.NuH*s.Min) + p.B.H*p.PP
	p.Tau = (s.Max - s.Min) / s.Min
	return
}

// ClayFraction returns the fraction of points flagged as clay
func (o Analysis) ClayFraction() float64 {
	if len(o.Points) == 0 {
		return 0
	}
	n := 0
	for _, p := range o.Points {
		if p.Clay {
			n++
		}
	}
	return float64(n) / float64(len(o.Points))
}

// Series returns one quantity along the well. Valid names are:
//  depth, sigv, pp, c11, c13, c33, c44, c66, c13iso, c11ani, c13ani, c66ani, eps, delta,
//  shiso, bigshiso, shani, bigshani, shane, bigshane, shcalc, bigshcalc, shratio, bigshratio
func (o Analysis) Series(name string) (res []float64) {
	var get func(p *Point) float64
	switch strings.ToLower(name) {
	case "depth":
		get = func(p *Point) float64 { return p.Depth }
	case "sigv":
		get = func(p *Point) float64 { return p.SigV }
	case "pp":
		get = func(p *Point) float64 { return p.PP }
	case "c11":
		get = func(p *Point) float64 { return p.C.C11 }
	case "c13":
		get = func(p *Point) float64 { return p.C.C13 }
	case "c33":
		get = func(p *Point) float64 { return p.C.C33 }
	case "c44":
		get = func(p *Point) float64 { return p.C.C44 }
	case "c66":
		get = func(p *Point) float64 { return p.C.C66 }
	case "c13iso":
		get = func(p *Point) float64 { return p.C13Iso }
	case "c11ani":
		get = func(p *Point) float64 { return p.Ani.C.C11 }
	case "c13ani":
		get = func(p *Point) float64 { return p.Ani.C.C13 }
	case "c66ani":
		get = func(p *Point) float64 { return p.Ani.C.C66 }
	case "eps":
		get = func(p *Point) float64 { return p.T.Eps }
	case "delta":
		get = func(p *Point) float64 { return p.T.Delta }
	case "shiso":
		get = func(p *Point) float64 { return p.ShIso }
	case "bigshiso":
		get = func(p *Point) float64 { return p.SHIso }
	case "shani":
		get = func(p *Point) float64 { return p.ShAni }
	case "bigshani":
		get = func(p *Point) float64 { return p.SHAni }
	case "shane":
		get = func(p *Point) float64 { return p.ShAne }
	case "bigshane":
		get = func(p *Point) float64 { return p.SHAne }
	case "shcalc":
		get = func(p *Point) float64 { return p.ShCalc }
	case "bigshcalc":
		get = func(p *Point) float64 { return p.SHCalc }
	case "shratio":
		get = func(p *Point) float64 { return p.ShRatio }
	case "bigshratio":
		get = func(p *Point) float64 { return p.SHRatio }
	default:
		chk.Panic("cannot find series named %q", name)
	}
	res = make([]float64, len(o.Points))
	for i, p := range o.Points {
		res[i] = get(p)
	}
	return
}

// String returns a short summary
func (o Analysis) String() string {
	return io.Sf("%d points; clay fraction = %.3f; %v", len(o.Points), o.ClayFraction(), o.Strains)
}
