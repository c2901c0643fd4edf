// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package polygon implements stress polygons with the changes in horizontal stresses caused
// by anisotropy
package polygon

import (
	"math"

	"github.com/cpmech/barriers/ana"
	"github.com/cpmech/barriers/geost"
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/barriers/stress"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
)

// tectonic regimes
const (
	NoRegime     = 0 // invalid cell
	NormalRegime = 1 // SHmax ≤ SV
	StrikeRegime = 2 // Shmin ≤ SV < SHmax
	ThrustRegime = 3 // SV < Shmin
)

// Input holds the data of one stress polygon
type Input struct {
	C33     float64       // vertical P-wave modulus
	C44     float64       // vertical shear modulus
	Ks      float64       // bulk modulus of grains
	T       aniso.Thomsen // anisotropy
	SV      float64       // overburden
	PP      float64       // pore pressure
	SD      float64       // depth used in the vertical term of the strain model
	N       int           // number of points along each axis. default = 300
	Workers int           // number of concurrent rows; ≤ 1 means sequential
}

// FromSample returns the input corresponding to the baseline state of a depth sample
func FromSample(s *geost.Sample, sd float64, n, workers int) Input {
	return Input{
		C33:     s.C33,
		C44:     s.C44,
		Ks:      s.Ks,
		T:       s.T,
		SV:      s.SV,
		PP:      s.PP,
		SD:      sd,
		N:       n,
		Workers: workers,
	}
}

// Cell holds the stresses of one (Smin, Smax) pair
type Cell struct {
	Valid bool    // cell is inside the polygon
	Smin  float64 // candidate minimum horizontal stress
	Smax  float64 // candidate maximum horizontal stress

	// isotropic model
	Strains tect.Strains // tectonic strains
	SHMin   float64      // minimum horizontal stress
	SHMax   float64      // maximum horizontal stress
	Tau     float64      // (εH - εh) / εH

	// anisotropic corrections
	DiffSV      float64 // change in C13 times overburden
	EpsGammaMin float64 // ε and γ contribution to Shmin
	EpsGammaMax float64 // ε and γ contribution to SHmax
	DeltaS      float64 // δ contribution of strains
	PpEpsGamma  float64 // ε and γ contribution of pore pressure
	PpDelta     float64 // δ contribution of pore pressure
	DiffMin     float64 // total change in Shmin
	DiffMax     float64 // total change in SHmax
	RatioMin    float64 // DiffMin / SHMin
	RatioMax    float64 // DiffMax / SHMax
	Weight      float64 // relative weight of ε-γ terms with respect to δ terms

	// anisotropic model
	AnisoMin  float64 // SHMin + DiffMin
	AnisoMax  float64 // SHMax + DiffMax
	NormMin   float64 // AnisoMin / SV
	NormMax   float64 // AnisoMax / SV
	SigmaV    float64 // effective vertical stress
	SigmaHMin float64 // effective minimum horizontal stress
	SigmaHMax float64 // effective maximum horizontal stress
	Regime    int     // tectonic regime
}

// model holds the derived quantities shared by all cells
type model struct {
	in     Input
	iso    *aniso.State // isotropic state
	ani    *aniso.State // anisotropic state
	kernel *tect.Kernel // strain model on the isotropic state
}

// newModel computes the isotropic and anisotropic states
func newModel(in Input) (o *model, err error) {
	o = &model{in: in}
	o.iso, err = aniso.Isotropic(in.C33, in.C44, in.Ks)
	if err != nil {
		return nil, err
	}
	o.ani, err = aniso.Calc(in.C33, in.C44, in.Ks, in.T)
	if err != nil {
		return nil, err
	}
	o.kernel, err = tect.NewKernel(o.iso, in.SD, in.PP)
	if err != nil {
		return nil, err
	}
	return
}

// eval computes all quantities of a cell. The Valid flag is set but values are not masked
func (o model) eval(smin, smax float64) (c Cell) {
	in := o.in
	c.Smin, c.Smax = smin, smax
	c.Valid = o.inside(smin, smax)

	// isotropic
	c.Strains = o.kernel.Solve(tect.Calibration{Sh: smin, SH: smax})
	c.SHMin, c.SHMax = o.kernel.Stresses(c.Strains)
	c.Tau = (c.Strains.Max - c.Strains.Min) / c.Strains.Max

	// corrections
	d := stress.Correct(o.iso.C.C13, o.ani.C.C13, in.C33, in.C44, in.T, in.SV, in.PP, in.Ks, c.Strains)
	c.DiffSV, c.EpsGammaMin, c.EpsGammaMax = d.SV, d.EpsGammaMin, d.EpsGammaMax
	c.DeltaS, c.PpEpsGamma, c.PpDelta = d.DeltaS, d.PpEpsGamma, d.PpDelta
	c.DiffMin, c.DiffMax = d.Min, d.Max
	c.RatioMin = c.DiffMin / c.SHMin
	c.RatioMax = c.DiffMax / c.SHMax
	c.Weight = d.Weight()

	// anisotropic
	c.AnisoMin = c.SHMin + c.DiffMin
	c.AnisoMax = c.SHMax + c.DiffMax
	c.NormMin = c.AnisoMin / in.SV
	c.NormMax = c.AnisoMax / in.SV
	c.SigmaV = in.SV - o.ani.B.V*in.PP
	c.SigmaHMin = c.AnisoMin - o.ani.B.H*in.PP
	c.SigmaHMax = c.AnisoMax - o.ani.B.H*in.PP
	switch {
	case c.AnisoMax > in.SV && c.AnisoMin > in.SV:
		c.Regime = ThrustRegime
	case c.AnisoMax > in.SV:
		c.Regime = StrikeRegime
	default:
		c.Regime = NormalRegime
	}
	return
}

// inside tells whether (smin, smax) is inside the isotropic polygon
func (o model) inside(smin, smax float64) bool {
	if smax < smin {
		return false
	}
	α, pp := o.iso.B.V, o.in.PP
	if smax >= o.in.SV && smax > (smin-α*pp)*3.0+α*pp {
		return false
	}
	return true
}

// invalidate masks all values of a cell outside the polygon
func (o *Cell) invalidate() {
	nan := math.NaN()
	*o = Cell{
		Smin: o.Smin, Smax: o.Smax,
		Strains: tect.Strains{Min: nan, Max: nan},
		SHMin:   nan, SHMax: nan, Tau: nan,
		DiffSV: nan, EpsGammaMin: nan, EpsGammaMax: nan, DeltaS: nan, PpEpsGamma: nan, PpDelta: nan,
		DiffMin: nan, DiffMax: nan, RatioMin: nan, RatioMax: nan, Weight: nan,
		AnisoMin: nan, AnisoMax: nan, NormMin: nan, NormMax: nan,
		SigmaV: nan, SigmaHMin: nan, SigmaHMax: nan,
		Regime: NoRegime,
	}
}

// Case evaluates one calibration point with the anisotropic corrections. The returned cell
// is not masked; check Valid to know whether the point is inside the polygon
func (o Input) Case(cal tect.Calibration) (c *Cell, err error) {
	m, err := newModel(o)
	if err != nil {
		return
	}
	cell := m.eval(cal.Sh, cal.SH)
	return &cell, nil
}

// Bounds holds the limits of the isotropic and anisotropic polygons
type Bounds struct {
	Smin, Smax       float64 // isotropic
	SminAni, SmaxAni float64 // anisotropic
}

// Lims returns the limits enclosing both polygons
func (o Bounds) Lims() (lo, hi float64) {
	return math.Min(o.Smin, o.SminAni), math.Max(o.Smax, o.SmaxAni)
}

// bounds computes the limits of the polygons
func (o model) bounds() (b Bounds) {
	b.Smin, b.Smax = ana.Bounds(o.in.SV, o.in.PP, o.iso.B.V)
	b.SminAni, b.SmaxAni = ana.AnisoBounds(o.in.SV, o.in.PP, o.ani.B.V, o.ani.B.H)
	return
}

// check checks input data
func (o Input) check() error {
	if o.SV <= 0 {
		return chk.Err("polygon: overburden must be positive. SV=%g", o.SV)
	}
	if o.N == 1 || o.N < 0 {
		return chk.Err("polygon: number of points must be at least 2. N=%d", o.N)
	}
	return nil
}
