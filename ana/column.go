// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions for the geostatic column
package ana

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Column computes the overburden (SV) and pore pressure (PP) along a laterally confined
// column. Both are linear with depth z (positive downwards)
//
//     ▷ o-----------o ◁   z = 0
//     ▷ |           | ◁
//     ▷ |   SVG, r  | ◁       SV(z) = SVG・z
//     ▷ |           | ◁       PP(z) = r・SV(z)
//     ▷ o-----------o ◁   z
//       △  △  △  △  △
//
type Column struct {
	SVG   float64 // overburden gradient
	Ratio float64 // pore pressure to overburden ratio
}

// Init initialises this structure
func (o *Column) Init(prms dbf.Params) (err error) {

	// default values
	o.SVG = 2.0
	o.Ratio = 0.8

	// parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "svg":
			o.SVG = p.V
		case "ppratio":
			o.Ratio = p.V
		default:
			return chk.Err("column: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.SVG <= 0 {
		return chk.Err("column: overburden gradient must be positive. svg=%g", o.SVG)
	}
	if o.Ratio < 0 || o.Ratio >= 1 {
		return chk.Err("column: pore pressure ratio must be in [0, 1). ppratio=%g", o.Ratio)
	}
	return
}

// GetPrms gets parameters
func (o Column) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "svg", V: o.SVG},
		&dbf.P{N: "ppratio", V: o.Ratio},
	}
}

// SV computes the vertical (overburden) stress
func (o Column) SV(z float64) float64 {
	return o.SVG * z
}

// PP computes the pore pressure
func (o Column) PP(z float64) float64 {
	return o.Ratio * o.SV(z)
}

// Calc computes SV and PP
func (o Column) Calc(z float64) (sv, pp float64) {
	sv = o.SV(z)
	pp = o.Ratio * sv
	return
}

// Bounds computes the frictional limits of the horizontal stresses for an isotropic
// medium with Biot coefficient α
//
//    Smin = (SV - α・PP) / 3 + α・PP
//    Smax = (SV - α・PP) ・ 3 + α・PP
//
func Bounds(sv, pp, α float64) (smin, smax float64) {
	σv := sv - α*pp
	smin = σv/3.0 + α*pp
	smax = σv*3.0 + α*pp
	return
}

// AnisoBounds computes the frictional limits of the horizontal stresses for a VTI medium.
// The vertical Biot coefficient αv gives the effective overburden and the horizontal one
// αh is added back to the horizontal effective stresses
func AnisoBounds(sv, pp, αv, αh float64) (smin, smax float64) {
	σv := sv - αv*pp
	smin = σv/3.0 + αh*pp
	smax = σv*3.0 + αh*pp
	return
}
