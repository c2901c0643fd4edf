// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/barriers/tect"
)

// Horizontal computes the horizontal stresses with state st and tectonic strains s
//
//    Sh = C13/C33・(SV - αv・PP) + (C11 - C13²/C33)・(εh + εH) - 2・C66・εH + αh・PP
//    SH = C13/C33・(SV - αv・PP) + (C11 - C13²/C33)・(εh + εH) - 2・C66・εh + αh・PP
//
func Horizontal(st *aniso.State, sv, pp float64, s tect.Strains) (sh, sH float64) {
	c := st.C
	v := c.C13 / c.C33 * (sv - st.B.V*pp)
	k := (c.C11 - c.C13*c.C13/c.C33) * s.Sum()
	sh = v + k - 2.0*c.C66*s.Max + st.B.H*pp
	sH = v + k - 2.0*c.C66*s.Min + st.B.H*pp
	return
}

// Correction holds the changes in horizontal stresses when the isotropic model is replaced by
// the anisotropic one, for the same tectonic strains
type Correction struct {
	SV          float64 // -(C13iso - C13) / C33・SV
	EpsGammaMin float64 // εH・(2ε・C33 - 4γ・C44) + εh・2ε・C33
	EpsGammaMax float64 // εh・(2ε・C33 - 4γ・C44) + εH・2ε・C33
	DeltaS      float64 // (εh + εH)・(C13iso - C13) / C33・(C13iso + C13)
	PpEpsGamma  float64 // 4・PP / (3・Kg)・(γ・C44 - ε・C33)
	PpDelta     float64 // PP・[(C13iso - C13)/C33 + 2/(3・Kg)・(C13 - C13iso)/C33・(C13iso + C13)]
	Min         float64 // total change in Shmin
	Max         float64 // total change in SHmax
}

// Correct computes the anisotropic corrections. c13iso = C33 - 2・C44 and c13 follows from
// Thomsen's δ. ks is the bulk modulus of grains
func Correct(c13iso, c13, c33, c44 float64, t aniso.Thomsen, sv, pp, ks float64, s tect.Strains) (o Correction) {
	εC := 2.0 * t.Eps * c33
	γC := 4.0 * t.Gamma * c44
	Δ := (c13iso - c13) / c33
	o.SV = -Δ * sv
	o.EpsGammaMin = s.Max*(εC-γC) + s.Min*εC
	o.EpsGammaMax = s.Min*(εC-γC) + s.Max*εC
	o.DeltaS = s.Sum() * Δ * (c13iso + c13)
	o.PpEpsGamma = 4.0 * pp / (3.0 * ks) * (t.Gamma*c44 - t.Eps*c33)
	o.PpDelta = pp * (Δ + 2.0/(3.0*ks)*(-c13iso+c13)/c33*(c13iso+c13))
	common := o.SV + o.DeltaS + o.PpEpsGamma + o.PpDelta
	o.Min = common + o.EpsGammaMin
	o.Max = common + o.EpsGammaMax
	return
}

// Weight returns the relative weight of the ε-γ terms with respect to the δ terms in the
// change of Shmin
func (o Correction) Weight() float64 {
	return (o.EpsGammaMin + o.PpEpsGamma) / (o.SV + o.DeltaS + o.PpDelta)
}
