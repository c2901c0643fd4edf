// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stress computes horizontal stresses along a layered column with and without
// differential anisotropy
package stress

import (
	"github.com/cpmech/barriers/geost"
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
)

// Record holds the stresses at one depth sample
type Record struct {
	Index int          // index of sample
	Z     float64      // depth
	Kind  geost.Kind   // top, transition or bottom
	SV    float64      // overburden
	PP    float64      // pore pressure
	Base  *aniso.State // baseline state
	Diff  *aniso.State // differential state

	// stresses
	Sh     float64 // minimum horizontal stress with baseline anisotropy
	SH     float64 // maximum horizontal stress with baseline anisotropy
	ShD    float64 // minimum horizontal stress with differential anisotropy
	SHD    float64 // maximum horizontal stress with differential anisotropy
	DiffSV float64 // overburden contribution of the change in C13
	DiffPP float64 // pore pressure contribution of the differential anisotropy
}

// Evaluate computes the stresses at every sample of the profile p with the per-sample
// states (base, diff) and the tectonic strains of each state (bs, ds)
//
//    Sh   = C13/C33・(SV - αv・PP) - C13²/C33・(εh + εH) + C11・(εh + εH) - 2・C66・εH + αh・PP
//    SH   = C13/C33・(SV - αv・PP) - C13²/C33・(εh + εH) + C11・(εh + εH) - 2・C66・εh + αh・PP
//
// The differential stresses use the differential state and strains except in the C13² term,
// which keeps the baseline strains
//
//    DiffSV = -(C13 - C13d) / C33・SV
//    DiffPP = PP・[(C13 - C13d)/C33 - 2/(3・Kg)・(C13 - C13d)/C33・(C13 + C13d)]
//           + 4・PP/(3・Kg)・(dγ・C44 - dε・C33)
//
func Evaluate(p geost.Profile, base, diff []*aniso.State, bs, ds tect.Strains) (res []Record, err error) {
	n := len(p.Samples)
	if len(base) != n || len(diff) != n {
		return nil, chk.Err("evaluate: number of states (%d, %d) must equal number of samples (%d)", len(base), len(diff), n)
	}
	res = make([]Record, n)
	for i, s := range p.Samples {
		b, d := base[i], diff[i]
		if b.C.C33 == 0 {
			return nil, aniso.NewSingularityError("stress", "C33 is zero", "z", s.Z)
		}
		if b.Ks == 0 {
			return nil, aniso.NewSingularityError("stress", "Ks is zero", "z", s.Z)
		}
		r := &res[i]
		r.Index, r.Z, r.Kind = i, s.Z, s.Kind
		r.SV, r.PP = s.SV, s.PP
		r.Base, r.Diff = b, d

		// baseline
		r.Sh, r.SH = Horizontal(b, s.SV, s.PP, bs)

		// differential
		c33 := b.C.C33
		v := d.C.C13 / c33 * (s.SV - d.B.V*s.PP)
		k := -d.C.C13*d.C.C13/c33*bs.Sum() + d.C.C11*ds.Sum()
		r.ShD = v + k - 2.0*d.C.C66*ds.Max + d.B.H*s.PP
		r.SHD = v + k - 2.0*d.C.C66*ds.Min + d.B.H*s.PP

		// contributions
		Δ := (b.C.C13 - d.C.C13) / c33
		r.DiffSV = -Δ * s.SV
		r.DiffPP = s.PP*(Δ-2.0/(3.0*b.Ks)*Δ*(b.C.C13+d.C.C13)) +
			4.0*s.PP/(3.0*b.Ks)*(s.Dt.Gamma*b.C.C44-s.Dt.Eps*c33)
	}
	return
}
