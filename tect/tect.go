// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tect implements the inversion of calibration stresses into tectonic strains
package tect

import (
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/gosl/io"
)

// Calibration holds two horizontal stresses measured at the reference depth
type Calibration struct {
	Sh float64 `yaml:"sh"`    // minimum horizontal stress
	SH float64 `yaml:"bigsh"` // maximum horizontal stress
}

// FromRatios returns the calibration point with stresses given as fractions of the
// overburden sv0 at the reference depth
//
//    Sh = r・SV0
//    SH = (r + Δr)・SV0
//
func FromRatios(r, Δr, sv0 float64) Calibration {
	return Calibration{Sh: r * sv0, SH: (r + Δr) * sv0}
}

// String returns a short representation
func (o Calibration) String() string {
	return io.Sf("Sh=%g SH=%g", o.Sh, o.SH)
}

// Strains holds the minimum and maximum tectonic strains
type Strains struct {
	Min float64 // εh
	Max float64 // εH
}

// Sum returns Min + Max
func (o Strains) Sum() float64 { return o.Min + o.Max }

// String returns a short representation
func (o Strains) String() string {
	return io.Sf("εh=%g εH=%g", o.Min, o.Max)
}

// Kernel holds the coefficients of the poroelastic horizontal strain model at the reference
// depth
//
//    Sh = Kv + Kp + εh・Ks + εH・(Ks - 2・C44)
//    SH = Kv + Kp + εH・Ks + εh・(Ks - 2・C44)
//
//    Kv = C13 / C33 ・ SD
//    Ks = C33 - C13² / C33
//    Kp = PP・[1 - C13/C33 + 2/(3・Kg)・(-C33 + C44 + C13²/C33)]
//
// where Kg is the bulk modulus of grains
type Kernel struct {
	KV  float64 // vertical stress term
	KS  float64 // strain coefficient
	KP  float64 // pore pressure term
	C44 float64 // vertical shear modulus
}

// NewKernel computes the coefficients for state st at depth sd with pore pressure pp
func NewKernel(st *aniso.State, sd, pp float64) (o *Kernel, err error) {
	c13, c33, c44, ks := st.C.C13, st.C.C33, st.C.C44, st.Ks
	if c33 == 0 {
		return nil, aniso.NewSingularityError("kernel", "C33 is zero", "C33", c33)
	}
	if c44 == 0 {
		return nil, aniso.NewSingularityError("kernel", "C44 is zero", "C44", c44)
	}
	if ks == 0 {
		return nil, aniso.NewSingularityError("kernel", "Ks is zero", "Ks", ks)
	}
	o = new(Kernel)
	o.C44 = c44
	o.KV = c13 / c33 * sd
	o.KS = c33 - c13*c13/c33
	o.KP = pp * (1.0 - c13/c33 + 2.0/(3.0*ks)*(-c33+c44+c13*c13/c33))
	if aniso.Cancels(c33, c13*c13/c33) {
		return nil, aniso.NewSingularityError("kernel", "C33 - C13²/C33 is zero", "C33", c33, "C13", c13)
	}
	if aniso.Cancels(c33, c13*c13/c33+c44) {
		return nil, aniso.NewSingularityError("kernel", "C33 - C13²/C33 equals C44", "C33", c33, "C13", c13, "C44", c44)
	}
	return
}

// Solve inverts the calibration stresses into tectonic strains
//
//    εH = (Sh - Kv - Kp + Ks/(2・C44)・(SH - Sh)) / (2・(Ks - C44))
//    εh = (Sh - Kv - Kp - εH・(Ks - 2・C44)) / Ks
//
func (o Kernel) Solve(cal Calibration) (s Strains) {
	r := cal.Sh - o.KV - o.KP
	s.Max = (r + o.KS/(2.0*o.C44)*(cal.SH-cal.Sh)) / (2.0 * (o.KS - o.C44))
	s.Min = (r - s.Max*(o.KS-2.0*o.C44)) / o.KS
	return
}

// Stresses computes the horizontal stresses corresponding to the tectonic strains s
func (o Kernel) Stresses(s Strains) (shmin, shmax float64) {
	a := o.KS - 2.0*o.C44
	shmin = o.KV + o.KP + s.Min*o.KS + s.Max*a
	shmax = o.KV + o.KP + s.Max*o.KS + s.Min*a
	return
}

// SolvePair inverts the same calibration point with the baseline and differential states
func SolvePair(base, diff *aniso.State, sd, pp float64, cal Calibration) (bs, ds Strains, err error) {
	kb, err := NewKernel(base, sd, pp)
	if err != nil {
		return
	}
	kd, err := NewKernel(diff, sd, pp)
	if err != nil {
		return
	}
	return kb.Solve(cal), kd.Solve(cal), nil
}
