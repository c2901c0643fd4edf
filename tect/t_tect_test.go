// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tect

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_kernel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel01. two-layers scenario")

	st, err := aniso.Isotropic(1e9, 5e8, 1e8)
	if err != nil {
		tst.Errorf("Isotropic failed: %v\n", err)
		return
	}
	sv, pp, sd := 4000.0, 3200.0, 2000.0
	k, err := NewKernel(st, sd, pp)
	if err != nil {
		tst.Errorf("NewKernel failed: %v\n", err)
		return
	}
	io.Pforan("k = %+v\n", k)
	chk.Float64(tst, "Kv", 1e-17, k.KV, 0)
	chk.Float64(tst, "Ks", 1e-17, k.KS, 1e9)
	chk.Float64(tst, "Kp", 1e-9, k.KP, pp*(1.0-10.0/3.0))

	cal := FromRatios(1.0, 0, sv)
	chk.Float64(tst, "Sh", 1e-17, cal.Sh, 4000)
	chk.Float64(tst, "SH", 1e-17, cal.SH, 4000)

	s := k.Solve(cal)
	io.Pforan("s = %v\n", s)
	chk.Float64(tst, "εh = εH", 1e-20, s.Min, s.Max)
	shmin, shmax := k.Stresses(s)
	chk.Float64(tst, "Sh", 1e-9, shmin, cal.Sh)
	chk.Float64(tst, "SH", 1e-9, shmax, cal.SH)
}

func Test_kernel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel02. strains round trip")

	c33, c44, ks := 30e9, 10e9, 40e9
	for _, δ := range []float64{-0.1, 0, 0.1, 0.3} {
		st, err := aniso.Calc(c33, c44, ks, aniso.Thomsen{Delta: δ})
		if err != nil {
			tst.Errorf("Calc failed: %v\n", err)
			return
		}
		sv := 5000.0
		pp := 0.45 * sv
		k, err := NewKernel(st, sv, pp)
		if err != nil {
			tst.Errorf("NewKernel failed: %v\n", err)
			return
		}
		for _, s := range []Strains{{1e-4, 2e-4}, {-3e-5, 1e-5}, {0, 0}, {2e-4, 2e-4}} {

			// forward with the poroelastic model
			c := st.C
			r := s.Sum()
			shmin := (c.C13/c.C33)*(sv-st.B.V*pp) - (c.C13*c.C13/c.C33)*r + c.C11*r - 2.0*c.C66*s.Max + st.B.H*pp
			shmax := (c.C13/c.C33)*(sv-st.B.V*pp) - (c.C13*c.C13/c.C33)*r + c.C11*r - 2.0*c.C66*s.Min + st.B.H*pp

			// inverse
			res := k.Solve(Calibration{shmin, shmax})
			io.Pf("δ=%5.2f  %v  →  %v\n", δ, s, res)
			tol := 1e-9 * math.Max(math.Abs(s.Min)+math.Abs(s.Max), 1e-8)
			chk.Float64(tst, "εh", tol, res.Min, s.Min)
			chk.Float64(tst, "εH", tol, res.Max, s.Max)
		}
	}
}

func Test_kernel03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel03. singularities")

	for i, st := range []*aniso.State{
		{Ks: 1, C: aniso.Stiffness{C33: 0, C44: 1}},
		{Ks: 1, C: aniso.Stiffness{C33: 1, C44: 0}},
		{Ks: 0, C: aniso.Stiffness{C33: 1, C44: 1}},
		{Ks: 1, C: aniso.Stiffness{C33: 2, C13: 2, C44: 1}}, // Ks = 0
		{Ks: 1, C: aniso.Stiffness{C33: 4, C13: 2, C44: 3}}, // Ks = C44
		{Ks: 1, C: aniso.Stiffness{C33: 3, C13: math.Sqrt(3) * math.Sqrt(3), C44: 1}}, // Ks = 0 up to round-off
		{Ks: 1, C: aniso.Stiffness{C33: 3, C13: math.Sqrt(6), C44: 1}},                 // Ks = C44 up to round-off
	} {
		_, err := NewKernel(st, 1, 1)
		io.Pforan("%d: err = %v\n", i, err)
		if !errors.Is(err, aniso.ErrSingular) {
			tst.Errorf("%d: NewKernel should have failed with singularity: %v\n", i, err)
		}
		var serr *aniso.SingularityError
		if !errors.As(err, &serr) {
			tst.Errorf("%d: error should be *SingularityError\n", i)
		}
	}

	// close to but away from the singularity
	k, err := NewKernel(&aniso.State{Ks: 1, C: aniso.Stiffness{C33: 3, C13: math.Sqrt(6) * (1 - 1e-6), C44: 1}}, 1, 1)
	if err != nil {
		tst.Errorf("NewKernel failed: %v\n", err)
		return
	}
	s := k.Solve(Calibration{Sh: 1, SH: 1.1})
	sh, sH := k.Stresses(s)
	chk.Float64(tst, "Sh", 1e-6, sh, 1)
	chk.Float64(tst, "SH", 1e-6, sH, 1.1)
}

func Test_pair01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pair01")

	base, diff, err := aniso.Pair(30e9, 10e9, 40e9, aniso.Thomsen{Eps: 0.1, Delta: 0.05, Gamma: 0.1}, aniso.Thomsen{Delta: 0.05})
	if err != nil {
		tst.Errorf("Pair failed: %v\n", err)
		return
	}
	cal := Calibration{Sh: 3500, SH: 4200}
	bs, ds, err := SolvePair(base, diff, 2000, 1800, cal)
	if err != nil {
		tst.Errorf("SolvePair failed: %v\n", err)
		return
	}
	io.Pforan("bs = %v\n", bs)
	io.Pforan("ds = %v\n", ds)

	kb, _ := NewKernel(base, 2000, 1800)
	kd, _ := NewKernel(diff, 2000, 1800)
	for _, c := range []struct {
		k *Kernel
		s Strains
	}{{kb, bs}, {kd, ds}} {
		shmin, shmax := c.k.Stresses(c.s)
		chk.Float64(tst, "Sh", 1e-9, shmin, cal.Sh)
		chk.Float64(tst, "SH", 1e-9, shmax, cal.SH)
	}
	if bs == ds {
		tst.Errorf("different C13 must give different strains\n")
	}
}
